package main

import (
	"fmt"
	"os"

	"github.com/km-arc/go-nox/framework/console"
)

func main() {
	if err := console.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nox:", err)
		os.Exit(1)
	}
}
