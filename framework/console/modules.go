package console

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var modulesJSON bool

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List registered modules",
	Args:  cobra.NoArgs,
	RunE:  runModules,
}

func init() {
	modulesCmd.Flags().BoolVar(&modulesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(modulesCmd)
}

func runModules(cmd *cobra.Command, args []string) error {
	names := application.Modules.Names()
	out := cmd.OutOrStdout()

	if modulesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(names)
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
