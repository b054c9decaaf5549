package console

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/km-arc/go-nox/framework/app"
)

var (
	envFiles    []string
	application *app.Application
)

var rootCmd = &cobra.Command{
	Use:   "nox",
	Short: "Register objects into a dotted namespace tree",
	Long: `nox builds a namespace tree from dotted paths. Each registration can pull in
named modules (ajax, dom, events) whose capabilities are handed to the
registered object.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(envFiles...)
		if err != nil {
			return fmt.Errorf("bootstrapping: %w", err)
		}
		application = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			_ = application.Logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Environment files to load (default .env)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Run executes the CLI with args, writing to out. It is what Execute does
// with os.Args, exposed for tests.
func Run(out io.Writer, args ...string) error {
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
