package console

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	registerFormat string
	treePaths      []string
	treeFormat     string
)

var registerCmd = &cobra.Command{
	Use:   "register <namespace> [module...]",
	Short: "Register a record at a namespace and print the tree",
	Long: `Register a record at <namespace>, pulling in the given modules ("*" for all).
When no module is named, NOX_MODULES is used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRegister,
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Register every --path and print the resulting tree",
	Args:  cobra.NoArgs,
	RunE:  runTree,
}

func init() {
	registerCmd.Flags().StringVar(&registerFormat, "format", "yaml", "Output format (yaml, json)")
	treeCmd.Flags().StringArrayVar(&treePaths, "path", nil, "Namespace to register (repeatable)")
	treeCmd.Flags().StringVar(&treeFormat, "format", "yaml", "Output format (yaml, json)")
	rootCmd.AddCommand(registerCmd, treeCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	if _, err := application.RegisterRecord(args[0], args[1:]); err != nil {
		return err
	}
	return dump(cmd.OutOrStdout(), registerFormat, application.Nox.Tree().Snapshot())
}

func runTree(cmd *cobra.Command, args []string) error {
	for _, p := range treePaths {
		if _, err := application.RegisterRecord(p, nil); err != nil {
			return fmt.Errorf("registering %s: %w", p, err)
		}
	}
	return dump(cmd.OutOrStdout(), treeFormat, application.Nox.Tree().Snapshot())
}

func dump(out io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
