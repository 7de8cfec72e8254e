// ABOUTME: CLI command for exporting all data.
// ABOUTME: Supports JSON and YAML via the repository export envelope.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all data",
	Long: `Export every table in one document.

FORMATS:

  json   Full JSON export (suitable for backup)
  yaml   YAML export (human-readable)

EXAMPLES:

  lifeos export json                # To stdout
  lifeos export json -o backup.json
  lifeos export yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = repos.ExportJSON()
		case "yaml":
			data, err = repos.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
