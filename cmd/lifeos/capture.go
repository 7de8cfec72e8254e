// ABOUTME: CLI command for one-line quick capture.
// ABOUTME: Hands the raw line to the command grammar parser.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/command"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:     "capture <command...>",
	Aliases: []string{"c"},
	Short:   "Quick-capture a log entry in one line",
	Long: `Quick capture with a tiny grammar. Each line maps to exactly one write;
anything unrecognized is rejected without touching the store.

GRAMMAR:

  $ <amount> [desc...]               expense ($ 20 lunch)
  <amount> [desc...]                 expense, whole amounts (20 lunch)
  gym <exercise> <kg> <reps> [rpe]   one set (gym squat 100 5)
  note <text...>                     quick note
  wake <HH:MM>                       today's planned wake time

EXAMPLES:

  lifeos capture '$ 12.50 coffee'
  lifeos capture gym squat 100 5 9
  lifeos capture note check out ratio charts
  lifeos capture wake 06:30`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := command.NewParser(repos)
		msg, err := parser.Execute(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("capture rejected: %w", err)
		}
		color.Green("✓ %s", msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(captureCmd)
}
