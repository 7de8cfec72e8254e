// ABOUTME: CLI commands for gamification stats and behavioral insights.
// ABOUTME: Both are pure recomputations over stored history.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/insights"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show level, XP, and attributes",
	Long: `Show gamification stats derived from all logged history.

XP SOURCES:

  100 XP per study hour
   50 XP per gym set
   50 XP per note
  150 XP per morning-routine day

Every 1000 XP is one level. Attributes: STR from gym sets, INT from study
hours, WIS from notes, DIS from routine days.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := player.Stats()
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}
		color.Cyan("Level %d  (%d XP, %.0f%% to next)", st.Level, st.TotalXP, st.XPProgress*100)
		fmt.Printf("  STR %d  INT %d  WIS %d  DIS %d\n",
			st.Attributes.STR, st.Attributes.INT, st.Attributes.WIS, st.Attributes.DIS)
		return nil
	},
}

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show behavioral correlations from execution history",
	RunE: func(cmd *cobra.Command, args []string) error {
		findings, err := analyst.Findings()
		if err != nil {
			return fmt.Errorf("failed to compute insights: %w", err)
		}
		if len(findings) == 0 {
			fmt.Println("Not enough data yet.")
			return nil
		}
		for _, f := range findings {
			fmt.Println(f.Question)
			switch f.Impact {
			case insights.Positive:
				color.Green("  %s", f.Answer)
			case insights.Negative:
				color.Red("  %s", f.Answer)
			default:
				fmt.Printf("  %s\n", f.Answer)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(insightsCmd)
}
