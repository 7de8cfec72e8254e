// ABOUTME: CLI commands for the day score, dashboard, and sleep debt.
// ABOUTME: All read-only views over the scoring engine.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var scoreDate string

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show a day's plan-adherence score",
	Long: `Show the 0-100 score comparing a day's plan to its execution.

Only planned dimensions count: study (40 points, capped at 120% of target),
gym (30), and the morning routine (15). A day with no plan scores 100.

EXAMPLES:

  lifeos score                     # Today
  lifeos score --date 2026-08-30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := scoreDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		score, err := scores.DayScore(date)
		if err != nil {
			return fmt.Errorf("failed to compute score: %w", err)
		}
		fmt.Printf("%s: %.1f\n", date, score)
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Show headline totals over all history",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := scores.Dashboard()
		if err != nil {
			return fmt.Errorf("failed to aggregate: %w", err)
		}
		fmt.Printf("study total   %.1fh\n", d.StudyTotal)
		fmt.Printf("gym sessions  %d\n", d.GymSessions)
		fmt.Printf("avg score     %.1f\n", d.AvgScore)
		return nil
	},
}

var sleepDays int

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Show accumulated sleep debt",
	Long: `Show sleep debt versus the 8h nightly ideal over the last N logged days.
Days without parseable sleep and wake times are skipped and reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debt, err := scores.SleepDebt(sleepDays)
		if err != nil {
			return fmt.Errorf("failed to compute sleep debt: %w", err)
		}
		if debt.Hours > 0 {
			color.Yellow("sleep debt: %.1fh over the last %d days", debt.Hours, sleepDays)
		} else {
			color.Green("no sleep debt over the last %d days", sleepDays)
		}
		if debt.Skipped > 0 {
			fmt.Printf("  (%d day(s) skipped: missing or unparsable times)\n", debt.Skipped)
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	sleepCmd.Flags().IntVar(&sleepDays, "days", 7, "how many recent days to include")
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(sleepCmd)
}
