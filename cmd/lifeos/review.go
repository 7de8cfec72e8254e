// ABOUTME: CLI commands for weekly reviews and quarterly OKRs.
// ABOUTME: Review shows a 7-day context before saving; both logs are append-only.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/spf13/cobra"
)

var (
	reviewWins       string
	reviewChallenges string
	reviewFocus      string
	reviewScore      int
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Weekly reviews",
}

var reviewContextCmd = &cobra.Command{
	Use:   "context",
	Short: "Show the last 7 days of data as review input",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := scores.WeekContext(time.Now())
		if err != nil {
			return fmt.Errorf("failed to aggregate week: %w", err)
		}
		fmt.Printf("study  %.1fh\n", ctx.StudyHours)
		fmt.Printf("gym    %d sessions\n", ctx.GymCount)
		fmt.Printf("mood   %.1f avg\n", ctx.AvgMood)
		return nil
	},
}

var reviewAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a weekly review",
	Long: `Save a weekly review for the week containing today.

EXAMPLE:

  lifeos review add --wins "shipped v2" --challenges "slept badly" \
    --focus "morning routine" --score 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if reviewScore < 1 || reviewScore > 10 {
			return fmt.Errorf("score must be 1-10, got %d", reviewScore)
		}
		rev := &models.Review{
			WeekStart:  weekStart(time.Now()),
			Wins:       reviewWins,
			Challenges: reviewChallenges,
			Focus:      reviewFocus,
			Score:      reviewScore,
		}
		if err := repos.Reviews.Save(rev); err != nil {
			return fmt.Errorf("failed to save review: %w", err)
		}
		color.Green("✓ Review saved for week of %s", rev.WeekStart)
		return nil
	},
}

var (
	okrKeyResults string
	okrStatus     string
)

var okrCmd = &cobra.Command{
	Use:   "okr",
	Short: "Quarterly objectives",
}

var okrAddCmd = &cobra.Command{
	Use:   "add <quarter> <objective>",
	Short: "Save an OKR",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		o := &models.OKR{
			Quarter:    args[0],
			Objective:  args[1],
			KeyResults: okrKeyResults,
			Status:     okrStatus,
		}
		if err := repos.OKRs.Save(o); err != nil {
			return fmt.Errorf("failed to save okr: %w", err)
		}
		color.Green("✓ OKR saved for %s", o.Quarter)
		return nil
	},
}

var okrListCmd = &cobra.Command{
	Use:   "list [quarter]",
	Short: "List OKRs, optionally for one quarter",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quarter := ""
		if len(args) > 0 {
			quarter = args[0]
		}
		okrs, err := repos.OKRs.List(quarter)
		if err != nil {
			return fmt.Errorf("failed to list okrs: %w", err)
		}
		if len(okrs) == 0 {
			fmt.Println("No OKRs found.")
			return nil
		}
		for _, o := range okrs {
			fmt.Printf("%s  [%s]  %s\n", o.Quarter, o.Status, o.Objective)
			if o.KeyResults != "" {
				fmt.Printf("  %s\n", o.KeyResults)
			}
		}
		return nil
	},
}

// weekStart returns the Monday of the week containing t.
func weekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}

func init() {
	reviewAddCmd.Flags().StringVar(&reviewWins, "wins", "", "what went well")
	reviewAddCmd.Flags().StringVar(&reviewChallenges, "challenges", "", "what was hard")
	reviewAddCmd.Flags().StringVar(&reviewFocus, "focus", "", "focus for next week")
	reviewAddCmd.Flags().IntVar(&reviewScore, "score", 5, "week self-assessment 1-10")
	reviewCmd.AddCommand(reviewAddCmd)
	reviewCmd.AddCommand(reviewContextCmd)

	okrAddCmd.Flags().StringVar(&okrKeyResults, "key-results", "", "key results, free-form")
	okrAddCmd.Flags().StringVar(&okrStatus, "status", models.OKROnTrack, "On Track, At Risk, or Completed")
	okrCmd.AddCommand(okrAddCmd)
	okrCmd.AddCommand(okrListCmd)

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(okrCmd)
}
