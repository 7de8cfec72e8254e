// ABOUTME: CLI command for setting and showing the daily plan.
// ABOUTME: Upserts by date so re-running edits the same record.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/spf13/cobra"
)

var (
	planDate       string
	planStudy      float64
	planGym        bool
	planRoutine    bool
	planSleep      string
	planWake       string
	planPriorities string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Set or show a day's plan",
	Long: `Set the plan for a day. Running it again for the same date updates the
existing plan instead of creating a second one.

EXAMPLES:

  lifeos plan --study 5 --gym --routine
  lifeos plan --date 2026-09-02 --wake 06:30 --priorities "ship the release"
  lifeos plan --show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := planDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		if showPlan, _ := cmd.Flags().GetBool("show"); showPlan {
			p, ok, err := repos.Plans.Get(date)
			if err != nil {
				return fmt.Errorf("failed to read plan: %w", err)
			}
			if !ok {
				fmt.Printf("No plan for %s.\n", date)
				return nil
			}
			printPlan(p)
			return nil
		}

		p, ok, err := repos.Plans.Get(date)
		if err != nil {
			return fmt.Errorf("failed to read plan: %w", err)
		}
		if !ok {
			p = models.NewDailyPlan(date)
		}

		if cmd.Flags().Changed("study") {
			p.StudyHoursPlanned = planStudy
		}
		if cmd.Flags().Changed("gym") {
			p.GymPlanned = planGym
		}
		if cmd.Flags().Changed("routine") {
			p.MorningRoutinePlanned = planRoutine
		}
		if cmd.Flags().Changed("sleep") {
			p.SleepTimePlanned = planSleep
		}
		if cmd.Flags().Changed("wake") {
			p.WakeTimePlanned = planWake
		}
		if cmd.Flags().Changed("priorities") {
			p.Priorities = planPriorities
		}

		if err := repos.Plans.CreateOrUpdate(p); err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		color.Green("✓ Plan saved for %s", date)
		printPlan(p)
		return nil
	},
}

func printPlan(p *models.DailyPlan) {
	faint := color.New(color.Faint)
	fmt.Printf("  %s study %.1fh  gym %v  routine %v  sleep %s  wake %s\n",
		faint.Sprint(shortID(p.ID)),
		p.StudyHoursPlanned, p.GymPlanned, p.MorningRoutinePlanned,
		p.SleepTimePlanned, p.WakeTimePlanned)
	if p.Priorities != "" {
		fmt.Printf("  priorities: %s\n", p.Priorities)
	}
}

// shortID returns an 8-char id prefix for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	planCmd.Flags().StringVar(&planDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	planCmd.Flags().Float64Var(&planStudy, "study", 0, "planned study hours")
	planCmd.Flags().BoolVar(&planGym, "gym", false, "plan a gym session")
	planCmd.Flags().BoolVar(&planRoutine, "routine", false, "plan the morning routine")
	planCmd.Flags().StringVar(&planSleep, "sleep", "", "planned sleep time (HH:MM)")
	planCmd.Flags().StringVar(&planWake, "wake", "", "planned wake time (HH:MM)")
	planCmd.Flags().StringVar(&planPriorities, "priorities", "", "day priorities")
	planCmd.Flags().Bool("show", false, "show the plan instead of editing it")
	rootCmd.AddCommand(planCmd)
}
