// ABOUTME: CLI command for logging daily execution.
// ABOUTME: Upserts by date and prints the resulting day score.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/spf13/cobra"
)

var (
	logDate    string
	logStudy   float64
	logGym     bool
	logRoutine bool
	logSleep   string
	logWake    string
	logMood    int
	logNotes   string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log what actually happened on a day",
	Long: `Log a day's execution. Running it again for the same date updates the
existing record. The day score is printed after every save.

EXAMPLES:

  lifeos log --study 4.5 --gym --routine --mood 8
  lifeos log --date 2026-09-01 --sleep 23:30 --wake 07:15
  lifeos log --mood 3 --notes "rough one"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := logDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		e, ok, err := repos.Executions.Get(date)
		if err != nil {
			return fmt.Errorf("failed to read execution: %w", err)
		}
		if !ok {
			e = models.NewDailyExecution(date)
		}

		if cmd.Flags().Changed("study") {
			e.StudyHoursActual = logStudy
		}
		if cmd.Flags().Changed("gym") {
			e.GymDone = logGym
		}
		if cmd.Flags().Changed("routine") {
			e.MorningRoutineDone = logRoutine
		}
		if cmd.Flags().Changed("sleep") {
			e.SleepTimeActual = logSleep
		}
		if cmd.Flags().Changed("wake") {
			e.WakeTimeActual = logWake
		}
		if cmd.Flags().Changed("mood") {
			if logMood < 1 || logMood > 10 {
				return fmt.Errorf("mood must be 1-10, got %d", logMood)
			}
			e.MoodScore = logMood
		}
		if cmd.Flags().Changed("notes") {
			e.Notes = logNotes
		}

		if err := repos.Executions.CreateOrUpdate(e); err != nil {
			return fmt.Errorf("failed to save execution: %w", err)
		}

		score, err := scores.DayScore(date)
		if err != nil {
			return fmt.Errorf("failed to compute score: %w", err)
		}

		color.Green("✓ Logged %s", date)
		fmt.Printf("  day score: %.1f\n", score)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	logCmd.Flags().Float64Var(&logStudy, "study", 0, "actual study hours")
	logCmd.Flags().BoolVar(&logGym, "gym", false, "gym session done")
	logCmd.Flags().BoolVar(&logRoutine, "routine", false, "morning routine done")
	logCmd.Flags().StringVar(&logSleep, "sleep", "", "actual sleep time (HH:MM)")
	logCmd.Flags().StringVar(&logWake, "wake", "", "actual wake time (HH:MM)")
	logCmd.Flags().IntVar(&logMood, "mood", 5, "mood score 1-10")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "free-form notes")
	rootCmd.AddCommand(logCmd)
}
