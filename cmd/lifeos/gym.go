// ABOUTME: CLI commands for gym logging, history, and the exercise library.
// ABOUTME: Prints a progressive-overload verdict after each logged set.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/repo"
	"github.com/spf13/cobra"
)

var (
	gymRPE   int
	gymNotes string
)

var gymCmd = &cobra.Command{
	Use:   "gym",
	Short: "Log sets and inspect training history",
}

var gymLogCmd = &cobra.Command{
	Use:   "log <exercise> <weight_kg> <reps>",
	Short: "Log one set",
	Long: `Log one set. Every set is its own record; nothing is ever merged.

EXAMPLES:

  lifeos gym log "Squat" 100 5
  lifeos gym log "Bench Press" 80 8 --rpe 9 --notes "paused reps"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise := args[0]
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil || weight < 0 {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		reps, err := strconv.Atoi(args[2])
		if err != nil || reps < 1 {
			return fmt.Errorf("invalid reps: %s", args[2])
		}
		if gymRPE < 0 || gymRPE > 10 {
			return fmt.Errorf("rpe must be 0-10, got %d", gymRPE)
		}

		// Verdict is computed against history before this set lands.
		verdict, err := repos.Gym.CheckProgressiveOverload(exercise, weight, reps)
		if err != nil {
			return fmt.Errorf("failed to check overload: %w", err)
		}

		g := models.NewGymLog(time.Now().Format("2006-01-02"), exercise, weight, reps, gymRPE)
		g.Notes = gymNotes
		if err := repos.Gym.LogSet(g); err != nil {
			return fmt.Errorf("failed to log set: %w", err)
		}

		color.Green("✓ %s: %gkg x %d", exercise, weight, reps)
		switch verdict {
		case repo.VerdictWeightPR, repo.VerdictRepPR:
			color.Yellow("  %s!", verdict)
		case repo.VerdictNewExercise:
			fmt.Println("  first time logging this exercise")
		}
		return nil
	},
}

var gymHistoryCmd = &cobra.Command{
	Use:   "history <exercise>",
	Short: "Show all sets for an exercise, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hist, err := repos.Gym.History(args[0])
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		if len(hist) == 0 {
			fmt.Println("No sets logged.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, g := range hist {
			notes := ""
			if g.Notes != "" {
				notes = faint.Sprintf(" (%s)", g.Notes)
			}
			fmt.Printf("%s %s  %gkg x %d  rpe %d%s\n",
				faint.Sprint(shortID(g.ID)), g.Date, g.WeightKg, g.Reps, g.RPE, notes)
		}
		return nil
	},
}

var gymLastCmd = &cobra.Command{
	Use:   "last <exercise>",
	Short: "Show the best set from the last session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		best, ok, err := repos.Gym.LastSessionBest(args[0])
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		if !ok {
			fmt.Println("Never logged.")
			return nil
		}
		fmt.Printf("%s: %gkg x %d\n", best.Date, best.WeightKg, best.Reps)
		return nil
	},
}

var gymExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the exercise library",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repos.Exercises.All()
		if err != nil {
			return fmt.Errorf("failed to read exercises: %w", err)
		}
		for _, ex := range exercises {
			fmt.Printf("%-18s %-10s %s\n", ex.Name, ex.Muscle, ex.Type)
		}
		return nil
	},
}

func init() {
	gymLogCmd.Flags().IntVar(&gymRPE, "rpe", 8, "rate of perceived exertion 0-10")
	gymLogCmd.Flags().StringVar(&gymNotes, "notes", "", "set notes")
	gymCmd.AddCommand(gymLogCmd)
	gymCmd.AddCommand(gymHistoryCmd)
	gymCmd.AddCommand(gymLastCmd)
	gymCmd.AddCommand(gymExercisesCmd)
	rootCmd.AddCommand(gymCmd)
}
