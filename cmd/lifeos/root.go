// ABOUTME: Root Cobra command for lifeos CLI.
// ABOUTME: Opens the CSV store and repository set via PersistentPreRunE.
package main

import (
	"fmt"

	"github.com/harperreed/lifeos/internal/config"
	"github.com/harperreed/lifeos/internal/finance"
	"github.com/harperreed/lifeos/internal/gamify"
	"github.com/harperreed/lifeos/internal/insights"
	"github.com/harperreed/lifeos/internal/repo"
	"github.com/harperreed/lifeos/internal/scoring"
	"github.com/spf13/cobra"
)

var (
	repos   *repo.Repos
	scores  *scoring.Engine
	player  *gamify.Engine
	analyst *insights.Engine
	money   *finance.Aggregator
)

var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "Personal life tracking: plans, execution, gym, money, knowledge",
	Long: `lifeos tracks your days and derives scores, RPG stats, and insights.

WHAT IT TRACKS:

  Days       daily plan vs daily execution, with a 0-100 adherence score
  Gym        one record per set, with PR detection against your last session
  Money      transactions, category budgets, monthly summaries
  Knowledge  searchable notes
  Systems    weekly reviews and quarterly OKRs

QUICK CAPTURE:

  $ lifeos capture "$ 20 lunch"          # Log an expense
  $ lifeos capture "gym squat 100 5"     # Log a set
  $ lifeos capture "note read about WAL" # Save a note
  $ lifeos capture "wake 06:30"          # Set today's wake time

DERIVED VIEWS:

  $ lifeos score            # Today's plan-adherence score
  $ lifeos stats            # Level, XP, STR/INT/WIS/DIS
  $ lifeos insights         # Behavioral correlations
  $ lifeos summary 2026-09  # Monthly money summary

DATA STORAGE:

  Each table is one CSV file under ~/.local/share/lifeos (override with
  LIFEOS_DATA_DIR or data_dir in ~/.config/lifeos/config.json).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		st, err := cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		repos = repo.New(st)
		scores = scoring.NewEngine(repos.Plans, repos.Executions)
		player = gamify.NewEngine(repos.Executions, repos.Gym, repos.Notes)
		analyst = insights.NewEngine(repos.Executions)
		money = finance.NewAggregator(repos.Transactions, repos.Budgets)
		return nil
	},
}
