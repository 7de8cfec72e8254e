// ABOUTME: CLI commands for transactions, budgets, and monthly summaries.
// ABOUTME: Spend and income append events; budgets upsert by category.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/lifeos/internal/models"
	"github.com/spf13/cobra"
)

var (
	spendDate     string
	spendCategory string
	spendIncome   bool
)

var spendCmd = &cobra.Command{
	Use:   "spend <amount> [description...]",
	Short: "Log a transaction",
	Long: `Log an expense (or, with --income, an income) transaction.

EXAMPLES:

  lifeos spend 20 lunch --category Food
  lifeos spend 3200 --income --category Salary
  lifeos spend 15.50 bus pass --category Transport --date 2026-08-28`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil || amount <= 0 {
			return fmt.Errorf("invalid amount: %s", args[0])
		}

		date := spendDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		txType := models.Expense
		if spendIncome {
			txType = models.Income
		}
		description := strings.Join(args[1:], " ")

		// Categories the store has never seen get created on the fly.
		if err := repos.Categories.Add(spendCategory); err != nil {
			return fmt.Errorf("failed to ensure category: %w", err)
		}

		t := models.NewTransaction(date, amount, txType, spendCategory, description)
		if err := repos.Transactions.Add(t); err != nil {
			return fmt.Errorf("failed to log transaction: %w", err)
		}

		color.Green("✓ %s $%.2f in %s", txType, amount, spendCategory)
		return nil
	},
}

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Set budgets and check them against spending",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <category> <monthly_limit>",
	Short: "Set the monthly limit for a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := strconv.ParseFloat(args[1], 64)
		if err != nil || limit < 0 {
			return fmt.Errorf("invalid limit: %s", args[1])
		}
		if err := repos.Budgets.Set(args[0], limit); err != nil {
			return fmt.Errorf("failed to set budget: %w", err)
		}
		color.Green("✓ Budget for %s: $%.2f/month", args[0], limit)
		return nil
	},
}

var budgetStatusCmd = &cobra.Command{
	Use:   "status [month]",
	Short: "Show budget vs actual for a month (YYYY-MM, default current)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		month := currentMonth(args)
		lines, err := money.BudgetStatus(month)
		if err != nil {
			return fmt.Errorf("failed to compute budget status: %w", err)
		}
		if len(lines) == 0 {
			fmt.Println("No budgets set.")
			return nil
		}
		for _, l := range lines {
			bar := fmt.Sprintf("%3.0f%%", l.Percent*100)
			if l.Percent >= 1.0 {
				bar = color.RedString(bar)
			}
			fmt.Printf("%-15s %s  spent %8.2f of %8.2f  (%.2f left)\n",
				l.Category, bar, l.Spent, l.Limit, l.Remaining)
		}
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary [month]",
	Short: "Show monthly income, expense, and savings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		month := currentMonth(args)
		s, err := money.MonthlySummary(month)
		if err != nil {
			return fmt.Errorf("failed to compute summary: %w", err)
		}
		fmt.Printf("%s  income %.2f  expense %.2f  savings %.2f\n",
			month, s.Income, s.Expense, s.Savings)

		breakdown, err := money.CategoryBreakdown(month)
		if err != nil {
			return fmt.Errorf("failed to compute breakdown: %w", err)
		}
		for _, ct := range breakdown {
			fmt.Printf("  %-15s %8.2f\n", ct.Category, ct.Amount)
		}
		return nil
	},
}

func currentMonth(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return time.Now().Format("2006-01")
}

func init() {
	spendCmd.Flags().StringVar(&spendDate, "date", "", "date (YYYY-MM-DD), defaults to today")
	spendCmd.Flags().StringVar(&spendCategory, "category", "Other", "finance category")
	spendCmd.Flags().BoolVar(&spendIncome, "income", false, "log as income instead of expense")
	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetStatusCmd)
	rootCmd.AddCommand(spendCmd)
	rootCmd.AddCommand(budgetCmd)
	rootCmd.AddCommand(summaryCmd)
}
