// ABOUTME: Finance aggregator for monthly summaries, breakdowns, and budget status.
// ABOUTME: Reads transactions and budgets through their repositories only.
package finance

import (
	"math"
	"sort"
	"strings"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/repo"
)

// MonthlySummary totals one month's money flow.
type MonthlySummary struct {
	Income  float64
	Expense float64
	Savings float64
}

// CategoryTotal is one category's expense total for a month.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// BudgetLine joins a budgeted category with its actual spending.
type BudgetLine struct {
	Category  string
	Limit     float64
	Spent     float64
	Remaining float64
	Percent   float64 // 0.0-1.0, capped at 1.0
}

// Aggregator computes finance aggregates from stored history.
type Aggregator struct {
	txns    *repo.TransactionRepo
	budgets *repo.BudgetRepo
}

// NewAggregator builds a finance aggregator over the transaction and budget
// repositories.
func NewAggregator(txns *repo.TransactionRepo, budgets *repo.BudgetRepo) *Aggregator {
	return &Aggregator{txns: txns, budgets: budgets}
}

// inMonth reports whether a YYYY-MM-DD date falls in a YYYY-MM month.
func inMonth(date, month string) bool {
	return strings.HasPrefix(date, month+"-")
}

// MonthlySummary sums income and expense for a month (YYYY-MM) and derives
// savings. Months with no transactions come back all-zero.
func (a *Aggregator) MonthlySummary(month string) (MonthlySummary, error) {
	txns, err := a.txns.All()
	if err != nil {
		return MonthlySummary{}, err
	}

	var s MonthlySummary
	for _, t := range txns {
		if !inMonth(t.Date, month) {
			continue
		}
		switch t.Type {
		case models.Income:
			s.Income += t.Amount
		case models.Expense:
			s.Expense += t.Amount
		}
	}
	s.Income = round2(s.Income)
	s.Expense = round2(s.Expense)
	s.Savings = round2(s.Income - s.Expense)
	return s, nil
}

// CategoryBreakdown groups a month's expenses by category, summed and sorted
// by amount descending. Ties break alphabetically so output is stable.
func (a *Aggregator) CategoryBreakdown(month string) ([]CategoryTotal, error) {
	txns, err := a.txns.All()
	if err != nil {
		return nil, err
	}

	totals := map[string]float64{}
	for _, t := range txns {
		if t.Type != models.Expense || !inMonth(t.Date, month) {
			continue
		}
		totals[t.Category] += t.Amount
	}

	out := make([]CategoryTotal, 0, len(totals))
	for cat, amt := range totals {
		out = append(out, CategoryTotal{Category: cat, Amount: round2(amt)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// BudgetStatus joins every budgeted category with the month's actual
// spending. Categories with a budget but no spending show spent=0; a zero
// limit pins percent to 0.
func (a *Aggregator) BudgetStatus(month string) ([]BudgetLine, error) {
	breakdown, err := a.CategoryBreakdown(month)
	if err != nil {
		return nil, err
	}
	actuals := make(map[string]float64, len(breakdown))
	for _, ct := range breakdown {
		actuals[ct.Category] = ct.Amount
	}

	budgets, err := a.budgets.All()
	if err != nil {
		return nil, err
	}

	var lines []BudgetLine
	for _, b := range budgets {
		spent := actuals[b.Category]
		line := BudgetLine{
			Category:  b.Category,
			Limit:     b.MonthlyLimit,
			Spent:     spent,
			Remaining: round2(b.MonthlyLimit - spent),
		}
		if b.MonthlyLimit > 0 {
			line.Percent = math.Min(spent/b.MonthlyLimit, 1.0)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
