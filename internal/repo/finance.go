// ABOUTME: Transaction, budget, and category repositories.
// ABOUTME: Budgets upsert by category name; categories seed defaults and never delete.
package repo

import (
	"fmt"
	"sort"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/store"
)

// TransactionRepo is the typed view over the finance_transactions table.
type TransactionRepo struct {
	store *store.Store
}

// Add appends one transaction. Transactions never update.
func (r *TransactionRepo) Add(t *models.Transaction) error {
	rec, err := r.store.Insert(store.TableTransactions, t.Fields())
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	t.ID = rec.ID
	return nil
}

// All returns every transaction in insertion order.
func (r *TransactionRepo) All() ([]*models.Transaction, error) {
	recs, err := r.store.ReadAll(store.TableTransactions)
	if err != nil {
		return nil, fmt.Errorf("read transactions: %w", err)
	}
	txns := make([]*models.Transaction, 0, len(recs))
	for _, rec := range recs {
		txns = append(txns, models.TransactionFromRecord(rec))
	}
	return txns, nil
}

// BudgetRepo is the typed view over the finance_budgets table.
type BudgetRepo struct {
	store *store.Store
}

// Set upserts the monthly limit keyed by category name (case-sensitive).
func (r *BudgetRepo) Set(category string, monthlyLimit float64) error {
	b := &models.Budget{Category: category, MonthlyLimit: monthlyLimit}
	existing, ok, err := r.store.FindOne(store.TableBudgets, "category", category)
	if err != nil {
		return fmt.Errorf("find budget for %s: %w", category, err)
	}
	if ok {
		if _, err := r.store.UpdateByID(store.TableBudgets, existing.ID, b.Fields()); err != nil {
			return fmt.Errorf("update budget for %s: %w", category, err)
		}
		return nil
	}
	if _, err := r.store.Insert(store.TableBudgets, b.Fields()); err != nil {
		return fmt.Errorf("insert budget for %s: %w", category, err)
	}
	return nil
}

// All returns every budget in insertion order.
func (r *BudgetRepo) All() ([]*models.Budget, error) {
	recs, err := r.store.ReadAll(store.TableBudgets)
	if err != nil {
		return nil, fmt.Errorf("read budgets: %w", err)
	}
	budgets := make([]*models.Budget, 0, len(recs))
	for _, rec := range recs {
		budgets = append(budgets, models.BudgetFromRecord(rec))
	}
	return budgets, nil
}

// CategoryRepo is the typed view over the finance_categories table.
// Deletion is unsupported: removing a category would orphan the historical
// transactions that reference it.
type CategoryRepo struct {
	store *store.Store
}

// All returns category names sorted alphabetically, seeding the defaults on
// first read.
func (r *CategoryRepo) All() ([]string, error) {
	recs, err := r.store.ReadAll(store.TableCategories)
	if err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	if len(recs) == 0 {
		for _, name := range models.DefaultCategories {
			f := store.Fields{}
			f.Set("category", name)
			if _, err := r.store.Insert(store.TableCategories, f); err != nil {
				return nil, fmt.Errorf("seed categories: %w", err)
			}
		}
		names := append([]string(nil), models.DefaultCategories...)
		sort.Strings(names)
		return names, nil
	}
	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.Fields.Get("category"))
	}
	sort.Strings(names)
	return names, nil
}

// Add creates the category if it does not already exist (case-sensitive).
func (r *CategoryRepo) Add(name string) error {
	existing, err := r.All()
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c == name {
			return nil
		}
	}
	f := store.Fields{}
	f.Set("category", name)
	if _, err := r.store.Insert(store.TableCategories, f); err != nil {
		return fmt.Errorf("insert category %s: %w", name, err)
	}
	return nil
}
