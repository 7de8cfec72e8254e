// ABOUTME: Transaction, Budget, and Category models for personal finance.
// ABOUTME: Transactions are append-only; budgets and categories key on category name.
package models

import (
	"time"

	"github.com/harperreed/lifeos/internal/store"
)

// TransactionType tells whether an amount flows in or out.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// IsValidTransactionType checks if a string is a valid transaction type.
func IsValidTransactionType(s string) bool {
	return s == string(Income) || s == string(Expense)
}

// Transaction is one logged money movement. Amount is positive; direction
// comes from Type.
type Transaction struct {
	ID          string
	Date        string // YYYY-MM-DD
	Amount      float64
	Type        TransactionType
	Category    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a transaction entry.
func NewTransaction(date string, amount float64, txType TransactionType, category, description string) *Transaction {
	return &Transaction{
		Date:        date,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Description: description,
	}
}

// Fields converts the transaction to store fields.
func (t *Transaction) Fields() store.Fields {
	f := store.Fields{}
	f.Set("date", t.Date)
	f.SetFloat("amount", t.Amount)
	f.Set("type", string(t.Type))
	f.Set("category", t.Category)
	f.Set("description", t.Description)
	return f
}

// TransactionFromRecord builds a Transaction from a stored record.
func TransactionFromRecord(r store.Record) *Transaction {
	return &Transaction{
		ID:          r.ID,
		Date:        r.Fields.Get("date"),
		Amount:      r.Fields.Float("amount", 0),
		Type:        TransactionType(r.Fields.Get("type")),
		Category:    r.Fields.Get("category"),
		Description: r.Fields.Get("description"),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Budget is a monthly spending limit for one category.
type Budget struct {
	ID           string
	Category     string
	MonthlyLimit float64
}

// Fields converts the budget to store fields.
func (b *Budget) Fields() store.Fields {
	f := store.Fields{}
	f.Set("category", b.Category)
	f.SetFloat("monthly_limit", b.MonthlyLimit)
	return f
}

// BudgetFromRecord builds a Budget from a stored record.
func BudgetFromRecord(r store.Record) *Budget {
	return &Budget{
		ID:           r.ID,
		Category:     r.Fields.Get("category"),
		MonthlyLimit: r.Fields.Float("monthly_limit", 0),
	}
}

// DefaultCategories seeds the category table on first use.
var DefaultCategories = []string{
	"Food", "Transport", "Rent", "Fun", "Subscriptions", "Other", "Salary", "Freelance",
}
