// ABOUTME: Repository bundle wiring every domain repository to one store.
// ABOUTME: Engines and the CLI read data through these, never through raw files.
package repo

import (
	"github.com/harperreed/lifeos/internal/store"
)

// Repos bundles one repository per table over a shared store.
type Repos struct {
	Plans        *PlanRepo
	Executions   *ExecutionRepo
	Gym          *GymRepo
	Exercises    *ExerciseRepo
	Transactions *TransactionRepo
	Budgets      *BudgetRepo
	Categories   *CategoryRepo
	Notes        *NoteRepo
	Reviews      *ReviewRepo
	OKRs         *OKRRepo
}

// New builds the repository set over a store.
func New(s *store.Store) *Repos {
	return &Repos{
		Plans:        &PlanRepo{store: s},
		Executions:   &ExecutionRepo{store: s},
		Gym:          &GymRepo{store: s},
		Exercises:    &ExerciseRepo{store: s},
		Transactions: &TransactionRepo{store: s},
		Budgets:      &BudgetRepo{store: s},
		Categories:   &CategoryRepo{store: s},
		Notes:        &NoteRepo{store: s},
		Reviews:      &ReviewRepo{store: s},
		OKRs:         &OKRRepo{store: s},
	}
}
