// ABOUTME: Plan and Execution repositories keyed by calendar date.
// ABOUTME: Enforces the one-record-per-date rule via look-up-then-upsert.
package repo

import (
	"fmt"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/store"
)

// PlanRepo is the typed view over the daily_plan table.
type PlanRepo struct {
	store *store.Store
}

// Get returns the plan for a date, or ok=false if none exists.
func (r *PlanRepo) Get(date string) (*models.DailyPlan, bool, error) {
	rec, ok, err := r.store.FindOne(store.TableDailyPlan, "date", date)
	if err != nil {
		return nil, false, fmt.Errorf("find plan for %s: %w", date, err)
	}
	if !ok {
		return nil, false, nil
	}
	return models.PlanFromRecord(rec), true, nil
}

// CreateOrUpdate upserts the plan keyed by its date. All inserts for this
// table must route through here; it is what keeps the date unique.
func (r *PlanRepo) CreateOrUpdate(p *models.DailyPlan) error {
	existing, ok, err := r.store.FindOne(store.TableDailyPlan, "date", p.Date)
	if err != nil {
		return fmt.Errorf("find plan for %s: %w", p.Date, err)
	}
	if ok {
		if _, err := r.store.UpdateByID(store.TableDailyPlan, existing.ID, p.Fields()); err != nil {
			return fmt.Errorf("update plan for %s: %w", p.Date, err)
		}
		p.ID = existing.ID
		return nil
	}
	rec, err := r.store.Insert(store.TableDailyPlan, p.Fields())
	if err != nil {
		return fmt.Errorf("insert plan for %s: %w", p.Date, err)
	}
	p.ID = rec.ID
	return nil
}

// All returns every plan in insertion order.
func (r *PlanRepo) All() ([]*models.DailyPlan, error) {
	recs, err := r.store.ReadAll(store.TableDailyPlan)
	if err != nil {
		return nil, fmt.Errorf("read plans: %w", err)
	}
	plans := make([]*models.DailyPlan, 0, len(recs))
	for _, rec := range recs {
		plans = append(plans, models.PlanFromRecord(rec))
	}
	return plans, nil
}

// ExecutionRepo is the typed view over the daily_execution table.
type ExecutionRepo struct {
	store *store.Store
}

// Get returns the execution log for a date, or ok=false if none exists.
func (r *ExecutionRepo) Get(date string) (*models.DailyExecution, bool, error) {
	rec, ok, err := r.store.FindOne(store.TableDailyExecution, "date", date)
	if err != nil {
		return nil, false, fmt.Errorf("find execution for %s: %w", date, err)
	}
	if !ok {
		return nil, false, nil
	}
	return models.ExecutionFromRecord(rec), true, nil
}

// CreateOrUpdate upserts the execution log keyed by its date.
func (r *ExecutionRepo) CreateOrUpdate(e *models.DailyExecution) error {
	existing, ok, err := r.store.FindOne(store.TableDailyExecution, "date", e.Date)
	if err != nil {
		return fmt.Errorf("find execution for %s: %w", e.Date, err)
	}
	if ok {
		if _, err := r.store.UpdateByID(store.TableDailyExecution, existing.ID, e.Fields()); err != nil {
			return fmt.Errorf("update execution for %s: %w", e.Date, err)
		}
		e.ID = existing.ID
		return nil
	}
	rec, err := r.store.Insert(store.TableDailyExecution, e.Fields())
	if err != nil {
		return fmt.Errorf("insert execution for %s: %w", e.Date, err)
	}
	e.ID = rec.ID
	return nil
}

// All returns every execution log in insertion order.
func (r *ExecutionRepo) All() ([]*models.DailyExecution, error) {
	recs, err := r.store.ReadAll(store.TableDailyExecution)
	if err != nil {
		return nil, fmt.Errorf("read executions: %w", err)
	}
	execs := make([]*models.DailyExecution, 0, len(recs))
	for _, rec := range recs {
		execs = append(execs, models.ExecutionFromRecord(rec))
	}
	return execs, nil
}
