// ABOUTME: Tests for the full-data export envelope.
// ABOUTME: Smoke-checks that every table is wired into the export.
package repo

import (
	"encoding/json"
	"testing"

	"github.com/harperreed/lifeos/internal/models"
)

func TestExportJSONIncludesAllTables(t *testing.T) {
	r := setupTestRepos(t)

	p := models.NewDailyPlan("2026-09-01")
	if err := r.Plans.CreateOrUpdate(p); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	txn := models.NewTransaction("2026-09-01", 25, models.Expense, "Food", "lunch")
	if err := r.Transactions.Add(txn); err != nil {
		t.Fatalf("add transaction: %v", err)
	}

	out, err := r.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(out, &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", data.Version)
	}
	if data.Tool != "lifeos" {
		t.Errorf("Tool = %q, want lifeos", data.Tool)
	}
	if len(data.Plans) != 1 {
		t.Errorf("Plans = %d, want 1", len(data.Plans))
	}
	if len(data.Transactions) != 1 {
		t.Errorf("Transactions = %d, want 1", len(data.Transactions))
	}
	// Reading through the repos seeds the default libraries.
	if len(data.Exercises) == 0 {
		t.Error("expected seeded exercises in export")
	}
	if len(data.Categories) == 0 {
		t.Error("expected seeded categories in export")
	}
}
