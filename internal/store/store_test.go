// ABOUTME: Tests for the CSV table store.
// ABOUTME: Verifies round-trips, merges, schema widening, and fail-soft reads.
package store

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestInsertRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	f := Fields{}
	f.Set("date", "2026-09-01")
	f.SetFloat("study_hours_planned", 5)
	f.SetBool("gym_planned", true)

	rec, err := s.Insert(TableDailyPlan, f)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("Insert did not generate an id")
	}
	if rec.CreatedAt.IsZero() || rec.UpdatedAt.IsZero() {
		t.Fatal("Insert did not set timestamps")
	}
	if rec.UpdatedAt.Before(rec.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", rec.UpdatedAt, rec.CreatedAt)
	}

	all, err := s.ReadAll(TableDailyPlan)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
	got := all[0]
	if got.ID != rec.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, rec.ID)
	}
	if got.Fields.Get("date") != "2026-09-01" {
		t.Errorf("date mismatch: got %s", got.Fields.Get("date"))
	}
	if got.Fields.Float("study_hours_planned", -1) != 5 {
		t.Errorf("study hours mismatch: got %v", got.Fields.Float("study_hours_planned", -1))
	}
	if !got.Fields.Bool("gym_planned", false) {
		t.Error("gym_planned not true after round trip")
	}
}

func TestReadAllMissingTable(t *testing.T) {
	s := setupTestStore(t)

	recs, err := s.ReadAll("does_not_exist")
	if err != nil {
		t.Fatalf("ReadAll on missing table errored: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty, got %d records", len(recs))
	}
}

func TestReadAllHeaderOnlyFile(t *testing.T) {
	s := setupTestStore(t)

	// A header-only file must behave exactly like a missing one.
	path := filepath.Join(s.Dir(), TableNotes+".csv")
	if err := os.WriteFile(path, []byte("id,created_at,updated_at,title\n"), 0600); err != nil {
		t.Fatalf("write header-only file: %v", err)
	}

	recs, err := s.ReadAll(TableNotes)
	if err != nil {
		t.Fatalf("ReadAll on header-only table errored: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty, got %d records", len(recs))
	}
}

func TestUpdateByIDMergesFields(t *testing.T) {
	s := setupTestStore(t)

	f := Fields{}
	f.Set("date", "2026-09-01")
	f.SetFloat("study_hours_planned", 5)
	rec, err := s.Insert(TableDailyPlan, f)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	patch := Fields{}
	patch.SetFloat("study_hours_planned", 3)
	ok, err := s.UpdateByID(TableDailyPlan, rec.ID, patch)
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}
	if !ok {
		t.Fatal("UpdateByID reported not found for existing id")
	}

	got, found, err := s.FindOne(TableDailyPlan, "date", "2026-09-01")
	if err != nil || !found {
		t.Fatalf("FindOne after update: found=%v err=%v", found, err)
	}
	if got.Fields.Float("study_hours_planned", -1) != 3 {
		t.Errorf("merged field not updated: got %v", got.Fields.Float("study_hours_planned", -1))
	}
	// Unset fields keep their prior value.
	if got.Fields.Get("date") != "2026-09-01" {
		t.Errorf("untouched field lost: got %q", got.Fields.Get("date"))
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("updated_at %v before created_at %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestUpdateByIDUnknownID(t *testing.T) {
	s := setupTestStore(t)

	f := Fields{}
	f.Set("date", "2026-09-01")
	if _, err := s.Insert(TableDailyPlan, f); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	ok, err := s.UpdateByID(TableDailyPlan, "no-such-id", Fields{"date": "x"})
	if err != nil {
		t.Fatalf("UpdateByID on unknown id errored: %v", err)
	}
	if ok {
		t.Error("UpdateByID reported success for unknown id")
	}
}

func TestUpdateWidensSchema(t *testing.T) {
	s := setupTestStore(t)

	f := Fields{}
	f.Set("date", "2026-09-01")
	rec, err := s.Insert(TableDailyExecution, f)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	f2 := Fields{}
	f2.Set("date", "2026-09-02")
	if _, err := s.Insert(TableDailyExecution, f2); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	// A new field name on update widens the table for every row.
	patch := Fields{}
	patch.SetInt("mood_score", 9)
	if _, err := s.UpdateByID(TableDailyExecution, rec.ID, patch); err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}

	all, err := s.ReadAll(TableDailyExecution)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].Fields.Int("mood_score", -1) != 9 {
		t.Errorf("widened field missing on updated row: %v", all[0].Fields)
	}
	// The other row is implicitly null on the new field.
	if all[1].Fields.Has("mood_score") {
		t.Error("widened field unexpectedly present on untouched row")
	}
	if all[1].Fields.Int("mood_score", 5) != 5 {
		t.Error("default not applied for absent field")
	}
}

func TestFindOneFirstMatchWins(t *testing.T) {
	s := setupTestStore(t)

	for _, title := range []string{"first", "second"} {
		f := Fields{}
		f.Set("tags", "dup")
		f.Set("title", title)
		if _, err := s.Insert(TableNotes, f); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	got, ok, err := s.FindOne(TableNotes, "tags", "dup")
	if err != nil || !ok {
		t.Fatalf("FindOne: ok=%v err=%v", ok, err)
	}
	if got.Fields.Get("title") != "first" {
		t.Errorf("expected first match in table order, got %q", got.Fields.Get("title"))
	}
}

func TestFindOneAbsent(t *testing.T) {
	s := setupTestStore(t)

	_, ok, err := s.FindOne(TableDailyPlan, "date", "1999-01-01")
	if err != nil {
		t.Fatalf("FindOne errored: %v", err)
	}
	if ok {
		t.Error("FindOne reported a match in an empty table")
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := setupTestStore(t)

	dates := []string{"2026-09-03", "2026-09-01", "2026-09-02"}
	for _, d := range dates {
		f := Fields{}
		f.Set("date", d)
		if _, err := s.Insert(TableGymLogs, f); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	all, err := s.ReadAll(TableGymLogs)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	for i, d := range dates {
		if all[i].Fields.Get("date") != d {
			t.Errorf("row %d: got %s, want %s", i, all[i].Fields.Get("date"), d)
		}
	}
}
