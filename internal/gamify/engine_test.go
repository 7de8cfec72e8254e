// ABOUTME: Tests for the gamification engine's XP, level, and attribute math.
// ABOUTME: Also checks that recomputation is idempotent over the same history.
package gamify

import (
	"fmt"
	"testing"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/repo"
	"github.com/harperreed/lifeos/internal/store"
)

func setupTestEngine(t *testing.T) (*Engine, *repo.Repos) {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	r := repo.New(s)
	return NewEngine(r.Executions, r.Gym, r.Notes), r
}

func TestStatsFromGymSets(t *testing.T) {
	e, r := setupTestEngine(t)

	for i := 0; i < 10; i++ {
		g := models.NewGymLog("2026-09-01", "Squat", 100, 5, 8)
		if err := r.Gym.LogSet(g); err != nil {
			t.Fatalf("LogSet failed: %v", err)
		}
	}

	stats, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalXP != 500 {
		t.Errorf("TotalXP = %d, want 500", stats.TotalXP)
	}
	if stats.Level != 1 {
		t.Errorf("Level = %d, want 1", stats.Level)
	}
	if stats.XPProgress != 0.5 {
		t.Errorf("XPProgress = %v, want 0.5", stats.XPProgress)
	}
	if stats.Attributes.STR != 1 {
		t.Errorf("STR = %d, want 1", stats.Attributes.STR)
	}
}

func TestStatsLevelBoundary(t *testing.T) {
	e, r := setupTestEngine(t)

	// 10 study hours = exactly 1000 XP, the first level boundary.
	ex := models.NewDailyExecution("2026-09-01")
	ex.StudyHoursActual = 10
	if err := r.Executions.CreateOrUpdate(ex); err != nil {
		t.Fatalf("save execution: %v", err)
	}

	stats, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Level != 2 {
		t.Errorf("Level = %d, want 2", stats.Level)
	}
	if stats.XPProgress != 0.0 {
		t.Errorf("XPProgress = %v, want 0.0", stats.XPProgress)
	}
	if stats.Attributes.INT != 2 {
		t.Errorf("INT = %d, want 2", stats.Attributes.INT)
	}
}

func TestStatsMixedSources(t *testing.T) {
	e, r := setupTestEngine(t)

	ex := models.NewDailyExecution("2026-09-01")
	ex.StudyHoursActual = 2.5
	ex.MorningRoutineDone = true
	if err := r.Executions.CreateOrUpdate(ex); err != nil {
		t.Fatalf("save execution: %v", err)
	}
	n := models.NewNote("Read paper", "summary", "")
	if err := r.Notes.Add(n); err != nil {
		t.Fatalf("Add note: %v", err)
	}
	g := models.NewGymLog("2026-09-01", "Deadlift", 140, 3, 9)
	if err := r.Gym.LogSet(g); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	stats, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	// 250 study + 50 gym + 50 note + 150 routine
	if stats.TotalXP != 500 {
		t.Errorf("TotalXP = %d, want 500", stats.TotalXP)
	}
	if stats.Attributes.DIS != 1 {
		t.Errorf("DIS = %d, want 1", stats.Attributes.DIS)
	}
	if stats.Attributes.WIS != 0 {
		t.Errorf("WIS = %d, want 0", stats.Attributes.WIS)
	}
}

func TestStatsIdempotent(t *testing.T) {
	e, r := setupTestEngine(t)

	for i := 0; i < 3; i++ {
		ex := models.NewDailyExecution(fmt.Sprintf("2026-09-0%d", i+1))
		ex.StudyHoursActual = 1.5
		if err := r.Executions.CreateOrUpdate(ex); err != nil {
			t.Fatalf("save execution: %v", err)
		}
	}

	first, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	second, err := e.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if first != second {
		t.Errorf("Stats not idempotent: %+v vs %+v", first, second)
	}
}
