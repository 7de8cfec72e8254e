// ABOUTME: Tests for the day score engine and its aggregates.
// ABOUTME: Pins the weighted-sum behavior, including the non-rescaled total.
package scoring

import (
	"testing"
	"time"

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
	return NewEngine(r.Plans, r.Executions), r
}

func TestDayScoreFullAdherence(t *testing.T) {
	e, r := setupTestEngine(t)

	p := models.NewDailyPlan("2026-09-01")
	p.StudyHoursPlanned = 5
	p.GymPlanned = true
	p.MorningRoutinePlanned = true
	if err := r.Plans.CreateOrUpdate(p); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	ex := models.NewDailyExecution("2026-09-01")
	ex.StudyHoursActual = 5
	ex.GymDone = true
	ex.MorningRoutineDone = true
	if err := r.Executions.CreateOrUpdate(ex); err != nil {
		t.Fatalf("save execution: %v", err)
	}

	score, err := e.DayScore("2026-09-01")
	if err != nil {
		t.Fatalf("DayScore failed: %v", err)
	}
	if score != 85.0 {
		t.Errorf("score = %v, want 85.0", score)
	}
}

func TestDayScoreNothingPlanned(t *testing.T) {
	e, r := setupTestEngine(t)

	p := models.NewDailyPlan("2026-09-01")
	if err := r.Plans.CreateOrUpdate(p); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	ex := models.NewDailyExecution("2026-09-01")
	ex.StudyHoursActual = 3
	if err := r.Executions.CreateOrUpdate(ex); err != nil {
		t.Fatalf("save execution: %v", err)
	}

	score, err := e.DayScore("2026-09-01")
	if err != nil {
		t.Fatalf("DayScore failed: %v", err)
	}
	if score != 100.0 {
		t.Errorf("score = %v, want 100.0", score)
	}
}

func TestDayScoreStudyOnlyCapped(t *testing.T) {
	e, r := setupTestEngine(t)

	p := models.NewDailyPlan("2026-09-01")
	p.StudyHoursPlanned = 5
	if err := r.Plans.CreateOrUpdate(p); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	ex := models.NewDailyExecution("2026-09-01")
	ex.StudyHoursActual = 6
	if err := r.Executions.CreateOrUpdate(ex); err != nil {
		t.Fatalf("save execution: %v", err)
	}

	// Overperformance caps at 120%; the total is not rescaled to 100.
	score, err := e.DayScore("2026-09-01")
	if err != nil {
		t.Fatalf("DayScore failed: %v", err)
	}
	if score != 48.0 {
		t.Errorf("score = %v, want 48.0", score)
	}
}

func TestDayScoreMissingRecords(t *testing.T) {
	e, r := setupTestEngine(t)

	score, err := e.DayScore("2026-09-01")
	if err != nil {
		t.Fatalf("DayScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("score with no data = %v, want 0", score)
	}

	p := models.NewDailyPlan("2026-09-01")
	p.StudyHoursPlanned = 5
	if err := r.Plans.CreateOrUpdate(p); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	score, err = e.DayScore("2026-09-01")
	if err != nil {
		t.Fatalf("DayScore failed: %v", err)
	}
	if score != 0 {
		t.Errorf("score with plan but no execution = %v, want 0", score)
	}
}

func TestDashboard(t *testing.T) {
	e, r := setupTestEngine(t)

	for i, study := range []float64{2, 3.5} {
		date := time.Date(2026, 9, i+1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		ex := models.NewDailyExecution(date)
		ex.StudyHoursActual = study
		ex.GymDone = i == 0
		if err := r.Executions.CreateOrUpdate(ex); err != nil {
			t.Fatalf("save execution: %v", err)
		}
	}

	d, err := e.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}
	if d.StudyTotal != 5.5 {
		t.Errorf("StudyTotal = %v, want 5.5", d.StudyTotal)
	}
	if d.GymSessions != 1 {
		t.Errorf("GymSessions = %d, want 1", d.GymSessions)
	}
	// No plans exist, so both days score 0.
	if d.AvgScore != 0 {
		t.Errorf("AvgScore = %v, want 0", d.AvgScore)
	}
}

func TestWeekContext(t *testing.T) {
	e, r := setupTestEngine(t)

	end := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	inWeek := models.NewDailyExecution("2026-09-05")
	inWeek.StudyHoursActual = 4
	inWeek.GymDone = true
	inWeek.MoodScore = 8
	if err := r.Executions.CreateOrUpdate(inWeek); err != nil {
		t.Fatalf("save execution: %v", err)
	}

	outOfWeek := models.NewDailyExecution("2026-08-20")
	outOfWeek.StudyHoursActual = 10
	if err := r.Executions.CreateOrUpdate(outOfWeek); err != nil {
		t.Fatalf("save execution: %v", err)
	}

	ctx, err := e.WeekContext(end)
	if err != nil {
		t.Fatalf("WeekContext failed: %v", err)
	}
	if ctx.StudyHours != 4 {
		t.Errorf("StudyHours = %v, want 4", ctx.StudyHours)
	}
	if ctx.GymCount != 1 {
		t.Errorf("GymCount = %d, want 1", ctx.GymCount)
	}
	if ctx.AvgMood != 8 {
		t.Errorf("AvgMood = %v, want 8", ctx.AvgMood)
	}
}
