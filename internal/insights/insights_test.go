// ABOUTME: Tests for the insights engine's correlation findings.
// ABOUTME: Covers positive/negative detection, neutral answers, and suppression.
package insights

import (
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
	return NewEngine(r.Executions), r
}

func logDay(t *testing.T, r *repo.Repos, date string, mood int, study float64, gym bool) {
	t.Helper()
	ex := models.NewDailyExecution(date)
	ex.MoodScore = mood
	ex.StudyHoursActual = study
	ex.GymDone = gym
	if err := r.Executions.CreateOrUpdate(ex); err != nil {
		t.Fatalf("save execution: %v", err)
	}
}

func TestFindingsEmptyHistory(t *testing.T) {
	e, _ := setupTestEngine(t)

	findings, err := e.Findings()
	if err != nil {
		t.Fatalf("Findings failed: %v", err)
	}
	if findings != nil {
		t.Errorf("findings = %v, want nil", findings)
	}
}

func TestMoodStudyPositive(t *testing.T) {
	e, r := setupTestEngine(t)

	logDay(t, r, "2026-09-01", 8, 5, false)
	logDay(t, r, "2026-09-02", 9, 4, false)
	logDay(t, r, "2026-09-03", 4, 1, false)
	logDay(t, r, "2026-09-04", 3, 2, false)

	findings, err := e.Findings()
	if err != nil {
		t.Fatalf("Findings failed: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.Question != "Does Mood affect Study?" {
		t.Errorf("Question = %q", f.Question)
	}
	if f.Answer != "Yes. You study 3.0h more when Mood is high (7+)." {
		t.Errorf("Answer = %q", f.Answer)
	}
	if f.Impact != Positive {
		t.Errorf("Impact = %q, want positive", f.Impact)
	}
}

func TestMoodStudyNeutralWhenInsignificant(t *testing.T) {
	e, r := setupTestEngine(t)

	logDay(t, r, "2026-09-01", 8, 3, false)
	logDay(t, r, "2026-09-02", 4, 2.8, false)

	findings, err := e.Findings()
	if err != nil {
		t.Fatalf("Findings failed: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Answer != "Not significantly." {
		t.Errorf("Answer = %q, want neutral", findings[0].Answer)
	}
	if findings[0].Impact != Neutral {
		t.Errorf("Impact = %q, want neutral", findings[0].Impact)
	}
}

func TestMoodStudyNeutralWhenOnePartitionEmpty(t *testing.T) {
	e, r := setupTestEngine(t)

	// Every day high mood: nothing to compare against.
	logDay(t, r, "2026-09-01", 8, 3, false)
	logDay(t, r, "2026-09-02", 9, 5, false)

	findings, err := e.Findings()
	if err != nil {
		t.Fatalf("Findings failed: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Impact != Neutral {
		t.Errorf("Impact = %q, want neutral", findings[0].Impact)
	}
}

func TestGymMoodFinding(t *testing.T) {
	e, r := setupTestEngine(t)

	logDay(t, r, "2026-09-01", 9, 0, true)
	logDay(t, r, "2026-09-02", 8, 0, true)
	logDay(t, r, "2026-09-03", 5, 0, false)
	logDay(t, r, "2026-09-04", 6, 0, false)

	findings, err := e.Findings()
	if err != nil {
		t.Fatalf("Findings failed: %v", err)
	}
	if len(findings) != 2 {
		t.Fatalf("got %d findings, want 2", len(findings))
	}
	f := findings[1]
	if f.Question != "Does Gym improve Mood?" {
		t.Errorf("Question = %q", f.Question)
	}
	if f.Answer != "Yes. Your mood is 3.0 points higher on Gym days." {
		t.Errorf("Answer = %q", f.Answer)
	}
	if f.Impact != Positive {
		t.Errorf("Impact = %q, want positive", f.Impact)
	}
}

func TestGymMoodSuppressedWhenInsignificant(t *testing.T) {
	e, r := setupTestEngine(t)

	logDay(t, r, "2026-09-01", 6, 0, true)
	logDay(t, r, "2026-09-02", 6, 0, false)

	findings, err := e.Findings()
	if err != nil {
		t.Fatalf("Findings failed: %v", err)
	}
	// Only the mood-study finding remains; the gym one is dropped outright.
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Question != "Does Mood affect Study?" {
		t.Errorf("unexpected surviving finding: %q", findings[0].Question)
	}
}
