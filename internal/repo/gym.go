// ABOUTME: Gym log and exercise library repositories plus overload analytics.
// ABOUTME: Gym logs are an append-only event stream, one record per set.
package repo

import (
	"fmt"
	"sort"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/store"
)

// GymRepo is the typed view over the gym_logs table.
type GymRepo struct {
	store *store.Store
}

// LogSet appends one set. Gym logs never update.
func (r *GymRepo) LogSet(g *models.GymLog) error {
	rec, err := r.store.Insert(store.TableGymLogs, g.Fields())
	if err != nil {
		return fmt.Errorf("insert gym log: %w", err)
	}
	g.ID = rec.ID
	return nil
}

// All returns every logged set in insertion order.
func (r *GymRepo) All() ([]*models.GymLog, error) {
	recs, err := r.store.ReadAll(store.TableGymLogs)
	if err != nil {
		return nil, fmt.Errorf("read gym logs: %w", err)
	}
	logs := make([]*models.GymLog, 0, len(recs))
	for _, rec := range recs {
		logs = append(logs, models.GymLogFromRecord(rec))
	}
	return logs, nil
}

// History returns all sets for one exercise, newest date first.
func (r *GymRepo) History(exercise string) ([]*models.GymLog, error) {
	all, err := r.All()
	if err != nil {
		return nil, err
	}
	var hist []*models.GymLog
	for _, g := range all {
		if g.ExerciseName == exercise {
			hist = append(hist, g)
		}
	}
	sort.SliceStable(hist, func(i, j int) bool {
		return hist[i].Date > hist[j].Date
	})
	return hist, nil
}

// SessionBest is the heaviest set of an exercise's most recent session.
type SessionBest struct {
	Date     string
	WeightKg float64
	Reps     int
}

// LastSessionBest returns the max-weight set from the most recent date this
// exercise was trained, or ok=false if it has never been logged.
func (r *GymRepo) LastSessionBest(exercise string) (SessionBest, bool, error) {
	hist, err := r.History(exercise)
	if err != nil {
		return SessionBest{}, false, err
	}
	if len(hist) == 0 {
		return SessionBest{}, false, nil
	}
	// First max wins on ties, matching table order within the session.
	lastDate := hist[0].Date
	best := SessionBest{Date: lastDate}
	picked := false
	for _, g := range hist {
		if g.Date != lastDate {
			break
		}
		if !picked || g.WeightKg > best.WeightKg {
			best.WeightKg = g.WeightKg
			best.Reps = g.Reps
			picked = true
		}
	}
	return best, true, nil
}

// OverloadVerdict classifies a set against the previous session's best.
type OverloadVerdict string

const (
	VerdictNewExercise OverloadVerdict = "new exercise"
	VerdictWeightPR    OverloadVerdict = "weight PR"
	VerdictRepPR       OverloadVerdict = "rep PR"
	VerdictMaintenance OverloadVerdict = "maintenance"
	VerdictBelow       OverloadVerdict = "below previous"
)

// CheckProgressiveOverload compares a candidate set to the last session.
func (r *GymRepo) CheckProgressiveOverload(exercise string, weightKg float64, reps int) (OverloadVerdict, error) {
	best, ok, err := r.LastSessionBest(exercise)
	if err != nil {
		return "", err
	}
	if !ok {
		return VerdictNewExercise, nil
	}
	switch {
	case weightKg > best.WeightKg:
		return VerdictWeightPR, nil
	case weightKg == best.WeightKg && reps > best.Reps:
		return VerdictRepPR, nil
	case weightKg == best.WeightKg && reps == best.Reps:
		return VerdictMaintenance, nil
	default:
		return VerdictBelow, nil
	}
}

// ExerciseRepo is the typed view over the exercises table.
type ExerciseRepo struct {
	store *store.Store
}

// All returns the exercise library, seeding the defaults on first read.
func (r *ExerciseRepo) All() ([]*models.Exercise, error) {
	recs, err := r.store.ReadAll(store.TableExercises)
	if err != nil {
		return nil, fmt.Errorf("read exercises: %w", err)
	}
	if len(recs) == 0 {
		out := make([]*models.Exercise, 0, len(models.DefaultExercises))
		for i := range models.DefaultExercises {
			ex := models.DefaultExercises[i]
			rec, err := r.store.Insert(store.TableExercises, ex.Fields())
			if err != nil {
				return nil, fmt.Errorf("seed exercises: %w", err)
			}
			ex.ID = rec.ID
			out = append(out, &ex)
		}
		return out, nil
	}
	out := make([]*models.Exercise, 0, len(recs))
	for _, rec := range recs {
		out = append(out, models.ExerciseFromRecord(rec))
	}
	return out, nil
}

// Add appends a new exercise to the library.
func (r *ExerciseRepo) Add(e *models.Exercise) error {
	rec, err := r.store.Insert(store.TableExercises, e.Fields())
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	e.ID = rec.ID
	return nil
}
