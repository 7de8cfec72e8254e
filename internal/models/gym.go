// ABOUTME: GymLog and Exercise models for strength training data.
// ABOUTME: Gym logs are append-only events, one record per set.
package models

import (
	"time"

	"github.com/harperreed/lifeos/internal/store"
)

// GymLog is one logged set.
type GymLog struct {
	ID           string
	Date         string // YYYY-MM-DD
	ExerciseName string
	WeightKg     float64
	Reps         int
	RPE          int // 0-10, 0 meaning unrecorded
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGymLog creates a set entry.
func NewGymLog(date, exercise string, weightKg float64, reps, rpe int) *GymLog {
	return &GymLog{
		Date:         date,
		ExerciseName: exercise,
		WeightKg:     weightKg,
		Reps:         reps,
		RPE:          rpe,
	}
}

// Fields converts the set to store fields.
func (g *GymLog) Fields() store.Fields {
	f := store.Fields{}
	f.Set("date", g.Date)
	f.Set("exercise_name", g.ExerciseName)
	f.SetFloat("weight_kg", g.WeightKg)
	f.SetInt("reps", g.Reps)
	f.SetInt("rpe", g.RPE)
	f.Set("notes", g.Notes)
	return f
}

// GymLogFromRecord builds a GymLog from a stored record.
func GymLogFromRecord(r store.Record) *GymLog {
	return &GymLog{
		ID:           r.ID,
		Date:         r.Fields.Get("date"),
		ExerciseName: r.Fields.Get("exercise_name"),
		WeightKg:     r.Fields.Float("weight_kg", 0),
		Reps:         r.Fields.Int("reps", 0),
		RPE:          r.Fields.Int("rpe", 0),
		Notes:        r.Fields.Get("notes"),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Exercise is a library entry describing a movement.
type Exercise struct {
	ID     string
	Name   string
	Muscle string
	Type   string // Compound or Isolation
}

// Fields converts the exercise to store fields.
func (e *Exercise) Fields() store.Fields {
	f := store.Fields{}
	f.Set("name", e.Name)
	f.Set("muscle", e.Muscle)
	f.Set("type", e.Type)
	return f
}

// ExerciseFromRecord builds an Exercise from a stored record.
func ExerciseFromRecord(r store.Record) *Exercise {
	return &Exercise{
		ID:     r.ID,
		Name:   r.Fields.Get("name"),
		Muscle: r.Fields.Get("muscle"),
		Type:   r.Fields.Get("type"),
	}
}

// DefaultExercises seeds the library on first use.
var DefaultExercises = []Exercise{
	{Name: "Squat", Muscle: "Legs", Type: "Compound"},
	{Name: "Bench Press", Muscle: "Chest", Type: "Compound"},
	{Name: "Deadlift", Muscle: "Back", Type: "Compound"},
	{Name: "Overhead Press", Muscle: "Shoulders", Type: "Compound"},
	{Name: "Pull Up", Muscle: "Back", Type: "Compound"},
	{Name: "Dumbbell Row", Muscle: "Back", Type: "Isolation"},
	{Name: "Lateral Raise", Muscle: "Shoulders", Type: "Isolation"},
	{Name: "Bicep Curl", Muscle: "Arms", Type: "Isolation"},
	{Name: "Tricep Extension", Muscle: "Arms", Type: "Isolation"},
}
