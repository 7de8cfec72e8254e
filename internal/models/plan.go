// ABOUTME: DailyPlan and DailyExecution models keyed by calendar date.
// ABOUTME: Converts between typed structs and store field maps at the boundary.
package models

import (
	"time"

	"github.com/harperreed/lifeos/internal/store"
)

// DailyPlan is the intended shape of a day. One record per date.
type DailyPlan struct {
	ID                    string
	Date                  string // YYYY-MM-DD
	MorningRoutinePlanned bool
	StudyHoursPlanned     float64
	GymPlanned            bool
	SleepTimePlanned      string // HH:MM
	WakeTimePlanned       string // HH:MM
	Priorities            string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// NewDailyPlan creates a plan for a date with the conventional defaults.
func NewDailyPlan(date string) *DailyPlan {
	return &DailyPlan{
		Date:             date,
		SleepTimePlanned: "23:00",
		WakeTimePlanned:  "07:00",
	}
}

// Fields converts the plan to store fields.
func (p *DailyPlan) Fields() store.Fields {
	f := store.Fields{}
	f.Set("date", p.Date)
	f.SetBool("morning_routine_planned", p.MorningRoutinePlanned)
	f.SetFloat("study_hours_planned", p.StudyHoursPlanned)
	f.SetBool("gym_planned", p.GymPlanned)
	f.Set("sleep_time_planned", p.SleepTimePlanned)
	f.Set("wake_time_planned", p.WakeTimePlanned)
	f.Set("priorities", p.Priorities)
	return f
}

// PlanFromRecord builds a DailyPlan from a stored record.
func PlanFromRecord(r store.Record) *DailyPlan {
	return &DailyPlan{
		ID:                    r.ID,
		Date:                  r.Fields.Get("date"),
		MorningRoutinePlanned: r.Fields.Bool("morning_routine_planned", false),
		StudyHoursPlanned:     r.Fields.Float("study_hours_planned", 0),
		GymPlanned:            r.Fields.Bool("gym_planned", false),
		SleepTimePlanned:      r.Fields.Get("sleep_time_planned"),
		WakeTimePlanned:       r.Fields.Get("wake_time_planned"),
		Priorities:            r.Fields.Get("priorities"),
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// DailyExecution is what actually happened on a date. One record per date.
type DailyExecution struct {
	ID                 string
	Date               string // YYYY-MM-DD
	MorningRoutineDone bool
	StudyHoursActual   float64
	GymDone            bool
	SleepTimeActual    string // HH:MM, may be empty
	WakeTimeActual     string // HH:MM, may be empty
	MoodScore          int    // 1-10
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewDailyExecution creates an execution log for a date with a neutral mood.
func NewDailyExecution(date string) *DailyExecution {
	return &DailyExecution{Date: date, MoodScore: 5}
}

// Fields converts the execution to store fields.
func (e *DailyExecution) Fields() store.Fields {
	f := store.Fields{}
	f.Set("date", e.Date)
	f.SetBool("morning_routine_done", e.MorningRoutineDone)
	f.SetFloat("study_hours_actual", e.StudyHoursActual)
	f.SetBool("gym_done", e.GymDone)
	f.Set("sleep_time_actual", e.SleepTimeActual)
	f.Set("wake_time_actual", e.WakeTimeActual)
	f.SetInt("mood_score", e.MoodScore)
	f.Set("notes", e.Notes)
	return f
}

// ExecutionFromRecord builds a DailyExecution from a stored record.
// Missing mood coerces to 5 and missing study hours to 0; degraded rows still
// count rather than being excluded.
func ExecutionFromRecord(r store.Record) *DailyExecution {
	return &DailyExecution{
		ID:                 r.ID,
		Date:               r.Fields.Get("date"),
		MorningRoutineDone: r.Fields.Bool("morning_routine_done", false),
		StudyHoursActual:   r.Fields.Float("study_hours_actual", 0),
		GymDone:            r.Fields.Bool("gym_done", false),
		SleepTimeActual:    r.Fields.Get("sleep_time_actual"),
		WakeTimeActual:     r.Fields.Get("wake_time_actual"),
		MoodScore:          r.Fields.Int("mood_score", 5),
		Notes:              r.Fields.Get("notes"),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
