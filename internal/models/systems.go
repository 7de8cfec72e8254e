// ABOUTME: Review and OKR models for the systems tables.
// ABOUTME: Both are append-only event logs.
package models

import (
	"time"

	"github.com/harperreed/lifeos/internal/store"
)

// Review is a weekly retrospective.
type Review struct {
	ID         string
	WeekStart  string // YYYY-MM-DD, Monday
	Wins       string
	Challenges string
	Focus      string
	Score      int // 1-10 self-assessment
	CreatedAt  time.Time
}

// Fields converts the review to store fields.
func (r *Review) Fields() store.Fields {
	f := store.Fields{}
	f.Set("week_start", r.WeekStart)
	f.Set("wins", r.Wins)
	f.Set("challenges", r.Challenges)
	f.Set("focus", r.Focus)
	f.SetInt("score", r.Score)
	return f
}

// ReviewFromRecord builds a Review from a stored record.
func ReviewFromRecord(rec store.Record) *Review {
	return &Review{
		ID:         rec.ID,
		WeekStart:  rec.Fields.Get("week_start"),
		Wins:       rec.Fields.Get("wins"),
		Challenges: rec.Fields.Get("challenges"),
		Focus:      rec.Fields.Get("focus"),
		Score:      rec.Fields.Int("score", 0),
		CreatedAt:  rec.CreatedAt,
	}
}

// OKRStatus values for quarterly objectives.
const (
	OKROnTrack   = "On Track"
	OKRAtRisk    = "At Risk"
	OKRCompleted = "Completed"
)

// OKR is a quarterly objective with its key results.
type OKR struct {
	ID         string
	Quarter    string // e.g. 2026-Q3
	Objective  string
	KeyResults string
	Status     string
	CreatedAt  time.Time
}

// Fields converts the OKR to store fields.
func (o *OKR) Fields() store.Fields {
	f := store.Fields{}
	f.Set("quarter", o.Quarter)
	f.Set("objective", o.Objective)
	f.Set("key_results", o.KeyResults)
	f.Set("status", o.Status)
	return f
}

// OKRFromRecord builds an OKR from a stored record.
func OKRFromRecord(rec store.Record) *OKR {
	return &OKR{
		ID:         rec.ID,
		Quarter:    rec.Fields.Get("quarter"),
		Objective:  rec.Fields.Get("objective"),
		KeyResults: rec.Fields.Get("key_results"),
		Status:     rec.Fields.Get("status"),
		CreatedAt:  rec.CreatedAt,
	}
}
