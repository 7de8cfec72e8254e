// ABOUTME: Insights engine detecting mean differences between execution sub-populations.
// ABOUTME: Emits human-readable findings for the mood-study and gym-mood hypotheses.
package insights

import (
	"fmt"
	"math"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/repo"
)

// Impact classifies a finding's direction.
type Impact string

const (
	Positive Impact = "positive"
	Negative Impact = "negative"
	Neutral  Impact = "neutral"
)

// A mean difference below this threshold is not worth reporting.
const significance = 0.5

// High mood starts at 7 on the 1-10 scale.
const highMoodFloor = 7

// Finding is one detected (or explicitly absent) correlation.
type Finding struct {
	Question string
	Answer   string
	Impact   Impact
}

// Engine scans execution history for notable correlations.
type Engine struct {
	execs *repo.ExecutionRepo
}

// NewEngine builds an insights engine over the execution repository.
func NewEngine(execs *repo.ExecutionRepo) *Engine {
	return &Engine{execs: execs}
}

// Findings evaluates every hypothesis against the stored history. With no
// execution records at all it returns nothing. Missing mood and study values
// have already been coerced to their defaults at the store boundary, so every
// record participates.
func (e *Engine) Findings() ([]Finding, error) {
	execs, err := e.execs.All()
	if err != nil {
		return nil, err
	}
	if len(execs) == 0 {
		return nil, nil
	}

	var findings []Finding
	findings = append(findings, e.moodVersusStudy(execs))
	if f, ok := e.gymVersusMood(execs); ok {
		findings = append(findings, f)
	}
	return findings, nil
}

// moodVersusStudy compares mean study hours on high-mood (7+) days against
// the rest. Always emits a finding; insignificant differences are reported
// as neutral.
func (e *Engine) moodVersusStudy(execs []*models.DailyExecution) Finding {
	var high, low []float64
	for _, ex := range execs {
		if ex.MoodScore >= highMoodFloor {
			high = append(high, ex.StudyHoursActual)
		} else {
			low = append(low, ex.StudyHoursActual)
		}
	}

	question := "Does Mood affect Study?"
	if len(high) == 0 || len(low) == 0 {
		return Finding{Question: question, Answer: "Not significantly.", Impact: Neutral}
	}

	diff := mean(high) - mean(low)
	if math.Abs(diff) <= significance {
		return Finding{Question: question, Answer: "Not significantly.", Impact: Neutral}
	}
	impact := Positive
	if diff < 0 {
		impact = Negative
	}
	return Finding{
		Question: question,
		Answer:   fmt.Sprintf("Yes. You study %.1fh more when Mood is high (7+).", math.Abs(diff)),
		Impact:   impact,
	}
}

// gymVersusMood compares mean mood on gym days against rest days. An
// insignificant difference suppresses the finding entirely.
func (e *Engine) gymVersusMood(execs []*models.DailyExecution) (Finding, bool) {
	var gym, rest []float64
	for _, ex := range execs {
		if ex.GymDone {
			gym = append(gym, float64(ex.MoodScore))
		} else {
			rest = append(rest, float64(ex.MoodScore))
		}
	}
	if len(gym) == 0 || len(rest) == 0 {
		return Finding{}, false
	}

	diff := mean(gym) - mean(rest)
	if math.Abs(diff) <= significance {
		return Finding{}, false
	}
	impact := Positive
	if diff < 0 {
		impact = Negative
	}
	return Finding{
		Question: "Does Gym improve Mood?",
		Answer:   fmt.Sprintf("Yes. Your mood is %.1f points higher on Gym days.", diff),
		Impact:   impact,
	}, true
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
