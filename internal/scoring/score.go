// ABOUTME: Day score engine comparing a day's plan to its execution.
// ABOUTME: Also aggregates dashboard totals and weekly review context.
package scoring

import (
	"math"
	"time"

	"github.com/harperreed/lifeos/internal/repo"
)

// Dimension weights. The total is intentionally not rescaled: a day with only
// study planned tops out at 48 (40 x the 1.2 cap), not 100. Product has
// confirmed keeping this behavior as-is for now.
const (
	studyWeight   = 40.0
	gymWeight     = 30.0
	routineWeight = 15.0
	studyCap      = 1.2
)

// Engine computes plan-adherence scores from stored history.
type Engine struct {
	plans *repo.PlanRepo
	execs *repo.ExecutionRepo
}

// NewEngine builds a scoring engine over the plan and execution repositories.
func NewEngine(plans *repo.PlanRepo, execs *repo.ExecutionRepo) *Engine {
	return &Engine{plans: plans, execs: execs}
}

// DayScore returns the 0-100 adherence score for a date. Only dimensions the
// plan activates count; a day with nothing planned scores 100. If either the
// plan or the execution is missing the score is 0.
func (e *Engine) DayScore(date string) (float64, error) {
	plan, ok, err := e.plans.Get(date)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	exec, ok, err := e.execs.Get(date)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	score := 0.0
	totalPoints := 0.0

	if plan.StudyHoursPlanned > 0 {
		ratio := exec.StudyHoursActual / plan.StudyHoursPlanned
		score += math.Min(ratio, studyCap) * studyWeight
		totalPoints += studyWeight
	}
	if plan.GymPlanned {
		if exec.GymDone {
			score += gymWeight
		}
		totalPoints += gymWeight
	}
	if plan.MorningRoutinePlanned {
		if exec.MorningRoutineDone {
			score += routineWeight
		}
		totalPoints += routineWeight
	}

	if totalPoints == 0 {
		return 100.0, nil
	}
	return round1(score), nil
}

// Dashboard holds headline aggregates over all execution history.
type Dashboard struct {
	StudyTotal  float64
	GymSessions int
	AvgScore    float64
}

// Dashboard aggregates total study hours, gym session count, and the average
// day score across every logged day.
func (e *Engine) Dashboard() (Dashboard, error) {
	execs, err := e.execs.All()
	if err != nil {
		return Dashboard{}, err
	}

	var d Dashboard
	var scoreSum float64
	for _, ex := range execs {
		d.StudyTotal += ex.StudyHoursActual
		if ex.GymDone {
			d.GymSessions++
		}
		s, err := e.DayScore(ex.Date)
		if err != nil {
			return Dashboard{}, err
		}
		scoreSum += s
	}
	if len(execs) > 0 {
		d.AvgScore = round1(scoreSum / float64(len(execs)))
	}
	d.StudyTotal = round1(d.StudyTotal)
	return d, nil
}

// WeekContext summarizes the seven days ending at a given date, as input for
// a weekly review.
type WeekContext struct {
	StudyHours float64
	GymCount   int
	AvgMood    float64
}

// WeekContext aggregates execution data for the week ending at end.
func (e *Engine) WeekContext(end time.Time) (WeekContext, error) {
	execs, err := e.execs.All()
	if err != nil {
		return WeekContext{}, err
	}

	start := end.AddDate(0, 0, -7)
	var ctx WeekContext
	var moodSum, moodCount float64
	for _, ex := range execs {
		d, err := time.Parse("2006-01-02", ex.Date)
		if err != nil {
			// Malformed dates drop out of the aggregate, never fail it.
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		ctx.StudyHours += ex.StudyHoursActual
		if ex.GymDone {
			ctx.GymCount++
		}
		moodSum += float64(ex.MoodScore)
		moodCount++
	}
	ctx.StudyHours = round1(ctx.StudyHours)
	if moodCount > 0 {
		ctx.AvgMood = round1(moodSum / moodCount)
	}
	return ctx, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
