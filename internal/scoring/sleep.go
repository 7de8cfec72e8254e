// ABOUTME: Sleep debt calculation over recent execution history.
// ABOUTME: Unparsable time-of-day rows are skipped and counted, never fatal.
package scoring

import (
	"sort"
	"time"
)

// IdealSleepHours is the nightly target the debt accumulates against.
const IdealSleepHours = 8.0

// SleepDebt is the accumulated shortfall versus the ideal, with the number of
// rows that could not be parsed and were skipped.
type SleepDebt struct {
	Hours   float64
	Skipped int
}

// SleepDebt sums (ideal - slept) over the most recent days executions,
// newest dates first. Records without both sleep and wake times, or with
// unparsable ones, are skipped and reported in Skipped.
func (e *Engine) SleepDebt(days int) (SleepDebt, error) {
	execs, err := e.execs.All()
	if err != nil {
		return SleepDebt{}, err
	}
	sort.SliceStable(execs, func(i, j int) bool {
		return execs[i].Date > execs[j].Date
	})
	if len(execs) > days {
		execs = execs[:days]
	}

	var debt SleepDebt
	for _, ex := range execs {
		if ex.SleepTimeActual == "" || ex.WakeTimeActual == "" {
			debt.Skipped++
			continue
		}
		dur, ok := sleepDuration(ex.SleepTimeActual, ex.WakeTimeActual)
		if !ok {
			debt.Skipped++
			continue
		}
		debt.Hours += IdealSleepHours - dur
	}
	debt.Hours = round1(debt.Hours)
	return debt, nil
}

// sleepDuration computes hours between HH:MM sleep and wake times, treating
// a wake time earlier than the sleep time as crossing midnight.
func sleepDuration(sleepAt, wakeAt string) (float64, bool) {
	s, err := time.Parse("15:04", sleepAt)
	if err != nil {
		return 0, false
	}
	w, err := time.Parse("15:04", wakeAt)
	if err != nil {
		return 0, false
	}
	d := w.Sub(s)
	if d < 0 {
		d += 24 * time.Hour
	}
	return d.Hours(), true
}
