// ABOUTME: Gamification engine deriving XP, level, and attributes from history.
// ABOUTME: Pure recomputation on every call; there is no persisted XP ledger.
package gamify

import (
	"math"

	"github.com/harperreed/lifeos/internal/repo"
)

// XP awarded per unit of effort.
const (
	xpPerStudyHour   = 100
	xpPerGymSet      = 50
	xpPerNote        = 50
	xpPerRoutineDay  = 150
	xpPerLevel       = 1000
	setsPerStr       = 10
	studyHoursPerInt = 5
	notesPerWis      = 2
)

// Attributes are the RPG-style stats derived from logged activity.
type Attributes struct {
	STR int // gym sets / 10
	INT int // whole study hours / 5
	WIS int // notes / 2
	DIS int // days with the morning routine done
}

// Stats is the full gamification snapshot.
type Stats struct {
	Level      int
	TotalXP    int
	XPProgress float64 // 0.0-1.0 through the current level
	Attributes Attributes
}

// Engine computes stats from the repositories. It is side-effect-free and
// idempotent: the same history always yields the same stats.
type Engine struct {
	execs *repo.ExecutionRepo
	gym   *repo.GymRepo
	notes *repo.NoteRepo
}

// NewEngine builds a gamification engine over the execution, gym, and note
// repositories.
func NewEngine(execs *repo.ExecutionRepo, gym *repo.GymRepo, notes *repo.NoteRepo) *Engine {
	return &Engine{execs: execs, gym: gym, notes: notes}
}

// Stats sums XP over all history and derives level and attributes.
func (e *Engine) Stats() (Stats, error) {
	execs, err := e.execs.All()
	if err != nil {
		return Stats{}, err
	}
	gymLogs, err := e.gym.All()
	if err != nil {
		return Stats{}, err
	}
	notes, err := e.notes.All()
	if err != nil {
		return Stats{}, err
	}

	var studyHours float64
	routineDays := 0
	for _, ex := range execs {
		studyHours += ex.StudyHoursActual
		if ex.MorningRoutineDone {
			routineDays++
		}
	}
	gymSets := len(gymLogs)
	noteCount := len(notes)

	totalXP := int(studyHours*xpPerStudyHour) +
		gymSets*xpPerGymSet +
		noteCount*xpPerNote +
		routineDays*xpPerRoutineDay

	level := totalXP/xpPerLevel + 1
	inLevel := totalXP - (level-1)*xpPerLevel
	progress := math.Min(float64(inLevel)/xpPerLevel, 1.0)

	return Stats{
		Level:      level,
		TotalXP:    totalXP,
		XPProgress: progress,
		Attributes: Attributes{
			STR: gymSets / setsPerStr,
			INT: int(studyHours) / studyHoursPerInt,
			WIS: noteCount / notesPerWis,
			DIS: routineDays,
		},
	}, nil
}
