// ABOUTME: Quick-capture grammar mapping one-line commands to repository calls.
// ABOUTME: Unrecognized or malformed input is rejected before any write happens.
package command

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/harperreed/lifeos/internal/repo"
)

// Parser executes quick-capture commands against the repositories. Each
// accepted command maps to exactly one repository call; a rejected command
// writes nothing.
//
// Grammar:
//
//	$ <amount> [desc...]         expense transaction
//	<amount> [desc...]           expense transaction (integer amount)
//	gym <exercise> <weight> <reps> [rpe]
//	note <text...>
//	wake <HH:MM>                 today's planned wake time
type Parser struct {
	txns  *repo.TransactionRepo
	gym   *repo.GymRepo
	notes *repo.NoteRepo
	plans *repo.PlanRepo
	now   func() time.Time
}

// NewParser builds a parser over the repositories it captures into.
func NewParser(r *repo.Repos) *Parser {
	return &Parser{
		txns:  r.Transactions,
		gym:   r.Gym,
		notes: r.Notes,
		plans: r.Plans,
		now:   time.Now,
	}
}

// WithClock overrides the parser's notion of "today". Used in tests.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	p.now = now
	return p
}

// Execute parses one command line and performs its single repository call,
// returning a confirmation message.
func (p *Parser) Execute(input string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) == 0 {
		return "", fmt.Errorf("empty command")
	}
	cmd := strings.ToLower(parts[0])

	switch {
	case cmd == "$":
		if len(parts) < 2 {
			return "", fmt.Errorf("usage: $ <amount> [description]")
		}
		return p.logExpense(parts[1], parts[2:])
	case isAmount(cmd):
		return p.logExpense(cmd, parts[1:])
	case cmd == "gym":
		return p.logGym(parts[1:])
	case cmd == "note":
		return p.logNote(parts[1:])
	case cmd == "wake":
		return p.setWakeTime(parts[1:])
	}
	return "", fmt.Errorf("unknown command: %s", cmd)
}

// isAmount matches the bare-number form, whole amounts only.
func isAmount(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// guessCategory maps a leading description word to a finance category.
func guessCategory(desc []string) string {
	if len(desc) == 0 {
		return "Other"
	}
	switch strings.ToLower(desc[0]) {
	case "food", "lunch", "dinner", "burger", "coffee":
		return "Food"
	case "uber", "taxi", "bus", "gas":
		return "Transport"
	}
	return "Other"
}

func (p *Parser) logExpense(amountStr string, desc []string) (string, error) {
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return "", fmt.Errorf("invalid amount: %s", amountStr)
	}

	description := "Quick Log"
	if len(desc) > 0 {
		description = strings.Join(desc, " ")
	}
	category := guessCategory(desc)

	t := models.NewTransaction(p.today(), amount, models.Expense, category, description)
	if err := p.txns.Add(t); err != nil {
		return "", err
	}
	return fmt.Sprintf("logged $%.2f to %s (%s)", amount, category, description), nil
}

func (p *Parser) logGym(args []string) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf("usage: gym <exercise> <weight> <reps> [rpe]")
	}
	exercise := args[0]
	weight, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return "", fmt.Errorf("invalid weight: %s", args[1])
	}
	reps, err := strconv.Atoi(args[2])
	if err != nil {
		return "", fmt.Errorf("invalid reps: %s", args[2])
	}

	rpe := 8
	if len(args) > 3 {
		rpe, err = strconv.Atoi(args[3])
		if err != nil {
			return "", fmt.Errorf("invalid rpe: %s", args[3])
		}
	}

	g := models.NewGymLog(p.today(), exercise, weight, reps, rpe)
	if err := p.gym.LogSet(g); err != nil {
		return "", err
	}
	return fmt.Sprintf("logged %s: %gkg x %d", exercise, weight, reps), nil
}

func (p *Parser) logNote(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: note <text>")
	}
	n := models.NewNote("Quick Note", strings.Join(args, " "), "cli-capture")
	if err := p.notes.Add(n); err != nil {
		return "", err
	}
	return "note saved", nil
}

func (p *Parser) setWakeTime(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("usage: wake <HH:MM>")
	}
	wake := args[0]
	if _, err := time.Parse("15:04", wake); err != nil {
		return "", fmt.Errorf("invalid time: %s", wake)
	}

	today := p.today()
	plan, ok, err := p.plans.Get(today)
	if err != nil {
		return "", err
	}
	if !ok {
		plan = models.NewDailyPlan(today)
	}
	plan.WakeTimePlanned = wake
	if err := p.plans.CreateOrUpdate(plan); err != nil {
		return "", err
	}
	return fmt.Sprintf("wake time set to %s", wake), nil
}

func (p *Parser) today() string {
	return p.now().Format("2006-01-02")
}
