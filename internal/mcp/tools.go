// ABOUTME: MCP tool implementations over the lifeos core.
// ABOUTME: Capture, execution logging, and the derived read endpoints.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/lifeos/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "capture",
		Description: "Run a quick-capture command ($ <amount>, gym <ex> <kg> <reps>, note <text>, wake <HH:MM>)",
	}, s.handleCapture)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_execution",
		Description: "Log or update what actually happened on a date",
	}, s.handleLogExecution)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "day_score",
		Description: "Get the 0-100 plan-adherence score for a date",
	}, s.handleDayScore)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "player_stats",
		Description: "Get gamification level, XP, and attributes",
	}, s.handlePlayerStats)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "insights",
		Description: "Get behavioral correlation findings from execution history",
	}, s.handleInsights)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "monthly_summary",
		Description: "Get income, expense, and savings for a month (YYYY-MM)",
	}, s.handleMonthlySummary)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "budget_status",
		Description: "Get budget vs actual spending per category for a month (YYYY-MM)",
	}, s.handleBudgetStatus)
}

// Tool input/output types

type captureInput struct {
	Command string `json:"command" jsonschema:"description=One quick-capture command line,required"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logExecutionInput struct {
	Date               string  `json:"date" jsonschema:"description=Date (YYYY-MM-DD),required"`
	MorningRoutineDone bool    `json:"morning_routine_done,omitempty" jsonschema:"description=Morning routine completed"`
	StudyHoursActual   float64 `json:"study_hours_actual,omitempty" jsonschema:"description=Hours actually studied"`
	GymDone            bool    `json:"gym_done,omitempty" jsonschema:"description=Gym session completed"`
	SleepTimeActual    string  `json:"sleep_time_actual,omitempty" jsonschema:"description=Actual sleep time (HH:MM)"`
	WakeTimeActual     string  `json:"wake_time_actual,omitempty" jsonschema:"description=Actual wake time (HH:MM)"`
	MoodScore          int     `json:"mood_score,omitempty" jsonschema:"description=Mood 1-10, defaults to 5"`
	Notes              string  `json:"notes,omitempty" jsonschema:"description=Free-form notes"`
}

type dayScoreInput struct {
	Date string `json:"date" jsonschema:"description=Date (YYYY-MM-DD),required"`
}

type dayScoreOutput struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

type playerStatsOutput struct {
	Level      int     `json:"level"`
	TotalXP    int     `json:"total_xp"`
	XPProgress float64 `json:"xp_progress"`
	STR        int     `json:"str"`
	INT        int     `json:"int"`
	WIS        int     `json:"wis"`
	DIS        int     `json:"dis"`
}

type insightsOutput struct {
	Findings []findingOutput `json:"findings"`
}

type findingOutput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Impact   string `json:"impact"`
}

type monthInput struct {
	Month string `json:"month" jsonschema:"description=Month (YYYY-MM),required"`
}

type monthlySummaryOutput struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Savings float64 `json:"savings"`
}

type budgetStatusOutput struct {
	Lines []budgetLineOutput `json:"lines"`
}

type budgetLineOutput struct {
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Percent   float64 `json:"percent"`
}

// Tool handlers

func (s *Server) handleCapture(ctx context.Context, req *mcp.CallToolRequest, input captureInput) (*mcp.CallToolResult, simpleOutput, error) {
	msg, err := s.capture.Execute(input.Command)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: msg}, nil
}

func (s *Server) handleLogExecution(ctx context.Context, req *mcp.CallToolRequest, input logExecutionInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Date == "" {
		return nil, simpleOutput{}, fmt.Errorf("date is required")
	}
	e := models.NewDailyExecution(input.Date)
	e.MorningRoutineDone = input.MorningRoutineDone
	e.StudyHoursActual = input.StudyHoursActual
	e.GymDone = input.GymDone
	e.SleepTimeActual = input.SleepTimeActual
	e.WakeTimeActual = input.WakeTimeActual
	if input.MoodScore != 0 {
		e.MoodScore = input.MoodScore
	}
	e.Notes = input.Notes

	if err := s.repos.Executions.CreateOrUpdate(e); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("logged execution for %s", input.Date)}, nil
}

func (s *Server) handleDayScore(ctx context.Context, req *mcp.CallToolRequest, input dayScoreInput) (*mcp.CallToolResult, dayScoreOutput, error) {
	score, err := s.scores.DayScore(input.Date)
	if err != nil {
		return nil, dayScoreOutput{}, err
	}
	return nil, dayScoreOutput{Date: input.Date, Score: score}, nil
}

func (s *Server) handlePlayerStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, playerStatsOutput, error) {
	st, err := s.stats.Stats()
	if err != nil {
		return nil, playerStatsOutput{}, err
	}
	return nil, playerStatsOutput{
		Level:      st.Level,
		TotalXP:    st.TotalXP,
		XPProgress: st.XPProgress,
		STR:        st.Attributes.STR,
		INT:        st.Attributes.INT,
		WIS:        st.Attributes.WIS,
		DIS:        st.Attributes.DIS,
	}, nil
}

func (s *Server) handleInsights(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, insightsOutput, error) {
	findings, err := s.insights.Findings()
	if err != nil {
		return nil, insightsOutput{}, err
	}
	out := insightsOutput{Findings: []findingOutput{}}
	for _, f := range findings {
		out.Findings = append(out.Findings, findingOutput{
			Question: f.Question,
			Answer:   f.Answer,
			Impact:   string(f.Impact),
		})
	}
	return nil, out, nil
}

func (s *Server) handleMonthlySummary(ctx context.Context, req *mcp.CallToolRequest, input monthInput) (*mcp.CallToolResult, monthlySummaryOutput, error) {
	sum, err := s.money.MonthlySummary(input.Month)
	if err != nil {
		return nil, monthlySummaryOutput{}, err
	}
	return nil, monthlySummaryOutput{Income: sum.Income, Expense: sum.Expense, Savings: sum.Savings}, nil
}

func (s *Server) handleBudgetStatus(ctx context.Context, req *mcp.CallToolRequest, input monthInput) (*mcp.CallToolResult, budgetStatusOutput, error) {
	lines, err := s.money.BudgetStatus(input.Month)
	if err != nil {
		return nil, budgetStatusOutput{}, err
	}
	out := budgetStatusOutput{Lines: []budgetLineOutput{}}
	for _, l := range lines {
		out.Lines = append(out.Lines, budgetLineOutput{
			Category:  l.Category,
			Limit:     l.Limit,
			Spent:     l.Spent,
			Remaining: l.Remaining,
			Percent:   l.Percent,
		})
	}
	return nil, out, nil
}
