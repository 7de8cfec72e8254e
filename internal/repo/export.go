// ABOUTME: Full-data export through the repositories.
// ABOUTME: Supports JSON and YAML with a versioned envelope.
package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lifeos/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the full export envelope for lifeos data.
type ExportData struct {
	Version      string                   `json:"version" yaml:"version"`
	ExportedAt   time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool         string                   `json:"tool" yaml:"tool"`
	Plans        []*models.DailyPlan      `json:"plans" yaml:"plans"`
	Executions   []*models.DailyExecution `json:"executions" yaml:"executions"`
	GymLogs      []*models.GymLog         `json:"gym_logs" yaml:"gym_logs"`
	Exercises    []*models.Exercise       `json:"exercises" yaml:"exercises"`
	Transactions []*models.Transaction    `json:"transactions" yaml:"transactions"`
	Budgets      []*models.Budget         `json:"budgets" yaml:"budgets"`
	Categories   []string                 `json:"categories" yaml:"categories"`
	Notes        []*models.Note           `json:"notes" yaml:"notes"`
	Reviews      []*models.Review         `json:"reviews" yaml:"reviews"`
	OKRs         []*models.OKR            `json:"okrs" yaml:"okrs"`
}

// GetAllData reads every table through its repository into an export envelope.
func (r *Repos) GetAllData() (*ExportData, error) {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "lifeos",
	}

	var err error
	if data.Plans, err = r.Plans.All(); err != nil {
		return nil, err
	}
	if data.Executions, err = r.Executions.All(); err != nil {
		return nil, err
	}
	if data.GymLogs, err = r.Gym.All(); err != nil {
		return nil, err
	}
	if data.Exercises, err = r.Exercises.All(); err != nil {
		return nil, err
	}
	if data.Transactions, err = r.Transactions.All(); err != nil {
		return nil, err
	}
	if data.Budgets, err = r.Budgets.All(); err != nil {
		return nil, err
	}
	if data.Categories, err = r.Categories.All(); err != nil {
		return nil, err
	}
	if data.Notes, err = r.Notes.All(); err != nil {
		return nil, err
	}
	if data.Reviews, err = r.Reviews.All(); err != nil {
		return nil, err
	}
	if data.OKRs, err = r.OKRs.List(""); err != nil {
		return nil, err
	}
	return data, nil
}

// ExportJSON renders all data as indented JSON.
func (r *Repos) ExportJSON() ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}

// ExportYAML renders all data as YAML.
func (r *Repos) ExportYAML() ([]byte, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return out, nil
}
