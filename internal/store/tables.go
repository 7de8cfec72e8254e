// ABOUTME: Table name constants for the lifeos data model.
// ABOUTME: One CSV file per table under the configured data directory.
package store

const (
	TableDailyPlan      = "daily_plan"
	TableDailyExecution = "daily_execution"
	TableGymLogs        = "gym_logs"
	TableExercises      = "exercises"
	TableTransactions   = "finance_transactions"
	TableBudgets        = "finance_budgets"
	TableCategories     = "finance_categories"
	TableNotes          = "knowledge_notes"
	TableReviews        = "sys_reviews"
	TableOKRs           = "sys_okrs"
)

// AllTables lists every table the core owns, in a stable order.
var AllTables = []string{
	TableDailyPlan,
	TableDailyExecution,
	TableGymLogs,
	TableExercises,
	TableTransactions,
	TableBudgets,
	TableCategories,
	TableNotes,
	TableReviews,
	TableOKRs,
}
