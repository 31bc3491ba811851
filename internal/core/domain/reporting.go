package domain

import "github.com/shopspring/decimal"

// MonthlySummary is one bucket of the monthly rollup, keyed "YYYY-MM".
type MonthlySummary struct {
	Month        string          `json:"month"`
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
}

// CategorySummary is one bucket of the category rollup. Name is the resolved
// category name, or "Uncategorized" when no category is linked.
type CategorySummary struct {
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// CategoryBreakdownEntry extends CategorySummary with the entry's share of
// its own type's total, in percent.
type CategoryBreakdownEntry struct {
	CategorySummary
	Percentage decimal.Decimal `json:"percentage"`
}

// PeriodReport aggregates all transactions inside an inclusive date range.
type PeriodReport struct {
	TotalIncome      decimal.Decimal          `json:"totalIncome"`
	TotalExpense     decimal.Decimal          `json:"totalExpense"`
	ProfitLoss       decimal.Decimal          `json:"profitLoss"`
	TransactionCount int                      `json:"transactionCount"`
	Breakdown        []CategoryBreakdownEntry `json:"breakdown"`
}

// DashboardSummary holds the headline figures for the dashboard page.
type DashboardSummary struct {
	TotalIncome           decimal.Decimal `json:"totalIncome"`
	TotalExpense          decimal.Decimal `json:"totalExpense"`
	Balance               decimal.Decimal `json:"balance"`
	DebtOutstanding       decimal.Decimal `json:"debtOutstanding"`
	ReceivableOutstanding decimal.Decimal `json:"receivableOutstanding"`
}
