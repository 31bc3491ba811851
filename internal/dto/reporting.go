package dto

import (
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/bukuusaha/bukuusaha_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// PeriodReportParams defines the inclusive date range for a period report.
type PeriodReportParams struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}

// Range parses both bounds.
func (p PeriodReportParams) Range() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, p.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(dateLayout, p.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// MonthlySummaryResponse is one month's totals in the analytics rollup.
type MonthlySummaryResponse struct {
	Month        string          `json:"month"`
	IncomeTotal  decimal.Decimal `json:"incomeTotal"`
	ExpenseTotal decimal.Decimal `json:"expenseTotal"`
}

// MonthlySummariesResponse wraps the month-ascending rollup.
type MonthlySummariesResponse struct {
	Months []MonthlySummaryResponse `json:"months"`
}

// ToMonthlySummariesResponse converts domain summaries to the response DTO.
func ToMonthlySummariesResponse(summaries []domain.MonthlySummary) MonthlySummariesResponse {
	months := make([]MonthlySummaryResponse, len(summaries))
	for i, s := range summaries {
		months[i] = MonthlySummaryResponse{
			Month:        s.Month,
			IncomeTotal:  s.IncomeTotal,
			ExpenseTotal: s.ExpenseTotal,
		}
	}
	return MonthlySummariesResponse{Months: months}
}

// CategorySummaryResponse is one category's totals in the analytics rollup.
type CategorySummaryResponse struct {
	Name  string                 `json:"name"`
	Type  domain.TransactionType `json:"type"`
	Total decimal.Decimal        `json:"total"`
	Count int                    `json:"count"`
}

// CategorySummariesResponse wraps the top-categories rollup.
type CategorySummariesResponse struct {
	Categories []CategorySummaryResponse `json:"categories"`
}

// ToCategorySummariesResponse converts domain summaries to the response DTO.
func ToCategorySummariesResponse(summaries []domain.CategorySummary) CategorySummariesResponse {
	categories := make([]CategorySummaryResponse, len(summaries))
	for i, s := range summaries {
		categories[i] = CategorySummaryResponse{
			Name:  s.Name,
			Type:  s.Type,
			Total: s.Total,
			Count: s.Count,
		}
	}
	return CategorySummariesResponse{Categories: categories}
}

// CategoryBreakdownResponse is one entry of a period report's breakdown.
type CategoryBreakdownResponse struct {
	Name       string                 `json:"name"`
	Type       domain.TransactionType `json:"type"`
	Total      decimal.Decimal        `json:"total"`
	Percentage decimal.Decimal        `json:"percentage"`
}

// PeriodReportResponse is the aggregated view of a date range.
type PeriodReportResponse struct {
	StartDate         string                      `json:"startDate"`
	EndDate           string                      `json:"endDate"`
	TotalIncome       decimal.Decimal             `json:"totalIncome"`
	TotalExpense      decimal.Decimal             `json:"totalExpense"`
	ProfitLoss        decimal.Decimal             `json:"profitLoss"`
	ProfitLossDisplay string                      `json:"profitLossDisplay"`
	TransactionCount  int                         `json:"transactionCount"`
	Breakdown         []CategoryBreakdownResponse `json:"breakdown"`
}

// ToPeriodReportResponse converts a domain period report to the response DTO.
func ToPeriodReportResponse(report *domain.PeriodReport, start, end time.Time) PeriodReportResponse {
	breakdown := make([]CategoryBreakdownResponse, len(report.Breakdown))
	for i, entry := range report.Breakdown {
		breakdown[i] = CategoryBreakdownResponse{
			Name:       entry.Name,
			Type:       entry.Type,
			Total:      entry.Total,
			Percentage: entry.Percentage,
		}
	}
	return PeriodReportResponse{
		StartDate:         start.Format(dateLayout),
		EndDate:           end.Format(dateLayout),
		TotalIncome:       report.TotalIncome,
		TotalExpense:      report.TotalExpense,
		ProfitLoss:        report.ProfitLoss,
		ProfitLossDisplay: utils.FormatIDR(report.ProfitLoss),
		TransactionCount:  report.TransactionCount,
		Breakdown:         breakdown,
	}
}

// DashboardSummaryResponse carries the dashboard headline figures with
// Rupiah display strings alongside the raw values.
type DashboardSummaryResponse struct {
	TotalIncome           decimal.Decimal `json:"totalIncome"`
	TotalExpense          decimal.Decimal `json:"totalExpense"`
	Balance               decimal.Decimal `json:"balance"`
	BalanceDisplay        string          `json:"balanceDisplay"`
	DebtOutstanding       decimal.Decimal `json:"debtOutstanding"`
	ReceivableOutstanding decimal.Decimal `json:"receivableOutstanding"`
}

// ToDashboardSummaryResponse converts a domain summary to the response DTO.
func ToDashboardSummaryResponse(summary *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		TotalIncome:           summary.TotalIncome,
		TotalExpense:          summary.TotalExpense,
		Balance:               summary.Balance,
		BalanceDisplay:        utils.FormatIDR(summary.Balance),
		DebtOutstanding:       summary.DebtOutstanding,
		ReceivableOutstanding: summary.ReceivableOutstanding,
	}
}
