package accounting

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UncategorizedLabel is the display name for transactions with no linked
// category (including those whose category was deleted).
const UncategorizedLabel = "Uncategorized"

// monthKeyFormat keys monthly buckets, e.g. "2024-01". Lexicographic order
// equals chronological order, which keeps sorting trivial.
const monthKeyFormat = "2006-01"

// MonthlyRollup folds transactions into per-month income and expense totals,
// sorted by month ascending. Empty input yields an empty slice, never an error.
func MonthlyRollup(txns []domain.Transaction) []domain.MonthlySummary {
	buckets := make(map[string]*domain.MonthlySummary)
	for _, txn := range txns {
		key := txn.TransactionDate.Format(monthKeyFormat)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MonthlySummary{
				Month:        key,
				IncomeTotal:  decimal.Zero,
				ExpenseTotal: decimal.Zero,
			}
			buckets[key] = bucket
		}
		switch txn.Type {
		case domain.TypeIncome:
			bucket.IncomeTotal = bucket.IncomeTotal.Add(txn.Amount)
		case domain.TypeExpense:
			bucket.ExpenseTotal = bucket.ExpenseTotal.Add(txn.Amount)
		}
	}

	result := make([]domain.MonthlySummary, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month < result[j].Month
	})
	return result
}

// categoryKey is the rollup grouping key. Grouping by (name, type) keeps the
// result deterministic when the same name exists as both an income and an
// expense category; such a name simply yields two rows.
type categoryKey struct {
	name string
	typ  domain.TransactionType
}

// CategoryRollup groups transactions by resolved category name and type,
// summing amounts per group. The result is sorted non-increasing by total
// (name ascending on ties) and truncated to the top limit entries; limit <= 0
// means no truncation.
func CategoryRollup(txns []domain.Transaction, limit int) []domain.CategorySummary {
	buckets := make(map[categoryKey]*domain.CategorySummary)
	for _, txn := range txns {
		name := UncategorizedLabel
		if txn.CategoryName != nil && *txn.CategoryName != "" {
			name = *txn.CategoryName
		}
		key := categoryKey{name: name, typ: txn.Type}
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.CategorySummary{
				Name:  name,
				Type:  txn.Type,
				Total: decimal.Zero,
			}
			buckets[key] = bucket
		}
		bucket.Total = bucket.Total.Add(txn.Amount)
		bucket.Count++
	}

	result := make([]domain.CategorySummary, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].Type < result[j].Type
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// BuildPeriodReport computes totals, profit/loss and a full category
// breakdown for an already date-filtered transaction set. Each breakdown
// entry carries its percentage of its own type's total; a zero total yields
// 0%, never a division error.
func BuildPeriodReport(txns []domain.Transaction) domain.PeriodReport {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case domain.TypeIncome:
			totalIncome = totalIncome.Add(txn.Amount)
		case domain.TypeExpense:
			totalExpense = totalExpense.Add(txn.Amount)
		}
	}

	summaries := CategoryRollup(txns, 0)
	breakdown := make([]domain.CategoryBreakdownEntry, len(summaries))
	hundred := decimal.NewFromInt(100)
	for i, summary := range summaries {
		typeTotal := totalIncome
		if summary.Type == domain.TypeExpense {
			typeTotal = totalExpense
		}
		percentage := decimal.Zero
		if typeTotal.IsPositive() {
			percentage = summary.Total.Div(typeTotal).Mul(hundred)
		}
		breakdown[i] = domain.CategoryBreakdownEntry{
			CategorySummary: summary,
			Percentage:      percentage,
		}
	}

	return domain.PeriodReport{
		TotalIncome:      totalIncome,
		TotalExpense:     totalExpense,
		ProfitLoss:       totalIncome.Sub(totalExpense),
		TransactionCount: len(txns),
		Breakdown:        breakdown,
	}
}

// SummarizeDashboard produces the headline dashboard figures from the owner's
// transactions and open debts/receivables.
func SummarizeDashboard(txns []domain.Transaction, debts []domain.Debt) domain.DashboardSummary {
	summary := domain.DashboardSummary{
		TotalIncome:           decimal.Zero,
		TotalExpense:          decimal.Zero,
		DebtOutstanding:       decimal.Zero,
		ReceivableOutstanding: decimal.Zero,
	}
	for _, txn := range txns {
		switch txn.Type {
		case domain.TypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case domain.TypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)

	for _, debt := range debts {
		switch debt.Type {
		case domain.DebtOwed:
			summary.DebtOutstanding = summary.DebtOutstanding.Add(debt.Remaining())
		case domain.DebtReceivable:
			summary.ReceivableOutstanding = summary.ReceivableOutstanding.Add(debt.Remaining())
		}
	}
	return summary
}

// CSVFilename builds the download name for a period report export.
func CSVFilename(start, end time.Time) string {
	return fmt.Sprintf("financial-report-%s-%s.csv", start.Format("2006-01-02"), end.Format("2006-01-02"))
}

// WriteReportCSV serializes a period report: four summary lines, a blank
// line, a header row, then one row per breakdown entry. Fields with embedded
// commas are quoted by the csv writer.
func WriteReportCSV(w io.Writer, report domain.PeriodReport) error {
	cw := csv.NewWriter(w)

	summaryRows := [][]string{
		{"Total Income", report.TotalIncome.String()},
		{"Total Expense", report.TotalExpense.String()},
		{"Profit/Loss", report.ProfitLoss.String()},
		{"Total Transactions", fmt.Sprintf("%d", report.TransactionCount)},
	}
	for _, row := range summaryRows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write separator line: %w", err)
	}

	if err := cw.Write([]string{"Category", "Type", "Amount"}); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for _, entry := range report.Breakdown {
		row := []string{entry.Name, string(entry.Type), entry.Total.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write breakdown row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
