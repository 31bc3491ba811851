package accounting

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(typ domain.TransactionType, amount int64, date string, categoryName string) domain.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	t := domain.Transaction{
		Type:            typ,
		Amount:          decimal.NewFromInt(amount),
		TransactionDate: d,
	}
	if categoryName != "" {
		t.CategoryName = &categoryName
	}
	return t
}

func TestMonthlyRollup_Scenario(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.TypeIncome, 100, "2024-01-05", ""),
		txn(domain.TypeExpense, 40, "2024-01-10", ""),
		txn(domain.TypeIncome, 30, "2024-02-01", ""),
	}

	rollup := MonthlyRollup(txns)

	require.Len(t, rollup, 2)
	assert.Equal(t, "2024-01", rollup[0].Month)
	assert.True(t, rollup[0].IncomeTotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, rollup[0].ExpenseTotal.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, "2024-02", rollup[1].Month)
	assert.True(t, rollup[1].IncomeTotal.Equal(decimal.NewFromInt(30)))
	assert.True(t, rollup[1].ExpenseTotal.IsZero())
}

// The rollup is a lossless partition: summing the bucket totals reproduces
// the plain per-type sums over the input.
func TestMonthlyRollup_LosslessPartition(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.TypeIncome, 100, "2023-11-05", ""),
		txn(domain.TypeIncome, 250, "2023-12-31", ""),
		txn(domain.TypeExpense, 75, "2023-12-31", ""),
		txn(domain.TypeIncome, 30, "2024-02-01", ""),
		txn(domain.TypeExpense, 40, "2024-02-29", ""),
		txn(domain.TypeExpense, 5, "2024-02-29", ""),
	}

	wantIncome := decimal.Zero
	wantExpense := decimal.Zero
	for _, tx := range txns {
		if tx.Type == domain.TypeIncome {
			wantIncome = wantIncome.Add(tx.Amount)
		} else {
			wantExpense = wantExpense.Add(tx.Amount)
		}
	}

	rollup := MonthlyRollup(txns)

	gotIncome := decimal.Zero
	gotExpense := decimal.Zero
	for _, bucket := range rollup {
		gotIncome = gotIncome.Add(bucket.IncomeTotal)
		gotExpense = gotExpense.Add(bucket.ExpenseTotal)
	}
	assert.True(t, wantIncome.Equal(gotIncome))
	assert.True(t, wantExpense.Equal(gotExpense))

	// Months come out ascending.
	for i := 1; i < len(rollup); i++ {
		assert.Less(t, rollup[i-1].Month, rollup[i].Month)
	}
}

func TestMonthlyRollup_Empty(t *testing.T) {
	assert.Empty(t, MonthlyRollup(nil))
	assert.Empty(t, MonthlyRollup([]domain.Transaction{}))
}

func TestCategoryRollup_TopTenSorted(t *testing.T) {
	var txns []domain.Transaction
	for i := 0; i < 15; i++ {
		txns = append(txns, txn(domain.TypeExpense, int64(10*(i+1)), "2024-03-01", fmt.Sprintf("Cat %02d", i)))
	}

	rollup := CategoryRollup(txns, 10)

	require.Len(t, rollup, 10)
	for i := 1; i < len(rollup); i++ {
		assert.True(t, rollup[i-1].Total.GreaterThanOrEqual(rollup[i].Total),
			"rollup must be sorted non-increasing by total")
	}
}

func TestCategoryRollup_UncategorizedFallback(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.TypeExpense, 50, "2024-03-01", ""),
		txn(domain.TypeExpense, 20, "2024-03-02", "Bahan Baku"),
		txn(domain.TypeExpense, 10, "2024-03-03", ""),
	}

	rollup := CategoryRollup(txns, 10)

	require.Len(t, rollup, 2)
	assert.Equal(t, UncategorizedLabel, rollup[0].Name)
	assert.True(t, rollup[0].Total.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, 2, rollup[0].Count)
}

// A name reused across income and expense categories groups per (name, type),
// so the split is deterministic regardless of input order.
func TestCategoryRollup_NameSharedAcrossTypes(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.TypeIncome, 100, "2024-03-01", "Lainnya"),
		txn(domain.TypeExpense, 100, "2024-03-02", "Lainnya"),
	}

	forward := CategoryRollup(txns, 10)
	reversed := CategoryRollup([]domain.Transaction{txns[1], txns[0]}, 10)

	require.Len(t, forward, 2)
	assert.Equal(t, forward, reversed)
}

func TestBuildPeriodReport(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.TypeIncome, 300, "2024-01-05", "Penjualan"),
		txn(domain.TypeIncome, 100, "2024-01-08", "Jasa"),
		txn(domain.TypeExpense, 50, "2024-01-10", "Listrik"),
	}

	report := BuildPeriodReport(txns)

	assert.True(t, report.TotalIncome.Equal(decimal.NewFromInt(400)))
	assert.True(t, report.TotalExpense.Equal(decimal.NewFromInt(50)))
	assert.True(t, report.ProfitLoss.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, 3, report.TransactionCount)
	require.Len(t, report.Breakdown, 3)

	for _, entry := range report.Breakdown {
		switch entry.Name {
		case "Penjualan":
			assert.True(t, entry.Percentage.Equal(decimal.NewFromInt(75)))
		case "Jasa":
			assert.True(t, entry.Percentage.Equal(decimal.NewFromInt(25)))
		case "Listrik":
			assert.True(t, entry.Percentage.Equal(decimal.NewFromInt(100)))
		default:
			t.Fatalf("unexpected breakdown entry %q", entry.Name)
		}
	}
}

// Zero income must not turn income percentages into NaN or a panic.
func TestBuildPeriodReport_ZeroTotalPercentage(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.TypeIncome, 0, "2024-01-05", "Penjualan"),
	}

	report := BuildPeriodReport(txns)

	assert.True(t, report.TotalIncome.IsZero())
	require.Len(t, report.Breakdown, 1)
	assert.True(t, report.Breakdown[0].Percentage.IsZero())
}

func TestBuildPeriodReport_Empty(t *testing.T) {
	report := BuildPeriodReport(nil)

	assert.True(t, report.TotalIncome.IsZero())
	assert.True(t, report.TotalExpense.IsZero())
	assert.True(t, report.ProfitLoss.IsZero())
	assert.Zero(t, report.TransactionCount)
	assert.Empty(t, report.Breakdown)
}

func TestSummarizeDashboard(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.TypeIncome, 500, "2024-01-05", ""),
		txn(domain.TypeExpense, 200, "2024-01-06", ""),
	}
	debts := []domain.Debt{
		{Type: domain.DebtOwed, Amount: decimal.NewFromInt(1000), PaidAmount: decimal.NewFromInt(400)},
		{Type: domain.DebtReceivable, Amount: decimal.NewFromInt(300), PaidAmount: decimal.Zero},
	}

	summary := SummarizeDashboard(txns, debts)

	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.DebtOutstanding.Equal(decimal.NewFromInt(600)))
	assert.True(t, summary.ReceivableOutstanding.Equal(decimal.NewFromInt(300)))
}

func TestCSVFilename(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "financial-report-2024-01-01-2024-01-31.csv", CSVFilename(start, end))
}

func TestWriteReportCSV(t *testing.T) {
	report := BuildPeriodReport([]domain.Transaction{
		txn(domain.TypeIncome, 400, "2024-01-05", "Penjualan"),
		txn(domain.TypeExpense, 150, "2024-01-10", "Sewa, Listrik"),
	})

	var buf bytes.Buffer
	require.NoError(t, WriteReportCSV(&buf, report))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 8)
	assert.Equal(t, "Total Income,400", lines[0])
	assert.Equal(t, "Total Expense,150", lines[1])
	assert.Equal(t, "Profit/Loss,250", lines[2])
	assert.Equal(t, "Total Transactions,2", lines[3])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "Category,Type,Amount", lines[5])

	// An embedded comma in a category name is quoted, not silently broken.
	assert.Contains(t, buf.String(), `"Sewa, Listrik",expense,150`)
}
