package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, userID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var nextToken *string
	if args.Get(1) != nil {
		nextToken = args.Get(1).(*string)
	}
	return txns, nextToken, args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, from, to)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindAllTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo  *MockTransactionRepository
	mockDebtRepo *MockDebtRepository
	service      portssvc.ReportingSvcFacade
	userID       string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockDebtRepo = new(MockDebtRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo, suite.mockDebtRepo)
	suite.userID = uuid.NewString()
}

func strPtr(s string) *string {
	return &s
}

func testTxn(txnType domain.TransactionType, amount int64, date time.Time, categoryName *string) domain.Transaction {
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            txnType,
		Amount:          decimal.NewFromInt(amount),
		CategoryName:    categoryName,
		TransactionDate: date,
	}
}

// --- MonthlySummaries Tests ---

func (suite *ReportingServiceTestSuite) TestMonthlySummaries_BucketsByMonthAscending() {
	ctx := context.Background()
	txns := []domain.Transaction{
		testTxn(domain.TypeExpense, 200000, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), nil),
		testTxn(domain.TypeIncome, 1000000, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), nil),
		testTxn(domain.TypeIncome, 500000, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), nil),
	}

	suite.mockTxnRepo.On("FindAllTransactions", ctx, suite.userID).Return(txns, nil).Once()

	summaries, err := suite.service.MonthlySummaries(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.Equal("2026-01", summaries[0].Month)
	suite.Equal("1000000", summaries[0].IncomeTotal.String())
	suite.Equal("0", summaries[0].ExpenseTotal.String())
	suite.Equal("2026-02", summaries[1].Month)
	suite.Equal("500000", summaries[1].IncomeTotal.String())
	suite.Equal("200000", summaries[1].ExpenseTotal.String())
}

// --- CategorySummaries Tests ---

func (suite *ReportingServiceTestSuite) TestCategorySummaries_GroupsWithUncategorizedFallback() {
	ctx := context.Background()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		testTxn(domain.TypeIncome, 800000, date, strPtr("Penjualan")),
		testTxn(domain.TypeIncome, 200000, date, strPtr("Penjualan")),
		testTxn(domain.TypeExpense, 300000, date, nil),
	}

	suite.mockTxnRepo.On("FindAllTransactions", ctx, suite.userID).Return(txns, nil).Once()

	summaries, err := suite.service.CategorySummaries(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(summaries, 2)
	suite.Equal("Penjualan", summaries[0].Name)
	suite.Equal("1000000", summaries[0].Total.String())
	suite.Equal(2, summaries[0].Count)
	suite.Equal("Uncategorized", summaries[1].Name)
	suite.Equal(domain.TypeExpense, summaries[1].Type)
}

func (suite *ReportingServiceTestSuite) TestCategorySummaries_CapsAtTopTen() {
	ctx := context.Background()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var txns []domain.Transaction
	for i := 0; i < 12; i++ {
		name := string(rune('a' + i))
		txns = append(txns, testTxn(domain.TypeExpense, int64(1000*(i+1)), date, &name))
	}

	suite.mockTxnRepo.On("FindAllTransactions", ctx, suite.userID).Return(txns, nil).Once()

	summaries, err := suite.service.CategorySummaries(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Len(summaries, 10)
	// Largest totals survive the cut.
	suite.Equal("12000", summaries[0].Total.String())
}

// --- DashboardSummary Tests ---

func (suite *ReportingServiceTestSuite) TestDashboardSummary_HeadlineFigures() {
	ctx := context.Background()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		testTxn(domain.TypeIncome, 1500000, date, nil),
		testTxn(domain.TypeExpense, 400000, date, nil),
	}
	debts := []domain.Debt{
		{
			Type:       domain.DebtOwed,
			Amount:     decimal.NewFromInt(500000),
			PaidAmount: decimal.NewFromInt(200000),
		},
		{
			Type:   domain.DebtReceivable,
			Amount: decimal.NewFromInt(250000),
		},
	}

	suite.mockTxnRepo.On("FindAllTransactions", ctx, suite.userID).Return(txns, nil).Once()
	suite.mockDebtRepo.On("FindDebts", ctx, suite.userID, portsrepo.DebtFilter{}).Return(debts, nil).Once()

	summary, err := suite.service.DashboardSummary(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("1500000", summary.TotalIncome.String())
	suite.Equal("400000", summary.TotalExpense.String())
	suite.Equal("1100000", summary.Balance.String())
	suite.Equal("300000", summary.DebtOutstanding.String())
	suite.Equal("250000", summary.ReceivableOutstanding.String())
}

// --- PeriodReport Tests ---

func (suite *ReportingServiceTestSuite) TestPeriodReport_TotalsAndPercentages() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		testTxn(domain.TypeIncome, 750000, from, strPtr("Penjualan")),
		testTxn(domain.TypeIncome, 250000, from, strPtr("Jasa")),
		testTxn(domain.TypeExpense, 400000, from, strPtr("Bahan Baku")),
	}

	suite.mockTxnRepo.On("FindTransactionsInRange", ctx, suite.userID, from, to).Return(txns, nil).Once()

	report, err := suite.service.PeriodReport(ctx, suite.userID, from, to)

	suite.Require().NoError(err)
	suite.Equal("1000000", report.TotalIncome.String())
	suite.Equal("400000", report.TotalExpense.String())
	suite.Equal("600000", report.ProfitLoss.String())
	suite.Equal(3, report.TransactionCount)
	suite.Require().Len(report.Breakdown, 3)

	percentages := make(map[string]string)
	for _, entry := range report.Breakdown {
		percentages[entry.Name] = entry.Percentage.String()
	}
	suite.Equal("75", percentages["Penjualan"])
	suite.Equal("25", percentages["Jasa"])
	// Expenses are measured against the expense total, not the grand total.
	suite.Equal("100", percentages["Bahan Baku"])
}

func (suite *ReportingServiceTestSuite) TestPeriodReport_EmptyRange() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	suite.mockTxnRepo.On("FindTransactionsInRange", ctx, suite.userID, from, to).Return([]domain.Transaction{}, nil).Once()

	report, err := suite.service.PeriodReport(ctx, suite.userID, from, to)

	suite.Require().NoError(err)
	suite.True(report.TotalIncome.IsZero())
	suite.True(report.TotalExpense.IsZero())
	suite.True(report.ProfitLoss.IsZero())
	suite.Zero(report.TransactionCount)
	suite.Empty(report.Breakdown)
}

func (suite *ReportingServiceTestSuite) TestPeriodReport_InvertedRangeRejected() {
	ctx := context.Background()
	from := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	report, err := suite.service.PeriodReport(ctx, suite.userID, from, to)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- ExportPeriodReportCSV Tests ---

func (suite *ReportingServiceTestSuite) TestExportPeriodReportCSV_WritesReportAndFilename() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		testTxn(domain.TypeIncome, 1000000, from, strPtr("Penjualan, Eceran")),
	}

	suite.mockTxnRepo.On("FindTransactionsInRange", ctx, suite.userID, from, to).Return(txns, nil).Once()

	var buf bytes.Buffer
	filename, err := suite.service.ExportPeriodReportCSV(ctx, suite.userID, from, to, &buf)

	suite.Require().NoError(err)
	suite.Equal("financial-report-2026-01-01-2026-01-31.csv", filename)

	csvOut := buf.String()
	suite.Contains(csvOut, "Total Income,1000000")
	suite.Contains(csvOut, "Profit/Loss,1000000")
	suite.Contains(csvOut, "Category,Type,Amount")
	// A comma in the category name must be quoted, not split into columns.
	suite.Contains(csvOut, "\"Penjualan, Eceran\",income,1000000")
}

func (suite *ReportingServiceTestSuite) TestExportPeriodReportCSV_InvertedRangeWritesNothing() {
	ctx := context.Background()
	from := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	filename, err := suite.service.ExportPeriodReportCSV(ctx, suite.userID, from, to, &buf)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(filename)
	suite.Zero(buf.Len())
}

// --- Run Test Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
