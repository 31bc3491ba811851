package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/apperrors"
	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
	portsrepo "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/repositories"
	portssvc "github.com/bukuusaha/bukuusaha_backend/internal/core/ports/services"
	"github.com/bukuusaha/bukuusaha_backend/internal/utils/accounting"
)

// categoryRollupLimit caps the category analytics view at the top entries
// by total, matching what the analytics page renders.
const categoryRollupLimit = 10

// reportingService implements ReportingSvcFacade. All aggregation happens in
// memory over owner-scoped rows; the arithmetic lives in utils/accounting.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	debtRepo        portsrepo.DebtRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(transactionRepo portsrepo.TransactionRepositoryFacade, debtRepo portsrepo.DebtRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{
		transactionRepo: transactionRepo,
		debtRepo:        debtRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) MonthlySummaries(ctx context.Context, userID string) ([]domain.MonthlySummary, error) {
	txns, err := s.transactionRepo.FindAllTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for monthly rollup: %w", err)
	}
	return accounting.MonthlyRollup(txns), nil
}

func (s *reportingService) CategorySummaries(ctx context.Context, userID string) ([]domain.CategorySummary, error) {
	txns, err := s.transactionRepo.FindAllTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for category rollup: %w", err)
	}
	return accounting.CategoryRollup(txns, categoryRollupLimit), nil
}

func (s *reportingService) DashboardSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	txns, err := s.transactionRepo.FindAllTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for dashboard: %w", err)
	}
	debts, err := s.debtRepo.FindDebts(ctx, userID, portsrepo.DebtFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load debts for dashboard: %w", err)
	}
	summary := accounting.SummarizeDashboard(txns, debts)
	return &summary, nil
}

func (s *reportingService) PeriodReport(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("report range end precedes start: %w", apperrors.ErrValidation)
	}
	txns, err := s.transactionRepo.FindTransactionsInRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for period report: %w", err)
	}
	report := accounting.BuildPeriodReport(txns)
	return &report, nil
}

func (s *reportingService) ExportPeriodReportCSV(ctx context.Context, userID string, from, to time.Time, w io.Writer) (string, error) {
	report, err := s.PeriodReport(ctx, userID, from, to)
	if err != nil {
		return "", err
	}
	if err := accounting.WriteReportCSV(w, *report); err != nil {
		s.LogError(ctx, err, "Failed to write period report CSV")
		return "", fmt.Errorf("failed to export period report: %w", err)
	}
	return accounting.CSVFilename(from, to), nil
}
