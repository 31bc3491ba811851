package services

import (
	"context"
	"io"
	"time"

	"github.com/bukuusaha/bukuusaha_backend/internal/core/domain"
)

// ReportingSvcFacade exposes the aggregation views over the user's book.
// All methods are read-only folds over owner-scoped rows.
type ReportingSvcFacade interface {
	// MonthlySummaries returns the per-month income/expense rollup, month
	// ascending.
	MonthlySummaries(ctx context.Context, userID string) ([]domain.MonthlySummary, error)

	// CategorySummaries returns the top-10 category rollup, total descending.
	CategorySummaries(ctx context.Context, userID string) ([]domain.CategorySummary, error)

	// DashboardSummary returns the headline totals for the dashboard.
	DashboardSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error)

	// PeriodReport aggregates the inclusive date range [from, to].
	PeriodReport(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodReport, error)

	// ExportPeriodReportCSV writes the period report as CSV and returns the
	// download filename.
	ExportPeriodReportCSV(ctx context.Context, userID string, from, to time.Time, w io.Writer) (string, error)
}
