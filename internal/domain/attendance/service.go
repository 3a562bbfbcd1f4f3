package attendance

import (
	"context"
)

// Service defines business logic for monthly attendance reconciliation
type Service interface {
	// GetMonth loads one employee-month, blank-filled to the full length
	// of the month
	GetMonth(ctx context.Context, req MonthRequest) (MonthResponse, error)

	// SaveMonth bulk-writes one employee-month after re-deriving every
	// record's metric fields server-side
	SaveMonth(ctx context.Context, req SaveMonthRequest) (MonthResponse, error)

	// ExportMonth renders one employee-month to a downloadable table
	ExportMonth(ctx context.Context, req ExportRequest) (ExportResult, error)

	// SummarizeMonth aggregates one employee-month for the payroll
	// collaborator
	SummarizeMonth(ctx context.Context, req MonthRequest) (MonthSummary, error)
}
