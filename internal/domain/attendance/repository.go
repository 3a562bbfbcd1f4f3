package attendance

import "context"

// Repository is the persistence boundary for attendance records.
type Repository interface {
	// GetMonth returns the stored records for one employee-month in date
	// order. Days with no stored row are simply absent; the service fills
	// them with blank records.
	GetMonth(ctx context.Context, employeeID string, year, month int) ([]DayRecord, error)

	// ReplaceMonth atomically overwrites one employee-month with the
	// given records. There is no partial success: either every row is
	// written or none are.
	ReplaceMonth(ctx context.Context, employeeID string, year, month int, records []DayRecord) error

	// MarkUnsetAsAbsent flips still-unset records dated strictly before
	// cutoffDate ("YYYY-MM-DD") to alpha and returns how many rows
	// changed. Used by the nightly reconciliation job.
	MarkUnsetAsAbsent(ctx context.Context, cutoffDate string) (int64, error)
}
