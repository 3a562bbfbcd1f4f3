package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

// GetMonth implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), check_in, check_out, shift,
			   lateness_minutes, early_arrival_minutes, overtime_minutes,
			   status, notes
		FROM attendance_records
		WHERE employee_id = $1
		  AND date >= make_date($2, $3, 1)
		  AND date < make_date($2, $3, 1) + INTERVAL '1 month'
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance month: %w", err)
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		var rec attendance.DayRecord
		err := rows.Scan(
			&rec.Date,
			&rec.CheckIn,
			&rec.CheckOut,
			&rec.Shift,
			&rec.LatenessMinutes,
			&rec.EarlyArrivalMinutes,
			&rec.OvertimeMinutes,
			&rec.Status,
			&rec.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// ReplaceMonth implements attendance.Repository. Delete plus batch
// insert inside one transaction keeps the whole-month write atomic.
func (r *attendanceRepositoryImpl) ReplaceMonth(ctx context.Context, employeeID string, year, month int, records []attendance.DayRecord) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		deleteQuery := `
			DELETE FROM attendance_records
			WHERE employee_id = $1
			  AND date >= make_date($2, $3, 1)
			  AND date < make_date($2, $3, 1) + INTERVAL '1 month'
		`
		if _, err := tx.Exec(ctx, deleteQuery, employeeID, year, month); err != nil {
			return fmt.Errorf("failed to clear attendance month: %w", err)
		}

		insertQuery := `
			INSERT INTO attendance_records (
				id, employee_id, date, check_in, check_out, shift,
				lateness_minutes, early_arrival_minutes, overtime_minutes,
				status, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`

		batch := &pgx.Batch{}
		for _, rec := range records {
			batch.Queue(insertQuery,
				uuid.NewString(),
				employeeID,
				rec.Date,
				rec.CheckIn,
				rec.CheckOut,
				rec.Shift,
				rec.LatenessMinutes,
				rec.EarlyArrivalMinutes,
				rec.OvertimeMinutes,
				string(rec.Status),
				rec.Notes,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()
		for range records {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("failed to insert attendance record: %w", err)
			}
		}
		return results.Close()
	})
}

// MarkUnsetAsAbsent implements attendance.Repository.
func (r *attendanceRepositoryImpl) MarkUnsetAsAbsent(ctx context.Context, cutoffDate string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET status = $1,
			check_in = '', check_out = '', shift = '',
			lateness_minutes = 0, early_arrival_minutes = 0, overtime_minutes = 0,
			updated_at = NOW()
		WHERE status = $2
		  AND date < $3
	`

	tag, err := q.Exec(ctx, query, string(attendance.StatusAbsent), string(attendance.StatusUnset), cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("failed to mark unset attendance as absent: %w", err)
	}
	return tag.RowsAffected(), nil
}
