package postgresql

import (
	"context"
	"fmt"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/store"
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/database"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.Repository {
	return &storeRepositoryImpl{db: db}
}

// ListByEmployee implements store.Repository.
func (r *storeRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, COALESCE(s.shifts, ''),
			   s.entry_time_start, s.entry_time_end, s.exit_time_start, s.exit_time_end,
			   s.created_at, s.updated_at
		FROM stores s
		JOIN employee_stores es ON es.store_id = s.id
		WHERE es.employee_id = $1
		ORDER BY es.position
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores by employee: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var st store.Store
		err := rows.Scan(
			&st.ID,
			&st.Name,
			&st.Shifts,
			&st.EntryTimeStart,
			&st.EntryTimeEnd,
			&st.ExitTimeStart,
			&st.ExitTimeEnd,
			&st.CreatedAt,
			&st.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stores: %w", err)
	}

	return stores, nil
}
