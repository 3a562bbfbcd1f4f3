package store

import "context"

type Repository interface {
	// ListByEmployee returns the stores an employee is assigned to, in
	// assignment order. The first store's shift configuration drives
	// that employee's attendance calculations.
	ListByEmployee(ctx context.Context, employeeID string) ([]Store, error)
}
