package employee

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
