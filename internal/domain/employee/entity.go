package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	StoreIDs  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
