package store

import "time"

// Store is one retail location. Shifts holds the raw serialized shift
// configuration exactly as the management UI saved it; only
// shift.Resolve ever interprets it, the rest of the system sees a
// typed registry.
type Store struct {
	ID             string
	Name           string
	Shifts         string
	EntryTimeStart *string
	EntryTimeEnd   *string
	ExitTimeStart  *string
	ExitTimeEnd    *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
