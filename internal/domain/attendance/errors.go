package attendance

import "errors"

// Attendance domain errors
var (
	ErrMonthNotFound = errors.New("attendance month not found")
	ErrForbidden     = errors.New("not allowed to access this attendance month")
	ErrSaveInFlight  = errors.New("a save for this month is already in progress")
	ErrNoMonthLoaded = errors.New("no attendance month loaded")
)
