package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/employee"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/shift"
)

// MonthKey identifies one employee-month.
type MonthKey struct {
	EmployeeID string
	Year       int
	Month      int
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%s/%04d-%02d", k.EmployeeID, k.Year, k.Month)
}

// MonthSource is the external collaborator a session loads from and
// saves to: the resolved shift registry for the employee's store plus
// the blank-filled month of records.
type MonthSource interface {
	FetchMonth(ctx context.Context, key MonthKey) (shift.Registry, []attendance.DayRecord, error)
	SaveMonthRecords(ctx context.Context, key MonthKey, records []attendance.DayRecord) error
}

// ErrRecordInert is returned when a time field is edited on a record
// whose status excludes it from time accounting (cuti/alpha). The
// status has to change back before the fields reopen.
var ErrRecordInert = errors.New("record is inert for time accounting")

// fetchAttempts bounds transient-failure retries on load. Not-found and
// forbidden results are terminal and never retried.
const fetchAttempts = 3

// MonthlySession owns one employee-month of attendance records for the
// duration of an editing session. It tracks dirtiness against the last
// loaded or saved snapshot, re-derives metric fields on every input
// mutation, and bulk-saves the whole month atomically.
//
// A session is exclusively owned by one editor; the mutex only guards
// against the fetch/save goroutine racing the editor, not against
// concurrent editors (two sessions saving the same month is last write
// wins, a documented property of the system).
type MonthlySession struct {
	mu  sync.Mutex
	src MonthSource

	key      MonthKey
	registry shift.Registry
	records  []attendance.DayRecord
	baseline []attendance.DayRecord

	loaded      bool
	dirty       bool
	savePending bool

	// fetchSeq guards against stale in-flight fetch results: a fetch
	// only installs its result if no newer fetch superseded it.
	fetchSeq uint64
}

func NewMonthlySession(src MonthSource, key MonthKey) *MonthlySession {
	return &MonthlySession{src: src, key: key}
}

func (s *MonthlySession) Key() MonthKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key
}

func (s *MonthlySession) HasChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *MonthlySession) SavePending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.savePending
}

// Records returns a copy of the current month. Callers cannot mutate
// session state through it.
func (s *MonthlySession) Records() []attendance.DayRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]attendance.DayRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Summary aggregates the current in-memory month.
func (s *MonthlySession) Summary() attendance.MonthSummary {
	return Summarize(s.Records())
}

// Load fetches the session's month, retrying transient failures a
// bounded number of times. Not-found and forbidden are terminal. A
// successful load resets the dirty flag and becomes the new baseline.
func (s *MonthlySession) Load(ctx context.Context) error {
	s.mu.Lock()
	key := s.key
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	var reg shift.Registry
	var records []attendance.DayRecord
	var err error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		reg, records, err = s.src.FetchMonth(ctx, key)
		if err == nil {
			break
		}
		if isTerminalFetchErr(err) || ctx.Err() != nil {
			return fmt.Errorf("fetch month %s: %w", key, err)
		}
	}
	if err != nil {
		return fmt.Errorf("fetch month %s after %d attempts: %w", key, fetchAttempts, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq || key != s.key {
		// A newer fetch superseded this one; its result is stale.
		return nil
	}
	s.installLocked(reg, records)
	return nil
}

func isTerminalFetchErr(err error) bool {
	return errors.Is(err, attendance.ErrMonthNotFound) ||
		errors.Is(err, attendance.ErrForbidden) ||
		errors.Is(err, employee.ErrEmployeeNotFound)
}

func (s *MonthlySession) installLocked(reg shift.Registry, records []attendance.DayRecord) {
	s.registry = reg
	s.records = records
	s.baseline = make([]attendance.DayRecord, len(records))
	copy(s.baseline, records)
	s.loaded = true
	s.dirty = false
}

// SetStatus changes one day's attendance status. Switching to an inert
// status clears every time field in the same step; there is no state in
// which an inert record still carries minutes.
func (s *MonthlySession) SetStatus(dayIndex int, status attendance.Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid attendance status %q", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.recordLocked(dayIndex)
	if err != nil {
		return err
	}

	rec.Status = status
	if status.IsInert() {
		rec.ClearTimeFields()
	} else {
		s.recomputeLocked(rec)
	}
	s.dirty = true
	return nil
}

// SetCheckIn records a check-in time. When the record has no shift yet
// the most plausible one is detected from the check-in; an explicitly
// chosen shift is never overridden.
func (s *MonthlySession) SetCheckIn(dayIndex int, checkIn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.recordLocked(dayIndex)
	if err != nil {
		return err
	}
	if rec.Status.IsInert() {
		return ErrRecordInert
	}

	rec.CheckIn = checkIn
	if rec.Shift == "" && checkIn != "" {
		rec.Shift = DetectShift(checkIn, s.registry)
	}
	s.recomputeLocked(rec)
	s.dirty = true
	return nil
}

func (s *MonthlySession) SetCheckOut(dayIndex int, checkOut string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.recordLocked(dayIndex)
	if err != nil {
		return err
	}
	if rec.Status.IsInert() {
		return ErrRecordInert
	}

	rec.CheckOut = checkOut
	s.recomputeLocked(rec)
	s.dirty = true
	return nil
}

func (s *MonthlySession) SetShift(dayIndex int, shiftName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.recordLocked(dayIndex)
	if err != nil {
		return err
	}
	if rec.Status.IsInert() {
		return ErrRecordInert
	}

	rec.Shift = shift.NormalizeName(shiftName)
	s.recomputeLocked(rec)
	s.dirty = true
	return nil
}

func (s *MonthlySession) SetNotes(dayIndex int, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.recordLocked(dayIndex)
	if err != nil {
		return err
	}

	rec.Notes = notes
	s.dirty = true
	return nil
}

func (s *MonthlySession) recordLocked(dayIndex int) (*attendance.DayRecord, error) {
	if !s.loaded {
		return nil, attendance.ErrNoMonthLoaded
	}
	if dayIndex < 0 || dayIndex >= len(s.records) {
		return nil, fmt.Errorf("day index %d out of range for %s", dayIndex, s.key)
	}
	return &s.records[dayIndex], nil
}

// recomputeLocked re-derives the metric fields from the record's current
// inputs. An empty driving input resets its metrics to zero instead of
// retaining stale values.
func (s *MonthlySession) recomputeLocked(rec *attendance.DayRecord) {
	rec.LatenessMinutes = 0
	rec.EarlyArrivalMinutes = 0
	rec.OvertimeMinutes = 0
	if rec.CheckIn != "" && rec.Shift != "" {
		rec.LatenessMinutes = CalculateLateness(rec.CheckIn, rec.Shift, s.registry)
		rec.EarlyArrivalMinutes = CalculateEarlyArrival(rec.CheckIn, rec.Shift, s.registry)
	}
	if rec.CheckOut != "" && rec.Shift != "" {
		rec.OvertimeMinutes = CalculateOvertime(rec.CheckOut, rec.Shift, s.registry)
	}
}

// Save bulk-writes the whole month. Only one save may be in flight per
// session; on failure the in-memory edits and the dirty flag survive so
// the caller can retry without re-entering anything.
func (s *MonthlySession) Save(ctx context.Context) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return attendance.ErrNoMonthLoaded
	}
	if s.savePending {
		s.mu.Unlock()
		return attendance.ErrSaveInFlight
	}
	s.savePending = true
	key := s.key
	records := make([]attendance.DayRecord, len(s.records))
	copy(records, s.records)
	s.mu.Unlock()

	err := s.src.SaveMonthRecords(ctx, key, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.savePending = false
	if err != nil {
		return fmt.Errorf("save month %s: %w", key, err)
	}
	if key == s.key {
		s.baseline = records
		s.dirty = false
	}
	return nil
}

// Discard throws away in-memory edits by re-fetching the month from the
// source. This is a full reload, not a local undo.
func (s *MonthlySession) Discard(ctx context.Context) error {
	return s.Load(ctx)
}

// SwitchMonth abandons the current month without saving and loads the
// new key. Unsaved edits are silently lost; callers that care must
// check HasChanges and prompt first.
func (s *MonthlySession) SwitchMonth(ctx context.Context, year, month int) error {
	s.mu.Lock()
	s.key = MonthKey{EmployeeID: s.key.EmployeeID, Year: year, Month: month}
	s.loaded = false
	s.dirty = false
	s.records = nil
	s.baseline = nil
	s.mu.Unlock()

	return s.Load(ctx)
}
