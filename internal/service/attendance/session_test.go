package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/employee"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/shift"
)

type fakeMonthSource struct {
	mu         sync.Mutex
	reg        shift.Registry
	fetchCalls int
	fetchErrs  []error
	saveErr    error
	saveGate   chan struct{}
	saved      map[MonthKey][]attendance.DayRecord
}

func newFakeMonthSource() *fakeMonthSource {
	return &fakeMonthSource{
		reg:   shift.DefaultRegistry(),
		saved: make(map[MonthKey][]attendance.DayRecord),
	}
}

func (f *fakeMonthSource) FetchMonth(_ context.Context, key MonthKey) (shift.Registry, []attendance.DayRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	if len(f.fetchErrs) > 0 {
		err := f.fetchErrs[0]
		f.fetchErrs = f.fetchErrs[1:]
		if err != nil {
			return shift.Registry{}, nil, err
		}
	}
	stored := f.saved[key]
	records := FillMonth(key.Year, key.Month, stored)
	return f.reg, records, nil
}

func (f *fakeMonthSource) SaveMonthRecords(_ context.Context, key MonthKey, records []attendance.DayRecord) error {
	if f.saveGate != nil {
		<-f.saveGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := make([]attendance.DayRecord, len(records))
	copy(cp, records)
	f.saved[key] = cp
	return nil
}

func (f *fakeMonthSource) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}

func testKey() MonthKey {
	return MonthKey{EmployeeID: "emp-1", Year: 2025, Month: 1}
}

func loadedSession(t *testing.T, src *fakeMonthSource) *MonthlySession {
	t.Helper()
	s := NewMonthlySession(src, testKey())
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestSessionLoadFillsWholeMonth(t *testing.T) {
	src := newFakeMonthSource()
	s := loadedSession(t, src)

	records := s.Records()
	require.Len(t, records, 31)
	assert.Equal(t, "2025-01-01", records[0].Date)
	assert.Equal(t, attendance.StatusUnset, records[0].Status)
	assert.False(t, s.HasChanges())
}

func TestSessionLoadRetriesTransientFailures(t *testing.T) {
	src := newFakeMonthSource()
	src.fetchErrs = []error{errors.New("connection reset"), errors.New("connection reset")}

	s := NewMonthlySession(src, testKey())
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, 3, src.fetchCount())
}

func TestSessionLoadGivesUpAfterBoundedAttempts(t *testing.T) {
	src := newFakeMonthSource()
	src.fetchErrs = []error{
		errors.New("connection reset"),
		errors.New("connection reset"),
		errors.New("connection reset"),
	}

	s := NewMonthlySession(src, testKey())
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, src.fetchCount())
}

func TestSessionLoadTerminalErrorIsNotRetried(t *testing.T) {
	src := newFakeMonthSource()
	src.fetchErrs = []error{employee.ErrEmployeeNotFound}

	s := NewMonthlySession(src, testKey())
	err := s.Load(context.Background())
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Equal(t, 1, src.fetchCount())
}

func TestSessionEditBeforeLoad(t *testing.T) {
	s := NewMonthlySession(newFakeMonthSource(), testKey())

	err := s.SetCheckIn(0, "07:10")
	assert.ErrorIs(t, err, attendance.ErrNoMonthLoaded)
	assert.ErrorIs(t, s.Save(context.Background()), attendance.ErrNoMonthLoaded)
}

func TestSessionDayIndexOutOfRange(t *testing.T) {
	s := loadedSession(t, newFakeMonthSource())

	assert.Error(t, s.SetCheckIn(31, "07:10"))
	assert.Error(t, s.SetNotes(-1, "x"))
}

func TestSessionMetricsFollowEdits(t *testing.T) {
	s := loadedSession(t, newFakeMonthSource())

	require.NoError(t, s.SetCheckIn(0, "07:10"))
	rec := s.Records()[0]
	assert.Equal(t, "pagi", rec.Shift, "shift detected from check-in")
	assert.Equal(t, 10, rec.LatenessMinutes)
	assert.Equal(t, 0, rec.EarlyArrivalMinutes)

	require.NoError(t, s.SetCheckOut(0, "15:05"))
	rec = s.Records()[0]
	assert.Equal(t, 5, rec.OvertimeMinutes)

	// Correcting the check-in re-derives both arrival metrics and
	// leaves the overtime untouched.
	require.NoError(t, s.SetCheckIn(0, "06:50"))
	rec = s.Records()[0]
	assert.Equal(t, 0, rec.LatenessMinutes)
	assert.Equal(t, 10, rec.EarlyArrivalMinutes)
	assert.Equal(t, 5, rec.OvertimeMinutes)
	assert.True(t, s.HasChanges())
}

func TestSessionExplicitShiftIsNotOverridden(t *testing.T) {
	s := loadedSession(t, newFakeMonthSource())

	require.NoError(t, s.SetShift(0, "Malam"))
	require.NoError(t, s.SetCheckIn(0, "07:10"))
	assert.Equal(t, "malam", s.Records()[0].Shift)
}

func TestSessionClearingCheckInResetsArrivalMetrics(t *testing.T) {
	s := loadedSession(t, newFakeMonthSource())

	require.NoError(t, s.SetCheckIn(0, "07:30"))
	require.Equal(t, 30, s.Records()[0].LatenessMinutes)

	require.NoError(t, s.SetCheckIn(0, ""))
	rec := s.Records()[0]
	assert.Zero(t, rec.LatenessMinutes)
	assert.Zero(t, rec.EarlyArrivalMinutes)
}

func TestSessionInertStatusClearsTimeFields(t *testing.T) {
	s := loadedSession(t, newFakeMonthSource())

	require.NoError(t, s.SetCheckIn(0, "07:10"))
	require.NoError(t, s.SetCheckOut(0, "16:00"))
	require.NoError(t, s.SetStatus(0, attendance.StatusLeave))

	rec := s.Records()[0]
	assert.Empty(t, rec.CheckIn)
	assert.Empty(t, rec.CheckOut)
	assert.Empty(t, rec.Shift)
	assert.Zero(t, rec.LatenessMinutes)
	assert.Zero(t, rec.EarlyArrivalMinutes)
	assert.Zero(t, rec.OvertimeMinutes)

	assert.ErrorIs(t, s.SetCheckIn(0, "07:10"), ErrRecordInert)
	assert.ErrorIs(t, s.SetCheckOut(0, "16:00"), ErrRecordInert)
	assert.ErrorIs(t, s.SetShift(0, "pagi"), ErrRecordInert)

	// Notes stay editable regardless of status.
	require.NoError(t, s.SetNotes(0, "cuti tahunan"))
	assert.Equal(t, "cuti tahunan", s.Records()[0].Notes)

	// Reverting to an active status reopens the time fields.
	require.NoError(t, s.SetStatus(0, attendance.StatusPresent))
	require.NoError(t, s.SetCheckIn(0, "07:10"))
	assert.Equal(t, 10, s.Records()[0].LatenessMinutes)
}

func TestSessionRejectsInvalidStatus(t *testing.T) {
	s := loadedSession(t, newFakeMonthSource())
	assert.Error(t, s.SetStatus(0, attendance.Status("sakit")))
}

func TestSessionSaveClearsDirtyAndPersists(t *testing.T) {
	src := newFakeMonthSource()
	s := loadedSession(t, src)

	require.NoError(t, s.SetCheckIn(2, "15:10"))
	require.True(t, s.HasChanges())

	require.NoError(t, s.Save(context.Background()))
	assert.False(t, s.HasChanges())

	saved := src.saved[testKey()]
	require.Len(t, saved, 31)
	assert.Equal(t, "15:10", saved[2].CheckIn)
	assert.Equal(t, "siang", saved[2].Shift)
}

func TestSessionSaveFailureKeepsEdits(t *testing.T) {
	src := newFakeMonthSource()
	s := loadedSession(t, src)
	require.NoError(t, s.SetCheckIn(0, "07:10"))

	src.saveErr = errors.New("write timeout")
	require.Error(t, s.Save(context.Background()))
	assert.True(t, s.HasChanges(), "edits survive a failed save")
	assert.Equal(t, "07:10", s.Records()[0].CheckIn)
	assert.False(t, s.SavePending())

	src.saveErr = nil
	require.NoError(t, s.Save(context.Background()))
	assert.False(t, s.HasChanges())
}

func TestSessionSecondSaveWhilePending(t *testing.T) {
	src := newFakeMonthSource()
	src.saveGate = make(chan struct{})
	s := loadedSession(t, src)
	require.NoError(t, s.SetCheckIn(0, "07:10"))

	done := make(chan error, 1)
	go func() { done <- s.Save(context.Background()) }()

	require.Eventually(t, s.SavePending, time.Second, time.Millisecond)
	assert.ErrorIs(t, s.Save(context.Background()), attendance.ErrSaveInFlight)

	close(src.saveGate)
	require.NoError(t, <-done)
	assert.False(t, s.SavePending())
}

func TestSessionDiscardReloadsFromSource(t *testing.T) {
	src := newFakeMonthSource()
	s := loadedSession(t, src)

	require.NoError(t, s.SetCheckIn(0, "07:10"))
	require.NoError(t, s.Discard(context.Background()))

	assert.False(t, s.HasChanges())
	assert.Empty(t, s.Records()[0].CheckIn)
}

func TestSessionSwitchMonthDropsUnsavedEdits(t *testing.T) {
	src := newFakeMonthSource()
	s := loadedSession(t, src)
	require.NoError(t, s.SetCheckIn(0, "07:10"))

	require.NoError(t, s.SwitchMonth(context.Background(), 2025, 2))

	assert.Equal(t, MonthKey{EmployeeID: "emp-1", Year: 2025, Month: 2}, s.Key())
	assert.False(t, s.HasChanges())
	records := s.Records()
	require.Len(t, records, 28)
	assert.Empty(t, records[0].CheckIn)
}

func TestSessionSummaryAggregatesCurrentMonth(t *testing.T) {
	s := loadedSession(t, newFakeMonthSource())

	require.NoError(t, s.SetCheckIn(0, "07:10"))
	require.NoError(t, s.SetCheckOut(0, "15:20"))
	require.NoError(t, s.SetStatus(0, attendance.StatusPresent))
	require.NoError(t, s.SetStatus(1, attendance.StatusLeave))

	sum := s.Summary()
	assert.Equal(t, 1, sum.PresentDays)
	assert.Equal(t, 1, sum.LeaveDays)
	assert.Equal(t, 10, sum.TotalLatenessMinutes)
	assert.Equal(t, 20, sum.TotalOvertimeMinutes)
}
