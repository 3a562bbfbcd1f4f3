package attendance

import (
	"time"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/shift"
)

// Reconcile normalizes one record against the active registry: inert
// statuses lose every time field, everything else gets its three metric
// fields re-derived from (checkIn, checkOut, shift). The derived fields
// of the input are ignored; they are pure outputs, never inputs.
func Reconcile(rec attendance.DayRecord, reg shift.Registry) attendance.DayRecord {
	if rec.Status == "" {
		rec.Status = attendance.StatusUnset
	}
	if rec.Day == "" {
		if d, err := time.Parse("2006-01-02", rec.Date); err == nil {
			rec.Day = attendance.DayName(d)
		}
	}

	if rec.Status.IsInert() {
		rec.ClearTimeFields()
		return rec
	}

	rec.LatenessMinutes = 0
	rec.EarlyArrivalMinutes = 0
	rec.OvertimeMinutes = 0
	if rec.CheckIn != "" && rec.Shift != "" {
		rec.LatenessMinutes = CalculateLateness(rec.CheckIn, rec.Shift, reg)
		rec.EarlyArrivalMinutes = CalculateEarlyArrival(rec.CheckIn, rec.Shift, reg)
	}
	if rec.CheckOut != "" && rec.Shift != "" {
		rec.OvertimeMinutes = CalculateOvertime(rec.CheckOut, rec.Shift, reg)
	}
	return rec
}

// FillMonth expands the stored rows of one employee-month into a full
// calendar: one record per day, blanks where nothing was stored yet.
func FillMonth(year, month int, stored []attendance.DayRecord) []attendance.DayRecord {
	byDate := make(map[string]attendance.DayRecord, len(stored))
	for _, rec := range stored {
		byDate[rec.Date] = rec
	}

	days := attendance.DaysInMonth(year, month)
	records := make([]attendance.DayRecord, 0, days)
	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if rec, ok := byDate[date.Format("2006-01-02")]; ok {
			if rec.Day == "" {
				rec.Day = attendance.DayName(date)
			}
			records = append(records, rec)
		} else {
			records = append(records, attendance.BlankRecord(date))
		}
	}
	return records
}

// Summarize aggregates a month's records for downstream consumers.
func Summarize(records []attendance.DayRecord) attendance.MonthSummary {
	var sum attendance.MonthSummary
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			sum.PresentDays++
		case attendance.StatusLeave:
			sum.LeaveDays++
		case attendance.StatusAbsent:
			sum.AbsentDays++
		default:
			sum.UnsetDays++
		}
		sum.TotalLatenessMinutes += rec.LatenessMinutes
		sum.TotalOvertimeMinutes += rec.OvertimeMinutes
		sum.TotalEarlyArrivalMinutes += rec.EarlyArrivalMinutes
	}
	return sum
}
