package attendance

import (
	"time"

	"github.com/mhdalhzau/memoor-sub001/internal/pkg/validator"
)

// Status is the attendance state of one employee-day.
type Status string

const (
	StatusUnset   Status = "belum_diatur"
	StatusPresent Status = "hadir"
	StatusLeave   Status = "cuti"
	StatusAbsent  Status = "alpha"
)

var StatusValues = []string{
	string(StatusUnset),
	string(StatusPresent),
	string(StatusLeave),
	string(StatusAbsent),
}

func (s Status) Valid() bool {
	return validator.IsInSlice(string(s), StatusValues)
}

// IsInert reports whether the status excludes the day from time
// accounting entirely. An inert record carries no check-in, check-out,
// shift, or derived minutes.
func (s Status) IsInert() bool {
	return s == StatusLeave || s == StatusAbsent
}

// DayRecord is one employee's attendance for one calendar date.
//
// Invariants: when Status is inert (cuti/alpha) every time field is
// empty and every minute field is zero. When CheckIn and Shift are both
// present, the three minute fields equal the current calculator output
// for that pair; they are never hand-edited.
type DayRecord struct {
	Date                string `json:"date"` // "YYYY-MM-DD"
	Day                 string `json:"day"`  // weekday label (Senin..Minggu)
	CheckIn             string `json:"checkIn"`
	CheckOut            string `json:"checkOut"`
	Shift               string `json:"shift"`
	LatenessMinutes     int    `json:"latenessMinutes"`
	OvertimeMinutes     int    `json:"overtimeMinutes"`
	EarlyArrivalMinutes int    `json:"earlyArrivalMinutes"`
	Status              Status `json:"attendanceStatus"`
	Notes               string `json:"notes"`
}

// ClearTimeFields wipes everything an inert record must not carry.
func (r *DayRecord) ClearTimeFields() {
	r.CheckIn = ""
	r.CheckOut = ""
	r.Shift = ""
	r.LatenessMinutes = 0
	r.OvertimeMinutes = 0
	r.EarlyArrivalMinutes = 0
}

var dayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

// DayName returns the Indonesian weekday label for a date.
func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}

// BlankRecord returns the default record that conceptually exists for
// every day of a viewed month before anything has been entered.
func BlankRecord(date time.Time) DayRecord {
	return DayRecord{
		Date:   date.Format("2006-01-02"),
		Day:    DayName(date),
		Status: StatusUnset,
	}
}

// DaysInMonth returns the number of calendar days in (year, month).
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
