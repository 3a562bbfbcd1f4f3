package attendance

import (
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// MonthRequest keys one employee-month fetch.
type MonthRequest struct {
	EmployeeID string
	Year       int
	Month      int
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StorePayload carries a store's identity and its attendance time
// windows on the fetch response.
type StorePayload struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	EntryTimeStart *string `json:"entryTimeStart,omitempty"`
	EntryTimeEnd   *string `json:"entryTimeEnd,omitempty"`
	ExitTimeStart  *string `json:"exitTimeStart,omitempty"`
	ExitTimeEnd    *string `json:"exitTimeEnd,omitempty"`
}

type EmployeePayload struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Stores []StorePayload `json:"stores"`
}

// MonthResponse is the fetch payload: the employee with their stores,
// plus one record per calendar day of the requested month.
type MonthResponse struct {
	Employee       EmployeePayload `json:"employee"`
	AttendanceData []DayRecord     `json:"attendanceData"`
}

// SaveMonthRequest is the bulk-save payload for one employee-month.
type SaveMonthRequest struct {
	EmployeeID     string      `json:"-"`
	Year           int         `json:"-"`
	Month          int         `json:"-"`
	AttendanceData []DayRecord `json:"attendanceData"`
}

func (r *SaveMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	key := MonthRequest{EmployeeID: r.EmployeeID, Year: r.Year, Month: r.Month}
	if err := key.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(r.AttendanceData) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "attendanceData",
			Message: "attendanceData must not be empty",
		})
	}

	for i, rec := range r.AttendanceData {
		field := "attendanceData[" + validator.Itoa(i) + "]"
		if _, ok := validator.IsValidDate(rec.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".date",
				Message: "date must be YYYY-MM-DD",
			})
		}
		if rec.CheckIn != "" && !validator.IsValidClockTime(rec.CheckIn) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".checkIn",
				Message: "checkIn must be HH:MM",
			})
		}
		if rec.CheckOut != "" && !validator.IsValidClockTime(rec.CheckOut) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".checkOut",
				Message: "checkOut must be HH:MM",
			})
		}
		if rec.Status != "" && !rec.Status.Valid() {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".attendanceStatus",
				Message: "attendanceStatus must be one of belum_diatur, hadir, cuti, alpha",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportFormat selects the month export rendering.
type ExportFormat string

const (
	ExportText  ExportFormat = "text"
	ExportExcel ExportFormat = "xlsx"
)

type ExportRequest struct {
	EmployeeID string
	Year       int
	Month      int
	Format     ExportFormat
}

func (r *ExportRequest) Validate() error {
	var errs validator.ValidationErrors

	key := MonthRequest{EmployeeID: r.EmployeeID, Year: r.Year, Month: r.Month}
	if err := key.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if r.Format != ExportText && r.Format != ExportExcel {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be text or xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportResult is a rendered month ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MonthSummary aggregates one reconciled month for downstream consumers
// (the payroll collaborator reads counts and minute totals; no money is
// computed here).
type MonthSummary struct {
	PresentDays              int `json:"presentDays"`
	LeaveDays                int `json:"leaveDays"`
	AbsentDays               int `json:"absentDays"`
	UnsetDays                int `json:"unsetDays"`
	TotalLatenessMinutes     int `json:"totalLatenessMinutes"`
	TotalOvertimeMinutes     int `json:"totalOvertimeMinutes"`
	TotalEarlyArrivalMinutes int `json:"totalEarlyArrivalMinutes"`
}
