package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/employee"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/shift"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/store"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	storeRepo      store.Repository
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	storeRepo store.Repository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		storeRepo:      storeRepo,
	}
}

var _ attendance.Service = (*AttendanceServiceImpl)(nil)
var _ MonthSource = (*AttendanceServiceImpl)(nil)

// registryFor resolves the shift table driving an employee's attendance:
// the first assigned store's configuration, or the default registry when
// the employee has no store. Never fails; bad configuration degrades.
func (a *AttendanceServiceImpl) registryFor(ctx context.Context, employeeID string) (shift.Registry, []store.Store, error) {
	stores, err := a.storeRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return shift.Registry{}, nil, fmt.Errorf("failed to list stores for employee: %w", err)
	}
	if len(stores) == 0 {
		slog.Warn("employee has no store assignment, using default shifts", "employee_id", employeeID)
		return shift.DefaultRegistry(), stores, nil
	}
	return shift.Resolve(stores[0].Shifts), stores, nil
}

// loadMonth assembles one employee-month: stored rows blank-filled to
// the calendar length, every record re-reconciled against the current
// registry so a shift-table edit can never leave stale minutes behind.
func (a *AttendanceServiceImpl) loadMonth(ctx context.Context, employeeID string, year, month int) (shift.Registry, []store.Store, []attendance.DayRecord, error) {
	reg, stores, err := a.registryFor(ctx, employeeID)
	if err != nil {
		return shift.Registry{}, nil, nil, err
	}

	stored, err := a.attendanceRepo.GetMonth(ctx, employeeID, year, month)
	if err != nil {
		return shift.Registry{}, nil, nil, fmt.Errorf("failed to get attendance month: %w", err)
	}

	records := FillMonth(year, month, stored)
	for i := range records {
		records[i] = Reconcile(records[i], reg)
	}
	return reg, stores, records, nil
}

// GetMonth implements attendance.Service.
func (a *AttendanceServiceImpl) GetMonth(ctx context.Context, req attendance.MonthRequest) (attendance.MonthResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MonthResponse{}, err
	}

	_, stores, records, err := a.loadMonth(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return attendance.MonthResponse{}, err
	}

	return buildMonthResponse(emp, stores, records), nil
}

// SaveMonth implements attendance.Service. The submitted records are
// blank-filled to the whole month and every metric field is re-derived
// server-side before the atomic replace; clients cannot hand-edit the
// derived minutes.
func (a *AttendanceServiceImpl) SaveMonth(ctx context.Context, req attendance.SaveMonthRequest) (attendance.MonthResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MonthResponse{}, err
	}

	reg, stores, err := a.registryFor(ctx, req.EmployeeID)
	if err != nil {
		return attendance.MonthResponse{}, err
	}

	records := FillMonth(req.Year, req.Month, req.AttendanceData)
	for i := range records {
		records[i] = Reconcile(records[i], reg)
	}

	if err := a.attendanceRepo.ReplaceMonth(ctx, req.EmployeeID, req.Year, req.Month, records); err != nil {
		return attendance.MonthResponse{}, fmt.Errorf("failed to save attendance month: %w", err)
	}

	return buildMonthResponse(emp, stores, records), nil
}

// ExportMonth implements attendance.Service.
func (a *AttendanceServiceImpl) ExportMonth(ctx context.Context, req attendance.ExportRequest) (attendance.ExportResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.ExportResult{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.ExportResult{}, err
	}

	_, _, records, err := a.loadMonth(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return attendance.ExportResult{}, err
	}

	switch req.Format {
	case attendance.ExportExcel:
		data, err := ExportMonthExcel(emp.Name, req.Year, req.Month, records)
		if err != nil {
			return attendance.ExportResult{}, fmt.Errorf("failed to render excel export: %w", err)
		}
		return attendance.ExportResult{
			Filename:    fmt.Sprintf("absensi_%s_%04d-%02d.xlsx", req.EmployeeID, req.Year, req.Month),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return attendance.ExportResult{
			Filename:    fmt.Sprintf("absensi_%s_%04d-%02d.txt", req.EmployeeID, req.Year, req.Month),
			ContentType: "text/tab-separated-values",
			Data:        []byte(ExportMonthText(records)),
		}, nil
	}
}

// SummarizeMonth implements attendance.Service.
func (a *AttendanceServiceImpl) SummarizeMonth(ctx context.Context, req attendance.MonthRequest) (attendance.MonthSummary, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthSummary{}, err
	}

	if _, err := a.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.MonthSummary{}, err
	}

	_, _, records, err := a.loadMonth(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return attendance.MonthSummary{}, err
	}
	return Summarize(records), nil
}

// FetchMonth implements MonthSource for MonthlySession.
func (a *AttendanceServiceImpl) FetchMonth(ctx context.Context, key MonthKey) (shift.Registry, []attendance.DayRecord, error) {
	if _, err := a.employeeRepo.GetByID(ctx, key.EmployeeID); err != nil {
		return shift.Registry{}, nil, err
	}
	reg, _, records, err := a.loadMonth(ctx, key.EmployeeID, key.Year, key.Month)
	return reg, records, err
}

// SaveMonth (MonthSource) bulk-writes a session's records after the same
// server-side reconciliation as the HTTP path.
func (a *AttendanceServiceImpl) SaveMonthRecords(ctx context.Context, key MonthKey, records []attendance.DayRecord) error {
	reg, _, err := a.registryFor(ctx, key.EmployeeID)
	if err != nil {
		return err
	}
	full := FillMonth(key.Year, key.Month, records)
	for i := range full {
		full[i] = Reconcile(full[i], reg)
	}
	return a.attendanceRepo.ReplaceMonth(ctx, key.EmployeeID, key.Year, key.Month, full)
}

func buildMonthResponse(emp employee.Employee, stores []store.Store, records []attendance.DayRecord) attendance.MonthResponse {
	storePayloads := make([]attendance.StorePayload, 0, len(stores))
	for _, st := range stores {
		storePayloads = append(storePayloads, attendance.StorePayload{
			ID:             st.ID,
			Name:           st.Name,
			EntryTimeStart: st.EntryTimeStart,
			EntryTimeEnd:   st.EntryTimeEnd,
			ExitTimeStart:  st.ExitTimeStart,
			ExitTimeEnd:    st.ExitTimeEnd,
		})
	}
	return attendance.MonthResponse{
		Employee: attendance.EmployeePayload{
			ID:     emp.ID,
			Name:   emp.Name,
			Stores: storePayloads,
		},
		AttendanceData: records,
	}
}
