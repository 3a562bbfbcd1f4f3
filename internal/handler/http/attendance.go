package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/user"
	"github.com/mhdalhzau/memoor-sub001/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetMonth(w http.ResponseWriter, r *http.Request)
	SaveMonth(w http.ResponseWriter, r *http.Request)
	ExportMonth(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// monthParams pulls the employee-month key out of the URL: the employee
// ID from the path, year and month from the query string.
func monthParams(r *http.Request) (string, int, int) {
	employeeID := chi.URLParam(r, "employeeID")
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return employeeID, year, month
}

// canReadAttendance allows managers to read anyone and staff to read
// only their own record.
func canReadAttendance(r *http.Request, employeeID string) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	if role, ok := claims["role"].(string); ok && user.Role(role).CanManageAttendance() {
		return true
	}
	ownEmployeeID, ok := claims["employee_id"].(string)
	return ok && ownEmployeeID == employeeID
}

// GetMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month := monthParams(r)

	if !canReadAttendance(r, employeeID) {
		response.HandleError(w, attendance.ErrForbidden)
		return
	}

	monthResp, err := h.attendanceService.GetMonth(r.Context(), attendance.MonthRequest{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		slog.Error("GetMonth service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthResp)
}

// SaveMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SaveMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month := monthParams(r)

	var saveReq attendance.SaveMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("SaveMonth decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	saveReq.EmployeeID = employeeID
	saveReq.Year = year
	saveReq.Month = month

	if err := saveReq.Validate(); err != nil {
		slog.Error("SaveMonth validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	monthResp, err := h.attendanceService.SaveMonth(r.Context(), saveReq)
	if err != nil {
		slog.Error("SaveMonth service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance month saved", "employee_id", employeeID, "year", year, "month", month)
	response.SuccessWithMessage(w, "Attendance saved successfully", monthResp)
}

// ExportMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ExportMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month := monthParams(r)

	if !canReadAttendance(r, employeeID) {
		response.HandleError(w, attendance.ErrForbidden)
		return
	}

	format := attendance.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = attendance.ExportText
	}

	result, err := h.attendanceService.ExportMonth(r.Context(), attendance.ExportRequest{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Format:     format,
	})
	if err != nil {
		slog.Error("ExportMonth service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Data); err != nil {
		slog.Error("ExportMonth write error", "error", err)
	}
}

// GetSummary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month := monthParams(r)

	if !canReadAttendance(r, employeeID) {
		response.HandleError(w, attendance.ErrForbidden)
		return
	}

	summary, err := h.attendanceService.SummarizeMonth(r.Context(), attendance.MonthRequest{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		slog.Error("GetSummary service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
