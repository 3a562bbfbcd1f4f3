package response

import (
	"errors"
	"net/http"

	"github.com/mhdalhzau/memoor-sub001/internal/domain/attendance"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/auth"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/employee"
	"github.com/mhdalhzau/memoor-sub001/internal/domain/user"
	"github.com/mhdalhzau/memoor-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrMonthNotFound):
		NotFound(w, "Attendance month not found")
	case errors.Is(err, attendance.ErrForbidden):
		Forbidden(w, "Not allowed to access this attendance data")
	case errors.Is(err, attendance.ErrSaveInFlight):
		Conflict(w, "A save is already in progress for this month")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
