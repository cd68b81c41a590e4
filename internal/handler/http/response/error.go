package response

import (
	"errors"
	"net/http"

	"github.com/timewise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/auth"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/manager"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid credentials")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "You already have an open session for today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No open session to clock out")
	case errors.Is(err, attendance.ErrSubmissionNotFound):
		NotFound(w, "Submission not found")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Submission has already been approved or rejected")
	case errors.Is(err, attendance.ErrInvalidClockAction):
		BadRequest(w, "Invalid action. Use 'Clock In' or 'Clock Out'", nil)
	case errors.Is(err, attendance.ErrInvalidDecision):
		BadRequest(w, "Invalid action. Use 'Approve' or 'Reject'", nil)

	// Manager domain errors
	case errors.Is(err, manager.ErrManagerOnly):
		Forbidden(w, "Access denied. Only managers can access this endpoint")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
