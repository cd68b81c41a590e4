package attendance

import (
	"time"

	"github.com/timewise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/validator"
)

type SignInOutRequest struct {
	Name   string `json:"name"`
	Action string `json:"action"`
}

func (r *SignInOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if !validator.IsInSlice(r.Action, []string{ActionClockIn, ActionClockOut}) {
		return ErrInvalidClockAction
	}

	return nil
}

type DecisionRequest struct {
	Action string `json:"action"`
}

func (r *DecisionRequest) Validate() error {
	if !validator.IsInSlice(r.Action, []string{ActionApprove, ActionReject}) {
		return ErrInvalidDecision
	}
	return nil
}

type SubmissionResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Status    string  `json:"status"`
	Role      *string `json:"role,omitempty"`
}

type ClockResponse struct {
	Message         string                   `json:"message"`
	EmployeeDetails employee.EmployeeDetails `json:"employee_details"`
	Submission      SubmissionResponse       `json:"submission"`
	Timestamp       string                   `json:"timestamp"`
}

type DecisionResponse struct {
	Message    string             `json:"message"`
	Submission SubmissionResponse `json:"submission"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func ToSubmissionResponse(s Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:        s.ID,
		Name:      s.EmployeeName,
		Date:      s.Date.Format("2006-01-02"),
		StartTime: s.StartTime.Format("2006-01-02 15:04:05"),
		EndTime:   timePtrToString(s.EndTime),
		Status:    string(s.Status),
		Role:      s.EmployeeRole,
	}
}
