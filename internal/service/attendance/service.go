package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/timewise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.SubmissionRepository
	employee.EmployeeRepository
}

func NewAttendanceService(db *database.DB, submissionRepo attendance.SubmissionRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		SubmissionRepository: submissionRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.SignInOutRequest) (attendance.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByName(ctx, req.Name)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	now := time.Now()
	// Date is the working day, not a timestamp.
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sub, err := a.SubmissionRepository.CreateOpen(ctx, emp.Name, date, now)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	return attendance.ClockResponse{
		Message:         fmt.Sprintf("Clock In successful for %s", emp.Name),
		EmployeeDetails: employee.ToDetails(emp),
		Submission:      attendance.ToSubmissionResponse(sub),
		Timestamp:       now.Format("2006-01-02 15:04:05"),
	}, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.SignInOutRequest) (attendance.ClockResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClockResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByName(ctx, req.Name)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	now := time.Now()

	sub, err := a.SubmissionRepository.CloseLatestOpen(ctx, emp.Name, now)
	if err != nil {
		return attendance.ClockResponse{}, err
	}

	return attendance.ClockResponse{
		Message:         fmt.Sprintf("Clock Out successful for %s", emp.Name),
		EmployeeDetails: employee.ToDetails(emp),
		Submission:      attendance.ToSubmissionResponse(sub),
		Timestamp:       now.Format("2006-01-02 15:04:05"),
	}, nil
}

// Decide implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Decide(ctx context.Context, submissionID int64, req attendance.DecisionRequest) (attendance.DecisionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DecisionResponse{}, err
	}

	status := attendance.StatusApproved
	message := "Submission approved successfully"
	if req.Action == attendance.ActionReject {
		status = attendance.StatusRejected
		message = "Submission rejected successfully"
	}

	sub, err := a.SubmissionRepository.Decide(ctx, submissionID, status)
	if err != nil {
		return attendance.DecisionResponse{}, err
	}

	return attendance.DecisionResponse{
		Message:    message,
		Submission: attendance.ToSubmissionResponse(sub),
	}, nil
}
