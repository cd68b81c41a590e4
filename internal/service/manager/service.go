package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/employee"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/manager"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/timewise-hr/attendance-backend-go/internal/repository/postgresql"
)

type ManagerServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	attendance.SubmissionRepository
}

func NewManagerService(db *database.DB, employeeRepo employee.EmployeeRepository, submissionRepo attendance.SubmissionRepository) manager.ManagerService {
	return &ManagerServiceImpl{
		db:                   db,
		EmployeeRepository:   employeeRepo,
		SubmissionRepository: submissionRepo,
	}
}

// managedNames resolves the caller to a manager and returns the names of
// their direct reports. An unknown caller gets the same ErrManagerOnly as a
// non-manager so the endpoint never leaks directory contents.
func (m *ManagerServiceImpl) managedNames(ctx context.Context, managerName string) ([]string, error) {
	caller, err := m.EmployeeRepository.GetByName(ctx, managerName)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, manager.ErrManagerOnly
		}
		return nil, err
	}

	if !caller.IsManager() {
		return nil, manager.ErrManagerOnly
	}

	reports, err := m.EmployeeRepository.ListByManager(ctx, caller.Name)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(reports))
	for _, report := range reports {
		names = append(names, report.Name)
	}
	return names, nil
}

// Submissions implements manager.ManagerService.
func (m *ManagerServiceImpl) Submissions(ctx context.Context, managerName string) (manager.ReviewQueueResponse, error) {
	names, err := m.managedNames(ctx, managerName)
	if err != nil {
		return manager.ReviewQueueResponse{}, err
	}

	subs, err := m.SubmissionRepository.ListByEmployeeNames(ctx, names)
	if err != nil {
		return manager.ReviewQueueResponse{}, err
	}

	// An empty queue is a success, not an error.
	responses := make([]attendance.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, attendance.ToSubmissionResponse(sub))
	}

	return manager.ReviewQueueResponse{
		Manager:     managerName,
		Submissions: responses,
	}, nil
}

// Reset implements manager.ManagerService.
//
// The managed-names resolution and the bulk delete run in one transaction
// so a roster change between the two reads cannot widen the deletion.
func (m *ManagerServiceImpl) Reset(ctx context.Context, managerName string) (manager.ResetResponse, error) {
	var deleted int64
	err := postgresql.WithTransaction(ctx, m.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		names, err := m.managedNames(txCtx, managerName)
		if err != nil {
			return err
		}

		deleted, err = m.SubmissionRepository.DeleteByEmployeeNames(txCtx, names)
		return err
	})
	if err != nil {
		return manager.ResetResponse{}, err
	}

	return manager.ResetResponse{
		Message:      fmt.Sprintf("Deleted %d submissions for employees managed by %s", deleted, managerName),
		DeletedCount: deleted,
	}, nil
}
