package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/timewise-hr/attendance-backend-go/internal/pkg/database"
)

type submissionRepositoryImpl struct {
	db *database.DB
}

func NewSubmissionRepository(db *database.DB) attendance.SubmissionRepository {
	return &submissionRepositoryImpl{db: db}
}

// CreateOpen implements attendance.SubmissionRepository.
//
// The open-session uniqueness check and the insert are a single conditional
// statement, so two concurrent clock-ins for the same employee and date
// cannot both succeed.
func (s *submissionRepositoryImpl) CreateOpen(ctx context.Context, employeeName string, date time.Time, startTime time.Time) (attendance.Submission, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO submissions (name, date, start_time, status)
		SELECT $1, $2::date, $3, $4
		WHERE NOT EXISTS (
			SELECT 1 FROM submissions
			WHERE name = $1
			  AND date = $2::date
			  AND end_time IS NULL
		)
		RETURNING id, created_at, updated_at
	`

	sub := attendance.Submission{
		EmployeeName: employeeName,
		Date:         date,
		StartTime:    startTime,
		Status:       attendance.StatusPending,
	}

	// The date is sent preformatted so the cast does not depend on the
	// server's time zone.
	err := q.QueryRow(ctx, query, employeeName, date.Format("2006-01-02"), startTime, attendance.StatusPending).
		Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Submission{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Submission{}, fmt.Errorf("failed to create open session: %w", err)
	}

	return sub, nil
}

// CloseLatestOpen implements attendance.SubmissionRepository.
//
// The search is deliberately not restricted to today's date: an open
// session from a prior day is eligible for close-out so shifts crossing
// midnight can still be closed. The highest id wins when several exist.
func (s *submissionRepositoryImpl) CloseLatestOpen(ctx context.Context, employeeName string, endTime time.Time) (attendance.Submission, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE submissions
		SET end_time = $2, updated_at = NOW()
		WHERE id = (
			SELECT id FROM submissions
			WHERE name = $1
			  AND end_time IS NULL
			ORDER BY id DESC
			LIMIT 1
		)
		RETURNING id, name, date, start_time, end_time, status, created_at, updated_at
	`

	var sub attendance.Submission
	err := q.QueryRow(ctx, query, employeeName, endTime).Scan(
		&sub.ID, &sub.EmployeeName, &sub.Date, &sub.StartTime, &sub.EndTime,
		&sub.Status, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Submission{}, attendance.ErrNotClockedIn
		}
		return attendance.Submission{}, fmt.Errorf("failed to close open session: %w", err)
	}

	return sub, nil
}

// Decide implements attendance.SubmissionRepository.
//
// The status transition is a single conditional update predicated on the
// current status being Pending; a second decision on the same submission
// matches zero rows. The follow-up read only classifies the failure.
func (s *submissionRepositoryImpl) Decide(ctx context.Context, id int64, status attendance.Status) (attendance.Submission, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE submissions
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		  AND status = $3
		RETURNING id, name, date, start_time, end_time, status, created_at, updated_at
	`

	var sub attendance.Submission
	err := q.QueryRow(ctx, query, id, status, attendance.StatusPending).Scan(
		&sub.ID, &sub.EmployeeName, &sub.Date, &sub.StartTime, &sub.EndTime,
		&sub.Status, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err == nil {
		return sub, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Submission{}, fmt.Errorf("failed to update submission status: %w", err)
	}

	if _, getErr := s.GetByID(ctx, id); getErr != nil {
		return attendance.Submission{}, getErr
	}
	return attendance.Submission{}, attendance.ErrAlreadyProcessed
}

// GetByID implements attendance.SubmissionRepository.
func (s *submissionRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.Submission, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, date, start_time, end_time, status, created_at, updated_at
		FROM submissions
		WHERE id = $1
	`

	var sub attendance.Submission
	err := q.QueryRow(ctx, query, id).Scan(
		&sub.ID, &sub.EmployeeName, &sub.Date, &sub.StartTime, &sub.EndTime,
		&sub.Status, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Submission{}, attendance.ErrSubmissionNotFound
		}
		return attendance.Submission{}, fmt.Errorf("failed to get submission by id: %w", err)
	}

	return sub, nil
}

// ListByEmployeeNames implements attendance.SubmissionRepository.
func (s *submissionRepositoryImpl) ListByEmployeeNames(ctx context.Context, names []string) ([]attendance.Submission, error) {
	if len(names) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, s.db)

	query := `
		SELECT s.id, s.name, s.date, s.start_time, s.end_time, s.status,
			   s.created_at, s.updated_at,
			   e.role AS employee_role
		FROM submissions s
		LEFT JOIN employees e ON e.name = s.name
		WHERE s.name = ANY($1)
		ORDER BY s.id DESC
	`

	rows, err := q.Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subs []attendance.Submission
	for rows.Next() {
		var sub attendance.Submission
		err := rows.Scan(
			&sub.ID, &sub.EmployeeName, &sub.Date, &sub.StartTime, &sub.EndTime,
			&sub.Status, &sub.CreatedAt, &sub.UpdatedAt,
			&sub.EmployeeRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, sub)
	}

	return subs, rows.Err()
}

// DeleteByEmployeeNames implements attendance.SubmissionRepository.
func (s *submissionRepositoryImpl) DeleteByEmployeeNames(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, s.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM submissions WHERE name = ANY($1)`, names)
	if err != nil {
		return 0, fmt.Errorf("failed to delete submissions: %w", err)
	}

	return commandTag.RowsAffected(), nil
}
