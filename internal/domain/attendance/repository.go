package attendance

import (
	"context"
	"time"
)

// SubmissionRepository defines data access for the attendance ledger.
// The uniqueness and status checks are expressed as single conditional
// statements so concurrent requests cannot race a separate read-then-write.
type SubmissionRepository interface {
	// CreateOpen inserts a new open session for the employee on the given
	// date. Returns ErrAlreadyClockedIn when an open session already exists
	// for that employee and date.
	CreateOpen(ctx context.Context, employeeName string, date time.Time, startTime time.Time) (Submission, error)

	// CloseLatestOpen sets the end time of the employee's most recent open
	// session, regardless of its date (shifts may cross midnight).
	// Returns ErrNotClockedIn when no open session exists.
	CloseLatestOpen(ctx context.Context, employeeName string, endTime time.Time) (Submission, error)

	// Decide transitions a Pending submission to the given terminal status.
	// Returns ErrSubmissionNotFound for an unknown id and
	// ErrAlreadyProcessed when the submission is no longer Pending.
	Decide(ctx context.Context, id int64, status Status) (Submission, error)

	// GetByID retrieves a submission by id.
	GetByID(ctx context.Context, id int64) (Submission, error)

	// ListByEmployeeNames retrieves all submissions belonging to the given
	// employees, newest first.
	ListByEmployeeNames(ctx context.Context, names []string) ([]Submission, error)

	// DeleteByEmployeeNames removes all submissions belonging to the given
	// employees and reports how many were deleted.
	DeleteByEmployeeNames(ctx context.Context, names []string) (int64, error)
}
