package manager

import "context"

// ManagerService gates access to direct reports' submissions. A caller
// qualifies when the directory resolves them to an employee whose role is
// "Manager" (case-insensitive); anything else is ErrManagerOnly, never
// partial data.
type ManagerService interface {
	// Submissions returns all submissions of the caller's direct reports,
	// newest first. An empty queue is a success, not an error.
	Submissions(ctx context.Context, managerName string) (ReviewQueueResponse, error)

	// Reset deletes all submissions of the caller's direct reports and
	// reports the number removed. Irreversible.
	Reset(ctx context.Context, managerName string) (ResetResponse, error)
}
