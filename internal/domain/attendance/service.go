package attendance

import (
	"context"
)

// AttendanceService defines the clock-in/clock-out state machine and the
// decision transition.
type AttendanceService interface {
	// ClockIn opens a session for today. Fails when the employee is unknown
	// or an open session already exists for today.
	ClockIn(ctx context.Context, req SignInOutRequest) (ClockResponse, error)

	// ClockOut closes the employee's most recent open session. Fails when
	// the employee is unknown or no open session exists.
	ClockOut(ctx context.Context, req SignInOutRequest) (ClockResponse, error)

	// Decide approves or rejects a Pending submission. Exactly one
	// transition is permitted per submission.
	Decide(ctx context.Context, submissionID int64, req DecisionRequest) (DecisionResponse, error)
}
