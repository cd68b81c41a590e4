package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in/clock-out errors
	ErrAlreadyClockedIn   = errors.New("you already have an open session for today")
	ErrNotClockedIn       = errors.New("no open session to clock out")
	ErrInvalidClockAction = errors.New("invalid action. Use 'Clock In' or 'Clock Out'")

	// Decision errors
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrAlreadyProcessed   = errors.New("submission has already been approved or rejected")
	ErrInvalidDecision    = errors.New("invalid action. Use 'Approve' or 'Reject'")
)
