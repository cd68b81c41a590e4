package attendance

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Actions accepted on the sign-in-out endpoint.
const (
	ActionClockIn  = "Clock In"
	ActionClockOut = "Clock Out"
)

// Actions accepted on the update-submission endpoint.
const (
	ActionApprove = "Approve"
	ActionReject  = "Reject"
)

// Submission is one employee's clock-in/clock-out record for a calendar
// date. A submission with a nil EndTime is an open session; at most one
// open session may exist per employee per date.
type Submission struct {
	ID           int64
	EmployeeName string
	Date         time.Time
	StartTime    time.Time
	EndTime      *time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined from the directory for review listings
	EmployeeRole *string
}
