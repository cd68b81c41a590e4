package manager

import (
	"github.com/timewise-hr/attendance-backend-go/internal/domain/attendance"
)

type ReviewQueueResponse struct {
	Manager     string                          `json:"manager"`
	Submissions []attendance.SubmissionResponse `json:"submissions"`
}

type ResetResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}
