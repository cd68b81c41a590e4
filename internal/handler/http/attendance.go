package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/timewise-hr/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SignInOut(w http.ResponseWriter, r *http.Request)
	UpdateSubmission(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// SignInOut implements AttendanceHandler. One endpoint serves both actions,
// dispatched on the request's action field.
func (h *attendanceHandlerImpl) SignInOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.SignInOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode sign-in-out request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	var result attendance.ClockResponse
	var err error
	switch req.Action {
	case attendance.ActionClockIn:
		result, err = h.attendanceService.ClockIn(r.Context(), req)
	case attendance.ActionClockOut:
		result, err = h.attendanceService.ClockOut(r.Context(), req)
	default:
		response.HandleError(w, attendance.ErrInvalidClockAction)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// UpdateSubmission implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	submissionID, err := strconv.ParseInt(chi.URLParam(r, "submissionID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid submission id", nil)
		return
	}

	var req attendance.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode decision request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Decide(r.Context(), submissionID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
