package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/timewise-hr/attendance-backend-go/internal/domain/manager"
	"github.com/timewise-hr/attendance-backend-go/internal/handler/http/response"
)

// managerNameParam reads the managerName path segment. Employee names
// contain spaces, so the segment arrives percent-encoded and must be
// unescaped before it can be matched against the directory.
func managerNameParam(r *http.Request) string {
	raw := chi.URLParam(r, "managerName")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

type ManagerHandler interface {
	Submissions(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type managerHandlerImpl struct {
	managerService manager.ManagerService
}

func NewManagerHandler(managerService manager.ManagerService) ManagerHandler {
	return &managerHandlerImpl{
		managerService: managerService,
	}
}

// Submissions implements ManagerHandler.
func (h *managerHandlerImpl) Submissions(w http.ResponseWriter, r *http.Request) {
	managerName := managerNameParam(r)

	result, err := h.managerService.Submissions(r.Context(), managerName)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Reset implements ManagerHandler.
func (h *managerHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	managerName := managerNameParam(r)

	result, err := h.managerService.Reset(r.Context(), managerName)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
