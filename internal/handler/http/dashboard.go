package http

import (
	"net/http"
	"time"

	"github.com/intek-hris/attendance-backend-go/internal/domain/dashboard"
	"github.com/intek-hris/attendance-backend-go/internal/handler/http/response"
)

// DashboardHandler defines the admin analytics handler interface
type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context(), time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
