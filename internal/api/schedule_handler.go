package api

import (
	"net/http"

	"skilleat/internal/service"
)

type ScheduleHandler struct {
	Service *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetSchedule handles GET /api/schedule.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.Service.Events())
}
