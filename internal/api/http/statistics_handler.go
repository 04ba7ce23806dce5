package http

import (
	"net/http"
	"strconv"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

type StatisticsHandler struct {
	statsSvc service.StatisticsService
}

func NewStatisticsHandler(statsSvc service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statsSvc: statsSvc}
}

func (h *StatisticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	overview, err := h.statsSvc.Overview(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *StatisticsHandler) OrderTrend(w http.ResponseWriter, r *http.Request) {
	if requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}

	days := 30
	if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v > 0 && v <= 365 {
		days = v
	}

	trend, err := h.statsSvc.OrderTrend(r.Context(), days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (h *StatisticsHandler) HouseDistribution(w http.ResponseWriter, r *http.Request) {
	if requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	dist, err := h.statsSvc.HouseDistribution(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dist)
}
