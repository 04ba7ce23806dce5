package http

import (
	"net/http"

	"homelet-backend/internal/service"
)

type LocationHandler struct {
	locationSvc service.LocationService
}

func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

func (h *LocationHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.locationSvc.ListRegions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regions)
}

func (h *LocationHandler) ListSubwayLines(w http.ResponseWriter, r *http.Request) {
	lines, err := h.locationSvc.ListSubwayLines(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}
