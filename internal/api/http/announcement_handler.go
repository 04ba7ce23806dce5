package http

import (
	"net/http"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

type AnnouncementHandler struct {
	annSvc service.AnnouncementService
}

func NewAnnouncementHandler(annSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{annSvc: annSvc}
}

func (h *AnnouncementHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	anns, err := h.annSvc.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, anns)
}

func (h *AnnouncementHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	if requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	page, pageSize := pagination(r)
	anns, total, err := h.annSvc.ListAll(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, anns, total, page, pageSize)
}

type publishAnnouncementRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ExpiresAt string `json:"expires_at"`
}

func (h *AnnouncementHandler) Publish(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleAdmin)
	if actor == nil {
		return
	}

	var req publishAnnouncementRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ann, err := h.annSvc.Publish(r.Context(), actor, req.Title, req.Content, req.ExpiresAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ann)
}

func (h *AnnouncementHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleAdmin)
	if actor == nil {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.annSvc.Deactivate(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
