package http

import (
	"net/http"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

type contactRequest struct {
	HouseID            int64  `json:"house_id"`
	Message            string `json:"message"`
	PreferredVisitTime string `json:"preferred_visit_time"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleTenant)
	if actor == nil {
		return
	}

	var req contactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := h.contactSvc.CreateContact(r.Context(), actor, req.HouseID, req.Message, req.PreferredVisitTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *ContactHandler) Ensure(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleTenant)
	if actor == nil {
		return
	}

	var req contactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := h.contactSvc.EnsureContact(r.Context(), actor, req.HouseID, req.Message, req.PreferredVisitTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *ContactHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleTenant)
	if actor == nil {
		return
	}
	page, pageSize := pagination(r)
	records, total, err := h.contactSvc.ListForTenant(r.Context(), actor, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, records, total, page, pageSize)
}

func (h *ContactHandler) ListLandlord(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleLandlord)
	if actor == nil {
		return
	}
	page, pageSize := pagination(r)
	records, total, err := h.contactSvc.ListForLandlord(r.Context(), actor, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, records, total, page, pageSize)
}

func (h *ContactHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	if requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	page, pageSize := pagination(r)
	records, total, err := h.contactSvc.ListAll(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, records, total, page, pageSize)
}

type contactStatusRequest struct {
	Status  domain.ContactStatus `json:"status"`
	Remarks string               `json:"remarks"`
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleLandlord)
	if actor == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req contactStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	record, err := h.contactSvc.UpdateContactStatus(r.Context(), actor, id, req.Status, req.Remarks)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
