package http

import (
	"net/http"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

type CertificationHandler struct {
	certSvc service.CertificationService
}

func NewCertificationHandler(certSvc service.CertificationService) *CertificationHandler {
	return &CertificationHandler{certSvc: certSvc}
}

type certificationSubmitRequest struct {
	DocumentURLs []string `json:"document_urls"`
	Reason       string   `json:"reason"`
}

func (h *CertificationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleTenant, domain.RoleLandlord)
	if actor == nil {
		return
	}

	var req certificationSubmitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cert, err := h.certSvc.Submit(r.Context(), actor, req.DocumentURLs, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cert)
}

func (h *CertificationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	cert, err := h.certSvc.MyLatest(r.Context(), Principal(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cert)
}

func (h *CertificationHandler) List(w http.ResponseWriter, r *http.Request) {
	if requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	page, pageSize := pagination(r)
	status := domain.CertificationStatus(r.URL.Query().Get("status"))

	certs, total, err := h.certSvc.ListByStatus(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, certs, total, page, pageSize)
}

type certificationReviewRequest struct {
	Status domain.CertificationStatus `json:"status"`
	Reason string                     `json:"reason"`
}

func (h *CertificationHandler) Review(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleAdmin)
	if actor == nil {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req certificationReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cert, err := h.certSvc.Review(r.Context(), actor, id, req.Status, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cert)
}
