package http

import (
	"net/http"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

type SupportHandler struct {
	supportSvc service.SupportService
}

func NewSupportHandler(supportSvc service.SupportService) *SupportHandler {
	return &SupportHandler{supportSvc: supportSvc}
}

type openTicketRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

func (h *SupportHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req openTicketRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ticket, err := h.supportSvc.OpenTicket(r.Context(), Principal(r), req.Subject, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

type ticketResponse struct {
	Ticket   *domain.SupportTicket   `json:"ticket"`
	Messages []domain.SupportMessage `json:"messages"`
}

func (h *SupportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	ticket, messages, err := h.supportSvc.GetTicket(r.Context(), Principal(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticketResponse{Ticket: ticket, Messages: messages})
}

func (h *SupportHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	tickets, total, err := h.supportSvc.ListMyTickets(r.Context(), Principal(r), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, tickets, total, page, pageSize)
}

func (h *SupportHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	if requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	page, pageSize := pagination(r)
	tickets, total, err := h.supportSvc.ListAllTickets(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, tickets, total, page, pageSize)
}

type replyRequest struct {
	Content string `json:"content"`
}

func (h *SupportHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req replyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	msg, err := h.supportSvc.Reply(r.Context(), Principal(r), id, req.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *SupportHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.supportSvc.CloseTicket(r.Context(), Principal(r), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
