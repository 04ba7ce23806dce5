package http

import (
	"context"
	"net/http"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

// OrderHandler exposes the rental order lifecycle over HTTP. Every route
// behind it requires an authenticated principal; the service layer owns
// the per-role access decisions.
type OrderHandler struct {
	orderSvc service.OrderService
}

func NewOrderHandler(orderSvc service.OrderService) *OrderHandler {
	return &OrderHandler{orderSvc: orderSvc}
}

type createOrderRequest struct {
	HouseID   int64  `json:"house_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleTenant)
	if actor == nil {
		return
	}

	var req createOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := h.orderSvc.CreateOrder(r.Context(), actor, req.HouseID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := h.orderSvc.GetOrder(r.Context(), Principal(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleTenant)
	if actor == nil {
		return
	}
	page, pageSize := pagination(r)
	orders, total, err := h.orderSvc.ListForTenant(r.Context(), actor, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, orders, total, page, pageSize)
}

func (h *OrderHandler) ListLandlord(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleLandlord)
	if actor == nil {
		return
	}
	page, pageSize := pagination(r)
	orders, total, err := h.orderSvc.ListForLandlord(r.Context(), actor, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, orders, total, page, pageSize)
}

func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	if requireRole(w, r, domain.RoleAdmin) == nil {
		return
	}
	page, pageSize := pagination(r)
	orders, total, err := h.orderSvc.ListAll(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, orders, total, page, pageSize)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderSvc.CancelOrder)
}

func (h *OrderHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderSvc.ConfirmOrder)
}

func (h *OrderHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderSvc.ActivateOrder)
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	order, err := fn(r.Context(), Principal(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type uploadContractRequest struct {
	ContractURL string `json:"contract_url"`
}

func (h *OrderHandler) UploadContract(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req uploadContractRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := h.orderSvc.UploadContract(r.Context(), Principal(r), id, req.ContractURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) DownloadContract(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	url, err := h.orderSvc.DownloadContract(r.Context(), Principal(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"contract_url": url})
}

type terminationRequest struct {
	Reason string `json:"reason"`
}

func (h *OrderHandler) RequestTermination(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req terminationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	order, err := h.orderSvc.RequestTermination(r.Context(), Principal(r), id, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type terminationResolution struct {
	Feedback string `json:"feedback"`
}

func (h *OrderHandler) ApproveTermination(w http.ResponseWriter, r *http.Request) {
	h.resolveTermination(w, r, true)
}

func (h *OrderHandler) RejectTermination(w http.ResponseWriter, r *http.Request) {
	h.resolveTermination(w, r, false)
}

func (h *OrderHandler) resolveTermination(w http.ResponseWriter, r *http.Request, approve bool) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req terminationResolution
	if !decodeBody(w, r, &req) {
		return
	}

	var order *domain.RentalOrder
	if approve {
		order, err = h.orderSvc.ApproveTermination(r.Context(), Principal(r), id, req.Feedback)
	} else {
		order, err = h.orderSvc.RejectTermination(r.Context(), Principal(r), id, req.Feedback)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	houseID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	start, end := q.Get("start_date"), q.Get("end_date")
	if start == "" || end == "" {
		writeError(w, domain.NewValidation("start_date and end_date are required"))
		return
	}

	conflict, err := h.orderSvc.HasBookingConflict(r.Context(), houseID, start, end, domain.BlockingStatuses)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": !conflict})
}
