package http

import (
	"net/http"
	"strconv"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

type HouseHandler struct {
	houseSvc service.HouseService
}

func NewHouseHandler(houseSvc service.HouseService) *HouseHandler {
	return &HouseHandler{houseSvc: houseSvc}
}

// List serves the public search surface. Only published listings are
// visible here regardless of the filter supplied.
func (h *HouseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.HouseFilter{
		Keyword:       q.Get("keyword"),
		OnlyPublished: true,
	}
	if v, err := strconv.ParseInt(q.Get("region_id"), 10, 64); err == nil {
		filter.RegionID = v
	}
	if v, err := strconv.ParseInt(q.Get("subway_line_id"), 10, 64); err == nil {
		filter.SubwayLineID = v
	}
	if v, err := strconv.ParseInt(q.Get("max_rent_cents"), 10, 64); err == nil {
		filter.MaxRentCents = v
	}

	page, pageSize := pagination(r)
	houses, total, err := h.houseSvc.ListHouses(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, houses, total, page, pageSize)
}

func (h *HouseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	house, err := h.houseSvc.GetHouse(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, house)
}

func (h *HouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleLandlord, domain.RoleAdmin)
	if actor == nil {
		return
	}

	var house domain.House
	if !decodeBody(w, r, &house) {
		return
	}

	created, err := h.houseSvc.CreateHouse(r.Context(), actor, &house)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *HouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleLandlord, domain.RoleAdmin)
	if actor == nil {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var house domain.House
	if !decodeBody(w, r, &house) {
		return
	}
	house.ID = id

	updated, err := h.houseSvc.UpdateHouse(r.Context(), actor, &house)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type houseStatusRequest struct {
	Status string `json:"status"`
}

func (h *HouseHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleLandlord, domain.RoleAdmin)
	if actor == nil {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req houseStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	house, err := h.houseSvc.SetHouseStatus(r.Context(), actor, id, domain.HouseStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, house)
}

func (h *HouseHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor := requireRole(w, r, domain.RoleLandlord, domain.RoleAdmin)
	if actor == nil {
		return
	}

	page, pageSize := pagination(r)
	houses, total, err := h.houseSvc.ListMyHouses(r.Context(), actor, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, houses, total, page, pageSize)
}

func (h *HouseHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	favorited, err := h.houseSvc.ToggleFavorite(r.Context(), Principal(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorited": favorited})
}

func (h *HouseHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	houses, err := h.houseSvc.ListFavorites(r.Context(), Principal(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, houses)
}
