package http

import (
	"encoding/json"
	"net/http"
	"time"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/logger"
)

type errorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
}

// pageBody is the envelope for paginated list responses.
type pageBody struct {
	Items    any   `json:"items"`
	Total    int64 `json:"total"`
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writePage(w http.ResponseWriter, items any, total int64, page, pageSize int32) {
	writeJSON(w, http.StatusOK, pageBody{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// writeError maps the domain error taxonomy onto distinct response codes
// so clients can branch without parsing messages: validation 400,
// authorization 403, not-found 404, state conflicts 422. Anything
// unclassified is a 500 with no internal detail leaked.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if kind, ok := domain.KindOf(err); ok {
		message = err.Error()
		switch kind {
		case domain.ErrKindValidation:
			status = http.StatusBadRequest
		case domain.ErrKindAuthorization:
			status = http.StatusForbidden
		case domain.ErrKindNotFound:
			status = http.StatusNotFound
		case domain.ErrKindConflict:
			status = http.StatusUnprocessableEntity
		}
	} else {
		logger.Error("request failed", "error", err)
	}

	writeJSON(w, status, errorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
		Message:   message,
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, domain.NewValidation("invalid request body"))
		return false
	}
	return true
}
