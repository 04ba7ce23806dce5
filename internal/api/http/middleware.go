package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

type contextKey string

const (
	principalKey contextKey = "principal"
	tokenJTIKey  contextKey = "token_jti"
)

// AuthMiddleware resolves the bearer token into the authenticated
// principal and stores it on the request context. Handlers behind it can
// assume a valid, non-blocked user.
func AuthMiddleware(authSvc service.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearer(r)
			if token == "" {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			user, jti, err := authSvc.ResolveToken(r.Context(), token)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, user)
			ctx = context.WithValue(ctx, tokenJTIKey, jti)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, errorBody{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    http.StatusUnauthorized,
		Message:   message,
	})
}

func extractBearer(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return header
}

// Principal returns the authenticated user set by AuthMiddleware.
func Principal(r *http.Request) *domain.User {
	user, _ := r.Context().Value(principalKey).(*domain.User)
	return user
}

func tokenJTI(r *http.Request) string {
	jti, _ := r.Context().Value(tokenJTIKey).(string)
	return jti
}

// requireRole gates a handler on the actor's role. Returns nil after
// writing a 403 when the role does not match.
func requireRole(w http.ResponseWriter, r *http.Request, roles ...domain.UserRole) *domain.User {
	user := Principal(r)
	if user == nil {
		writeUnauthorized(w, "authentication required")
		return nil
	}
	for _, role := range roles {
		if user.Role == role {
			return user
		}
	}
	writeError(w, domain.NewAuthorization("insufficient role for this resource"))
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidation("invalid %s %q", name, raw)
	}
	return id, nil
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(10)
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
