package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	httpapi "homelet-backend/internal/api/http"
	"homelet-backend/internal/domain"
	"homelet-backend/internal/service"
)

// stubAuthService resolves every bearer token to a fixed principal.
type stubAuthService struct {
	principal *domain.User
}

func (s *stubAuthService) Register(ctx context.Context, username, password, fullName, phone string, role domain.UserRole) (*domain.User, error) {
	return nil, domain.NewValidation("not implemented")
}
func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return "", nil, domain.NewAuthorization("not implemented")
}
func (s *stubAuthService) Logout(ctx context.Context, jti string) error { return nil }
func (s *stubAuthService) ResolveToken(ctx context.Context, tokenString string) (*domain.User, string, error) {
	if s.principal == nil {
		return nil, "", domain.NewAuthorization("invalid token")
	}
	return s.principal, "jti-test", nil
}

// stubOrderService lets each test inject just the behavior it needs.
type stubOrderService struct {
	service.OrderService

	createFn func(ctx context.Context, actor *domain.User, houseID int64, startDate, endDate string) (*domain.RentalOrder, error)
	getFn    func(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error)
	cancelFn func(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error)
}

func (s *stubOrderService) CreateOrder(ctx context.Context, actor *domain.User, houseID int64, startDate, endDate string) (*domain.RentalOrder, error) {
	return s.createFn(ctx, actor, houseID, startDate, endDate)
}
func (s *stubOrderService) GetOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error) {
	return s.getFn(ctx, actor, orderID)
}
func (s *stubOrderService) CancelOrder(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error) {
	return s.cancelFn(ctx, actor, orderID)
}

func newTestServer(principal *domain.User, orders service.OrderService) *httptest.Server {
	router := httpapi.NewRouter(httpapi.Services{
		Auth:  &stubAuthService{principal: principal},
		Order: orders,
	})
	return httptest.NewServer(router)
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestOrderRoutes_ErrorStatusMapping(t *testing.T) {
	tenant := &domain.User{ID: 1, Role: domain.RoleTenant}

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"Validation maps to 400", domain.NewValidation("bad dates"), http.StatusBadRequest},
		{"Authorization maps to 403", domain.NewAuthorization("not yours"), http.StatusForbidden},
		{"NotFound maps to 404", domain.NewNotFound("no such order"), http.StatusNotFound},
		{"Conflict maps to 422", domain.NewConflict("already booked"), http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := &stubOrderService{
				createFn: func(ctx context.Context, actor *domain.User, houseID int64, startDate, endDate string) (*domain.RentalOrder, error) {
					return nil, tc.err
				},
			}
			srv := newTestServer(tenant, orders)
			defer srv.Close()

			resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders",
				`{"house_id":2,"start_date":"2026-10-01","end_date":"2026-12-31"}`)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)

			var body struct {
				Status  int    `json:"status"`
				Message string `json:"message"`
			}
			assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantStatus, body.Status)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestOrderRoutes_Create(t *testing.T) {
	tenant := &domain.User{ID: 1, Role: domain.RoleTenant}

	t.Run("Success returns the created order", func(t *testing.T) {
		orders := &stubOrderService{
			createFn: func(ctx context.Context, actor *domain.User, houseID int64, startDate, endDate string) (*domain.RentalOrder, error) {
				assert.Equal(t, tenant.ID, actor.ID)
				return &domain.RentalOrder{ID: 7, HouseID: houseID, TenantID: actor.ID, StartDate: startDate, EndDate: endDate, Status: domain.OrderStatusPending}, nil
			},
		}
		srv := newTestServer(tenant, orders)
		defer srv.Close()

		resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders",
			`{"house_id":2,"start_date":"2026-10-01","end_date":"2026-12-31"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var order domain.RentalOrder
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&order))
		assert.Equal(t, int64(7), order.ID)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
	})

	t.Run("Landlord may not create orders", func(t *testing.T) {
		srv := newTestServer(&domain.User{ID: 10, Role: domain.RoleLandlord}, &stubOrderService{})
		defer srv.Close()

		resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders",
			`{"house_id":2,"start_date":"2026-10-01","end_date":"2026-12-31"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Missing token returns 401", func(t *testing.T) {
		srv := newTestServer(nil, &stubOrderService{})
		defer srv.Close()

		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/orders", strings.NewReader(`{}`))
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOrderRoutes_Transitions(t *testing.T) {
	tenant := &domain.User{ID: 1, Role: domain.RoleTenant}

	t.Run("Cancel conflict surfaces as 422", func(t *testing.T) {
		orders := &stubOrderService{
			cancelFn: func(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error) {
				return nil, domain.NewConflict("only a pending order can be cancelled")
			},
		}
		srv := newTestServer(tenant, orders)
		defer srv.Close()

		resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/orders/7/cancel", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("Invalid order id in path", func(t *testing.T) {
		srv := newTestServer(tenant, &stubOrderService{
			getFn: func(ctx context.Context, actor *domain.User, orderID int64) (*domain.RentalOrder, error) {
				t.Fatal("service should not be reached")
				return nil, nil
			},
		})
		defer srv.Close()

		// The numeric route constraint rejects this before any handler runs.
		resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/orders/not-a-number", "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
