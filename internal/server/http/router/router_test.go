package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/printeasy/printeasy/internal/domain/model"
	"github.com/printeasy/printeasy/internal/server/http/handlers"
	testhelpers "github.com/printeasy/printeasy/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.StorefrontFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			OrdersFn: func(context.Context, int64) ([]model.Order, error) {
				return []model.Order{{ID: 1, Status: model.OrderStatusPaid}}, nil
			},
		},
	}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "name": "User", "password": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/cart", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}
}

func TestSetupAdminGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	customer := testhelpers.StorefrontFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			UserFn: func(ctx context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, Email: "customer@example.com"}, nil
			},
		},
	}
	engine := Setup(customer, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for non-admin, got %d", resp.Code)
	}

	admin := testhelpers.StorefrontFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{
			UserFn: func(ctx context.Context, userID int64) (*model.User, error) {
				return &model.User{ID: userID, Email: "staff@example.com", Admin: true}, nil
			},
		},
	}
	engine = Setup(admin, logger)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin, got %d", resp.Code)
	}
}

var _ handlers.StorefrontFacade = (*testhelpers.StorefrontFacadeStub)(nil)
