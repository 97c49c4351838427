package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/server/http/dto"
	"github.com/chlagouGhassen/pizza-petes/internal/server/http/middleware"
	testhelpers "github.com/chlagouGhassen/pizza-petes/internal/test"
	"github.com/chlagouGhassen/pizza-petes/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asAccount(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.AccountIDContextKey, id)
	}
}

func TestCurrentAccountID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentAccountID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.AccountIDContextKey, int64(42))
	if got := CurrentAccountID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "mario", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") != "Bearer token" {
		t.Fatalf("unexpected authorization header %q", resp.Header().Get("Authorization"))
	}

	result := resp.Result()
	t.Cleanup(func() { _ = result.Body.Close() })
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "pizzapetes_token" && cookie.Value == "token" {
			foundCookie = true
			break
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named pizzapetes_token")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"login":"","password":""}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusBadRequest},
		{name: "already exists", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"login":"a","password":"b"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tt.facade).Register, nil, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "mario", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	failing := testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}}
	resp = performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(failing).Login, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestCatalogHandlerList(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/pizzas", "/pizzas", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var items []dto.CatalogItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Margherita Classic" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if items[0].BasePrice.String() != "12.999" {
		t.Fatalf("base price = %s, want 12.999", items[0].BasePrice)
	}
}

func TestCatalogHandlerGet(t *testing.T) {
	id := uuid.New()
	resp := performRequest(t, http.MethodGet, "/pizzas/:id", "/pizzas/"+id.String(), NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Get, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/pizzas/:id", "/pizzas/not-a-uuid", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Get, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for malformed id, got %d", resp.Code)
	}

	missing := testhelpers.CatalogFacadeStub{ItemFn: func(context.Context, uuid.UUID) (*model.CatalogItem, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodGet, "/pizzas/:id", "/pizzas/"+id.String(), NewCatalogHandler(missing).Get, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCatalogHandlerCreate(t *testing.T) {
	body := []byte(`{"name":"Calzone","base_price":"13.499","category":"Specialty"}`)
	resp := performRequest(t, http.MethodPost, "/pizzas", "/pizzas", NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Create, nil, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var created dto.CatalogItemResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !created.IsAvailable {
		t.Fatal("availability must default to true")
	}

	invalid := testhelpers.CatalogFacadeStub{CreateFn: func(context.Context, *model.CatalogItem) (*model.CatalogItem, error) {
		return nil, domainErrors.ErrInvalidConfiguration
	}}
	resp = performRequest(t, http.MethodPost, "/pizzas", "/pizzas", NewCatalogHandler(invalid).Create, nil, body)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
}

func TestCatalogHandlerDelete(t *testing.T) {
	id := uuid.New()
	resp := performRequest(t, http.MethodDelete, "/pizzas/:id", "/pizzas/"+id.String(), NewCatalogHandler(testhelpers.CatalogFacadeStub{}).Delete, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	missing := testhelpers.CatalogFacadeStub{DeleteFn: func(context.Context, uuid.UUID) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodDelete, "/pizzas/:id", "/pizzas/"+id.String(), NewCatalogHandler(missing).Delete, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{
		Items: []dto.LineItemPayload{{
			CatalogItemID: uuid.New().String(),
			Size:          "Medium",
			Crust:         "Thin Crust",
			Quantity:      1,
		}},
		DeliveryMethod: "CarryOut",
		PaymentMethod:  "Cash",
	})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(testhelpers.OrderFacadeStub{}).Create, asAccount(1), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if order.Status != "Pending" {
		t.Fatalf("status = %s, want Pending", order.Status)
	}
	if order.IsFavorite {
		t.Fatal("fresh order must not be marked favorite")
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	valid, _ := json.Marshal(dto.CreateOrderRequest{
		Items:          []dto.LineItemPayload{{CatalogItemID: uuid.New().String(), Size: "Small", Crust: "Thin Crust", Quantity: 1}},
		DeliveryMethod: "CarryOut",
		PaymentMethod:  "Cash",
	})
	badItemID, _ := json.Marshal(dto.CreateOrderRequest{
		Items:          []dto.LineItemPayload{{CatalogItemID: "nope", Size: "Small", Crust: "Thin Crust", Quantity: 1}},
		DeliveryMethod: "CarryOut",
		PaymentMethod:  "Cash",
	})

	tests := []struct {
		name   string
		facade testhelpers.OrderFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "malformed item id", body: badItemID, status: http.StatusUnprocessableEntity},
		{name: "invalid configuration", body: valid, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, []model.LineItemConfig, model.DeliveryMethod, model.PaymentMethod, *model.DeliveryAddress) (*model.Order, error) {
			return nil, domainErrors.ErrInvalidConfiguration
		}}, status: http.StatusUnprocessableEntity},
		{name: "missing catalog item", body: valid, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, []model.LineItemConfig, model.DeliveryMethod, model.PaymentMethod, *model.DeliveryAddress) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		}}, status: http.StatusNotFound},
		{name: "storage unavailable", body: valid, facade: testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, []model.LineItemConfig, model.DeliveryMethod, model.PaymentMethod, *model.DeliveryAddress) (*model.Order, error) {
			return nil, domainErrors.ErrUnavailable
		}}, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/orders", "/orders", NewOrderHandler(tt.facade).Create, asAccount(1), tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestOrderHandlerList(t *testing.T) {
	favorite := uuid.New()
	order := testhelpers.OrderFixture(1)
	order.ID = favorite
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, *uuid.UUID, error) {
		return []model.Order{order, testhelpers.OrderFixture(1)}, &favorite, nil
	}}

	resp := performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(facade).List, asAccount(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("listed %d orders, want 2", len(orders))
	}
	if !orders[0].IsFavorite || orders[1].IsFavorite {
		t.Fatalf("favorite flags wrong: %v %v", orders[0].IsFavorite, orders[1].IsFavorite)
	}
}

func TestOrderHandlerListEmpty(t *testing.T) {
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, *uuid.UUID, error) {
		return nil, nil, nil
	}}
	resp := performRequest(t, http.MethodGet, "/orders", "/orders", NewOrderHandler(facade).List, asAccount(1), nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestOrderHandlerToggleFavorite(t *testing.T) {
	orderID := uuid.New()
	order := testhelpers.OrderFixture(1)
	order.ID = orderID
	facade := testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, *uuid.UUID, error) {
		return []model.Order{order}, &orderID, nil
	}}

	resp := performRequest(t, http.MethodPut, "/orders/:id/favorite", "/orders/"+orderID.String()+"/favorite", NewOrderHandler(facade).ToggleFavorite, asAccount(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(orders) != 1 || !orders[0].IsFavorite {
		t.Fatalf("toggle response must reflect derived favorite flags: %+v", orders)
	}
}

func TestOrderHandlerToggleFavoriteFailures(t *testing.T) {
	orderID := uuid.New()

	resp := performRequest(t, http.MethodPut, "/orders/:id/favorite", "/orders/not-a-uuid/favorite", NewOrderHandler(testhelpers.OrderFacadeStub{}).ToggleFavorite, asAccount(1), nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for malformed id, got %d", resp.Code)
	}

	conflicting := testhelpers.OrderFacadeStub{ToggleFn: func(context.Context, int64, uuid.UUID) (*usecase.FavoriteToggleResult, error) {
		return nil, domainErrors.ErrConflict
	}}
	resp = performRequest(t, http.MethodPut, "/orders/:id/favorite", "/orders/"+orderID.String()+"/favorite", NewOrderHandler(conflicting).ToggleFavorite, asAccount(1), nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestOrderHandlerFavorite(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders/favorite", "/orders/favorite", NewOrderHandler(testhelpers.OrderFacadeStub{}).Favorite, asAccount(1), nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 when no favorite, got %d", resp.Code)
	}

	order := testhelpers.OrderFixture(1)
	facade := testhelpers.OrderFacadeStub{FavoriteFn: func(context.Context, int64) (*model.Order, error) {
		return &order, nil
	}}
	resp = performRequest(t, http.MethodGet, "/orders/favorite", "/orders/favorite", NewOrderHandler(facade).Favorite, asAccount(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.IsFavorite {
		t.Fatal("favorite endpoint must flag the order")
	}
}

func TestOrderHandlerReorderFavorite(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/orders/reorder-favorite", "/orders/reorder-favorite", NewOrderHandler(testhelpers.OrderFacadeStub{}).ReorderFavorite, asAccount(1), nil)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	missing := testhelpers.OrderFacadeStub{ReorderFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodPost, "/orders/reorder-favorite", "/orders/reorder-favorite", NewOrderHandler(missing).ReorderFavorite, asAccount(1), nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestOrderHandlerSurprise(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/orders/surprise", "/orders/surprise", NewOrderHandler(testhelpers.OrderFacadeStub{}).Surprise, asAccount(1), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.SurpriseResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.UnitPrice.String() != "14.999" {
		t.Fatalf("unit price = %s, want 14.999", payload.UnitPrice)
	}

	empty := testhelpers.OrderFacadeStub{SurpriseFn: func(context.Context, *rand.Rand) (*model.SurpriseSelection, error) {
		return nil, domainErrors.ErrInvalidConfiguration
	}}
	resp = performRequest(t, http.MethodGet, "/orders/surprise", "/orders/surprise", NewOrderHandler(empty).Surprise, asAccount(1), nil)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 for empty catalog, got %d", resp.Code)
	}
}
