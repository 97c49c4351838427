package handlers

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/server/http/dto"
)

// OrderHandler manages order, favorite and surprise endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	accountID := CurrentAccountID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items, err := fromLineItemPayloads(req.Items)
	if err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), accountID, items,
		model.DeliveryMethod(req.DeliveryMethod), model.PaymentMethod(req.PaymentMethod),
		fromAddressPayload(req.DeliveryAddress))
	if err != nil {
		c.Status(orderStatus(err))
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order, nil))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	accountID := CurrentAccountID(c)
	orders, favorite, err := h.facade.Orders(c.Request.Context(), accountID)
	if err != nil {
		c.Status(orderStatus(err))
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders, favorite))
}

// ToggleFavorite handles PUT /api/orders/:id/favorite. The response is the
// refreshed order list so clients see every derived favorite flag at once.
func (h *OrderHandler) ToggleFavorite(c *gin.Context) {
	accountID := CurrentAccountID(c)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if _, err := h.facade.ToggleFavorite(c.Request.Context(), accountID, orderID); err != nil {
		c.Status(orderStatus(err))
		return
	}

	orders, favorite, err := h.facade.Orders(c.Request.Context(), accountID)
	if err != nil {
		c.Status(orderStatus(err))
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders, favorite))
}

// Favorite handles GET /api/orders/favorite.
func (h *OrderHandler) Favorite(c *gin.Context) {
	accountID := CurrentAccountID(c)
	order, err := h.facade.FavoriteOrder(c.Request.Context(), accountID)
	if err != nil {
		c.Status(orderStatus(err))
		return
	}
	if order == nil {
		c.Status(http.StatusNoContent)
		return
	}
	favorite := order.ID
	c.JSON(http.StatusOK, toOrderResponse(*order, &favorite))
}

// ReorderFavorite handles POST /api/orders/reorder-favorite.
func (h *OrderHandler) ReorderFavorite(c *gin.Context) {
	accountID := CurrentAccountID(c)
	order, err := h.facade.ReorderFavorite(c.Request.Context(), accountID)
	if err != nil {
		c.Status(orderStatus(err))
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order, nil))
}

// Surprise handles GET /api/orders/surprise.
func (h *OrderHandler) Surprise(c *gin.Context) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selection, err := h.facade.Surprise(c.Request.Context(), rng)
	if err != nil {
		c.Status(orderStatus(err))
		return
	}

	c.JSON(http.StatusOK, dto.SurpriseResponse{
		Item: dto.LineItemPayload{
			CatalogItemID: selection.Item.CatalogItemID.String(),
			Size:          string(selection.Item.Size),
			Crust:         string(selection.Item.Crust),
			Toppings:      selection.Item.Toppings,
			Quantity:      selection.Item.Quantity,
		},
		DeliveryMethod: string(selection.DeliveryMethod),
		PaymentMethod:  string(selection.PaymentMethod),
		UnitPrice:      selection.UnitPrice,
	})
}

func orderStatus(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func fromLineItemPayloads(payloads []dto.LineItemPayload) ([]model.LineItemConfig, error) {
	items := make([]model.LineItemConfig, 0, len(payloads))
	for _, p := range payloads {
		id, err := uuid.Parse(p.CatalogItemID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.LineItemConfig{
			CatalogItemID: id,
			Size:          model.SizeOption(p.Size),
			Crust:         model.CrustOption(p.Crust),
			Toppings:      p.Toppings,
			Quantity:      p.Quantity,
		})
	}
	return items, nil
}

func fromAddressPayload(p *dto.AddressPayload) *model.DeliveryAddress {
	if p == nil {
		return nil
	}
	return &model.DeliveryAddress{
		Street:  p.Street,
		City:    p.City,
		State:   p.State,
		ZipCode: p.ZipCode,
	}
}

func toAddressPayload(a *model.DeliveryAddress) *dto.AddressPayload {
	if a == nil {
		return nil
	}
	return &dto.AddressPayload{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		ZipCode: a.ZipCode,
	}
}

func toOrderResponses(orders []model.Order, favorite *uuid.UUID) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o, favorite))
	}
	return response
}

func toOrderResponse(order model.Order, favorite *uuid.UUID) dto.OrderResponse {
	items := make([]dto.OrderLineItemResponse, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, dto.OrderLineItemResponse{
			CatalogItemID: line.CatalogItemID.String(),
			Size:          string(line.Size),
			Crust:         string(line.Crust),
			Toppings:      line.Toppings,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice,
			Subtotal:      line.Subtotal,
		})
	}
	return dto.OrderResponse{
		ID:              order.ID.String(),
		Items:           items,
		DeliveryMethod:  string(order.DeliveryMethod),
		PaymentMethod:   string(order.PaymentMethod),
		DeliveryAddress: toAddressPayload(order.DeliveryAddress),
		Total:           order.Total,
		Status:          string(order.Status),
		IsFavorite:      favorite != nil && *favorite == order.ID,
		CreatedAt:       order.CreatedAt,
	}
}
