package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/chlagouGhassen/pizza-petes/internal/domain/errors"
	"github.com/chlagouGhassen/pizza-petes/internal/domain/model"
	"github.com/chlagouGhassen/pizza-petes/internal/server/http/dto"
)

// CatalogHandler manages menu endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/pizzas.
func (h *CatalogHandler) List(c *gin.Context) {
	items, err := h.facade.CatalogItems(c.Request.Context())
	if err != nil {
		c.Status(catalogStatus(err))
		return
	}

	response := make([]dto.CatalogItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toCatalogItemResponse(item))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/pizzas/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	item, err := h.facade.CatalogItem(c.Request.Context(), id)
	if err != nil {
		c.Status(catalogStatus(err))
		return
	}
	c.JSON(http.StatusOK, toCatalogItemResponse(*item))
}

// Create handles POST /api/pizzas (admin only).
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.CreateCatalogItem(c.Request.Context(), fromCatalogItemRequest(req))
	if err != nil {
		c.Status(catalogStatus(err))
		return
	}
	c.JSON(http.StatusCreated, toCatalogItemResponse(*item))
}

// Update handles PUT /api/pizzas/:id (admin only).
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var req dto.CatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item := fromCatalogItemRequest(req)
	item.ID = id
	updated, err := h.facade.UpdateCatalogItem(c.Request.Context(), item)
	if err != nil {
		c.Status(catalogStatus(err))
		return
	}
	c.JSON(http.StatusOK, toCatalogItemResponse(*updated))
}

// Delete handles DELETE /api/pizzas/:id (admin only).
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.facade.DeleteCatalogItem(c.Request.Context(), id); err != nil {
		c.Status(catalogStatus(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func catalogStatus(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func fromCatalogItemRequest(req dto.CatalogItemRequest) *model.CatalogItem {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	return &model.CatalogItem{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Image:       req.Image,
		Toppings:    req.Toppings,
		Category:    model.Category(req.Category),
		IsAvailable: available,
	}
}

func toCatalogItemResponse(item model.CatalogItem) dto.CatalogItemResponse {
	return dto.CatalogItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		BasePrice:   item.BasePrice,
		Image:       item.Image,
		Toppings:    item.Toppings,
		Category:    string(item.Category),
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
	}
}
