package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grocerytrack/grocery-api/internal/api/metrics"
	"github.com/grocerytrack/grocery-api/internal/api/middleware"
	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/ports"
)

// ItemHandler handles the owner-scoped item and comment endpoints.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

type createItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type itemListResponse struct {
	Items []*domain.Item `json:"items"`
}

type itemDetailResponse struct {
	Item     *domain.Item      `json:"item"`
	Comments []*domain.Comment `json:"comments"`
}

// List handles GET /v1/items — the caller's items, newest first.
//
// @Summary      List my items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  itemListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	user := middleware.Principal(c)

	items, err := h.service.ListItems(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, itemListResponse{Items: items})
}

// Create handles POST /v1/items.
//
// @Summary      Add an item to my list
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  domain.Item
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user := middleware.Principal(c)
	item, err := h.service.CreateItem(c.Request().Context(), user.ID, req.Title, req.Description)
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, item)
}

// Get handles GET /v1/items/:id — an item plus its comments.
//
// @Summary      Get one item with comments
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  itemDetailResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	detail, err := h.service.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, itemDetailResponse{Item: detail.Item, Comments: detail.Comments})
}
