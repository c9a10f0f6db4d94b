package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/ports"
)

// AdminHandler handles admin-only management endpoints. All routes are behind
// Auth + RequireRole(admin).
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type adminUsersResponse struct {
	Users []*domain.User `json:"users"`
}

type adminItemsResponse struct {
	Items []ports.ItemWithOwner `json:"items"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

// ListUsers handles GET /v1/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminUsersResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminUsersResponse{Users: users})
}

// DeleteUser handles DELETE /v1/admin/users/:id.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}

// SetUserRole handles PUT /v1/admin/users/:id/role. This, not registration,
// is how an account becomes admin.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "User ID"
// @Param        body  body      setRoleRequest  true  "New role"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/admin/users/{id}/role [put]
func (h *AdminHandler) SetUserRole(c echo.Context) error {
	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.service.SetUserRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "role updated", "user": user})
}

// ListItems handles GET /v1/admin/items — all items with owner projections.
//
// @Summary      List all items
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminItemsResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/items [get]
func (h *AdminHandler) ListItems(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminItemsResponse{Items: items})
}

// DeleteItem handles DELETE /v1/admin/items/:id.
//
// @Summary      Delete an item and its comments
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/admin/items/{id} [delete]
func (h *AdminHandler) DeleteItem(c echo.Context) error {
	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item deleted"})
}
