package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grocerytrack/grocery-api/internal/api/middleware"
	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/ports"
)

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type updateProfileRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

// Get handles GET /v1/profile — the current principal.
//
// @Summary      Get my profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, profileResponse{User: middleware.Principal(c)})
}

// Update handles PUT /v1/profile.
//
// @Summary      Update my profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user := middleware.Principal(c)
	updated, err := h.service.UpdateProfile(c.Request().Context(), user.ID, req.FullName, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profileResponse{User: updated})
}
