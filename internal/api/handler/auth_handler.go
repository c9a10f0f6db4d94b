package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grocerytrack/grocery-api/internal/api/metrics"
	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		// Duplicate email surfaces as 400 on this endpoint, matching the
		// external contract of the original frontend.
		if errors.Is(err, domain.ErrUserExists) || errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{Message: "user created", UserID: user.ID})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": domain.ErrInvalidCredentials.Error()})
		}
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Message: "login successful", Token: token, User: user})
}
