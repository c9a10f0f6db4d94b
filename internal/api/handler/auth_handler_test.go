package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
)

type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginToken   string
	loginUser    *domain.User
	loginErr     error
}

func (s *stubAuthService) Register(_ context.Context, _, _, _ string) (*domain.User, error) {
	return s.registerUser, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (string, *domain.User, error) {
	return s.loginToken, s.loginUser, s.loginErr
}

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerUser: &domain.User{ID: "user_1", FullName: "Ann", Email: "ann@x.com", Role: domain.RoleUser},
	})

	rec := postJSON(t, h.Register, "/v1/auth/register",
		`{"full_name":"Ann","email":"ann@x.com","password":"secret1"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.UserID != "user_1" {
		t.Fatalf("unexpected user id: %q", resp.UserID)
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing fields", `{"email":"ann@x.com"}`},
		{"short password", `{"full_name":"Ann","email":"ann@x.com","password":"12345"}`},
		{"bad email", `{"full_name":"Ann","email":"nope","password":"secret1"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Register, "/v1/auth/register", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	rec := postJSON(t, h.Register, "/v1/auth/register",
		`{"full_name":"Ann","email":"ann@x.com","password":"secret1"}`)

	// Duplicate email is 400 on this endpoint, per the external contract.
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginToken: "signed-token",
		loginUser:  &domain.User{ID: "user_1", FullName: "Ann", Email: "ann@x.com", Role: domain.RoleUser},
	})

	rec := postJSON(t, h.Login, "/v1/auth/login", `{"email":"ann@x.com","password":"secret1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "signed-token" {
		t.Fatalf("missing token in response")
	}
	if resp.User == nil || resp.User.Role != domain.RoleUser {
		t.Fatalf("unexpected user projection: %+v", resp.User)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password material leaked: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	rec := postJSON(t, h.Login, "/v1/auth/login", `{"email":"ann@x.com","password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "invalid credentials" {
		t.Fatalf("unexpected error message: %q", resp["error"])
	}
}
