package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type stubLimiter struct {
	allow bool
	err   error
	calls int
}

func (l *stubLimiter) Allow(_ context.Context, _ string) (bool, error) {
	l.calls++
	return l.allow, l.err
}

func throttleRequest(t *testing.T, limiter Limiter) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := LoginThrottle(limiter, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestLoginThrottle_Allows(t *testing.T) {
	rec, called := throttleRequest(t, &stubLimiter{allow: true})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d (called=%v)", rec.Code, called)
	}
}

func TestLoginThrottle_Blocks(t *testing.T) {
	rec, called := throttleRequest(t, &stubLimiter{allow: false})
	if called {
		t.Fatalf("handler reached despite throttle")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestLoginThrottle_FailsOpen(t *testing.T) {
	rec, called := throttleRequest(t, &stubLimiter{allow: false, err: errors.New("redis down")})
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected fail-open on store error, got %d (called=%v)", rec.Code, called)
	}
}
