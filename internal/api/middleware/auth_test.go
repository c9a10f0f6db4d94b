package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
	"github.com/grocerytrack/grocery-api/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	r.users[u.ID] = u
	return u, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func authRequest(t *testing.T, e *echo.Echo, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	stored := &domain.User{ID: "user_1", FullName: "Ann", Email: "ann@x.com", Role: domain.RoleUser}
	repo := newStubUserRepo(stored)

	signed, err := tokens.Issue(stored)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	c, rec := authRequest(t, e, "Bearer "+signed)
	called := false
	handler := Auth(tokens, repo)(func(c echo.Context) error {
		called = true
		p := Principal(c)
		if p == nil || p.ID != "user_1" || p.Email != "ann@x.com" {
			t.Fatalf("unexpected principal: %+v", p)
		}
		if p.PasswordHash != "" {
			t.Fatalf("principal carries password hash")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_PrincipalReflectsLiveRole(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	stored := &domain.User{ID: "user_1", FullName: "Ann", Role: domain.RoleUser}
	repo := newStubUserRepo(stored)

	// Token minted while the account was a plain user.
	signed, err := tokens.Issue(stored)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Promote in the store; the still-valid token is unchanged.
	stored.Role = domain.RoleAdmin

	c, _ := authRequest(t, e, "Bearer "+signed)
	handler := Auth(tokens, repo)(func(c echo.Context) error {
		if got := Principal(c).Role; got != domain.RoleAdmin {
			t.Fatalf("expected live role admin, got %q", got)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuth_LegacySubjectClaim(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	repo := newStubUserRepo(&domain.User{ID: "user_9", FullName: "Old", Role: domain.RoleUser})

	legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user_9",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})
	signed, err := legacy.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	c, _ := authRequest(t, e, "Bearer "+signed)
	handler := Auth(tokens, repo)(func(c echo.Context) error {
		if Principal(c).ID != "user_9" {
			t.Fatalf("legacy subject not resolved")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuth_Failures(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	stored := &domain.User{ID: "user_1", Role: domain.RoleUser}
	repo := newStubUserRepo(stored)

	valid, err := tokens.Issue(stored)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tampered := valid[:len(valid)-2] + "xx"

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	expiredSigned, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	unknown, err := tokens.Issue(&domain.User{ID: "ghost", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token abc", http.StatusUnauthorized},
		{"no token", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"tampered token", "Bearer " + tampered, http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredSigned, http.StatusUnauthorized},
		{"unknown subject", "Bearer " + unknown, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := authRequest(t, e, tc.header)
			handler := Auth(tokens, repo)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})
			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
		})
	}
}
