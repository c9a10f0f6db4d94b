package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/grocerytrack/grocery-api/internal/core/domain"
)

// DefaultTokenTTL is the operational token lifetime.
const DefaultTokenTTL = 8 * time.Hour

// TokenClaims is the payload carried by issued tokens. LegacyUserID exists
// only for compatibility with tokens minted by older issuers that stored the
// subject under "userId" instead of the registered "sub" claim; new tokens
// never set it.
type TokenClaims struct {
	Role         string `json:"role"`
	Name         string `json:"name"`
	LegacyUserID string `json:"userId,omitempty"`

	jwt.RegisteredClaims
}

// UserID resolves the token subject: "sub" first, then the legacy "userId"
// fallback. Resolved once here so the shim is not duplicated at call sites.
func (c *TokenClaims) UserID() string {
	if c.Subject != "" {
		return c.Subject
	}
	return c.LegacyUserID
}

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// secret is injected once at construction and never logged.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user with the configured TTL. The role
// and name embedded here are snapshots; authorization decisions re-read the
// live user record, so a stale snapshot only affects display defaults.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := TokenClaims{
		Role: user.Role,
		Name: user.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Malformed input, a signature mismatch,
// a non-HS256 algorithm, or an elapsed expiry all return an error; the caller
// treats every failure identically (invalid credential).
func (s *TokenService) Verify(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
