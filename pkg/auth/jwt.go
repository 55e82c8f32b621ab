package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shashiranjanraj/ridewithme/config"
	"github.com/shashiranjanraj/ridewithme/pkg/cache"
)

// bcryptCost matches the cost the original registration flow used.
const bcryptCost = 12

// TokenTTL is the lifetime of an access token.
const TokenTTL = 24 * time.Hour

// Claims holds the typed JWT payload.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken creates a signed JWT for the given user.
func GenerateToken(userID, email string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string.
// Revoked tokens (logout denylist) fail validation.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if IsRevoked(t) {
		return nil, jwt.ErrTokenExpired
	}

	return claims, nil
}

// RevokeToken denylists a token until its natural expiry.
// No-op when Redis is unavailable: the token then simply expires on its own.
func RevokeToken(t string, claims *Claims) error {
	ttl := TokenTTL
	if claims != nil && claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	return cache.Set(denyKey(t), true, ttl)
}

// IsRevoked reports whether a token has been denylisted by logout.
func IsRevoked(t string) bool {
	return cache.Exists(denyKey(t))
}

func denyKey(t string) string { return "auth:denylist:" + t }

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ─── Request context ──────────────────────────────────────────────────────────

type ctxKey struct{}

// WithClaims stores validated claims in ctx (done by the auth middleware).
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// ClaimsFromCtx returns the validated claims for the current request, or nil.
func ClaimsFromCtx(ctx context.Context) *Claims {
	if c, ok := ctx.Value(ctxKey{}).(*Claims); ok {
		return c
	}
	return nil
}
