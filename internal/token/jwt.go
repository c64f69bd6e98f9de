package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avolkov/webauth-server/internal/model"
)

// Claims represents JWT claims carrying the authenticated user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = time.Hour

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// NewJWT creates a token manager with the provided secret key and TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: secretKey, ttl: ttl}
}

var _ model.TokenManager = (*JWT)(nil)

// Generate creates a signed token carrying userID and an expiration.
func (j *JWT) Generate(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates the signature and expiration and extracts the user ID.
// Expiry and signature failures are reported independently: a tampered
// but unexpired token and an expired but correctly signed token both
// fail, with distinct sentinel errors.
func (j *JWT) Parse(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return 0, classifyParseError(err)
	}
	if !token.Valid {
		return 0, model.ErrTokenMalformed
	}
	if claims.UserID <= 0 {
		return 0, model.ErrTokenMalformed
	}
	return claims.UserID, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", model.ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", model.ErrTokenSignatureInvalid, err)
	default:
		return fmt.Errorf("%w: %w", model.ErrTokenMalformed, err)
	}
}
