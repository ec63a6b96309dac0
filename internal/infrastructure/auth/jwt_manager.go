package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTLMinutes = 60

var (
	ErrMissingJWTSecret = errors.New("missing JWT_SECRET")
	ErrInvalidToken     = errors.New("invalid token")
)

// JWTManager issues and parses HS256 bearer tokens.
//
// Env vars:
//   - JWT_SECRET (required)
//   - JWT_TTL_MINUTES (default: 60)
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

var _ interfaces.ITokenManager = (*JWTManager)(nil)

func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	ttl := defaultTokenTTLMinutes
	if v := os.Getenv("JWT_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return NewJWTManager([]byte(secret), time.Duration(ttl)*time.Minute), nil
}

func NewJWTManager(secret []byte, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: secret, ttl: ttl}
}

type tokenClaims struct {
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

func (m *JWTManager) Issue(u entities.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Email:      u.Email,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTManager) Parse(token string) (interfaces.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return interfaces.TokenClaims{}, ErrInvalidToken
	}
	return interfaces.TokenClaims{
		UserID:     claims.Subject,
		Email:      claims.Email,
		Role:       entities.UserRole(claims.Role),
		EmployeeID: claims.EmployeeID,
	}, nil
}
