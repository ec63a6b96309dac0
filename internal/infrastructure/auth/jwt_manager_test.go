package auth

import (
	"errors"
	"testing"
	"time"

	"autocare360/internal/domain/entities"
)

func TestJWTManager_IssueAndParse(t *testing.T) {
	m := NewJWTManager([]byte("test-secret"), time.Hour)
	user := entities.User{
		ID:         "u-1",
		Email:      "ana@shop.test",
		Role:       entities.UserRoleEmployee,
		EmployeeID: "emp-1",
	}

	token, err := m.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u-1" || claims.Email != "ana@shop.test" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Role != entities.UserRoleEmployee || claims.EmployeeID != "emp-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTManager_Parse(t *testing.T) {
	m := NewJWTManager([]byte("test-secret"), time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		if _, err := m.Parse("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager([]byte("other-secret"), time.Hour)
		token, err := other.Issue(entities.User{ID: "u-1"})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewJWTManager([]byte("test-secret"), -time.Minute)
		token, err := short.Issue(entities.User{ID: "u-1"})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := m.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestNewJWTManagerFromEnv(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		if _, err := NewJWTManagerFromEnv(); !errors.Is(err, ErrMissingJWTSecret) {
			t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
		}
	})

	t.Run("custom ttl", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_TTL_MINUTES", "15")
		m, err := NewJWTManagerFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ttl != 15*time.Minute {
			t.Fatalf("expected 15m ttl, got %v", m.ttl)
		}
	})
}
