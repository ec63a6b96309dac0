package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"
	mock_interfaces "autocare360/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProtectedRouter(t *testing.T, roles ...entities.UserRole) (*gin.Engine, *mock_interfaces.MockITokenManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tokens := mock_interfaces.NewMockITokenManager(ctrl)

	r := gin.New()
	r.GET("/v1/protected", RequireAuth(tokens, roles...), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing claims"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return r, tokens
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header", func(t *testing.T) {
		r, _ := newProtectedRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		r, _ := newProtectedRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r, tokens := newProtectedRouter(t)

		tokens.EXPECT().Parse("bad-token").Return(interfaces.TokenClaims{}, errors.New("invalid token"))

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("role not allowed", func(t *testing.T) {
		r, tokens := newProtectedRouter(t, entities.UserRoleAdmin)

		tokens.EXPECT().Parse("customer-token").Return(interfaces.TokenClaims{
			UserID: "u-1", Role: entities.UserRoleCustomer,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer customer-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("allowed role passes claims through", func(t *testing.T) {
		r, tokens := newProtectedRouter(t, entities.UserRoleAdmin, entities.UserRoleEmployee)

		tokens.EXPECT().Parse("employee-token").Return(interfaces.TokenClaims{
			UserID: "u-1", Role: entities.UserRoleEmployee, EmployeeID: "emp-1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer employee-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no role restriction accepts any valid token", func(t *testing.T) {
		r, tokens := newProtectedRouter(t)

		tokens.EXPECT().Parse("customer-token").Return(interfaces.TokenClaims{
			UserID: "u-2", Role: entities.UserRoleCustomer,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/protected", nil)
		req.Header.Set("Authorization", "Bearer customer-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
