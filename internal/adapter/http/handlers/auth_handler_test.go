package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autocare360/internal/adapter/http/handlers/mocks"
	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/login", h.Login)
	return r, uc
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"ana@shop.test"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, uc := newAuthRouter(t)

		uc.EXPECT().Login(gomock.Any(), "ana@shop.test", "wrong").
			Return("", entities.User{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"ana@shop.test","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["code"] != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected error code: %v", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newAuthRouter(t)

		uc.EXPECT().Login(gomock.Any(), "ana@shop.test", "s3cret").Return("token-123", entities.User{
			ID: "u-1", Email: "ana@shop.test", Role: entities.UserRoleEmployee, EmployeeID: "emp-1",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"ana@shop.test","password":"s3cret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["token"] != "token-123" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
