package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autocare360/internal/adapter/http/handlers/mocks"
	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newTimeLogRouter(t *testing.T) (*gin.Engine, *mocks.MockITimeLogUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockITimeLogUseCase(ctrl)
	h := NewTimeLogHandler(uc)

	r := gin.New()
	r.POST("/v1/time-logs", h.CreateTimeLog)
	r.GET("/v1/time-logs", h.ListTimeLogs)
	return r, uc
}

func TestTimeLogHandler_CreateTimeLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed date", func(t *testing.T) {
		r, _ := newTimeLogRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/time-logs", bytes.NewBufferString(`{"employee_id":"emp-1","date":"11/03/2025","minutes":"90"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed minutes", func(t *testing.T) {
		r, _ := newTimeLogRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/time-logs", bytes.NewBufferString(`{"employee_id":"emp-1","date":"2025-03-11","minutes":"ninety"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive minutes rejected by usecase", func(t *testing.T) {
		r, uc := newTimeLogRouter(t)

		uc.EXPECT().Log(gomock.Any(), "emp-1", gomock.Any(), gomock.Any()).
			Return(entities.TimeLogEntry{}, usecase.ErrInvalidMinutes)

		req := httptest.NewRequest(http.MethodPost, "/v1/time-logs", bytes.NewBufferString(`{"employee_id":"emp-1","date":"2025-03-11","minutes":"0"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newTimeLogRouter(t)

		date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
		minutes := decimal.RequireFromString("90.5")
		uc.EXPECT().Log(gomock.Any(), "emp-1", date, minutes).Return(entities.TimeLogEntry{
			ID: "tl-1", EmployeeID: "emp-1", Date: date, Minutes: minutes, CreatedAt: time.Now().UTC(),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/time-logs", bytes.NewBufferString(`{"employee_id":"emp-1","date":"2025-03-11","minutes":"90.5"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["id"] != "tl-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestTimeLogHandler_ListTimeLogs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing window", func(t *testing.T) {
		r, _ := newTimeLogRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/time-logs?employee_id=emp-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newTimeLogRouter(t)

		from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ListByEmployee(gomock.Any(), "emp-1", from, to).
			Return([]entities.TimeLogEntry{{ID: "tl-1", EmployeeID: "emp-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/time-logs?employee_id=emp-1&from=2025-03-10&to=2025-03-17", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(body))
		}
	})
}
