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
	"go.uber.org/mock/gomock"
)

func newAssignmentRouter(t *testing.T) (*gin.Engine, *mocks.MockIWorkloadUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWorkloadUseCase(ctrl)
	h := NewAssignmentHandler(uc)

	r := gin.New()
	r.POST("/v1/assignments", h.CreateAssignment)
	r.DELETE("/v1/assignments", h.RemoveAssignment)
	return r, uc
}

func TestAssignmentHandler_CreateAssignment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newAssignmentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/assignments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing employee id", func(t *testing.T) {
		r, _ := newAssignmentRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/assignments", bytes.NewBufferString(`{"work_item_id":"wi-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)

		uc.EXPECT().Assign(gomock.Any(), "wi-1", "emp-1", "").
			Return(entities.JobAssignment{}, usecase.ErrAssignmentConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/assignments", bytes.NewBufferString(`{"work_item_id":"wi-1","employee_id":"emp-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["code"] != "ASSIGNMENT_ALREADY_EXISTS" {
			t.Fatalf("unexpected error code: %v", body["code"])
		}
	})

	t.Run("work item not found", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)

		uc.EXPECT().Assign(gomock.Any(), "ghost", "emp-1", "").
			Return(entities.JobAssignment{}, usecase.ErrWorkItemNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/assignments", bytes.NewBufferString(`{"work_item_id":"ghost","employee_id":"emp-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)

		now := time.Now().UTC()
		uc.EXPECT().Assign(gomock.Any(), "wi-1", "emp-1", "Inspector").Return(entities.JobAssignment{
			ID: "a-1", WorkItemID: "wi-1", EmployeeID: "emp-1", RoleOnJob: "Inspector", Active: true, AssignedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/assignments", bytes.NewBufferString(`{"work_item_id":"wi-1","employee_id":"emp-1","role_on_job":"Inspector"}`))
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
		if body["id"] != "a-1" || body["active"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestAssignmentHandler_RemoveAssignment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)

		uc.EXPECT().Unassign(gomock.Any(), "wi-1", "emp-1").
			Return(entities.JobAssignment{}, usecase.ErrAssignmentNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/assignments", bytes.NewBufferString(`{"work_item_id":"wi-1","employee_id":"emp-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success keeps archived row in response", func(t *testing.T) {
		r, uc := newAssignmentRouter(t)

		deactivatedAt := time.Now().UTC()
		uc.EXPECT().Unassign(gomock.Any(), "wi-1", "emp-1").Return(entities.JobAssignment{
			ID: "a-1", WorkItemID: "wi-1", EmployeeID: "emp-1", Active: false, DeactivatedAt: &deactivatedAt,
		}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/assignments", bytes.NewBufferString(`{"work_item_id":"wi-1","employee_id":"emp-1"}`))
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
		if body["active"] != false {
			t.Fatalf("expected inactive assignment, got %v", body)
		}
		if _, ok := body["deactivated_at"]; !ok {
			t.Fatalf("expected deactivated_at in body: %v", body)
		}
	})
}
