package usecase

import (
	"context"
	"errors"
	"testing"

	"autocare360/internal/domain/entities"
	mock_interfaces "autocare360/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWorkItemUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewWorkItemUseCase(nil, fixedClock{fixedNow})
		if _, err := uc.Create(context.Background(), "  ", entities.WorkItemTypeAppointment, "cust-1"); !errors.Is(err, ErrInvalidWorkItemTitle) {
			t.Fatalf("expected ErrInvalidWorkItemTitle, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "Oil change", "", "cust-1"); !errors.Is(err, ErrInvalidWorkItemType) {
			t.Fatalf("expected ErrInvalidWorkItemType, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "Oil change", entities.WorkItemTypeAppointment, ""); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("new items start as received", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := NewWorkItemUseCase(repo, fixedClock{fixedNow})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkItem) (entities.WorkItem, error) {
				if w.ID == "" {
					t.Fatalf("expected generated id")
				}
				if w.Status != entities.WorkItemStatusReceived {
					t.Fatalf("expected received status, got %q", w.Status)
				}
				if w.Type != entities.WorkItemTypeAppointment {
					t.Fatalf("expected normalized type, got %q", w.Type)
				}
				if !w.CreatedAt.Equal(fixedNow) || !w.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected timestamps: %+v", w)
				}
				return w, nil
			},
		)

		w, err := uc.Create(context.Background(), " Oil change ", " Appointment ", "cust-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Title != "Oil change" {
			t.Fatalf("expected trimmed title, got %q", w.Title)
		}
	})
}

func TestWorkItemUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
	uc := NewWorkItemUseCase(repo, fixedClock{fixedNow})

	repo.EXPECT().GetByID(gomock.Any(), "wi-1").Return(entities.WorkItem{}, nil)
	if _, err := uc.GetByID(context.Background(), "wi-1"); !errors.Is(err, ErrWorkItemNotFound) {
		t.Fatalf("expected ErrWorkItemNotFound, got %v", err)
	}

	if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidWorkItemID) {
		t.Fatalf("expected ErrInvalidWorkItemID, got %v", err)
	}
}

func TestWorkItemUseCase_UpdateStatus(t *testing.T) {
	t.Run("normalizes status before persisting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := NewWorkItemUseCase(repo, fixedClock{fixedNow})

		repo.EXPECT().UpdateStatus(gomock.Any(), "wi-1", "in_progress").
			Return(entities.WorkItem{ID: "wi-1", Status: "in_progress"}, nil)

		w, err := uc.UpdateStatus(context.Background(), "wi-1", "  IN_PROGRESS  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Status != "in_progress" {
			t.Fatalf("unexpected status: %q", w.Status)
		}
	})

	t.Run("blank status rejected", func(t *testing.T) {
		uc := NewWorkItemUseCase(nil, fixedClock{fixedNow})
		if _, err := uc.UpdateStatus(context.Background(), "wi-1", "   "); !errors.Is(err, ErrInvalidWorkItemStatus) {
			t.Fatalf("expected ErrInvalidWorkItemStatus, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
		uc := NewWorkItemUseCase(repo, fixedClock{fixedNow})

		repo.EXPECT().UpdateStatus(gomock.Any(), "missing", "completed").Return(entities.WorkItem{}, nil)
		if _, err := uc.UpdateStatus(context.Background(), "missing", "completed"); !errors.Is(err, ErrWorkItemNotFound) {
			t.Fatalf("expected ErrWorkItemNotFound, got %v", err)
		}
	})
}

func TestWorkItemUseCase_ListByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWorkItemRepository(ctrl)
	uc := NewWorkItemUseCase(repo, fixedClock{fixedNow})

	repo.EXPECT().ListByCustomer(gomock.Any(), "cust-1").Return([]entities.WorkItem{{ID: "wi-1"}}, nil)
	items, err := uc.ListByCustomer(context.Background(), " cust-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	if _, err := uc.ListByCustomer(context.Background(), ""); !errors.Is(err, ErrInvalidCustomerID) {
		t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
	}
}
