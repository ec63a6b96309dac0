package usecase

import (
	"context"
	"errors"
	"testing"

	"autocare360/internal/domain/entities"
	mock_interfaces "autocare360/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestEmployeeUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewEmployeeUseCase(nil, fixedClock{fixedNow})
		if _, err := uc.Create(context.Background(), "", "ana@shop.test", ""); !errors.Is(err, ErrInvalidEmployeeName) {
			t.Fatalf("expected ErrInvalidEmployeeName, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "Ana", "not-an-email", ""); !errors.Is(err, ErrInvalidEmployeeEmail) {
			t.Fatalf("expected ErrInvalidEmployeeEmail, got %v", err)
		}
	})

	t.Run("new employees start active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(repo, fixedClock{fixedNow})

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Employee) (entities.Employee, error) {
				if e.ID == "" {
					t.Fatalf("expected generated id")
				}
				if e.Status != entities.EmployeeStatusActive {
					t.Fatalf("expected active status, got %q", e.Status)
				}
				return e, nil
			},
		)

		e, err := uc.Create(context.Background(), " Ana ", " ana@shop.test ", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Name != "Ana" || e.Email != "ana@shop.test" {
			t.Fatalf("expected trimmed fields, got %+v", e)
		}
	})
}

func TestEmployeeUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	uc := NewEmployeeUseCase(repo, fixedClock{fixedNow})

	repo.EXPECT().GetByID(gomock.Any(), "emp-1").Return(entities.Employee{}, nil)
	if _, err := uc.GetByID(context.Background(), "emp-1"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
