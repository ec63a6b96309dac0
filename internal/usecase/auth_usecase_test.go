package usecase

import (
	"context"
	"errors"
	"testing"

	"autocare360/internal/domain/entities"
	mock_interfaces "autocare360/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	stored := entities.User{
		ID:           "u-1",
		Email:        "ana@shop.test",
		PasswordHash: string(hash),
		Role:         entities.UserRoleEmployee,
		EmployeeID:   "emp-1",
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenManager(ctrl)
		uc := NewAuthUseCase(users, tokens)

		users.EXPECT().GetByEmail(gomock.Any(), "ana@shop.test").Return(stored, nil)
		tokens.EXPECT().Issue(stored).Return("token-123", nil)

		token, usr, err := uc.Login(context.Background(), "  Ana@Shop.Test ", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "token-123" || usr.ID != "u-1" {
			t.Fatalf("unexpected result: token=%q user=%+v", token, usr)
		}
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ghost@shop.test").Return(entities.User{}, nil)
		_, _, err := uc.Login(context.Background(), "ghost@shop.test", "whatever")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}

		users.EXPECT().GetByEmail(gomock.Any(), "ana@shop.test").Return(stored, nil)
		_, _, err = uc.Login(context.Background(), "ana@shop.test", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("blank input rejected before lookup", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if _, _, err := uc.Login(context.Background(), "", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if _, _, err := uc.Login(context.Background(), "ana@shop.test", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
