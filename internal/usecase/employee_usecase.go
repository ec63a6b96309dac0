package usecase

import (
	"context"
	"errors"
	"strings"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmployeeName  = errors.New("invalid employee name")
	ErrInvalidEmployeeEmail = errors.New("invalid employee email")
)

// IEmployeeUseCase exposes the employee directory: onboarding and lookups.

type IEmployeeUseCase interface {
	Create(ctx context.Context, name, email, department string) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
}

type EmployeeUseCase struct {
	repo  interfaces.IEmployeeRepository
	clock interfaces.Clock
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository, clock interfaces.Clock) *EmployeeUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &EmployeeUseCase{repo: repo, clock: clock}
}

func (u *EmployeeUseCase) Create(ctx context.Context, name, email, department string) (entities.Employee, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	department = strings.TrimSpace(department)
	if name == "" {
		return entities.Employee{}, ErrInvalidEmployeeName
	}
	if email == "" || !strings.Contains(email, "@") {
		return entities.Employee{}, ErrInvalidEmployeeEmail
	}

	e := entities.Employee{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Department: department,
		Status:     entities.EmployeeStatusActive,
		CreatedAt:  u.clock.Now().UTC(),
	}
	return u.repo.Create(ctx, e)
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.List(ctx)
}
