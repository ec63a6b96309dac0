package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMinutes     = errors.New("invalid minutes")
	ErrInvalidTimeLogDate = errors.New("invalid time log date")
)

// ITimeLogUseCase exposes the employee time-entry action. Entries are
// immutable once created; there is no update or delete path.

type ITimeLogUseCase interface {
	Log(ctx context.Context, employeeID string, date time.Time, minutes decimal.Decimal) (entities.TimeLogEntry, error)
	ListByEmployee(ctx context.Context, employeeID string, startInclusive, endExclusive time.Time) ([]entities.TimeLogEntry, error)
}

type TimeLogUseCase struct {
	repo      interfaces.ITimeLogRepository
	employees interfaces.IEmployeeRepository
	clock     interfaces.Clock
}

var _ ITimeLogUseCase = (*TimeLogUseCase)(nil)

func NewTimeLogUseCase(repo interfaces.ITimeLogRepository, employees interfaces.IEmployeeRepository, clock interfaces.Clock) *TimeLogUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TimeLogUseCase{repo: repo, employees: employees, clock: clock}
}

func (u *TimeLogUseCase) Log(ctx context.Context, employeeID string, date time.Time, minutes decimal.Decimal) (entities.TimeLogEntry, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return entities.TimeLogEntry{}, ErrInvalidEmployeeID
	}
	if date.IsZero() {
		return entities.TimeLogEntry{}, ErrInvalidTimeLogDate
	}
	if minutes.LessThanOrEqual(decimal.Zero) {
		return entities.TimeLogEntry{}, ErrInvalidMinutes
	}

	e, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		return entities.TimeLogEntry{}, err
	}
	if e.ID == "" {
		return entities.TimeLogEntry{}, ErrEmployeeNotFound
	}

	entry := entities.TimeLogEntry{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       date,
		Minutes:    minutes,
		CreatedAt:  u.clock.Now().UTC(),
	}
	return u.repo.Insert(ctx, entry)
}

func (u *TimeLogUseCase) ListByEmployee(ctx context.Context, employeeID string, startInclusive, endExclusive time.Time) ([]entities.TimeLogEntry, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrInvalidEmployeeID
	}
	return u.repo.ListByEmployee(ctx, employeeID, startInclusive, endExclusive)
}
