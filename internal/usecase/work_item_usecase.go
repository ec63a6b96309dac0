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
	ErrInvalidWorkItemTitle  = errors.New("invalid work item title")
	ErrInvalidWorkItemType   = errors.New("invalid work item type")
	ErrInvalidWorkItemStatus = errors.New("invalid work item status")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
)

// IWorkItemUseCase exposes work item intake and status transitions. The
// workload calculator only reads work items; these are the write paths fed by
// customer requests and shop-floor updates.

type IWorkItemUseCase interface {
	Create(ctx context.Context, title string, itemType entities.WorkItemType, customerID string) (entities.WorkItem, error)
	GetByID(ctx context.Context, id string) (entities.WorkItem, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.WorkItem, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.WorkItem, error)
}

type WorkItemUseCase struct {
	repo  interfaces.IWorkItemRepository
	clock interfaces.Clock
}

var _ IWorkItemUseCase = (*WorkItemUseCase)(nil)

func NewWorkItemUseCase(repo interfaces.IWorkItemRepository, clock interfaces.Clock) *WorkItemUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &WorkItemUseCase{repo: repo, clock: clock}
}

func (u *WorkItemUseCase) Create(ctx context.Context, title string, itemType entities.WorkItemType, customerID string) (entities.WorkItem, error) {
	title = strings.TrimSpace(title)
	customerID = strings.TrimSpace(customerID)
	if title == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemTitle
	}
	if strings.TrimSpace(string(itemType)) == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemType
	}
	if customerID == "" {
		return entities.WorkItem{}, ErrInvalidCustomerID
	}

	now := u.clock.Now().UTC()
	w := entities.WorkItem{
		ID:         uuid.NewString(),
		Title:      title,
		Type:       entities.WorkItemType(strings.ToLower(strings.TrimSpace(string(itemType)))),
		Status:     entities.WorkItemStatusReceived,
		CustomerID: customerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, w)
}

func (u *WorkItemUseCase) GetByID(ctx context.Context, id string) (entities.WorkItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if w.ID == "" {
		return entities.WorkItem{}, ErrWorkItemNotFound
	}
	return w, nil
}

func (u *WorkItemUseCase) UpdateStatus(ctx context.Context, id string, status string) (entities.WorkItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemID
	}
	status = entities.NormalizeWorkItemStatus(status)
	if status == "" {
		return entities.WorkItem{}, ErrInvalidWorkItemStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.WorkItem{}, err
	}
	if updated.ID == "" {
		return entities.WorkItem{}, ErrWorkItemNotFound
	}
	return updated, nil
}

func (u *WorkItemUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.WorkItem, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomer(ctx, customerID)
}
