package interfaces

import (
	"context"

	"autocare360/internal/domain/entities"
)

// IWorkItemRepository abstracts DynamoDB persistence for WorkItem.
//
// CountActive excludes the terminal statuses (completed, cancelled); it backs
// the fleet-wide capacity metrics.

type IWorkItemRepository interface {
	Create(ctx context.Context, w entities.WorkItem) (entities.WorkItem, error)
	GetByID(ctx context.Context, id string) (entities.WorkItem, error)
	UpdateStatus(ctx context.Context, id string, status string) (entities.WorkItem, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.WorkItem, error)
	CountActive(ctx context.Context) (int, error)
}
