package interfaces

import (
	"context"
	"errors"

	"autocare360/internal/domain/entities"
)

// ErrAssignmentPairTaken is returned by Insert when an active assignment
// already exists for the (work item, employee) pair. The store enforces the
// invariant atomically (conditional put on the pair key), so two concurrent
// inserts cannot both succeed.
var ErrAssignmentPairTaken = errors.New("active assignment already exists for pair")

// IJobAssignmentRepository abstracts DynamoDB persistence for JobAssignment.

type IJobAssignmentRepository interface {
	Insert(ctx context.Context, a entities.JobAssignment) (entities.JobAssignment, error)
	ListActiveByEmployee(ctx context.Context, employeeID string) ([]entities.JobAssignment, error)
	GetActiveByWorkItemAndEmployee(ctx context.Context, workItemID, employeeID string) (entities.JobAssignment, error)
	// Deactivate archives the active row for the pair (active=false, new id)
	// and frees the pair key. Returns a zero-ID entity when no active row
	// exists.
	Deactivate(ctx context.Context, workItemID, employeeID string) (entities.JobAssignment, error)
}
