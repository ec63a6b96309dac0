package interfaces

import (
	"context"

	"autocare360/internal/domain/entities"
)

// IEmployeeRepository abstracts DynamoDB persistence for Employee.
//
// Lookups return a zero-ID entity when nothing matches; callers translate
// that into their own not-found error.

type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	List(ctx context.Context) ([]entities.Employee, error)
}
