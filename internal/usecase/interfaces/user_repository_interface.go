package interfaces

import (
	"context"

	"autocare360/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for login principals.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
