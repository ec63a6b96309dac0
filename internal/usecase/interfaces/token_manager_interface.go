package interfaces

import "autocare360/internal/domain/entities"

// TokenClaims is the authenticated identity carried by a bearer token.
type TokenClaims struct {
	UserID     string
	Email      string
	Role       entities.UserRole
	EmployeeID string
}

// ITokenManager abstracts JWT issue/parse so the auth usecase and the HTTP
// middleware do not depend on a concrete signing implementation.

type ITokenManager interface {
	Issue(u entities.User) (string, error)
	Parse(token string) (TokenClaims, error)
}
