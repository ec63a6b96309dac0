package entities

import "time"

// UserRole gates route access in the HTTP layer.

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleEmployee UserRole = "employee"
	UserRoleCustomer UserRole = "customer"
)

// User is a login principal. PasswordHash is a bcrypt hash and never leaves
// the auth path.
//
// Storage model (DynamoDB):
//   - PK: email
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	EmployeeID   string    `json:"employee_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
