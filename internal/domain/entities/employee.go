package entities

import "time"

// EmployeeStatus represents the employment state of a staff member.
//
// Employees are created by administrative onboarding and are read-only from the
// workload calculator's perspective.

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// DefaultDepartment is used when an employee record carries no department.
const DefaultDepartment = "General"

// Employee is a staff member persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
type Employee struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Department string         `json:"department,omitempty"`
	Status     EmployeeStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}

// DepartmentOrDefault resolves the nullable department column.
func (e Employee) DepartmentOrDefault() string {
	if e.Department == "" {
		return DefaultDepartment
	}
	return e.Department
}
