package request

import "strings"

// CreateEmployeeRequest is the administrative onboarding payload.
type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department"`
}

func (r CreateEmployeeRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r CreateEmployeeRequest) ResolveEmail() string {
	return strings.TrimSpace(r.Email)
}

func (r CreateEmployeeRequest) ResolveDepartment() string {
	return strings.TrimSpace(r.Department)
}
