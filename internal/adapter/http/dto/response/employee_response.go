package response

import (
	"time"

	"autocare360/internal/domain/entities"
)

type EmployeeResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromEmployee(e entities.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.DepartmentOrDefault(),
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
	}
}

func FromEmployees(employees []entities.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, FromEmployee(e))
	}
	return out
}
