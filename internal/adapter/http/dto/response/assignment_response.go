package response

import (
	"time"

	"autocare360/internal/domain/entities"
)

type AssignmentResponse struct {
	ID            string     `json:"id"`
	WorkItemID    string     `json:"work_item_id"`
	EmployeeID    string     `json:"employee_id"`
	RoleOnJob     string     `json:"role_on_job"`
	Active        bool       `json:"active"`
	AssignedAt    time.Time  `json:"assigned_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}

func FromJobAssignment(a entities.JobAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID,
		WorkItemID:    a.WorkItemID,
		EmployeeID:    a.EmployeeID,
		RoleOnJob:     a.RoleOnJob,
		Active:        a.Active,
		AssignedAt:    a.AssignedAt,
		DeactivatedAt: a.DeactivatedAt,
	}
}
