package request

import "strings"

// AssignmentRequest is the POST /assignments payload. RoleOnJob is optional;
// the usecase defaults it to "Technician".
type AssignmentRequest struct {
	WorkItemID string `json:"work_item_id" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
	RoleOnJob  string `json:"role_on_job"`
}

func (r AssignmentRequest) ResolveWorkItemID() string {
	return strings.TrimSpace(r.WorkItemID)
}

func (r AssignmentRequest) ResolveEmployeeID() string {
	return strings.TrimSpace(r.EmployeeID)
}

// UnassignmentRequest is the DELETE /assignments payload.
type UnassignmentRequest struct {
	WorkItemID string `json:"work_item_id" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
}

func (r UnassignmentRequest) ResolveWorkItemID() string {
	return strings.TrimSpace(r.WorkItemID)
}

func (r UnassignmentRequest) ResolveEmployeeID() string {
	return strings.TrimSpace(r.EmployeeID)
}
