package entities

import "time"

// DefaultRoleOnJob is assigned when the caller does not name a role.
const DefaultRoleOnJob = "Technician"

// JobAssignment links one employee to one work item.
//
// Storage model (DynamoDB):
//   - PK: id. For the active row this is the pair key "work_item_id#employee_id",
//     which makes the at-most-one-active-per-pair invariant a conditional put
//     instead of a read-then-write race.
//   - GSI1 (employee_id-index): employee_id
//
// Assignments are never physically deleted: unassigning archives the row under
// a fresh id with active=false so the pair can be reassigned later.
type JobAssignment struct {
	ID            string     `json:"id"`
	WorkItemID    string     `json:"work_item_id"`
	EmployeeID    string     `json:"employee_id"`
	RoleOnJob     string     `json:"role_on_job"`
	Active        bool       `json:"active"`
	AssignedAt    time.Time  `json:"assigned_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}

// AssignmentPairKey is the storage key of the active assignment row for a
// (work item, employee) pair.
func AssignmentPairKey(workItemID, employeeID string) string {
	return workItemID + "#" + employeeID
}
