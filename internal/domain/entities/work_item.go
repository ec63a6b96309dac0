package entities

import (
	"strings"
	"time"
)

// WorkItemType classifies a schedulable unit of work. The type is an open
// string so integrations can introduce new kinds without a schema change.
// Comparisons are case-insensitive; normalization happens once, here.

type WorkItemType string

const (
	WorkItemTypeAppointment WorkItemType = "appointment"
	WorkItemTypeProject     WorkItemType = "project"
)

// Work item statuses are free-form strings written by external services as a
// job moves through the shop. Only the two terminal statuses below carry
// meaning for capacity math; everything else counts as active.
const (
	WorkItemStatusReceived  = "received"
	WorkItemStatusCompleted = "completed"
	WorkItemStatusCancelled = "cancelled"
)

// WorkItem is the generic unit of schedulable work, specialized as either an
// appointment or a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// The workload core only ever reads work items; creation and status changes
// come in through the intake endpoints.
type WorkItem struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Type       WorkItemType `json:"type"`
	Status     string       `json:"status"`
	CustomerID string       `json:"customer_id"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// NormalizeWorkItemStatus is the single case-normalization rule for status
// strings. Stored and compared lowercase.
func NormalizeWorkItemStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsTerminal reports whether the status takes the work item out of the active
// set (used by the fleet-wide active count).
func (w WorkItem) IsTerminal() bool {
	switch NormalizeWorkItemStatus(w.Status) {
	case WorkItemStatusCompleted, WorkItemStatusCancelled:
		return true
	}
	return false
}

// IsCompleted reports whether the work item is done. Snapshot assembly skips
// completed items but still lists cancelled ones awaiting customer follow-up.
func (w WorkItem) IsCompleted() bool {
	return NormalizeWorkItemStatus(w.Status) == WorkItemStatusCompleted
}

// IsAppointment and IsProject classify the item for the snapshot counters.
func (w WorkItem) IsAppointment() bool {
	return strings.EqualFold(string(w.Type), string(WorkItemTypeAppointment))
}

func (w WorkItem) IsProject() bool {
	return strings.EqualFold(string(w.Type), string(WorkItemTypeProject))
}
