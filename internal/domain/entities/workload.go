package entities

// WorkloadStatus classifies an employee's current load from the weekly
// capacity utilization percentage.

type WorkloadStatus string

const (
	WorkloadStatusAvailable  WorkloadStatus = "available"
	WorkloadStatusBusy       WorkloadStatus = "busy"
	WorkloadStatusOverloaded WorkloadStatus = "overloaded"
)

// Placeholder values for joins the workforce service does not own. Kept as
// explicit sentinels rather than invented data: the service catalog and the
// customer profile live in other services.
const (
	PlaceholderEstimatedHours = 10.0
	PlaceholderCustomerName   = "Customer"
)

// TaskSummary is one row of an employee's upcoming-task list inside a
// workload snapshot.
type TaskSummary struct {
	AssignmentID   string  `json:"assignment_id"`
	WorkItemID     string  `json:"work_item_id"`
	Title          string  `json:"title"`
	Type           string  `json:"type"`
	Date           string  `json:"date"`
	EstimatedHours float64 `json:"estimated_hours"`
	Status         string  `json:"status"`
	CustomerName   string  `json:"customer_name"`
}

// WorkloadSnapshot is a derived, non-persisted view of an employee's current
// workload, recomputed on every request. Hours and utilization are rounded to
// two decimals half-up; utilization is clamped to [0, 100].
type WorkloadSnapshot struct {
	EmployeeID          string         `json:"employee_id"`
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	Department          string         `json:"department"`
	ActiveAppointments  int            `json:"active_appointments"`
	ActiveProjects      int            `json:"active_projects"`
	HoursThisWeek       float64        `json:"hours_this_week"`
	HoursThisMonth      float64        `json:"hours_this_month"`
	CapacityUtilization float64        `json:"capacity_utilization"`
	Status              WorkloadStatus `json:"status"`
	UpcomingTasks       []TaskSummary  `json:"upcoming_tasks"`
}

// CapacityMetrics is the fleet-wide aggregate over all employee snapshots.
type CapacityMetrics struct {
	TotalEmployees       int     `json:"total_employees"`
	AvailableEmployees   int     `json:"available_employees"`
	BusyEmployees        int     `json:"busy_employees"`
	OverloadedEmployees  int     `json:"overloaded_employees"`
	AverageCapacity      float64 `json:"average_capacity"`
	TotalActiveWorkItems int     `json:"total_active_work_items"`
}
