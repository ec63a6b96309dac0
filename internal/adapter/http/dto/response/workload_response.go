package response

import "autocare360/internal/domain/entities"

type TaskSummaryResponse struct {
	AssignmentID   string  `json:"assignment_id"`
	WorkItemID     string  `json:"work_item_id"`
	Title          string  `json:"title"`
	Type           string  `json:"type"`
	Date           string  `json:"date"`
	EstimatedHours float64 `json:"estimated_hours"`
	Status         string  `json:"status"`
	CustomerName   string  `json:"customer_name"`
}

type WorkloadResponse struct {
	EmployeeID          string                `json:"employee_id"`
	Name                string                `json:"name"`
	Email               string                `json:"email"`
	Department          string                `json:"department"`
	ActiveAppointments  int                   `json:"active_appointments"`
	ActiveProjects      int                   `json:"active_projects"`
	HoursThisWeek       float64               `json:"hours_this_week"`
	HoursThisMonth      float64               `json:"hours_this_month"`
	CapacityUtilization float64               `json:"capacity_utilization"`
	Status              string                `json:"status"`
	UpcomingTasks       []TaskSummaryResponse `json:"upcoming_tasks"`
}

func FromWorkloadSnapshot(s entities.WorkloadSnapshot) WorkloadResponse {
	tasks := make([]TaskSummaryResponse, 0, len(s.UpcomingTasks))
	for _, t := range s.UpcomingTasks {
		tasks = append(tasks, TaskSummaryResponse{
			AssignmentID:   t.AssignmentID,
			WorkItemID:     t.WorkItemID,
			Title:          t.Title,
			Type:           t.Type,
			Date:           t.Date,
			EstimatedHours: t.EstimatedHours,
			Status:         t.Status,
			CustomerName:   t.CustomerName,
		})
	}
	return WorkloadResponse{
		EmployeeID:          s.EmployeeID,
		Name:                s.Name,
		Email:               s.Email,
		Department:          s.Department,
		ActiveAppointments:  s.ActiveAppointments,
		ActiveProjects:      s.ActiveProjects,
		HoursThisWeek:       s.HoursThisWeek,
		HoursThisMonth:      s.HoursThisMonth,
		CapacityUtilization: s.CapacityUtilization,
		Status:              string(s.Status),
		UpcomingTasks:       tasks,
	}
}

func FromWorkloadSnapshots(snapshots []entities.WorkloadSnapshot) []WorkloadResponse {
	out := make([]WorkloadResponse, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, FromWorkloadSnapshot(s))
	}
	return out
}

type CapacityMetricsResponse struct {
	TotalEmployees       int     `json:"total_employees"`
	AvailableEmployees   int     `json:"available_employees"`
	BusyEmployees        int     `json:"busy_employees"`
	OverloadedEmployees  int     `json:"overloaded_employees"`
	AverageCapacity      float64 `json:"average_capacity"`
	TotalActiveWorkItems int     `json:"total_active_work_items"`
}

func FromCapacityMetrics(m entities.CapacityMetrics) CapacityMetricsResponse {
	return CapacityMetricsResponse{
		TotalEmployees:       m.TotalEmployees,
		AvailableEmployees:   m.AvailableEmployees,
		BusyEmployees:        m.BusyEmployees,
		OverloadedEmployees:  m.OverloadedEmployees,
		AverageCapacity:      m.AverageCapacity,
		TotalActiveWorkItems: m.TotalActiveWorkItems,
	}
}
