package response

import (
	"time"

	"autocare360/internal/domain/entities"
)

type TimeLogResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Minutes    string    `json:"minutes"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromTimeLogEntry(e entities.TimeLogEntry) TimeLogResponse {
	return TimeLogResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Date:       e.Date.Format(entities.TimeLogDateFormat),
		Minutes:    e.Minutes.String(),
		CreatedAt:  e.CreatedAt,
	}
}

func FromTimeLogEntries(entries []entities.TimeLogEntry) []TimeLogResponse {
	out := make([]TimeLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromTimeLogEntry(e))
	}
	return out
}
