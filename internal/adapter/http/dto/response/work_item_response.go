package response

import (
	"time"

	"autocare360/internal/domain/entities"
)

type WorkItemResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	CustomerID string    `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromWorkItem(w entities.WorkItem) WorkItemResponse {
	return WorkItemResponse{
		ID:         w.ID,
		Title:      w.Title,
		Type:       string(w.Type),
		Status:     w.Status,
		CustomerID: w.CustomerID,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func FromWorkItems(items []entities.WorkItem) []WorkItemResponse {
	out := make([]WorkItemResponse, 0, len(items))
	for _, w := range items {
		out = append(out, FromWorkItem(w))
	}
	return out
}
