package request

import "strings"

// CreateWorkItemRequest is the intake payload for a new appointment or
// project submitted on behalf of a customer.
type CreateWorkItemRequest struct {
	Title      string `json:"title" binding:"required"`
	Type       string `json:"type" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`
}

func (r CreateWorkItemRequest) ResolveTitle() string {
	return strings.TrimSpace(r.Title)
}

func (r CreateWorkItemRequest) ResolveType() string {
	return strings.TrimSpace(r.Type)
}

func (r CreateWorkItemRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}

// UpdateWorkItemStatusRequest is the PATCH /work-items/:id/status payload.
type UpdateWorkItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateWorkItemStatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
