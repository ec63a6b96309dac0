package handlers

import (
	"errors"
	"net/http"

	response "autocare360/internal/adapter/http/dto/response"
	"autocare360/internal/usecase"
	"autocare360/pkg"

	"github.com/gin-gonic/gin"
)

// WorkloadHandler handles HTTP requests for workload snapshots, availability
// and fleet capacity metrics. Snapshots are computed per request; nothing
// here mutates state.

type WorkloadHandler struct {
	usecase usecase.IWorkloadUseCase
}

func NewWorkloadHandler(uc usecase.IWorkloadUseCase) *WorkloadHandler {
	return &WorkloadHandler{usecase: uc}
}

// GetWorkloads returns one snapshot per employee in directory order.
func (h *WorkloadHandler) GetWorkloads(c *gin.Context) {
	snapshots, err := h.usecase.ListWorkloads(c.Request.Context())
	if err != nil {
		appErr := mapWorkloadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkloadSnapshots(snapshots))
}

// GetEmployeeWorkload returns the snapshot for one employee.
func (h *WorkloadHandler) GetEmployeeWorkload(c *gin.Context) {
	employeeID := c.Param("employee_id")

	snapshot, err := h.usecase.GetEmployeeWorkload(c.Request.Context(), employeeID)
	if err != nil {
		appErr := mapWorkloadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkloadSnapshot(snapshot))
}

// GetAvailability returns all snapshots least-loaded first.
func (h *WorkloadHandler) GetAvailability(c *gin.Context) {
	snapshots, err := h.usecase.ListAvailability(c.Request.Context())
	if err != nil {
		appErr := mapWorkloadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkloadSnapshots(snapshots))
}

// GetCapacityMetrics returns the fleet-wide aggregate.
func (h *WorkloadHandler) GetCapacityMetrics(c *gin.Context) {
	metrics, err := h.usecase.GetCapacityMetrics(c.Request.Context())
	if err != nil {
		appErr := mapWorkloadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCapacityMetrics(metrics))
}

func mapWorkloadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID), errors.Is(err, usecase.ErrInvalidWorkItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkItemNotFound):
		return pkg.NewDomainErrorSimple("WORK_ITEM_NOT_FOUND", "Work item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Active assignment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAssignmentConflict):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_ALREADY_EXISTS", "Active assignment already exists for this work item and employee", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
