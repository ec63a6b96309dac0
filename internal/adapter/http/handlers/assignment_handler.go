package handlers

import (
	"log"
	"net/http"

	request "autocare360/internal/adapter/http/dto/request"
	response "autocare360/internal/adapter/http/dto/response"
	"autocare360/internal/usecase"
	"autocare360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAssignmentPayload = pkg.NewDomainErrorSimple("INVALID_ASSIGNMENT_INPUT", "Invalid assignment payload", http.StatusBadRequest)

// AssignmentHandler handles HTTP requests for job assignments.

type AssignmentHandler struct {
	usecase usecase.IWorkloadUseCase
}

func NewAssignmentHandler(uc usecase.IWorkloadUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

// CreateAssignment links an employee to a work item.
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var payload request.AssignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssignmentPayload.HTTPStatus, errInvalidAssignmentPayload.ToHTTPError())
		return
	}

	workItemID := payload.ResolveWorkItemID()
	employeeID := payload.ResolveEmployeeID()
	if workItemID == "" || employeeID == "" {
		c.JSON(errInvalidAssignmentPayload.HTTPStatus, errInvalidAssignmentPayload.ToHTTPError())
		return
	}

	log.Printf("[assignment][handler] create start work_item_id=%s employee_id=%s", workItemID, employeeID)
	created, err := h.usecase.Assign(c.Request.Context(), workItemID, employeeID, payload.RoleOnJob)
	if err != nil {
		log.Printf("[assignment][handler] create failed work_item_id=%s employee_id=%s err=%v", workItemID, employeeID, err)
		appErr := mapWorkloadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJobAssignment(created))
}

// RemoveAssignment deactivates the active link for a (work item, employee)
// pair. The history row is archived, never deleted.
func (h *AssignmentHandler) RemoveAssignment(c *gin.Context) {
	var payload request.UnassignmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssignmentPayload.HTTPStatus, errInvalidAssignmentPayload.ToHTTPError())
		return
	}

	workItemID := payload.ResolveWorkItemID()
	employeeID := payload.ResolveEmployeeID()
	if workItemID == "" || employeeID == "" {
		c.JSON(errInvalidAssignmentPayload.HTTPStatus, errInvalidAssignmentPayload.ToHTTPError())
		return
	}

	log.Printf("[assignment][handler] remove start work_item_id=%s employee_id=%s", workItemID, employeeID)
	deactivated, err := h.usecase.Unassign(c.Request.Context(), workItemID, employeeID)
	if err != nil {
		log.Printf("[assignment][handler] remove failed work_item_id=%s employee_id=%s err=%v", workItemID, employeeID, err)
		appErr := mapWorkloadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobAssignment(deactivated))
}
