package handlers

import (
	"errors"
	"net/http"

	request "autocare360/internal/adapter/http/dto/request"
	response "autocare360/internal/adapter/http/dto/response"
	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase"
	"autocare360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkItemPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ITEM_INPUT", "Invalid work item payload", http.StatusBadRequest)

// WorkItemHandler handles work item intake and status transitions.

type WorkItemHandler struct {
	usecase usecase.IWorkItemUseCase
}

func NewWorkItemHandler(uc usecase.IWorkItemUseCase) *WorkItemHandler {
	return &WorkItemHandler{usecase: uc}
}

func (h *WorkItemHandler) CreateWorkItem(c *gin.Context) {
	var payload request.CreateWorkItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkItemPayload.HTTPStatus, errInvalidWorkItemPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(
		c.Request.Context(),
		payload.ResolveTitle(),
		entities.WorkItemType(payload.ResolveType()),
		payload.ResolveCustomerID(),
	)
	if err != nil {
		appErr := mapWorkItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkItem(created))
}

func (h *WorkItemHandler) GetWorkItem(c *gin.Context) {
	w, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItem(w))
}

func (h *WorkItemHandler) UpdateWorkItemStatus(c *gin.Context) {
	var payload request.UpdateWorkItemStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkItemPayload.HTTPStatus, errInvalidWorkItemPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapWorkItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItem(updated))
}

func (h *WorkItemHandler) ListWorkItemsByCustomer(c *gin.Context) {
	items, err := h.usecase.ListByCustomer(c.Request.Context(), c.Query("customer_id"))
	if err != nil {
		appErr := mapWorkItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkItems(items))
}

func mapWorkItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkItemID),
		errors.Is(err, usecase.ErrInvalidWorkItemTitle),
		errors.Is(err, usecase.ErrInvalidWorkItemType),
		errors.Is(err, usecase.ErrInvalidWorkItemStatus),
		errors.Is(err, usecase.ErrInvalidCustomerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkItemNotFound):
		return pkg.NewDomainErrorSimple("WORK_ITEM_NOT_FOUND", "Work item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
