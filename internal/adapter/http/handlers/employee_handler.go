package handlers

import (
	"errors"
	"net/http"

	request "autocare360/internal/adapter/http/dto/request"
	response "autocare360/internal/adapter/http/dto/response"
	"autocare360/internal/usecase"
	"autocare360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEmployeePayload = pkg.NewDomainErrorSimple("INVALID_EMPLOYEE_INPUT", "Invalid employee payload", http.StatusBadRequest)

// EmployeeHandler handles the employee directory endpoints.

type EmployeeHandler struct {
	usecase usecase.IEmployeeUseCase
}

func NewEmployeeHandler(uc usecase.IEmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{usecase: uc}
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var payload request.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEmployeePayload.HTTPStatus, errInvalidEmployeePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ResolveName(), payload.ResolveEmail(), payload.ResolveDepartment())
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromEmployee(created))
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEmployee(e))
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	all, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEmployeeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEmployees(all))
}

func mapEmployeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID),
		errors.Is(err, usecase.ErrInvalidEmployeeName),
		errors.Is(err, usecase.ErrInvalidEmployeeEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
