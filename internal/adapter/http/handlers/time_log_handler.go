package handlers

import (
	"errors"
	"net/http"
	"time"

	request "autocare360/internal/adapter/http/dto/request"
	response "autocare360/internal/adapter/http/dto/response"
	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase"
	"autocare360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTimeLogPayload = pkg.NewDomainErrorSimple("INVALID_TIME_LOG_INPUT", "Invalid time log payload", http.StatusBadRequest)

// TimeLogHandler handles the employee time-entry action.

type TimeLogHandler struct {
	usecase usecase.ITimeLogUseCase
}

func NewTimeLogHandler(uc usecase.ITimeLogUseCase) *TimeLogHandler {
	return &TimeLogHandler{usecase: uc}
}

func (h *TimeLogHandler) CreateTimeLog(c *gin.Context) {
	var payload request.TimeLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTimeLogPayload.HTTPStatus, errInvalidTimeLogPayload.ToHTTPError())
		return
	}

	date, err := payload.ResolveDate()
	if err != nil {
		c.JSON(errInvalidTimeLogPayload.HTTPStatus, errInvalidTimeLogPayload.ToHTTPError())
		return
	}
	minutes, err := payload.ResolveMinutes()
	if err != nil {
		c.JSON(errInvalidTimeLogPayload.HTTPStatus, errInvalidTimeLogPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.Log(c.Request.Context(), payload.ResolveEmployeeID(), date, minutes)
	if err != nil {
		appErr := mapTimeLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTimeLogEntry(entry))
}

// ListTimeLogs returns the entries for one employee inside a date window.
// The "to" date is exclusive.
func (h *TimeLogHandler) ListTimeLogs(c *gin.Context) {
	employeeID := c.Query("employee_id")
	from, errFrom := time.Parse(entities.TimeLogDateFormat, c.Query("from"))
	to, errTo := time.Parse(entities.TimeLogDateFormat, c.Query("to"))
	if errFrom != nil || errTo != nil {
		c.JSON(errInvalidTimeLogPayload.HTTPStatus, errInvalidTimeLogPayload.ToHTTPError())
		return
	}

	entries, err := h.usecase.ListByEmployee(c.Request.Context(), employeeID, from, to)
	if err != nil {
		appErr := mapTimeLogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTimeLogEntries(entries))
}

func mapTimeLogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployeeID),
		errors.Is(err, usecase.ErrInvalidMinutes),
		errors.Is(err, usecase.ErrInvalidTimeLogDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return pkg.NewDomainErrorSimple("EMPLOYEE_NOT_FOUND", "Employee not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
