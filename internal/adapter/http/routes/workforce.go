package routes

import (
	"autocare360/internal/adapter/http/handlers"
	"autocare360/internal/adapter/http/middleware"
	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth            = "/auth"
	PathEmployees       = "/employees"
	PathWorkItems       = "/work-items"
	PathTimeLogs        = "/time-logs"
	PathWorkloads       = "/workloads"
	PathAssignments     = "/assignments"
	PathAvailability    = "/availability"
	PathCapacityMetrics = "/capacity-metrics"
)

func addWorkforceRoutes(
	rg *gin.RouterGroup,
	tokens interfaces.ITokenManager,
	authHandler *handlers.AuthHandler,
	employeeHandler *handlers.EmployeeHandler,
	workItemHandler *handlers.WorkItemHandler,
	timeLogHandler *handlers.TimeLogHandler,
	workloadHandler *handlers.WorkloadHandler,
	assignmentHandler *handlers.AssignmentHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}

	staff := middleware.RequireAuth(tokens, entities.UserRoleAdmin, entities.UserRoleEmployee)
	admin := middleware.RequireAuth(tokens, entities.UserRoleAdmin)
	authenticated := middleware.RequireAuth(tokens)

	employees := rg.Group(PathEmployees, admin)
	{
		employees.POST("", employeeHandler.CreateEmployee)
		employees.GET("", employeeHandler.ListEmployees)
		employees.GET("/:id", employeeHandler.GetEmployee)
	}

	workItems := rg.Group(PathWorkItems, authenticated)
	{
		workItems.POST("", workItemHandler.CreateWorkItem)
		workItems.GET("", workItemHandler.ListWorkItemsByCustomer)
		workItems.GET("/:id", workItemHandler.GetWorkItem)
		workItems.PATCH("/:id/status", workItemHandler.UpdateWorkItemStatus)
	}

	timeLogs := rg.Group(PathTimeLogs, staff)
	{
		timeLogs.POST("", timeLogHandler.CreateTimeLog)
		timeLogs.GET("", timeLogHandler.ListTimeLogs)
	}

	workloads := rg.Group(PathWorkloads, staff)
	{
		workloads.GET("", workloadHandler.GetWorkloads)
		workloads.GET("/:employee_id", workloadHandler.GetEmployeeWorkload)
	}

	rg.GET(PathAvailability, staff, workloadHandler.GetAvailability)
	rg.GET(PathCapacityMetrics, staff, workloadHandler.GetCapacityMetrics)

	assignments := rg.Group(PathAssignments, staff)
	{
		assignments.POST("", assignmentHandler.CreateAssignment)
		assignments.DELETE("", assignmentHandler.RemoveAssignment)
	}
}
