package routes

import (
	"log"
	"strconv"

	_ "autocare360/docs" // This will be auto-generated
	"autocare360/internal/adapter/http/handlers"
	"autocare360/internal/adapter/persistence/repository"
	"autocare360/internal/infrastructure/auth"
	"autocare360/internal/infrastructure/database"
	"autocare360/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	employeeRepo := repository.NewEmployeeDynamoRepository(ddb)
	workItemRepo := repository.NewWorkItemDynamoRepository(ddb)
	assignmentRepo := repository.NewJobAssignmentDynamoRepository(ddb)
	timeLogRepo := repository.NewTimeLogDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)

	tokens, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatalf("JWT manager not configured: %v", err)
	}

	clock := usecase.SystemClock{}
	workloadUseCase := usecase.NewWorkloadUseCase(employeeRepo, workItemRepo, assignmentRepo, timeLogRepo, clock)
	workItemUseCase := usecase.NewWorkItemUseCase(workItemRepo, clock)
	timeLogUseCase := usecase.NewTimeLogUseCase(timeLogRepo, employeeRepo, clock)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo, clock)
	authUseCase := usecase.NewAuthUseCase(userRepo, tokens)

	authHandler := handlers.NewAuthHandler(authUseCase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUseCase)
	workItemHandler := handlers.NewWorkItemHandler(workItemUseCase)
	timeLogHandler := handlers.NewTimeLogHandler(timeLogUseCase)
	workloadHandler := handlers.NewWorkloadHandler(workloadUseCase)
	assignmentHandler := handlers.NewAssignmentHandler(workloadUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkforceRoutes(v1, tokens, authHandler, employeeHandler, workItemHandler, timeLogHandler, workloadHandler, assignmentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
