package routes

import (
	"ems-backend/internal/api/handlers"
	"ems-backend/internal/api/middleware"
	"ems-backend/internal/auth"
	"ems-backend/internal/config"
	"ems-backend/internal/repository"
	"ems-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	leaveTypeRepo := repository.NewLeaveTypeRepository(db)
	allocationRepo := repository.NewLeaveAllocationRepository(db)
	requestRepo := repository.NewLeaveRequestRepository(db)
	approvalRepo := repository.NewLeaveApprovalRepository(db)

	// Initialize services
	ledger := service.NewLedger(db, allocationRepo, cfg.AutoCreateAllocation, cfg.DefaultAllocatedDays)
	userService := service.NewUserService(userRepo, teamRepo, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, validator)
	leaveTypeService := service.NewLeaveTypeService(leaveTypeRepo, validator)
	allocationService := service.NewAllocationService(allocationRepo, userRepo, leaveTypeRepo, ledger, validator)
	requestService := service.NewLeaveRequestService(requestRepo, userRepo, leaveTypeRepo, ledger, validator)
	approvalService := service.NewApprovalService(db, requestRepo, approvalRepo, ledger)

	// Initialize auth
	authService := auth.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiryHours)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	leaveTypeHandler := handlers.NewLeaveTypeHandler(leaveTypeService)
	allocationHandler := handlers.NewAllocationHandler(allocationService)
	requestHandler := handlers.NewLeaveRequestHandler(requestService)
	approvalHandler := handlers.NewApprovalHandler(approvalService, requestService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/me", authHandler.Me)

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
		}

		// Leave type routes
		leaveTypes := v1.Group("/leave-types")
		{
			leaveTypes.GET("", leaveTypeHandler.ListLeaveTypes)
			leaveTypes.POST("", leaveTypeHandler.CreateLeaveType)
			leaveTypes.GET("/:id", leaveTypeHandler.GetLeaveType)
			leaveTypes.PUT("/:id", leaveTypeHandler.UpdateLeaveType)
			leaveTypes.DELETE("/:id", leaveTypeHandler.DeleteLeaveType)
		}

		// Allocation routes
		allocations := v1.Group("/allocations")
		{
			allocations.GET("", allocationHandler.ListAllocations)
			allocations.POST("", allocationHandler.CreateAllocation)
			allocations.GET("/balance", allocationHandler.GetBalance)
			allocations.GET("/:id", allocationHandler.GetAllocation)
			allocations.PUT("/:id", allocationHandler.UpdateAllocation)
			allocations.DELETE("/:id", allocationHandler.DeleteAllocation)
		}

		// Leave request routes
		leaveRequests := v1.Group("/leave-requests")
		{
			leaveRequests.GET("", requestHandler.ListLeaveRequests)
			leaveRequests.POST("", requestHandler.CreateLeaveRequest)
			leaveRequests.GET("/:id", requestHandler.GetLeaveRequest)
			leaveRequests.DELETE("/:id", requestHandler.DeleteLeaveRequest)

			// Approval workflow
			leaveRequests.POST("/:id/decisions", approvalHandler.Decide)
			leaveRequests.POST("/:id/withdraw", approvalHandler.Withdraw)
			leaveRequests.GET("/:id/approvals", approvalHandler.ListApprovals)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
