package routes

import (
	"log"

	"projects-manager-backend/internal/api/handlers"
	"projects-manager-backend/internal/api/middleware"
	"projects-manager-backend/internal/auth"
	"projects-manager-backend/internal/config"
	"projects-manager-backend/internal/repository"
	"projects-manager-backend/internal/service"
	"projects-manager-backend/internal/vault"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	scopeRepo := repository.NewScopeRepository(db)
	shareRepo := repository.NewScopeShareRepository(db)
	configRepo := repository.NewScopeGitHubConfigRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	syncLogRepo := repository.NewSyncLogRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize core services
	tokenVault, err := vault.New(cfg.VaultKey)
	if err != nil {
		log.Fatalf("Failed to initialize token vault: %v", err)
	}
	permissions := service.NewPermissionService(shareRepo)
	capability := service.NewSyncCapabilityController(tokenVault)
	resolver := service.NewLabelResolver(scopeRepo, configRepo)
	githubService := service.NewGitHubService(cfg.GitHubRequestTimeoutSec, cfg.GitHubMaxRetries)

	scopeService := service.NewScopeService(scopeRepo, shareRepo, userRepo, notificationRepo, permissions)
	configService := service.NewConfigService(scopeRepo, configRepo, permissions, resolver, capability, tokenVault, githubService)
	taskService := service.NewTaskService(taskRepo, scopeRepo, configRepo, syncLogRepo, permissions, capability, resolver, githubService)
	notificationService := service.NewNotificationService(notificationRepo)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("")
	if err != nil {
		log.Fatalf("Failed to load auth config: %v", err)
	}
	authService, err := auth.NewAuthService(authConfig, userRepo)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := handlers.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	scopeHandler := handlers.NewScopeHandler(scopeService)
	shareHandler := handlers.NewShareHandler(scopeService)
	configHandler := handlers.NewConfigHandler(configService)
	taskHandler := handlers.NewTaskHandler(taskService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Scope routes
		scopes := v1.Group("/scopes")
		{
			scopes.GET("", scopeHandler.ListScopes)
			scopes.POST("", scopeHandler.CreateScope)
			scopes.GET("/:id", scopeHandler.GetScope)
			scopes.PUT("/:id", scopeHandler.UpdateScope)
			scopes.DELETE("/:id", scopeHandler.DeleteScope)
			scopes.PUT("/:id/integration", scopeHandler.SetIntegrationFlag)

			// Sharing roster routes
			scopes.GET("/:id/shares", shareHandler.ListShares)
			scopes.POST("/:id/shares", shareHandler.InviteShare)
			scopes.POST("/:id/shares/respond", shareHandler.RespondToShare)
			scopes.PUT("/:id/shares/:userId", shareHandler.UpdateShareRole)
			scopes.DELETE("/:id/shares/:userId", shareHandler.RevokeShare)

			// Per-user integration configuration routes
			scopes.GET("/:id/config", configHandler.GetConfig)
			scopes.PUT("/:id/config", configHandler.UpdateConfig)
			scopes.DELETE("/:id/config/token", configHandler.ClearToken)
			scopes.POST("/:id/config/test", configHandler.TestConnection)
			scopes.GET("/:id/config/repositories", configHandler.ListRepositories)
			scopes.GET("/:id/config/projects", configHandler.ListProjects)
			scopes.GET("/:id/config/milestones", configHandler.ListMilestones)

			// Task routes
			scopes.GET("/:id/tasks", taskHandler.ListTasks)
			scopes.POST("/:id/tasks", taskHandler.CreateTask)
			scopes.GET("/:id/tasks/:taskId", taskHandler.GetTask)
			scopes.PUT("/:id/tasks/:taskId", taskHandler.UpdateTask)
			scopes.DELETE("/:id/tasks/:taskId", taskHandler.DeleteTask)
			scopes.PUT("/:id/tasks/:taskId/completion", taskHandler.SetCompleted)
			scopes.GET("/:id/tasks/:taskId/sync-logs", taskHandler.GetSyncLogs)
		}

		// Invitation routes
		v1.GET("/invitations", shareHandler.ListInvitations)

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
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
