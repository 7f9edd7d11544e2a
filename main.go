package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"lawfirm-server/config"
	"lawfirm-server/database"
	"lawfirm-server/jobs"
	"lawfirm-server/middleware"
	"lawfirm-server/routes"
	ws "lawfirm-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database (runs migrations)
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Seed the admin account and site content
	if err := seed(); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Input validation
	router.Use(middleware.InputValidationMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())

	// Secure CORS
	router.Use(middleware.CORSMiddleware())

	// Audit logging
	router.Use(middleware.AuditLogMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Law Firm Server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Dashboard event hub: booking events are pushed to connected admins
	hub := ws.NewHub()
	go hub.Run()
	routes.InitBookingHub(hub)

	adminWS := ws.NewAdminHandler(hub)
	router.GET("/api/v1/ws/admin", middleware.WebSocketAuthMiddleware(), adminWS.HandleAdmin)

	// API routes
	api := router.Group("/api/v1")
	{
		// Public booking routes
		bookingRoutes := api.Group("/bookings")
		routes.RegisterBookingRoutes(bookingRoutes)

		// Public site content
		routes.RegisterContentRoutes(api)

		// Admin authentication routes - with strict rate limiting
		adminAuth := api.Group("/admin/auth")
		adminAuth.Use(middleware.AuthRateLimitMiddleware())
		adminAuth.POST("/login", routes.AdminLogin)
		adminAuth.POST("/refresh", routes.AdminRefreshToken)
		adminAuth.POST("/logout", routes.AdminLogout)

		// Admin routes (protected with admin authentication)
		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.AuthMiddleware(), routes.AdminAuthMiddleware())
		{
			adminRoutes.GET("/auth/me", routes.GetCurrentAdmin)
			adminRoutes.GET("/dashboard/stats", routes.GetDashboardStats)

			routes.RegisterAdminBookingRoutes(adminRoutes)
			routes.RegisterAdminBlogRoutes(adminRoutes)
			routes.RegisterAdminEmployeeRoutes(adminRoutes)
			routes.RegisterAdminPackageRoutes(adminRoutes)
			routes.RegisterAdminContentRoutes(adminRoutes)
		}
	}

	// Start background jobs
	tokenCleanupJob := jobs.NewTokenCleanupJob()
	tokenCleanupJob.Start()
	defer tokenCleanupJob.Stop()

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = config.AppConfig.Server.Port
	}

	log.Printf("🚀 Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
