package routes

import (
	"net/http"
	"time"

	"roomfinder/handlers"
	"roomfinder/middleware"
	"roomfinder/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers auth endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.BearerAuthMiddleware())
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.ProfileHandler)
	}
}

// RegisterPropertyRoutes registers the public listing endpoints.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.GET("", hb.SearchPropertiesHandler)
		api.GET("/:id", hb.GetPropertyHandler)
		api.GET("/:id/reviews", hb.PropertyReviewsHandler)
	}
	r.GET("/api/stats", hb.PlatformStatsHandler)
}

// RegisterDashboardRoutes registers the per-user feed endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.BearerAuthMiddleware())
		api.GET("/overview", hb.OverviewHandler)
		api.GET("/properties", hb.PropertiesHandler)
		api.GET("/bookings", hb.BookingsHandler)
		api.GET("/reviews", hb.ReviewsHandler)
		api.GET("/enquiries", hb.EnquiriesHandler)
		api.POST("/enquiries", hb.CreateEnquiryHandler)
		api.GET("/favorites", hb.FavoritesHandler)
		api.GET("/notifications", hb.NotificationsHandler)
		api.PATCH("/notifications/:id/read", hb.MarkNotificationReadHandler)
		api.PATCH("/notifications/read-all", hb.MarkAllNotificationsReadHandler)
		api.GET("/wallet/transactions", hb.TransactionsHandler)
		api.POST("/wallet/withdrawals", hb.WithdrawHandler)

		// Host application flow for non-approved hosts.
		api.GET("/host-application", hb.HostApplicationHandler)
		api.POST("/host-application", hb.SubmitHostApplicationHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin/revenue-configs")
	{
		adminGroup.Use(middleware.BearerAuthMiddleware())
		adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
		adminGroup.GET("", hb.RevenueListHandler)
		adminGroup.POST("", hb.RevenueCreateHandler)
		adminGroup.PUT("/:id/activate", hb.RevenueActivateHandler)
		adminGroup.PATCH("/:id", hb.RevenueUpdateHandler)
		adminGroup.DELETE("/:id", hb.RevenueDeleteHandler)
		adminGroup.POST("/calculate", hb.RevenueCalculateHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Room Finder"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
