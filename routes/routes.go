package routes

import (
	"net/http"
	"time"

	"servana/handlers"
	"servana/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers customer endpoints.
func RegisterUserRoutes(r *gin.Engine, h *handlers.UserHandler) {
	api := r.Group("/api/user")
	{
		api.POST("/register", h.RegisterHandler)
		api.POST("/login", h.LoginHandler)
		api.GET("/servicers/:id/availability", h.AvailabilityHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/profile", h.ProfileHandler)
		api.PUT("/profile", h.UpdateProfileHandler)
		api.POST("/appointments", h.BookHandler)
		api.GET("/appointments", h.ListAppointmentsHandler)
		api.PUT("/appointments/:id/cancel", h.CancelAppointmentHandler)
		api.DELETE("/appointments/:id", h.DeleteAppointmentHandler)
	}
}

// RegisterServicerRoutes registers service-provider endpoints.
func RegisterServicerRoutes(r *gin.Engine, h *handlers.ServicerHandler) {
	api := r.Group("/api/servicer")
	{
		api.POST("/register", h.RegisterHandler)
		api.POST("/login", h.LoginHandler)
		api.GET("/list", h.ListApprovedHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthServicerMiddleware())
		api.GET("/profile", h.ProfileHandler)
		api.PUT("/profile", h.UpdateProfileHandler)
		api.PUT("/working-hours", h.UpdateWorkingHoursHandler)
		api.PUT("/working-hours/:day/toggle", h.ToggleDayHandler)
		api.PUT("/availability/toggle", h.ToggleAvailableHandler)
		api.GET("/appointments", h.ListAppointmentsHandler)
		api.PUT("/appointments/:id/status", h.UpdateAppointmentStatusHandler)
		api.DELETE("/appointments/:id", h.DeleteAppointmentHandler)
	}
}

// RegisterAdminRoutes registers back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, h *handlers.AdminHandler) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", h.LoginHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("/dashboard", h.DashboardHandler)
		api.GET("/servicers", h.ListServicersHandler)
		api.GET("/servicers/pending", h.ListPendingServicersHandler)
		api.PUT("/servicers/:id", h.UpdateServicerHandler)
		api.PUT("/servicers/:id/approve", h.ApproveServicerHandler)
		api.PUT("/servicers/:id/reject", h.RejectServicerHandler)
		api.PUT("/servicers/:id/block", h.BlockServicerHandler)
		api.PUT("/servicers/:id/unblock", h.UnblockServicerHandler)
		api.DELETE("/servicers/:id", h.DeleteServicerHandler)
		api.GET("/users", h.ListUsersHandler)
		api.DELETE("/users/:id", h.DeleteUserHandler)
		api.GET("/appointments", h.ListAppointmentsHandler)
		api.PUT("/appointments/:id/cancel", h.CancelAppointmentHandler)
		api.DELETE("/appointments/:id", h.DeleteAppointmentHandler)
	}
}

// RegisterHealthRoute registers the liveness probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes wires CORS and every route group onto the engine.
func RegisterRoutes(r *gin.Engine, uh *handlers.UserHandler, sh *handlers.ServicerHandler, ah *handlers.AdminHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, uh)
	RegisterServicerRoutes(r, sh)
	RegisterAdminRoutes(r, ah)
	RegisterHealthRoute(r)
}
