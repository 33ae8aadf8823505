package routes

import (
	"time"

	"slotbook/config"
	"slotbook/handlers"
	"slotbook/middleware"
	"slotbook/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", middleware.RequireAuth(hb.Auth), hb.LogoutHandler)
	}
}

// RegisterProfessorRoutes registers endpoints restricted to professors.
func RegisterProfessorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/professor")
	{
		api.Use(middleware.RequireRole(hb.Auth, models.RoleProfessor))
		api.POST("/availability", hb.SetAvailabilityHandler)
		api.GET("/availability", hb.GetOwnAvailabilityHandler)
		api.DELETE("/:profId/student/:studentId/cancel", hb.CancelAppointmentHandler)
	}
}

// RegisterStudentRoutes registers endpoints restricted to students.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/student")
	{
		api.Use(middleware.RequireRole(hb.Auth, models.RoleStudent))
		api.GET("/:studentId/professor/:profId/availability", hb.GetProfessorAvailabilityHandler)
		api.POST("/:studentId/professor/:profId/book", hb.BookAppointmentHandler)
		api.GET("/:studentId/appointments", hb.GetPendingAppointmentsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := config.AllowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: len(origins) != 1 || origins[0] != "*",
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProfessorRoutes(r, hb)
	RegisterStudentRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
