package routes

import (
	"net/http"
	"time"

	"cleanly/handlers"
	"cleanly/middleware"
	"cleanly/models"
	"cleanly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Bundle groups the handlers and the auth middleware used when wiring routes.
type Bundle struct {
	Auth     *handlers.AuthHandler
	Users    *handlers.UserHandler
	Services *handlers.ServiceHandler
	Bookings *handlers.BookingHandler
	Chat     *handlers.ChatHandler
	Admin    *handlers.AdminHandler

	// Authenticate verifies the bearer token and attaches identity.
	Authenticate gin.HandlerFunc
}

// RegisterAuthRoutes registers the public auth endpoints.
func RegisterAuthRoutes(r *gin.Engine, b *Bundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", b.Auth.Register)
		api.POST("/login", b.Auth.Login)
		api.POST("/reset-password", b.Auth.ResetPassword)
		api.POST("/logout", b.Authenticate, b.Auth.Logout)
	}
}

// RegisterUserRoutes registers the public provider listing and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, b *Bundle) {
	api := r.Group("/api/users")
	{
		api.GET("/providers", b.Users.ListProviders)
		api.PUT("/profile", b.Authenticate, b.Users.UpdateProfile)
	}
}

// RegisterServiceRoutes registers catalog endpoints: reads are public,
// writes are admin-only.
func RegisterServiceRoutes(r *gin.Engine, b *Bundle) {
	api := r.Group("/api/services")
	{
		api.GET("", b.Services.List)
		api.GET("/:id", b.Services.Get)

		protected := api.Group("")
		protected.Use(b.Authenticate, middleware.RequireRoles(models.RoleAdmin))
		protected.POST("", b.Services.Create)
		protected.PUT("/:id", b.Services.Update)
		protected.DELETE("/:id", b.Services.Delete)
	}
}

// RegisterBookingRoutes registers the customer booking endpoints. Status
// updates are restricted to admins and providers.
func RegisterBookingRoutes(r *gin.Engine, b *Bundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(b.Authenticate)
		api.POST("", b.Bookings.Create)
		api.GET("", b.Bookings.List)
		api.PUT("/:id/status",
			middleware.RequireRoles(models.RoleAdmin, models.RoleProvider),
			b.Bookings.UpdateStatus)
	}
}

// RegisterChatRoutes registers the chat endpoints.
func RegisterChatRoutes(r *gin.Engine, b *Bundle) {
	api := r.Group("/api/chat")
	{
		api.Use(b.Authenticate)
		api.GET("", b.Chat.List)
		api.POST("/send", b.Chat.Send)
	}
}

// RegisterAdminRoutes registers the admin management surface.
func RegisterAdminRoutes(r *gin.Engine, b *Bundle) {
	api := r.Group("/api/admin")
	{
		api.Use(b.Authenticate, middleware.RequireRoles(models.RoleAdmin))
		api.GET("/stats", b.Admin.Stats)
		api.GET("/dashboard", b.Admin.Stats)
		api.PUT("/approve-provider/:id", b.Admin.ApproveProvider)

		api.GET("/users", b.Admin.ListUsers)
		api.GET("/users/:id", b.Admin.GetUser)
		api.PUT("/users/:id", b.Admin.UpdateUser)
		api.DELETE("/users/:id", b.Admin.DeleteUser)

		api.GET("/bookings", b.Admin.ListBookings)
		api.GET("/bookings/:id", b.Admin.GetBooking)
		api.PUT("/bookings/:id", b.Admin.UpdateBookingStatus)

		api.GET("/coupons", b.Admin.ListCoupons)
		api.POST("/coupons", b.Admin.CreateCoupon)
		api.PUT("/coupons/:id", b.Admin.SetCouponActive)
		api.DELETE("/coupons/:id", b.Admin.DeleteCoupon)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// Register centralizes registration of all endpoints and global middleware.
func Register(r *gin.Engine, b *Bundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, b)
	RegisterUserRoutes(r, b)
	RegisterServiceRoutes(r, b)
	RegisterBookingRoutes(r, b)
	RegisterChatRoutes(r, b)
	RegisterAdminRoutes(r, b)
	RegisterHealthRoute(r)
}
