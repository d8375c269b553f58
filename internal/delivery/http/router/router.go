// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"brokerage/internal/delivery/http/middleware"
	"brokerage/internal/delivery/http/router/handler"
	"brokerage/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	ListingHandler      *handler.ListingHandler
	BookingHandler      *handler.BookingHandler
	ReviewHandler       *handler.ReviewHandler
	NotificationHandler *handler.NotificationHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	account      *handler.AccountHandler
	listing      *handler.ListingHandler
	booking      *handler.BookingHandler
	review       *handler.ReviewHandler
	notification *handler.NotificationHandler
	dashboard    *handler.DashboardHandler
	auth         *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		account:      params.AccountHandler,
		listing:      params.ListingHandler,
		booking:      params.BookingHandler,
		review:       params.ReviewHandler,
		notification: params.NotificationHandler,
		dashboard:    params.DashboardHandler,
		auth:         params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public catalog and auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.account.Register)
		authGroup.POST("/login", r.account.Login)
	}

	propertyGroup := e.Group("/properties")
	{
		propertyGroup.GET("", r.listing.Browse)
		propertyGroup.GET("/:id", r.listing.Get)
		propertyGroup.POST("/:id/views", r.listing.RecordView)
		propertyGroup.GET("/:id/reviews", r.review.ByProperty)
		propertyGroup.GET("/:id/rating", r.review.PropertyRating)
	}

	// Routes shared by every authenticated role
	meGroup := e.Group("/me")
	meGroup.Use(r.auth.Authenticate)
	{
		meGroup.GET("", r.account.GetProfile)
		meGroup.PUT("", r.account.UpdateProfile)
		meGroup.POST("/logout", r.account.Logout)
		meGroup.GET("/notifications", r.notification.List)
		meGroup.GET("/notifications/unread", r.notification.UnreadCount)
		meGroup.PUT("/notifications/read", r.notification.MarkAllRead)
		meGroup.PUT("/notifications/:id/read", r.notification.MarkRead)
		meGroup.DELETE("/notifications/:id", r.notification.Delete)
	}

	// Customer routes
	customerGroup := e.Group("/customer")
	customerGroup.Use(r.auth.Authenticate)
	customerGroup.Use(r.auth.RequireRole(entity.RoleCustomer.String()))
	{
		customerGroup.POST("/appointments", r.booking.Book)
		customerGroup.GET("/appointments", r.booking.MyBookings)
		customerGroup.PUT("/appointments/:id/cancel", r.booking.Cancel)
		customerGroup.POST("/reviews", r.review.Create)
		customerGroup.GET("/reviews", r.review.MyReviews)
	}

	// Agent routes
	agentGroup := e.Group("/agent")
	agentGroup.Use(r.auth.Authenticate)
	agentGroup.Use(r.auth.RequireRole(entity.RoleAgent.String()))
	{
		agentGroup.POST("/properties", r.listing.Submit)
		agentGroup.GET("/properties", r.listing.MyListings)
		agentGroup.PUT("/properties/:id", r.listing.Update)
		agentGroup.PUT("/properties/:id/sold", r.listing.MarkSold)
		agentGroup.DELETE("/properties/:id", r.listing.Delete)
		agentGroup.GET("/appointments", r.booking.AgentBookings)
		agentGroup.PUT("/appointments/:id/confirm", r.booking.Confirm)
		agentGroup.PUT("/appointments/:id/complete", r.booking.Complete)
		agentGroup.GET("/dashboard", r.dashboard.AgentStats)
	}

	// Admin routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.auth.Authenticate)
	adminGroup.Use(r.auth.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/users", r.account.ListUsers)
		adminGroup.GET("/users/:id", r.account.GetUser)
		adminGroup.PUT("/users/:id", r.account.UpdateUser)
		adminGroup.GET("/agents/pending", r.account.PendingAgents)
		adminGroup.PUT("/agents/:id/approve", r.account.ApproveAgent)
		adminGroup.PUT("/agents/:id/reject", r.account.RejectAgent)
		adminGroup.GET("/properties", r.listing.ListAll)
		adminGroup.GET("/properties/pending", r.listing.PendingListings)
		adminGroup.PUT("/properties/:id/approve", r.listing.Approve)
		adminGroup.PUT("/properties/:id/reject", r.listing.Reject)
		adminGroup.DELETE("/properties/:id", r.listing.Delete)
		adminGroup.GET("/appointments", r.booking.ListAll)
		adminGroup.GET("/reviews", r.review.ListAll)
		adminGroup.PUT("/reviews/:id/flag", r.review.Flag)
		adminGroup.PUT("/reviews/:id/unflag", r.review.Unflag)
		adminGroup.PUT("/reviews/:id/edit", r.review.AdminEdit)
		adminGroup.DELETE("/reviews/:id", r.review.Delete)
		adminGroup.GET("/dashboard", r.dashboard.AdminStats)
	}
}
