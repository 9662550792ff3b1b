// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"depot/internal/delivery/http/middleware"
	"depot/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	StorageHandler *handler.StorageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	storageHandler *handler.StorageHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		storageHandler: params.StorageHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Routes that require a valid access token
	meGroup := e.Group("/auth/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.authHandler.Profile)
		meGroup.PATCH("", r.userHandler.UpdateProfile)
		meGroup.DELETE("", r.userHandler.Deactivate)
	}

	// Admin-only user directory; the admin check happens in the usecase.
	e.GET("/auth/users", r.userHandler.ListUsers, r.authMiddleware.Authenticate)

	// Object store proxy routes; the store enforces its own credentials, so
	// these are not behind the token check.
	storageGroup := e.Group("/storage")
	{
		storageGroup.POST("/buckets/:bucket", r.storageHandler.CreateBucket)
		storageGroup.DELETE("/buckets/:bucket", r.storageHandler.DeleteBucket)
		storageGroup.GET("/buckets", r.storageHandler.ListBuckets)
		storageGroup.DELETE("/buckets", r.storageHandler.DeleteAllBuckets)
		storageGroup.POST("/upload/:bucket", r.storageHandler.Upload)
		storageGroup.GET("/download", r.storageHandler.Download)
		storageGroup.DELETE("/objects", r.storageHandler.DeleteObject)
	}
}
