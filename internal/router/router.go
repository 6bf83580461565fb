// Package router maps REST endpoints to handlers and applies the access
// control gates. Routes fall into three tiers: public, authenticated user,
// and administrator.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/homevista/property-listings/internal/config"
	"github.com/homevista/property-listings/internal/handler"
	"github.com/homevista/property-listings/internal/middleware"
	"github.com/homevista/property-listings/internal/model"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	Properties *handler.PropertyHandler
	Wishlists  *handler.WishlistHandler
	Inquiries  *handler.InquiryHandler
	Users      *handler.UserHandler
	Dashboard  *handler.DashboardHandler
}

// RegisterRoutes wires all endpoints onto the Echo instance. The Redis
// client may be nil, in which case caching and rate limiting are disabled.
func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	// Public catalog browsing gets the ambient Redis layers: cached
	// responses and a token bucket per client IP and route.
	browse := api.Group("",
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	)
	browse.GET("/properties", h.Properties.Search)
	browse.GET("/properties/:id", h.Properties.Get)

	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)
	api.POST("/inquiries", h.Inquiries.Create)

	// Any authenticated account may manage its own wishlist.
	wishlist := api.Group("/wishlist",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole(model.RoleUser, model.RoleAdmin),
	)
	wishlist.GET("", h.Wishlists.List)
	wishlist.POST("", h.Wishlists.Add)
	wishlist.DELETE("/:propertyId", h.Wishlists.Remove)

	// Administration: listing CRUD, inquiry triage, user management, stats.
	admin := api.Group("",
		middleware.JWTAuth(cfg.JWTSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.POST("/properties", h.Properties.Create)
	admin.PUT("/properties/:id", h.Properties.Update)
	admin.DELETE("/properties/:id", h.Properties.Delete)
	admin.GET("/inquiries", h.Inquiries.List)
	admin.PUT("/inquiries/:id/status", h.Inquiries.UpdateStatus)
	admin.DELETE("/inquiries/:id", h.Inquiries.Delete)
	admin.GET("/users", h.Users.List)
	admin.DELETE("/users/:id", h.Users.Delete)
	admin.GET("/dashboard/stats", h.Dashboard.Stats)
}
