// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"artify/internal/delivery/http/middleware"
	"artify/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ExploreHandler *handler.ExploreHandler
	DetailsHandler *handler.DetailsHandler
	GalleryHandler *handler.GalleryHandler
	AdminHandler   *handler.AdminHandler
	ThemeHandler   *handler.ThemeHandler

	SessionMiddleware *middleware.SessionMiddleware
	GuardMiddleware   *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the routes of the application. The layout
// mirrors the browser app: public pages, the auth pages, and the dashboard
// behind the guards.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Every route runs with the browser session attached.
	e.Use(p.SessionMiddleware.Attach)

	// Public pages
	e.GET("/", p.ExploreHandler.Home)
	e.GET("/explore", p.ExploreHandler.Explore)
	e.GET("/art/:id", p.DetailsHandler.Get)
	e.GET("/art/:id/qr", p.DetailsHandler.ShareQR)
	e.PATCH("/art/:id/like", p.DetailsHandler.ToggleLike)
	e.POST("/art/:id/favorite", p.DetailsHandler.AddFavorite)

	// Theme preference
	e.GET("/theme", p.ThemeHandler.Get)
	e.PUT("/theme", p.ThemeHandler.Set)

	// Identity
	e.POST("/login", p.AuthHandler.Login)
	e.POST("/register", p.AuthHandler.Register)
	e.GET("/auth/google", p.AuthHandler.GoogleLogin)
	e.GET("/auth/google/callback", p.AuthHandler.GoogleCallback)
	e.POST("/logout", p.AuthHandler.Logout)
	e.GET("/session", p.AuthHandler.Session)

	// Dashboard routes require a signed-in principal.
	dashboard := e.Group("/dashboard")
	dashboard.Use(p.GuardMiddleware.RequireAuthenticated)
	{
		dashboard.GET("/profile", p.AuthHandler.Profile)
		dashboard.GET("/stats", p.GalleryHandler.Stats)
		dashboard.GET("/gallery", p.GalleryHandler.List)
		dashboard.POST("/add", p.GalleryHandler.Create)
		dashboard.PATCH("/gallery/:id", p.GalleryHandler.Update)
		dashboard.DELETE("/gallery/:id", p.GalleryHandler.Delete)
		dashboard.GET("/favorites", p.GalleryHandler.Favorites)
		dashboard.DELETE("/favorites/:id", p.GalleryHandler.RemoveFavorite)
	}

	// Admin routes additionally require the administrator role.
	admin := dashboard.Group("/admin")
	admin.Use(p.GuardMiddleware.RequireAdmin)
	{
		admin.GET("/stats", p.AdminHandler.Stats)
		admin.GET("/arts", p.AdminHandler.Arts)
		admin.DELETE("/arts/:id", p.AdminHandler.DeleteArt)
		admin.PATCH("/arts/:id/featured", p.AdminHandler.SetFeatured)
		admin.PATCH("/arts/:id/visibility", p.AdminHandler.SetVisibility)
		admin.GET("/users", p.AdminHandler.Users)
		admin.PATCH("/users/:id/role", p.AdminHandler.ToggleRole)
		admin.DELETE("/users/:id", p.AdminHandler.DeleteUser)
		admin.GET("/reports", p.AdminHandler.Reports)
		admin.DELETE("/reports/:id", p.AdminHandler.ResolveReport)
		admin.DELETE("/reports/:id/art", p.AdminHandler.DeleteReportedArt)
	}
}
