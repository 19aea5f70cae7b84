// Package wallverse is a content catalog service for a wallpaper gallery
// and a small blog, built with Go and Echo.
//
// It serves the public JSON API, a bearer-token protected admin API for
// creating, updating and deleting content, and a generated sitemap and
// feed. Presentation lives elsewhere and talks to the API, normally
// through the client package.
package wallverse

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// App is the central wallverse application. It wires together the store,
// handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store

	metrics      *prometheus.Registry
	customRoutes []func(*App)
	ownsStore    bool
	ready        bool
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true
	a.Echo.Logger.SetLevel(cfg.logLevel())

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup validates the configuration, opens the store if none was given,
// and installs middleware and routes. It is idempotent.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.validate(); err != nil {
		return err
	}

	if a.Store == nil {
		store, err := NewStore(a.Config.DatabaseDriver, a.Config.DatabaseURL)
		if err != nil {
			return fmt.Errorf("wallverse: init store: %w", err)
		}
		a.Store = store
		a.ownsStore = true
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.ready = true
	return nil
}

// Start sets the App up and serves HTTP until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Echo.Logger.Infof("wallverse listening on %s (%s)", a.Config.Addr, a.Config.DatabaseDriver)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", a.handleHealth)
	if a.metrics != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: a.metrics,
		}))
	}

	// Public API
	e.GET("/api/wallpapers", a.handleListWallpapers)
	e.GET("/api/wallpapers/:slug", a.handleGetWallpaper)
	e.GET("/api/blog-posts", a.handleListBlogPosts)
	e.GET("/api/blog-posts/:slug", a.handleGetBlogPost)

	// Login checks the password itself; everything else under /api/admin
	// requires the bearer token.
	e.POST("/api/admin/login", a.handleAdminLogin)

	admin := e.Group("/api/admin", a.requireAdmin)
	admin.GET("/wallpapers", a.handleAdminListWallpapers)
	admin.GET("/wallpapers/:id", a.handleAdminGetWallpaper)
	admin.POST("/wallpapers", a.handleAdminCreateWallpaper)
	admin.PUT("/wallpapers", a.handleAdminUpdateWallpaper)
	admin.DELETE("/wallpapers/:id", a.handleAdminDeleteWallpaper)
	admin.GET("/blog-posts", a.handleAdminListBlogPosts)
	admin.GET("/blog-posts/:id", a.handleAdminGetBlogPost)
	admin.POST("/blog-posts", a.handleAdminCreateBlogPost)
	admin.PUT("/blog-posts", a.handleAdminUpdateBlogPost)
	admin.DELETE("/blog-posts/:id", a.handleAdminDeleteBlogPost)
}

// Close releases the store if the App opened it.
func (a *App) Close() error {
	if a.Store != nil && a.ownsStore {
		return a.Store.Close()
	}
	return nil
}
