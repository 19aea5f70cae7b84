package wallverse

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleListWallpapers(c echo.Context) error {
	wallpapers, err := a.Store.ListWallpapers(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wallpapers)
}

func (a *App) handleGetWallpaper(c echo.Context) error {
	w, err := a.Store.GetWallpaperBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Wallpaper not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, w)
}

func (a *App) handleListBlogPosts(c echo.Context) error {
	posts, err := a.Store.ListBlogPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

func (a *App) handleGetBlogPost(c echo.Context) error {
	p, err := a.Store.GetBlogPostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Blog post not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (a *App) handleSitemap(c echo.Context) error {
	ctx := c.Request().Context()
	wallpapers, err := a.Store.WallpaperStamps(ctx)
	if err != nil {
		return err
	}
	posts, err := a.Store.BlogPostStamps(ctx)
	if err != nil {
		return err
	}
	return a.renderSitemap(c, wallpapers, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Store.ListBlogPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

// handleRobots generates robots.txt from the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) handleHealth(c echo.Context) error {
	if err := a.Store.Ping(c.Request().Context()); err != nil {
		c.Logger().Errorf("health check: %v", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
