package wallverse

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/boopul22/wallpaer-site-blog/model"
)

var success = model.SuccessResponse{Success: true}

// validator is implemented by every typed admin request body.
type validator interface {
	Validate() error
}

// bindValid decodes the JSON body into req and validates it. Both failures
// are client errors.
func bindValid(c echo.Context, req validator) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	if err := req.Validate(); err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			return echo.NewHTTPError(http.StatusBadRequest, ve.Message)
		}
		return err
	}
	return nil
}

// ---- wallpapers ----

func (a *App) handleAdminListWallpapers(c echo.Context) error {
	return a.handleListWallpapers(c)
}

func (a *App) handleAdminGetWallpaper(c echo.Context) error {
	id, ok := model.ParseID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}
	w, err := a.Store.GetWallpaper(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, w)
}

func (a *App) handleAdminCreateWallpaper(c echo.Context) error {
	var req model.CreateWallpaperRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := a.Store.CreateWallpaper(c.Request().Context(), req.WallpaperFields); err != nil {
		return err
	}
	c.Logger().Infof("wallpaper created: %s", req.Slug)
	return c.JSON(http.StatusCreated, success)
}

func (a *App) handleAdminUpdateWallpaper(c echo.Context) error {
	var req model.UpdateWallpaperRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := a.Store.UpdateWallpaper(c.Request().Context(), req.ID, req.WallpaperFields); err != nil {
		return err
	}
	c.Logger().Infof("wallpaper updated: %d", req.ID)
	return c.JSON(http.StatusOK, success)
}

func (a *App) handleAdminDeleteWallpaper(c echo.Context) error {
	if id, ok := model.ParseID(c.Param("id")); ok {
		if err := a.Store.DeleteWallpaper(c.Request().Context(), id); err != nil {
			return err
		}
		c.Logger().Infof("wallpaper deleted: %d", id)
	}
	return c.JSON(http.StatusOK, success)
}

// ---- blog posts ----

func (a *App) handleAdminListBlogPosts(c echo.Context) error {
	return a.handleListBlogPosts(c)
}

func (a *App) handleAdminGetBlogPost(c echo.Context) error {
	id, ok := model.ParseID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}
	p, err := a.Store.GetBlogPost(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Not found")
		}
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (a *App) handleAdminCreateBlogPost(c echo.Context) error {
	var req model.CreateBlogPostRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := a.Store.CreateBlogPost(c.Request().Context(), req.BlogPostFields); err != nil {
		return err
	}
	c.Logger().Infof("blog post created: %s", req.Slug)
	return c.JSON(http.StatusCreated, success)
}

func (a *App) handleAdminUpdateBlogPost(c echo.Context) error {
	var req model.UpdateBlogPostRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := a.Store.UpdateBlogPost(c.Request().Context(), req.ID, req.BlogPostFields); err != nil {
		return err
	}
	c.Logger().Infof("blog post updated: %d", req.ID)
	return c.JSON(http.StatusOK, success)
}

func (a *App) handleAdminDeleteBlogPost(c echo.Context) error {
	if id, ok := model.ParseID(c.Param("id")); ok {
		if err := a.Store.DeleteBlogPost(c.Request().Context(), id); err != nil {
			return err
		}
		c.Logger().Infof("blog post deleted: %d", id)
	}
	return c.JSON(http.StatusOK, success)
}
