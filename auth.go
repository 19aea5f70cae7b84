package wallverse

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/boopul22/wallpaer-site-blog/model"
)

const bearerPrefix = "Bearer "

// Authorized reports whether header carries the bearer token secret.
// An empty secret never authorizes.
func Authorized(header, secret string) bool {
	if secret == "" {
		return false
	}
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(secret)) == 1
}

// requireAdmin rejects requests without the admin bearer token before the
// handler runs.
func (a *App) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !Authorized(c.Request().Header.Get(echo.HeaderAuthorization), a.Config.AdminTokenSecret) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return next(c)
	}
}

func (a *App) handleAdminLogin(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Password == "" ||
		subtle.ConstantTimeCompare([]byte(req.Password), []byte(a.Config.AdminPassword)) != 1 {
		c.Logger().Warnf("admin login rejected from %s", c.RealIP())
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid password")
	}
	return c.JSON(http.StatusOK, model.LoginResponse{Token: a.Config.AdminTokenSecret})
}
