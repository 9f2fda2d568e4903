package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page.
func Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", pageData(c))
}

// About renders the about page.
func About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", pageData(c))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
