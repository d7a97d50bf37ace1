package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Live is the root liveness endpoint. The response text is what the
// booking frontend's uptime check expects.
func Live(c echo.Context) error {
	return c.String(http.StatusOK, "Rooms Server is Online")
}

// Health is a plain health probe for load balancers and orchestration.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
