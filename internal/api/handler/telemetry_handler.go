package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// TelemetryHandler exposes downlinked readings, newest first.
type TelemetryHandler struct {
	telemetry ports.TelemetryService
}

func NewTelemetryHandler(telemetry ports.TelemetryService) *TelemetryHandler {
	return &TelemetryHandler{telemetry: telemetry}
}

func (h *TelemetryHandler) ListReadings(c echo.Context) error {
	readings, err := h.telemetry.ListReadings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, readings)
}

func (h *TelemetryHandler) LatestReadings(c echo.Context) error {
	satID, err := intParam(c, "sat_id")
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
	}

	readings, err := h.telemetry.LatestReadings(c.Request().Context(), satID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, readings)
}
