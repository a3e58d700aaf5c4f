package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// AnalyticsHandler exposes the aggregate reports: locally computed fleet and
// mission statistics plus the remote views and stored procedures.
type AnalyticsHandler struct {
	analytics ports.AnalyticsService
}

func NewAnalyticsHandler(analytics ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) MissionStatistics(c echo.Context) error {
	stats, err := h.analytics.MissionStatistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) SatelliteStatistics(c echo.Context) error {
	stats, err := h.analytics.SatelliteStatistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) DepartmentSummary(c echo.Context) error {
	summary, err := h.analytics.DepartmentSummary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

func (h *AnalyticsHandler) AboveAverageSalaries(c echo.Context) error {
	outliers, err := h.analytics.AboveAverageSalaries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, outliers)
}

func (h *AnalyticsHandler) EmployeeDetails(c echo.Context) error {
	empID, err := intParam(c, "emp_id")
	if err != nil {
		return err
	}
	details, err := h.analytics.EmployeeDetails(c.Request().Context(), empID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

func (h *AnalyticsHandler) YearsOfService(c echo.Context) error {
	empID, err := intParam(c, "emp_id")
	if err != nil {
		return err
	}
	years, err := h.analytics.YearsOfService(c.Request().Context(), empID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]float64{"years_of_service": years})
}

func (h *AnalyticsHandler) CountSubordinates(c echo.Context) error {
	empID, err := intParam(c, "emp_id")
	if err != nil {
		return err
	}
	count, err := h.analytics.CountSubordinates(c.Request().Context(), empID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int{"subordinates": count})
}

func (h *AnalyticsHandler) SalaryReport(c echo.Context) error {
	report, err := h.analytics.SalaryReport(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
