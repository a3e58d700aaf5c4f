package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/api/metrics"
	"github.com/spaceresearch/mission-console/internal/api/middleware"
	"github.com/spaceresearch/mission-console/internal/api/view"
	"github.com/spaceresearch/mission-console/internal/core/access"
	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// PageHandler is the navigation dispatcher: every GET that is not an API
// route lands here, gets a decision from the access evaluator and either
// renders the page's view model or answers with a redirect.
type PageHandler struct {
	auth      ports.AuthService
	catalog   ports.CatalogService
	personnel ports.PersonnelService
	research  ports.ResearchService
	telemetry ports.TelemetryService
	analytics ports.AnalyticsService
	logger    zerolog.Logger
}

func NewPageHandler(
	auth ports.AuthService,
	catalog ports.CatalogService,
	personnel ports.PersonnelService,
	research ports.ResearchService,
	telemetry ports.TelemetryService,
	analytics ports.AnalyticsService,
	logger zerolog.Logger,
) *PageHandler {
	return &PageHandler{
		auth:      auth,
		catalog:   catalog,
		personnel: personnel,
		research:  research,
		telemetry: telemetry,
		analytics: analytics,
		logger:    logger,
	}
}

// Dispatch evaluates the requested path against the session and responds
// with either a 303 redirect or the page payload.
func (h *PageHandler) Dispatch(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	path := c.Request().URL.Path

	decision := access.Evaluate(path, sess)

	if decision.Redirects() {
		if decision.ClearSession {
			// Logout: revoke server-side first, then drop the cookie.
			// The redirect happens either way.
			if err := h.auth.SignOut(c.Request().Context(), sess); err != nil {
				h.logger.Warn().Err(err).Msg("sign-out incomplete, clearing cookie anyway")
			}
			clearSessionCookie(c)
		} else if decision.RedirectTo == access.RouteLoginSelect {
			metrics.AccessDenialsTotal.WithLabelValues("unauthenticated").Inc()
		}
		return c.Redirect(http.StatusSeeOther, decision.RedirectTo)
	}

	if decision.Page == access.PageUnauthorized {
		metrics.AccessDenialsTotal.WithLabelValues("forbidden").Inc()
	}

	payload, err := h.buildPage(c.Request().Context(), decision.Page, sess)
	if err != nil {
		return err
	}

	metrics.PageRendersTotal.WithLabelValues(string(decision.Page)).Inc()
	return c.JSON(http.StatusOK, payload)
}

func (h *PageHandler) buildPage(ctx context.Context, page access.Page, sess *domain.Session) (view.Payload, error) {
	role := sess.EffectiveRole()

	switch page {
	case access.PageLoginSelect:
		return view.LoginSelect(), nil
	case access.PageUserLogin:
		return view.UserLogin(), nil
	case access.PageAdminLogin:
		return view.AdminLogin(), nil
	case access.PageUserSignup:
		return view.UserSignup(), nil
	case access.PageAdminSignup:
		return view.AdminSignup(), nil
	case access.PageUnauthorized:
		return view.Unauthorized(role), nil

	case access.PageMissions:
		missions, err := h.catalog.ListMissions(ctx)
		if err != nil {
			return view.Payload{}, err
		}
		return view.Missions(role, missions), nil

	case access.PageSatellites:
		satellites, err := h.catalog.ListSatellites(ctx)
		if err != nil {
			return view.Payload{}, err
		}
		return view.Satellites(role, satellites), nil

	case access.PageResearch:
		facts, err := h.research.ListFacts(ctx)
		if err != nil {
			return view.Payload{}, err
		}
		return view.Research(role, facts), nil

	case access.PageEmployees:
		employees, err := h.personnel.ListEmployees(ctx)
		if err != nil {
			return view.Payload{}, err
		}
		departments, err := h.personnel.ListDepartments(ctx)
		if err != nil {
			return view.Payload{}, err
		}
		return view.Employees(employees, departments), nil

	case access.PageTelemetry:
		readings, err := h.telemetry.ListReadings(ctx)
		if err != nil {
			return view.Payload{}, err
		}
		return view.TelemetryReadings(readings), nil

	case access.PageCommonDashboard:
		return h.buildCommonDashboard(ctx, role)

	case access.PageDashboard:
		return h.buildDashboard(ctx)

	case access.PageAdminConsole:
		return h.buildAdminConsole(ctx)

	case access.PageAnalytics:
		return h.buildAnalytics(ctx)
	}

	return view.Payload{}, echo.NewHTTPError(http.StatusNotFound, "unknown page")
}

func (h *PageHandler) buildCommonDashboard(ctx context.Context, role domain.Role) (view.Payload, error) {
	stats, err := h.analytics.MissionStatistics(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	satStats, err := h.analytics.SatelliteStatistics(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	active, err := h.catalog.ActiveMissions(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	operational, err := h.catalog.OperationalSatellites(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	return view.CommonDashboard(role, stats, satStats, active, operational), nil
}

func (h *PageHandler) buildDashboard(ctx context.Context) (view.Payload, error) {
	stats, err := h.analytics.MissionStatistics(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	satStats, err := h.analytics.SatelliteStatistics(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	active, err := h.catalog.ActiveMissions(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	satellites, err := h.catalog.ListSatellites(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	employees, err := h.personnel.ListEmployees(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	return view.Dashboard(stats, satStats, active, satellites, employees), nil
}

func (h *PageHandler) buildAdminConsole(ctx context.Context) (view.Payload, error) {
	employees, err := h.personnel.ListEmployees(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	departments, err := h.personnel.ListDepartments(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	satellites, err := h.catalog.ListSatellites(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	missions, err := h.catalog.ListMissions(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	facts, err := h.research.ListFacts(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	equipment, err := h.catalog.ListEquipment(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	return view.AdminConsole(view.AdminConsolePage{
		Employees:   employees,
		Departments: departments,
		Satellites:  satellites,
		Missions:    missions,
		Facts:       facts,
		Equipment:   equipment,
	}), nil
}

func (h *PageHandler) buildAnalytics(ctx context.Context) (view.Payload, error) {
	stats, err := h.analytics.MissionStatistics(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	satStats, err := h.analytics.SatelliteStatistics(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	summary, err := h.analytics.DepartmentSummary(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	outliers, err := h.analytics.AboveAverageSalaries(ctx)
	if err != nil {
		return view.Payload{}, err
	}
	return view.Analytics(stats, satStats, summary, outliers), nil
}
