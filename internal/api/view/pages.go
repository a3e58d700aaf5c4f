// Package view builds the page view models the browser renders. Builders
// are pure functions from records to JSON-shaped structures: formatting
// only, no business logic and no data access.
package view

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/spaceresearch/mission-console/internal/core/access"
	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// Payload is the envelope every rendered page ships in.
type Payload struct {
	Page access.Page `json:"page"`
	Role domain.Role `json:"role,omitempty"`
	Data any         `json:"data,omitempty"`
}

// FormField describes one input of an auth form.
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// AuthForm is the view model for the login and signup pages.
type AuthForm struct {
	Title  string      `json:"title"`
	Action string      `json:"action"`
	Fields []FormField `json:"fields"`
}

var credentialFields = []FormField{
	{Name: "email", Label: "Email", Type: "email", Required: true},
	{Name: "password", Label: "Password", Type: "password", Required: true},
}

func signupFields() []FormField {
	return append([]FormField{
		{Name: "username", Label: "Username", Type: "text", Required: false},
	}, credentialFields...)
}

func LoginSelect() Payload {
	return Payload{Page: access.PageLoginSelect, Data: map[string]string{
		"user_login":  access.RouteUserLogin,
		"admin_login": access.RouteAdminLogin,
	}}
}

func UserLogin() Payload {
	return Payload{Page: access.PageUserLogin, Data: AuthForm{
		Title: "Crew Sign In", Action: "/auth/login", Fields: credentialFields,
	}}
}

func AdminLogin() Payload {
	return Payload{Page: access.PageAdminLogin, Data: AuthForm{
		Title: "Mission Control Sign In", Action: "/auth/login", Fields: credentialFields,
	}}
}

func UserSignup() Payload {
	return Payload{Page: access.PageUserSignup, Data: AuthForm{
		Title: "Create Crew Account", Action: "/auth/signup", Fields: signupFields(),
	}}
}

func AdminSignup() Payload {
	return Payload{Page: access.PageAdminSignup, Data: AuthForm{
		Title: "Create Administrator Account", Action: "/auth/signup", Fields: signupFields(),
	}}
}

func Unauthorized(role domain.Role) Payload {
	return Payload{Page: access.PageUnauthorized, Role: role, Data: map[string]string{
		"message": "You do not have permission to view this page.",
	}}
}

// MissionsPage lists missions; CanEdit gates the mutation affordances.
type MissionsPage struct {
	Missions []domain.Mission `json:"missions"`
	CanEdit  bool             `json:"can_edit"`
}

func Missions(role domain.Role, missions []domain.Mission) Payload {
	return Payload{Page: access.PageMissions, Role: role, Data: MissionsPage{
		Missions: missions,
		CanEdit:  role == domain.RoleAdmin,
	}}
}

type SatellitesPage struct {
	Satellites []domain.Satellite `json:"satellites"`
	CanEdit    bool               `json:"can_edit"`
}

func Satellites(role domain.Role, satellites []domain.Satellite) Payload {
	return Payload{Page: access.PageSatellites, Role: role, Data: SatellitesPage{
		Satellites: satellites,
		CanEdit:    role == domain.RoleAdmin,
	}}
}

type EmployeesPage struct {
	Employees   []domain.Employee   `json:"employees"`
	Departments []domain.Department `json:"departments"`
}

func Employees(employees []domain.Employee, departments []domain.Department) Payload {
	return Payload{Page: access.PageEmployees, Role: domain.RoleAdmin, Data: EmployeesPage{
		Employees:   employees,
		Departments: departments,
	}}
}

type TelemetryPage struct {
	Readings []domain.Telemetry `json:"readings"`
}

func TelemetryReadings(readings []domain.Telemetry) Payload {
	return Payload{Page: access.PageTelemetry, Role: domain.RoleAdmin, Data: TelemetryPage{Readings: readings}}
}

// ResearchFactView is a fact plus its description rendered from markdown.
type ResearchFactView struct {
	domain.ResearchFact
	DescriptionHTML string `json:"description_html,omitempty"`
}

type ResearchPage struct {
	Facts   []ResearchFactView `json:"facts"`
	CanEdit bool               `json:"can_edit"`
}

func Research(role domain.Role, facts []domain.ResearchFact) Payload {
	views := make([]ResearchFactView, len(facts))
	for i, fact := range facts {
		views[i] = ResearchFactView{
			ResearchFact:    fact,
			DescriptionHTML: renderMarkdown(fact.Description),
		}
	}
	return Payload{Page: access.PageResearch, Role: role, Data: ResearchPage{
		Facts:   views,
		CanEdit: role == domain.RoleAdmin,
	}}
}

// renderMarkdown converts a fact description to HTML. Raw HTML inside the
// markdown is dropped by the renderer, so contributor input cannot inject
// markup. Render failures fall back to the plain text.
func renderMarkdown(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return src
	}
	return buf.String()
}

// DashboardPage is the admin's full dashboard.
type DashboardPage struct {
	MissionStats   ports.MissionStats   `json:"mission_stats"`
	SatelliteStats ports.SatelliteStats `json:"satellite_stats"`
	ActiveMissions []domain.Mission     `json:"active_missions"`
	Satellites     []domain.Satellite   `json:"satellites"`
	Employees      []domain.Employee    `json:"employees"`
}

func Dashboard(stats ports.MissionStats, satStats ports.SatelliteStats, active []domain.Mission, satellites []domain.Satellite, employees []domain.Employee) Payload {
	return Payload{Page: access.PageDashboard, Role: domain.RoleAdmin, Data: DashboardPage{
		MissionStats:   stats,
		SatelliteStats: satStats,
		ActiveMissions: active,
		Satellites:     satellites,
		Employees:      employees,
	}}
}

// CommonDashboardPage is the read-oriented dashboard both roles share.
type CommonDashboardPage struct {
	MissionStats   ports.MissionStats   `json:"mission_stats"`
	SatelliteStats ports.SatelliteStats `json:"satellite_stats"`
	ActiveMissions []domain.Mission     `json:"active_missions"`
	Operational    []domain.Satellite   `json:"operational_satellites"`
}

func CommonDashboard(role domain.Role, stats ports.MissionStats, satStats ports.SatelliteStats, active []domain.Mission, operational []domain.Satellite) Payload {
	return Payload{Page: access.PageCommonDashboard, Role: role, Data: CommonDashboardPage{
		MissionStats:   stats,
		SatelliteStats: satStats,
		ActiveMissions: active,
		Operational:    operational,
	}}
}

// AdminConsolePage carries the management tables for every record type.
type AdminConsolePage struct {
	Employees   []domain.Employee     `json:"employees"`
	Departments []domain.Department   `json:"departments"`
	Satellites  []domain.Satellite    `json:"satellites"`
	Missions    []domain.Mission      `json:"missions"`
	Facts       []domain.ResearchFact `json:"research_facts"`
	Equipment   []domain.Equipment    `json:"equipment"`
}

func AdminConsole(data AdminConsolePage) Payload {
	return Payload{Page: access.PageAdminConsole, Role: domain.RoleAdmin, Data: data}
}

// AnalyticsPage carries the aggregate reports.
type AnalyticsPage struct {
	MissionStats    ports.MissionStats    `json:"mission_stats"`
	SatelliteStats  ports.SatelliteStats  `json:"satellite_stats"`
	DeptSummary     []map[string]any      `json:"department_summary"`
	SalaryOutliers  []ports.SalaryOutlier `json:"salary_outliers"`
}

func Analytics(stats ports.MissionStats, satStats ports.SatelliteStats, summary []map[string]any, outliers []ports.SalaryOutlier) Payload {
	return Payload{Page: access.PageAnalytics, Role: domain.RoleAdmin, Data: AnalyticsPage{
		MissionStats:   stats,
		SatelliteStats: satStats,
		DeptSummary:    summary,
		SalaryOutliers: outliers,
	}}
}
