// Package access decides, for every navigation, whether to render a page or
// redirect, given only the request path and the decoded session. It is a
// pure function of its inputs: no clock, no storage, no framework types.
package access

// Route paths form a closed set; anything else is handled by the
// unknown-path default.
const (
	RouteRoot            = "/"
	RouteLoginSelect     = "/login-select"
	RouteUserLogin       = "/login"
	RouteAdminLogin      = "/admin-login"
	RouteSignup          = "/signup"
	RouteUserSignup      = "/user-signup"
	RouteAdminSignup     = "/admin-signup"
	RouteLogout          = "/logout"
	RouteDashboard       = "/dashboard"
	RouteCommonDashboard = "/common-dashboard"
	RouteAdminDashboard  = "/admin-dashboard"
	RouteMissions        = "/missions"
	RouteSatellites      = "/satellites"
	RouteEmployees       = "/employees"
	RouteTelemetry       = "/telemetry"
	RouteResearch        = "/research"
	RouteAnalytics       = "/analytics"
)

// Page identifies which page builder the dispatcher should invoke.
type Page string

const (
	PageNone            Page = ""
	PageLoginSelect     Page = "login_select"
	PageUserLogin       Page = "user_login"
	PageAdminLogin      Page = "admin_login"
	PageUserSignup      Page = "user_signup"
	PageAdminSignup     Page = "admin_signup"
	PageUnauthorized    Page = "unauthorized"
	PageDashboard       Page = "dashboard"
	PageCommonDashboard Page = "common_dashboard"
	PageAdminConsole    Page = "admin_console"
	PageMissions        Page = "missions"
	PageSatellites      Page = "satellites"
	PageEmployees       Page = "employees"
	PageTelemetry       Page = "telemetry"
	PageResearch        Page = "research"
	PageAnalytics       Page = "analytics"
)

// adminOnlyRoutes require an authenticated admin; authenticated non-admins
// get the unauthorized page, not a redirect.
var adminOnlyRoutes = map[string]Page{
	RouteEmployees:      PageEmployees,
	RouteTelemetry:      PageTelemetry,
	RouteAnalytics:      PageAnalytics,
	RouteAdminDashboard: PageAdminConsole,
	RouteDashboard:      PageDashboard,
}

// sharedRoutes render for both roles; edit affordances are a page concern.
var sharedRoutes = map[string]Page{
	RouteMissions:        PageMissions,
	RouteSatellites:      PageSatellites,
	RouteResearch:        PageResearch,
	RouteCommonDashboard: PageCommonDashboard,
}

// authFormPages maps public auth routes to the form each renders for
// unauthenticated visitors.
var authFormPages = map[string]Page{
	RouteLoginSelect: PageLoginSelect,
	RouteUserLogin:   PageUserLogin,
	RouteAdminLogin:  PageAdminLogin,
	RouteSignup:      PageUserSignup,
	RouteUserSignup:  PageUserSignup,
	RouteAdminSignup: PageAdminSignup,
}
