package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

var (
	anon  *domain.Session
	user  = &domain.Session{UserID: "u1", Role: domain.RoleUser}
	admin = &domain.Session{AccessToken: "tok1", Role: domain.RoleAdmin}
)

func TestEvaluate_AuthForms(t *testing.T) {
	cases := []struct {
		path string
		page Page
	}{
		{RouteLoginSelect, PageLoginSelect},
		{RouteUserLogin, PageUserLogin},
		{RouteAdminLogin, PageAdminLogin},
		{RouteSignup, PageUserSignup},
		{RouteUserSignup, PageUserSignup},
		{RouteAdminSignup, PageAdminSignup},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			// Unauthenticated visitors get the form.
			assert.Equal(t, Decision{Page: tc.page}, Evaluate(tc.path, anon))
			// Signed-in visitors of either role are bounced home.
			assert.Equal(t, Decision{RedirectTo: RouteRoot}, Evaluate(tc.path, user))
			assert.Equal(t, Decision{RedirectTo: RouteRoot}, Evaluate(tc.path, admin))
		})
	}
}

func TestEvaluate_Logout(t *testing.T) {
	want := Decision{RedirectTo: RouteLoginSelect, ClearSession: true}
	assert.Equal(t, want, Evaluate(RouteLogout, admin))
	assert.Equal(t, want, Evaluate(RouteLogout, user))
	assert.Equal(t, want, Evaluate(RouteLogout, anon))
}

func TestEvaluate_AdminOnlyRoutes(t *testing.T) {
	for _, path := range []string{RouteEmployees, RouteTelemetry, RouteAnalytics, RouteAdminDashboard, RouteDashboard} {
		t.Run(path, func(t *testing.T) {
			// Auth check precedes role check: anonymous gets a redirect,
			// never the unauthorized page.
			assert.Equal(t, Decision{RedirectTo: RouteLoginSelect}, Evaluate(path, anon))
			// Authenticated non-admins render the unauthorized page in place.
			assert.Equal(t, Decision{Page: PageUnauthorized}, Evaluate(path, user))
			assert.False(t, Evaluate(path, admin).Redirects())
		})
	}

	assert.Equal(t, Decision{Page: PageEmployees}, Evaluate(RouteEmployees, admin))
	assert.Equal(t, Decision{Page: PageDashboard}, Evaluate(RouteDashboard, admin))
	assert.Equal(t, Decision{Page: PageAdminConsole}, Evaluate(RouteAdminDashboard, admin))
}

func TestEvaluate_SharedRoutes(t *testing.T) {
	for path, page := range map[string]Page{
		RouteMissions:        PageMissions,
		RouteSatellites:      PageSatellites,
		RouteResearch:        PageResearch,
		RouteCommonDashboard: PageCommonDashboard,
	} {
		assert.Equal(t, Decision{RedirectTo: RouteLoginSelect}, Evaluate(path, anon), path)
		assert.Equal(t, Decision{Page: page}, Evaluate(path, user), path)
		assert.Equal(t, Decision{Page: page}, Evaluate(path, admin), path)
	}
}

func TestEvaluate_Root(t *testing.T) {
	assert.Equal(t, Decision{RedirectTo: RouteLoginSelect}, Evaluate(RouteRoot, anon))
	assert.Equal(t, Decision{Page: PageCommonDashboard}, Evaluate(RouteRoot, user))
	assert.Equal(t, Decision{Page: PageDashboard}, Evaluate(RouteRoot, admin))
}

func TestEvaluate_UnknownPath(t *testing.T) {
	assert.Equal(t, Decision{RedirectTo: RouteLoginSelect}, Evaluate("/no-such-page", anon))
	assert.Equal(t, Decision{Page: PageCommonDashboard}, Evaluate("/no-such-page", user))
	assert.Equal(t, Decision{Page: PageCommonDashboard}, Evaluate("/no-such-page", admin))
}

func TestEvaluate_RoleDefaultsToUser(t *testing.T) {
	// Authenticated but role never set: least privilege applies.
	noRole := &domain.Session{AccessToken: "tok1"}
	assert.Equal(t, Decision{Page: PageUnauthorized}, Evaluate(RouteTelemetry, noRole))
	assert.Equal(t, Decision{Page: PageCommonDashboard}, Evaluate(RouteRoot, noRole))
}

func TestEvaluate_Deterministic(t *testing.T) {
	first := Evaluate(RouteEmployees, admin)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Evaluate(RouteEmployees, admin))
	}
}
