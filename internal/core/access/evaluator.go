package access

import "github.com/spaceresearch/mission-console/internal/core/domain"

// Decision is the outcome of evaluating one navigation: exactly one of Page
// or RedirectTo is set. ClearSession instructs the dispatcher to drop the
// session cookie before redirecting (logout).
type Decision struct {
	Page         Page
	RedirectTo   string
	ClearSession bool
}

// Redirects reports whether the decision is a redirect rather than a render.
func (d Decision) Redirects() bool { return d.RedirectTo != "" }

// Evaluate maps (path, session) to a decision. The authentication check
// always precedes the role check, and a session with an unrecognized role is
// treated as a plain user.
func Evaluate(path string, sess *domain.Session) Decision {
	authed := sess.IsAuthenticated()
	role := sess.EffectiveRole()

	// Public auth routes: signed-in visitors are bounced to their
	// role-appropriate dashboard, which lives behind "/".
	if _, ok := authFormPages[path]; ok {
		if authed {
			return Decision{RedirectTo: RouteRoot}
		}
		return Decision{Page: authFormPages[path]}
	}

	// Logout is an action, not a page: drop the session regardless of
	// authentication state and land on the login selector.
	if path == RouteLogout {
		return Decision{RedirectTo: RouteLoginSelect, ClearSession: true}
	}

	if !authed {
		return Decision{RedirectTo: RouteLoginSelect}
	}

	if page, ok := adminOnlyRoutes[path]; ok {
		if role != domain.RoleAdmin {
			return Decision{Page: PageUnauthorized}
		}
		return Decision{Page: page}
	}

	if page, ok := sharedRoutes[path]; ok {
		return Decision{Page: page}
	}

	if path == RouteRoot {
		if role == domain.RoleAdmin {
			return Decision{Page: PageDashboard}
		}
		return Decision{Page: PageCommonDashboard}
	}

	// Unknown paths default to the common dashboard for signed-in users.
	return Decision{Page: PageCommonDashboard}
}
