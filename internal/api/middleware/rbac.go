package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

// RBAC enforces role-based access control on the mutation API. The
// authentication check runs first; role is only consulted for signed-in
// callers (least-privilege default applies to sessions without one).
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFrom(c)
			if !sess.IsAuthenticated() {
				return domain.ErrNotAuthenticated
			}
			if _, ok := allowed[sess.EffectiveRole()]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
