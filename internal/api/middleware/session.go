package middleware

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
	"github.com/spaceresearch/mission-console/internal/core/session"
)

// CookieName is the browser slot holding the encoded session record.
const CookieName = "mc_session"

// SessionKey is the echo.Context key the decoded session is stored under.
const SessionKey = "session"

// Session decodes the session cookie into the request context. It never
// rejects a request itself — a missing, malformed, expired, or revoked
// session simply leaves the request anonymous and lets the evaluator or
// RBAC middleware decide.
func Session(revoker ports.TokenRevoker, jwtSecret string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sess, ok := session.Decode(cookie.Value)
			if !ok {
				return next(c)
			}

			if sess.AccessToken != "" {
				if jwtSecret != "" && !tokenValid(sess.AccessToken, jwtSecret) {
					return next(c)
				}
				if revoker != nil {
					revoked, err := revoker.IsRevoked(c.Request().Context(), sess.AccessToken)
					if err != nil {
						// Revocation store down: keep serving rather than
						// locking everyone out, but say so.
						log.Warn().Err(err).Msg("revocation check unavailable")
					} else if revoked {
						return next(c)
					}
				}
			}

			c.Set(SessionKey, sess)
			return next(c)
		}
	}
}

// tokenValid verifies the provider-signed HS256 token, including expiry.
func tokenValid(token, secret string) bool {
	tkn, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	return err == nil && tkn.Valid
}

// SessionFrom extracts the decoded session, nil when anonymous.
func SessionFrom(c echo.Context) *domain.Session {
	sess, _ := c.Get(SessionKey).(*domain.Session)
	return sess
}
