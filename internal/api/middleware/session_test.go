package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/session"
)

type stubRevoker struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevoker) Revoke(_ context.Context, token string, _ time.Duration) error {
	if s.revoked == nil {
		s.revoked = map[string]bool{}
	}
	s.revoked[token] = true
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[token], nil
}

func runSession(t *testing.T, cookieValue string, revoker *stubRevoker) *domain.Session {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/missions", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: CookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got *domain.Session
	mw := Session(revoker, "", zerolog.Nop())
	err := mw(func(c echo.Context) error {
		got = SessionFrom(c)
		return nil
	})(c)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return got
}

func TestSession_DecodesCookie(t *testing.T) {
	encoded := session.Encode(&domain.Session{AccessToken: "tok-1", UserID: "u-1", Role: domain.RoleAdmin})

	got := runSession(t, encoded, &stubRevoker{})
	if got == nil {
		t.Fatalf("expected session in context")
	}
	if got.UserID != "u-1" || got.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSession_MissingCookieIsAnonymous(t *testing.T) {
	if got := runSession(t, "", &stubRevoker{}); got != nil {
		t.Fatalf("expected anonymous request, got %+v", got)
	}
}

func TestSession_MalformedCookieIsAnonymous(t *testing.T) {
	if got := runSession(t, "%%%not-a-session%%%", &stubRevoker{}); got != nil {
		t.Fatalf("expected anonymous request, got %+v", got)
	}
}

func TestSession_RevokedTokenIsAnonymous(t *testing.T) {
	encoded := session.Encode(&domain.Session{AccessToken: "tok-2", UserID: "u-2"})
	revoker := &stubRevoker{revoked: map[string]bool{"tok-2": true}}

	if got := runSession(t, encoded, revoker); got != nil {
		t.Fatalf("revoked token must leave the request anonymous, got %+v", got)
	}
}

func TestSession_RevocationStoreDownKeepsSession(t *testing.T) {
	encoded := session.Encode(&domain.Session{AccessToken: "tok-3", UserID: "u-3"})
	revoker := &stubRevoker{err: context.DeadlineExceeded}

	got := runSession(t, encoded, revoker)
	if got == nil || got.UserID != "u-3" {
		t.Fatalf("revocation outage must not sign users out, got %+v", got)
	}
}
