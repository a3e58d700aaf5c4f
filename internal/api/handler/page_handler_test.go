package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/api/middleware"
	"github.com/spaceresearch/mission-console/internal/core/domain"
)

// The dispatch scenarios below only touch pages that render without data
// access, so the record services can stay nil.
func newPageFixture(auth *stubAuthService) *PageHandler {
	return NewPageHandler(auth, nil, nil, nil, nil, nil, zerolog.Nop())
}

func adminSession() *domain.Session {
	return &domain.Session{AccessToken: "tok-a", UserID: "u-a", Email: "a@example.com", Role: domain.RoleAdmin}
}

func userSession() *domain.Session {
	return &domain.Session{AccessToken: "tok-u", UserID: "u-u", Email: "u@example.com", Role: domain.RoleUser}
}

func TestPageHandler_AnonymousProtectedPathRedirects(t *testing.T) {
	h := newPageFixture(&stubAuthService{})

	c, rec := newEchoContext(t, http.MethodGet, "/missions", "")
	if err := h.Dispatch(c); err != nil {
		t.Fatalf("dispatch error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login-select" {
		t.Fatalf("expected redirect to /login-select, got %s", loc)
	}
}

func TestPageHandler_AnonymousLoginFormRenders(t *testing.T) {
	h := newPageFixture(&stubAuthService{})

	c, rec := newEchoContext(t, http.MethodGet, "/login", "")
	if err := h.Dispatch(c); err != nil {
		t.Fatalf("dispatch error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["page"] != "user_login" {
		t.Fatalf("expected user_login page, got %v", resp["page"])
	}
}

func TestPageHandler_AuthedVisitorOnLoginRedirectsHome(t *testing.T) {
	h := newPageFixture(&stubAuthService{})

	c, rec := newEchoContext(t, http.MethodGet, "/login", "")
	c.Set(middleware.SessionKey, userSession())
	if err := h.Dispatch(c); err != nil {
		t.Fatalf("dispatch error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %s", loc)
	}
}

func TestPageHandler_UserOnAdminRouteGetsUnauthorizedPage(t *testing.T) {
	h := newPageFixture(&stubAuthService{})

	c, rec := newEchoContext(t, http.MethodGet, "/employees", "")
	c.Set(middleware.SessionKey, userSession())
	if err := h.Dispatch(c); err != nil {
		t.Fatalf("dispatch error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unauthorized is a page, not a redirect; got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["page"] != "unauthorized" {
		t.Fatalf("expected unauthorized page, got %v", resp["page"])
	}
}

func TestPageHandler_LogoutClearsCookieAndSignsOut(t *testing.T) {
	signedOut := false
	auth := &stubAuthService{
		signOutFn: func(_ context.Context, sess *domain.Session) error {
			signedOut = true
			return nil
		},
	}
	h := newPageFixture(auth)

	c, rec := newEchoContext(t, http.MethodGet, "/logout", "")
	c.Set(middleware.SessionKey, adminSession())
	if err := h.Dispatch(c); err != nil {
		t.Fatalf("dispatch error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login-select" {
		t.Fatalf("expected redirect to /login-select, got %s", loc)
	}
	if !signedOut {
		t.Fatalf("SignOut not called on logout")
	}

	cookie := sessionCookie(rec)
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("session cookie not cleared: %+v", cookie)
	}
}

func TestPageHandler_AnonymousLogoutStillRedirects(t *testing.T) {
	h := newPageFixture(&stubAuthService{})

	c, rec := newEchoContext(t, http.MethodGet, "/logout", "")
	if err := h.Dispatch(c); err != nil {
		t.Fatalf("dispatch error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login-select" {
		t.Fatalf("expected redirect to /login-select, got %s", loc)
	}
}
