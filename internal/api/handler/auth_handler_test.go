package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/spaceresearch/mission-console/internal/api/middleware"
	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
	"github.com/spaceresearch/mission-console/internal/core/session"
)

type stubAuthService struct {
	signUpFn  func(ctx context.Context, input ports.SignUpInput) (*domain.User, error)
	signInFn  func(ctx context.Context, email, password string) (*domain.Session, error)
	signOutFn func(ctx context.Context, sess *domain.Session) error
	resetFn   func(ctx context.Context, email string) error
}

func (s *stubAuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	return s.signUpFn(ctx, input)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubAuthService) SignOut(ctx context.Context, sess *domain.Session) error {
	if s.signOutFn != nil {
		return s.signOutFn(ctx, sess)
	}
	return nil
}

func (s *stubAuthService) ResetPassword(ctx context.Context, email string) error {
	if s.resetFn != nil {
		return s.resetFn(ctx, email)
	}
	return nil
}

func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.CookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(_ context.Context, email, password string) (*domain.Session, error) {
			if email != "ana@example.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return &domain.Session{AccessToken: "tok-1", UserID: "u-1", Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newEchoContext(t, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("session cookie not set")
	}
	sess, ok := session.Decode(cookie.Value)
	if !ok {
		t.Fatalf("cookie does not decode: %q", cookie.Value)
	}
	if sess.AccessToken != "tok-1" || sess.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != "/" {
		t.Fatalf("expected redirect to /, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(_ context.Context, _, _ string) (*domain.Session, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newEchoContext(t, http.MethodPost, "/auth/login", `{"email":"ana@example.com","password":"wrong"}`)
	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessionCookie(rec) != nil {
		t.Fatalf("no cookie must be set on failure")
	}
}

func TestAuthHandler_Login_ValidationRejectsBadEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newEchoContext(t, http.MethodPost, "/auth/login", `{"email":"not-an-email","password":"x"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_AdminRedirectsToAdminLogin(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(_ context.Context, input ports.SignUpInput) (*domain.User, error) {
			if input.Role != domain.RoleAdmin {
				t.Fatalf("unexpected role: %s", input.Role)
			}
			return &domain.User{ID: "u-2", Username: input.Username, Email: input.Email, Role: input.Role}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newEchoContext(t, http.MethodPost, "/auth/signup", `{"email":"boss@example.com","password":"s3cret","username":"boss","role":"admin"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["redirect"] != "/admin-login" {
		t.Fatalf("expected admin login redirect, got %v", resp["redirect"])
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	signedOut := false
	stub := &stubAuthService{
		signOutFn: func(_ context.Context, sess *domain.Session) error {
			signedOut = true
			if sess == nil || sess.AccessToken != "tok-3" {
				t.Fatalf("unexpected session: %+v", sess)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newEchoContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.SessionKey, &domain.Session{AccessToken: "tok-3", UserID: "u-3"})
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !signedOut {
		t.Fatalf("SignOut not called")
	}

	cookie := sessionCookie(rec)
	if cookie == nil {
		t.Fatalf("clearing cookie not set")
	}
	if cookie.Value != "" || cookie.MaxAge != -1 {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
}
