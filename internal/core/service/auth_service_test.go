package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

type stubProvider struct {
	signUpFn  func(ctx context.Context, email, password string, metadata map[string]string) (*ports.ProviderUser, string, error)
	signInFn  func(ctx context.Context, email, password string) (*ports.ProviderUser, string, error)
	signOutFn func(ctx context.Context, accessToken string) error
	recoverFn func(ctx context.Context, email string) error
}

func (s *stubProvider) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*ports.ProviderUser, string, error) {
	return s.signUpFn(ctx, email, password, metadata)
}

func (s *stubProvider) SignInWithPassword(ctx context.Context, email, password string) (*ports.ProviderUser, string, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubProvider) SignOut(ctx context.Context, accessToken string) error {
	if s.signOutFn != nil {
		return s.signOutFn(ctx, accessToken)
	}
	return nil
}

func (s *stubProvider) Recover(ctx context.Context, email string) error {
	if s.recoverFn != nil {
		return s.recoverFn(ctx, email)
	}
	return nil
}

type stubProfiles struct {
	inserted     []domain.User
	insertErr    error
	roles        map[string]domain.Role
	roleErr      error
	usernames    map[string]string
	usernamesErr error
}

func (s *stubProfiles) Insert(_ context.Context, user domain.User) error {
	s.inserted = append(s.inserted, user)
	return s.insertErr
}

func (s *stubProfiles) FindRoleByEmail(_ context.Context, email string) (domain.Role, error) {
	if s.roleErr != nil {
		return "", s.roleErr
	}
	role, ok := s.roles[email]
	if !ok {
		return "", domain.ErrNotFound
	}
	return role, nil
}

func (s *stubProfiles) ListUsernames(_ context.Context) (map[string]string, error) {
	return s.usernames, s.usernamesErr
}

type stubRevoker struct {
	revoked   []string
	revokeErr error
}

func (s *stubRevoker) Revoke(_ context.Context, token string, _ time.Duration) error {
	s.revoked = append(s.revoked, token)
	return s.revokeErr
}

func (s *stubRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	for _, t := range s.revoked {
		if t == token {
			return true, nil
		}
	}
	return false, nil
}

type stubMailer struct {
	sent    []string
	sendErr error
}

func (s *stubMailer) SendWelcome(_ context.Context, email, _ string) error {
	s.sent = append(s.sent, email)
	return s.sendErr
}

func newAuthFixture(provider *stubProvider, profiles *stubProfiles) (*AuthService, *stubRevoker, *stubMailer) {
	revoker := &stubRevoker{}
	mailer := &stubMailer{}
	svc := NewAuthService(provider, profiles, revoker, mailer, zerolog.Nop())
	return svc, revoker, mailer
}

func TestAuthService_SignUp_Success(t *testing.T) {
	provider := &stubProvider{
		signUpFn: func(_ context.Context, email, _ string, metadata map[string]string) (*ports.ProviderUser, string, error) {
			if metadata["role"] != "user" {
				t.Fatalf("unexpected role metadata: %s", metadata["role"])
			}
			return &ports.ProviderUser{ID: "u-1", Email: email}, "", nil
		},
	}
	profiles := &stubProfiles{}
	svc, _, mailer := newAuthFixture(provider, profiles)

	user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Email:    "alice@example.com",
		Password: "s3cret",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.ID != "u-1" {
		t.Fatalf("unexpected user id: %s", user.ID)
	}
	if user.Username != "alice" {
		t.Fatalf("expected username derived from email, got %q", user.Username)
	}
	if len(profiles.inserted) != 1 {
		t.Fatalf("expected one profile row, got %d", len(profiles.inserted))
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "alice@example.com" {
		t.Fatalf("expected welcome mail to alice, got %v", mailer.sent)
	}
}

func TestAuthService_SignUp_ProfileInsertBestEffort(t *testing.T) {
	provider := &stubProvider{
		signUpFn: func(_ context.Context, email, _ string, _ map[string]string) (*ports.ProviderUser, string, error) {
			return &ports.ProviderUser{ID: "u-2", Email: email}, "", nil
		},
	}
	profiles := &stubProfiles{insertErr: errors.New("table unavailable")}
	svc, _, _ := newAuthFixture(provider, profiles)

	user, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Email:    "bob@example.com",
		Password: "s3cret",
		Username: "bobby",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("profile insert failure must not fail sign-up: %v", err)
	}
	if user.Username != "bobby" {
		t.Fatalf("explicit username lost: %q", user.Username)
	}
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	svc, _, _ := newAuthFixture(&stubProvider{}, &stubProfiles{})

	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{Password: "x", Role: domain.RoleUser}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.SignUp(context.Background(), ports.SignUpInput{Email: "a@b.c", Password: "x", Role: "superuser"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_SignUp_AlreadyRegistered(t *testing.T) {
	provider := &stubProvider{
		signUpFn: func(_ context.Context, _, _ string, _ map[string]string) (*ports.ProviderUser, string, error) {
			return nil, "", errors.New("auth provider: 422: User already registered")
		},
	}
	svc, _, _ := newAuthFixture(provider, &stubProfiles{})

	_, err := svc.SignUp(context.Background(), ports.SignUpInput{
		Email:    "dup@example.com",
		Password: "s3cret",
		Role:     domain.RoleUser,
	})
	if !errors.Is(err, domain.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestAuthService_SignIn_RoleFromUserTable(t *testing.T) {
	provider := &stubProvider{
		signInFn: func(_ context.Context, email, _ string) (*ports.ProviderUser, string, error) {
			return &ports.ProviderUser{
				ID:       "u-3",
				Email:    email,
				Metadata: map[string]string{"role": "user"},
			}, "tok-3", nil
		},
	}
	profiles := &stubProfiles{roles: map[string]domain.Role{"carol@example.com": domain.RoleAdmin}}
	svc, _, _ := newAuthFixture(provider, profiles)

	sess, err := svc.SignIn(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if sess.Role != domain.RoleAdmin {
		t.Fatalf("user table role must override metadata, got %s", sess.Role)
	}
	if sess.AccessToken != "tok-3" || sess.UserID != "u-3" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestAuthService_SignIn_RoleLookupFailureFallsBack(t *testing.T) {
	provider := &stubProvider{
		signInFn: func(_ context.Context, email, _ string) (*ports.ProviderUser, string, error) {
			return &ports.ProviderUser{
				ID:       "u-4",
				Email:    email,
				Metadata: map[string]string{"role": "admin"},
			}, "tok-4", nil
		},
	}
	profiles := &stubProfiles{roleErr: errors.New("timeout")}
	svc, _, _ := newAuthFixture(provider, profiles)

	sess, err := svc.SignIn(context.Background(), "dave@example.com", "s3cret")
	if err != nil {
		t.Fatalf("role lookup failure must not fail sign-in: %v", err)
	}
	if sess.Role != domain.RoleAdmin {
		t.Fatalf("expected metadata role fallback, got %s", sess.Role)
	}
}

func TestAuthService_SignIn_InvalidCredentials(t *testing.T) {
	provider := &stubProvider{
		signInFn: func(_ context.Context, _, _ string) (*ports.ProviderUser, string, error) {
			return nil, "", errors.New("auth provider: 400: Invalid login credentials")
		},
	}
	svc, _, _ := newAuthFixture(provider, &stubProfiles{})

	if _, err := svc.SignIn(context.Background(), "eve@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SignOut_RevokesToken(t *testing.T) {
	svc, revoker, _ := newAuthFixture(&stubProvider{}, &stubProfiles{})

	sess := &domain.Session{AccessToken: "tok-5", UserID: "u-5"}
	if err := svc.SignOut(context.Background(), sess); err != nil {
		t.Fatalf("SignOut returned error: %v", err)
	}
	if len(revoker.revoked) != 1 || revoker.revoked[0] != "tok-5" {
		t.Fatalf("token not revoked: %v", revoker.revoked)
	}
}

func TestAuthService_SignOut_NilSessionIsNoop(t *testing.T) {
	svc, revoker, _ := newAuthFixture(&stubProvider{}, &stubProfiles{})

	if err := svc.SignOut(context.Background(), nil); err != nil {
		t.Fatalf("nil session sign-out must be a no-op: %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("nothing should be revoked, got %v", revoker.revoked)
	}
}

func TestClassifyAuthError(t *testing.T) {
	cases := []struct {
		msg  string
		want error
	}{
		{"Invalid login credentials", domain.ErrInvalidCredentials},
		{"invalid credentials", domain.ErrInvalidCredentials},
		{"User already registered", domain.ErrAlreadyRegistered},
		{"Email has already been registered", domain.ErrAlreadyRegistered},
	}
	for _, tc := range cases {
		if got := classifyAuthError(errors.New(tc.msg)); !errors.Is(got, tc.want) {
			t.Fatalf("classifyAuthError(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}

	opaque := errors.New("connection refused")
	if got := classifyAuthError(opaque); got != opaque {
		t.Fatalf("unrecognized errors must pass through, got %v", got)
	}
}
