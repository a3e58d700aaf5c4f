package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// revocationTTL bounds how long a signed-out token stays on the denylist.
// Provider tokens expire on their own well within this window.
const revocationTTL = 24 * time.Hour

// AuthService is the authentication gateway. Credentials are custodied by
// the remote provider; this side resolves roles, shadows accounts in the
// user table, and invalidates tokens on sign-out.
type AuthService struct {
	provider ports.AuthProvider
	profiles ports.ProfileRepository
	revoker  ports.TokenRevoker
	mailer   ports.Mailer
	logger   zerolog.Logger
}

func NewAuthService(provider ports.AuthProvider, profiles ports.ProfileRepository, revoker ports.TokenRevoker, mailer ports.Mailer, logger zerolog.Logger) *AuthService {
	return &AuthService{
		provider: provider,
		profiles: profiles,
		revoker:  revoker,
		mailer:   mailer,
		logger:   logger,
	}
}

// SignUp registers the account with the provider, then best-effort writes
// the profile row and welcome mail. Neither follow-up can fail the sign-up:
// the profile row is eventually consistent with the provider's account.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	username := input.Username
	if username == "" {
		username = strings.SplitN(input.Email, "@", 2)[0]
	}

	pu, _, err := s.provider.SignUp(ctx, input.Email, input.Password, map[string]string{
		"username": username,
		"role":     string(input.Role),
	})
	if err != nil {
		return nil, classifyAuthError(err)
	}

	user := domain.User{
		ID:       pu.ID,
		Username: username,
		Email:    input.Email,
		Role:     input.Role,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if err := s.profiles.Insert(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("email", input.Email).Msg("could not insert profile row")
	}
	if err := s.mailer.SendWelcome(ctx, input.Email, username); err != nil {
		s.logger.Warn().Err(err).Str("email", input.Email).Msg("welcome mail failed")
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user signed up")
	return &user, nil
}

// SignIn authenticates against the provider and resolves the role: the
// token metadata claim is the baseline, overridden by the user table when
// the lookup succeeds. A failed lookup never fails the login.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	pu, token, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, classifyAuthError(err)
	}

	role := domain.ParseRole(pu.Metadata["role"])
	if dbRole, err := s.profiles.FindRoleByEmail(ctx, email); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("role lookup failed, using metadata role")
	} else {
		role = dbRole
	}

	return &domain.Session{
		AccessToken: token,
		UserID:      pu.ID,
		Email:       pu.Email,
		Role:        role,
	}, nil
}

// SignOut revokes the bearer token locally and tells the provider. Both are
// best-effort: the session cookie is gone either way.
func (s *AuthService) SignOut(ctx context.Context, sess *domain.Session) error {
	if sess == nil || sess.AccessToken == "" {
		return nil
	}
	if err := s.revoker.Revoke(ctx, sess.AccessToken, revocationTTL); err != nil {
		s.logger.Warn().Err(err).Msg("token revocation failed")
	}
	if err := s.provider.SignOut(ctx, sess.AccessToken); err != nil {
		s.logger.Warn().Err(err).Msg("provider sign-out failed")
		return err
	}
	return nil
}

// ResetPassword forwards to the provider's recovery flow; the provider sends
// the email itself.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidCredentials
	}
	return s.provider.Recover(ctx, email)
}

// classifyAuthError maps the provider's free-text errors onto sentinels.
// The provider exposes no structured codes, so substring matching is the
// only handle we have.
func classifyAuthError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "invalid login credentials"),
		strings.Contains(msg, "invalid credentials"):
		return domain.ErrInvalidCredentials
	case strings.Contains(msg, "already registered"),
		strings.Contains(msg, "already been registered"):
		return domain.ErrAlreadyRegistered
	default:
		return err
	}
}
