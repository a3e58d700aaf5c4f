package ports

import (
	"context"
	"time"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

// ProviderUser is the slice of the remote auth provider's user object the
// gateway cares about.
type ProviderUser struct {
	ID       string
	Email    string
	Metadata map[string]string
}

// AuthProvider abstracts the hosted email/password authentication service.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*ProviderUser, string, error)
	SignInWithPassword(ctx context.Context, email, password string) (*ProviderUser, string, error)
	SignOut(ctx context.Context, accessToken string) error
	Recover(ctx context.Context, email string) error
}

// ProfileRepository reads and writes the remote user table that shadows the
// provider's accounts with application roles.
type ProfileRepository interface {
	Insert(ctx context.Context, user domain.User) error
	FindRoleByEmail(ctx context.Context, email string) (domain.Role, error)
	ListUsernames(ctx context.Context) (map[string]string, error)
}

// TokenRevoker invalidates bearer tokens at sign-out so a stolen cookie
// cannot outlive the logout.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Mailer sends best-effort transactional mail. Implementations must be safe
// to call when mail delivery is unconfigured.
type Mailer interface {
	SendWelcome(ctx context.Context, email, username string) error
}

// SignUpInput carries everything needed to create an account.
type SignUpInput struct {
	Email    string
	Password string
	Username string
	Role     domain.Role
}

// AuthService is the authentication gateway: sign-up, sign-in, sign-out and
// password recovery against the remote provider, with role resolution.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, sess *domain.Session) error
	ResetPassword(ctx context.Context, email string) error
}
