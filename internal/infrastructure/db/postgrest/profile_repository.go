package postgrest

import (
	"context"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

// ProfileRepository wraps the user table that shadows provider accounts with
// application roles.
type ProfileRepository struct {
	client *Client
}

func NewProfileRepository(client *Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

type profileRow struct {
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	RegistrationDate string `json:"registration_date,omitempty"`
}

func (r *ProfileRepository) Insert(ctx context.Context, user domain.User) error {
	row := profileRow{
		UserID:           user.ID,
		Username:         user.Username,
		Email:            user.Email,
		Role:             string(user.Role),
		RegistrationDate: "now()",
	}
	return r.client.From("user").Insert(ctx, row, nil)
}

func (r *ProfileRepository) FindRoleByEmail(ctx context.Context, email string) (domain.Role, error) {
	var rows []profileRow
	if err := r.client.From("user").Eq("email", email).Select(ctx, &rows); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", domain.ErrNotFound
	}
	return domain.ParseRole(rows[0].Role), nil
}

func (r *ProfileRepository) ListUsernames(ctx context.Context) (map[string]string, error) {
	var rows []profileRow
	if err := r.client.From("user").Select(ctx, &rows); err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.UserID] = row.Username
	}
	return names, nil
}
