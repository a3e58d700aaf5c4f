package domain

// Session is the client-held proof of authentication plus the cached role
// used for per-request authorization decisions. It is created on sign-in,
// carried in a browser cookie, and destroyed on logout.
type Session struct {
	AccessToken string `json:"access_token,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	Email       string `json:"email,omitempty"`
	Role        Role   `json:"role"`
}

// IsAuthenticated treats presence of either an access token or a user id as
// proof of authentication.
func (s *Session) IsAuthenticated() bool {
	if s == nil {
		return false
	}
	return s.AccessToken != "" || s.UserID != ""
}

// EffectiveRole returns the session role, defaulting to RoleUser when the
// session carries no recognizable role.
func (s *Session) EffectiveRole() Role {
	if s == nil || !s.Role.Valid() {
		return RoleUser
	}
	return s.Role
}
