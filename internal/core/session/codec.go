// Package session encodes the client-held session record to and from the
// browser cookie value. The cookie is opaque to the browser: a base64url
// wrapped JSON record. Decode is the normalization boundary for role casing.
package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

// storedRecord is the wire shape of the cookie payload. Role stays a plain
// string here so arbitrary casing survives until normalization.
type storedRecord struct {
	AccessToken string `json:"access_token,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
}

// Encode flattens a session into the cookie value. It never fails: missing
// fields are simply omitted and the role falls back to "user".
func Encode(s *domain.Session) string {
	rec := storedRecord{Role: string(domain.RoleUser)}
	if s != nil {
		rec.AccessToken = s.AccessToken
		rec.UserID = s.UserID
		rec.Email = s.Email
		rec.Role = string(s.EffectiveRole())
	}
	b, _ := json.Marshal(rec)
	return base64.RawURLEncoding.EncodeToString(b)
}

// Decode parses a cookie value back into a session. It accepts either the
// base64url form produced by Encode or a bare JSON record, and returns
// (nil, false) on any malformed input rather than an error — a broken cookie
// is indistinguishable from no cookie.
func Decode(raw string) (*domain.Session, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	payload := []byte(raw)
	if !strings.HasPrefix(raw, "{") {
		decoded, err := base64.RawURLEncoding.DecodeString(raw)
		if err != nil {
			if decoded, err = base64.URLEncoding.DecodeString(raw); err != nil {
				return nil, false
			}
		}
		payload = decoded
	}

	var rec storedRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, false
	}

	return &domain.Session{
		AccessToken: rec.AccessToken,
		UserID:      rec.UserID,
		Email:       rec.Email,
		Role:        domain.ParseRole(rec.Role),
	}, true
}
