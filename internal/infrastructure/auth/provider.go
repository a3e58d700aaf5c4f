// Package auth contains the HTTP client for the hosted email/password
// authentication provider.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spaceresearch/mission-console/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// Config locates the provider's auth endpoints.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Provider implements ports.AuthProvider over the provider's REST API.
type Provider struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewProvider(cfg Config) *Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type providerUserBody struct {
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	UserMetadata map[string]string `json:"user_metadata"`
}

type authResponse struct {
	AccessToken string            `json:"access_token"`
	User        *providerUserBody `json:"user"`
	// Sign-up responses without an auto-confirmed session return the user
	// object at the top level instead.
	ID           string            `json:"id"`
	Email        string            `json:"email"`
	UserMetadata map[string]string `json:"user_metadata"`
}

type errorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (p *Provider) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*ports.ProviderUser, string, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
		"data":     metadata,
	}
	var resp authResponse
	if err := p.post(ctx, "/auth/v1/signup", "", payload, &resp); err != nil {
		return nil, "", err
	}
	user := resp.user()
	if user == nil {
		return nil, "", errors.New("sign up failed")
	}
	return user, resp.AccessToken, nil
}

func (p *Provider) SignInWithPassword(ctx context.Context, email, password string) (*ports.ProviderUser, string, error) {
	payload := map[string]any{"email": email, "password": password}
	var resp authResponse
	if err := p.post(ctx, "/auth/v1/token?grant_type=password", "", payload, &resp); err != nil {
		return nil, "", err
	}
	user := resp.user()
	if user == nil || resp.AccessToken == "" {
		return nil, "", errors.New("invalid credentials")
	}
	return user, resp.AccessToken, nil
}

func (p *Provider) SignOut(ctx context.Context, accessToken string) error {
	return p.post(ctx, "/auth/v1/logout", accessToken, map[string]any{}, nil)
}

func (p *Provider) Recover(ctx context.Context, email string) error {
	return p.post(ctx, "/auth/v1/recover", "", map[string]any{"email": email}, nil)
}

func (r *authResponse) user() *ports.ProviderUser {
	if r.User != nil {
		return &ports.ProviderUser{ID: r.User.ID, Email: r.User.Email, Metadata: r.User.UserMetadata}
	}
	if r.ID != "" {
		return &ports.ProviderUser{ID: r.ID, Email: r.Email, Metadata: r.UserMetadata}
	}
	return nil
}

func (p *Provider) post(ctx context.Context, path, bearer string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Error{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil && err != io.EOF {
		return fmt.Errorf("auth provider: decode response: %w", err)
	}
	return nil
}

// readErrorMessage extracts the provider's free-text error from whichever of
// its three message fields is populated.
func readErrorMessage(r io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(io.LimitReader(r, 2048)).Decode(&eb); err != nil {
		return "unknown error"
	}
	for _, msg := range []string{eb.ErrorDescription, eb.Msg, eb.Message} {
		if msg != "" {
			return msg
		}
	}
	return "unknown error"
}

// Error carries the provider's status and free-text message; the gateway
// classifies it by substring since the provider has no structured codes.
type Error struct {
	Status  int
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("auth provider: %s (status %d)", e.Message, e.Status)
}
