package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spaceresearch/mission-console/internal/api/metrics"
	"github.com/spaceresearch/mission-console/internal/api/middleware"
	"github.com/spaceresearch/mission-console/internal/core/access"
	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
	"github.com/spaceresearch/mission-console/internal/core/session"
)

// AuthHandler drives the sign-up, sign-in, sign-out and password recovery
// flows against the auth gateway and manages the session cookie.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type resetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type authResponse struct {
	User     *domain.User `json:"user,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
}

// Signup creates an account with the provider and a shadow profile row, then
// points the client at the matching login form. The account is not signed in
// automatically.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Role:     domain.ParseRole(req.Role),
	})
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()

	redirect := access.RouteUserLogin
	if user.Role == domain.RoleAdmin {
		redirect = access.RouteAdminLogin
	}
	return c.JSON(http.StatusCreated, authResponse{User: user, Redirect: redirect})
}

// Login exchanges credentials for a session cookie and sends the client home.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()

	setSessionCookie(c, sess)
	return c.JSON(http.StatusOK, authResponse{
		User: &domain.User{
			ID:    sess.UserID,
			Email: sess.Email,
			Role:  sess.EffectiveRole(),
		},
		Redirect: access.RouteRoot,
	})
}

// Logout revokes the token, clears the cookie and sends the client to the
// login selector. Revocation failures do not keep the browser signed in.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if err := h.authService.SignOut(c.Request().Context(), sess); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("logout", "failure").Inc()
	} else {
		metrics.AuthAttemptsTotal.WithLabelValues("logout", "success").Inc()
	}

	clearSessionCookie(c)
	return c.JSON(http.StatusOK, authResponse{Redirect: access.RouteLoginSelect})
}

// ResetPassword asks the provider to send a recovery email. The response is
// the same whether or not the address exists.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Email); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("reset", "failure").Inc()
		return err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("reset", "success").Inc()

	return c.JSON(http.StatusOK, map[string]string{
		"message": "if the account exists, a recovery email has been sent",
	})
}

func setSessionCookie(c echo.Context, sess *domain.Session) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    session.Encode(sess),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
