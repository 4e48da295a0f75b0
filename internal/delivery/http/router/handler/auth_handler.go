// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"artify/internal/delivery/http/middleware"
	"artify/internal/delivery/http/response"
	"artify/internal/delivery/http/session"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the identity endpoints.
type AuthHandler struct {
	registry *session.Registry
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(registry *session.Registry, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{registry: registry, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Login handles the email/password sign-in request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	principal, err := session.FromEcho(c).Login(c.Request().Context(), input.Email, input.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, principal, "Login successful")
}

// Register handles the registration form. The avatar arrives as an optional
// multipart file.
func (h *AuthHandler) Register(c echo.Context) error {
	input := usecase.RegisterInput{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if input.Email == "" || input.Password == "" {
		return response.BindingError(c, "INVALID_INPUT", "Email and password are required")
	}

	if file, err := c.FormFile("avatar"); err == nil {
		src, err := file.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open avatar upload")
		}
		defer src.Close()
		input.AvatarName = file.Filename
		input.Avatar = src
	}

	principal, err := session.FromEcho(c).Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, principal, "Registration successful")
}

// GoogleLogin initiates the Google sign-in flow with a redirect to the
// provider's consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, session.FromEcho(c).GoogleAuthURL())
}

// GoogleCallback completes the Google sign-in flow.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if code == "" {
		return errors.Wrap(domainerrors.ErrOAuthFailed, "missing authorization code")
	}

	principal, err := session.FromEcho(c).LoginWithGoogle(c.Request().Context(), state, code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, principal, "Login successful")
}

// Logout signs the principal out.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := session.FromEcho(c).Logout(c.Request().Context()); err != nil {
		// The session is anonymous regardless; the provider failure is not
		// the caller's problem.
		h.logger.Warn("Sign-out completed with provider error", slog.Any("error", err))
	}
	h.registry.Release(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Profile returns the signed-in principal planted by the authentication
// guard.
func (h *AuthHandler) Profile(c echo.Context) error {
	return response.Success(c, http.StatusOK, middleware.Principal(c), "")
}

// Session reports the current state of the identity state machine.
func (h *AuthHandler) Session(c echo.Context) error {
	snapshot := session.FromEcho(c).Current()

	body := map[string]any{"state": snapshot.State}
	if snapshot.Principal != nil {
		body["principal"] = snapshot.Principal
	}

	return response.Success(c, http.StatusOK, body, "")
}
