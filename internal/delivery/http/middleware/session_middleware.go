// Package middleware contains the HTTP middleware: session attachment, route
// guards and unified error handling.
package middleware

import (
	"net/http"
	"net/url"

	deliverycontext "artify/internal/delivery/context"
	"artify/internal/delivery/http/session"
	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionMiddleware attaches the browser's identity session to every request.
type SessionMiddleware struct {
	registry *session.Registry
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(registry *session.Registry) *SessionMiddleware {
	return &SessionMiddleware{registry: registry}
}

// Attach resolves the session handle and plants it in both the echo context
// (for handlers) and the request context (for the remote data client's
// unauthorized interceptor).
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := m.registry.Attach(c)

		req := c.Request()
		ctx := deliverycontext.WithSessionValue(req.Context(), s)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// GuardMiddleware implements the route guards. A guard never runs its route
// while the session is still loading.
type GuardMiddleware struct{}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware() *GuardMiddleware {
	return &GuardMiddleware{}
}

// RequireAuthenticated admits signed-in principals only. Loading sessions get
// a retry answer, anonymous ones a redirect to the login page preserving the
// requested location.
func (m *GuardMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s := session.FromEcho(c)
		if s == nil {
			return errors.WithStack(domainerrors.ErrLoginRequired)
		}

		switch snapshot := s.Current(); snapshot.State {
		case usecase.SessionLoading:
			return errors.WithStack(domainerrors.ErrSessionResolving)
		case usecase.SessionAnonymous:
			return c.Redirect(http.StatusFound, "/login?from="+url.QueryEscape(c.Request().URL.RequestURI()))
		default:
			c.Set("principal", snapshot.Principal)

			return next(c)
		}
	}
}

// RequireAdmin admits administrators only. Must run after
// RequireAuthenticated.
func (m *GuardMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := Principal(c)
		if principal == nil || principal.Role != entity.RoleAdmin {
			return errors.WithStack(domainerrors.ErrForbidden)
		}

		return next(c)
	}
}

// Principal returns the authenticated principal planted by the guard, or nil.
func Principal(c echo.Context) *entity.Principal {
	if principal, ok := c.Get("principal").(*entity.Principal); ok {
		return principal
	}

	return nil
}
