// Package session maps browser cookies to identity session handles. One
// handle per browser session, created lazily on the first request and looked
// up by an opaque cookie afterwards.
package session

import (
	"net/http"
	"sync"

	"artify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CookieName carries the session handle identifier.
const CookieName = "artify_session"

const echoContextKey = "identity_session"

// Registry holds the live session handles.
type Registry struct {
	manager usecase.SessionManager

	mu       sync.Mutex
	sessions map[string]usecase.Session
}

// NewRegistry is the constructor for the session registry.
func NewRegistry(manager usecase.SessionManager) *Registry {
	return &Registry{
		manager:  manager,
		sessions: make(map[string]usecase.Session),
	}
}

// Attach resolves the request's session handle, creating one and setting the
// cookie when the browser has none yet.
func (r *Registry) Attach(c echo.Context) usecase.Session {
	if cookie, err := c.Cookie(CookieName); err == nil {
		r.mu.Lock()
		session, ok := r.sessions[cookie.Value]
		r.mu.Unlock()
		if ok {
			c.Set(echoContextKey, session)

			return session
		}
	}

	id := uuid.New().String()
	session := r.manager.Open()

	r.mu.Lock()
	r.sessions[id] = session
	r.mu.Unlock()

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Set(echoContextKey, session)

	return session
}

// Release drops the request's handle, closes it and clears the cookie. The
// next request starts a fresh anonymous session.
func (r *Registry) Release(c echo.Context) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return
	}

	r.mu.Lock()
	session, ok := r.sessions[cookie.Value]
	delete(r.sessions, cookie.Value)
	r.mu.Unlock()

	if ok {
		session.Close()
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromEcho returns the session handle attached to the request, or nil when
// the session middleware has not run.
func FromEcho(c echo.Context) usecase.Session {
	if session, ok := c.Get(echoContextKey).(usecase.Session); ok {
		return session
	}

	return nil
}
