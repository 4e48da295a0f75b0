package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSession is a fixed-state Session for guard tests.
type stubSession struct {
	snapshot usecase.SessionSnapshot
}

func (s *stubSession) Login(ctx context.Context, email, password string) (*entity.Principal, error) {
	return nil, nil
}

func (s *stubSession) GoogleAuthURL() string { return "" }

func (s *stubSession) LoginWithGoogle(ctx context.Context, state, code string) (*entity.Principal, error) {
	return nil, nil
}

func (s *stubSession) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Principal, error) {
	return nil, nil
}

func (s *stubSession) Logout(ctx context.Context) error { return nil }

func (s *stubSession) Expire() {}

func (s *stubSession) Current() usecase.SessionSnapshot { return s.snapshot }

func (s *stubSession) Subscribe() (<-chan usecase.SessionSnapshot, func()) {
	ch := make(chan usecase.SessionSnapshot)

	return ch, func() {}
}

func (s *stubSession) Close() {}

func newGuardContext(t *testing.T, target string, snapshot usecase.SessionSnapshot) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("identity_session", &stubSession{snapshot: snapshot})

	return c, rec
}

func nextCounter(calls *int) echo.HandlerFunc {
	return func(c echo.Context) error {
		*calls++

		return nil
	}
}

func TestGuard_LoadingNeverRunsRoute(t *testing.T) {
	c, _ := newGuardContext(t, "/dashboard/gallery", usecase.SessionSnapshot{State: usecase.SessionLoading})
	guard := NewGuardMiddleware()
	calls := 0

	err := guard.RequireAuthenticated(nextCounter(&calls))(c)

	assert.ErrorIs(t, err, domainerrors.ErrSessionResolving)
	assert.Zero(t, calls, "a loading session must never run the route")
}

func TestGuard_AnonymousRedirectsPreservingLocation(t *testing.T) {
	c, rec := newGuardContext(t, "/dashboard/gallery?page=2", usecase.SessionSnapshot{State: usecase.SessionAnonymous})
	guard := NewGuardMiddleware()
	calls := 0

	err := guard.RequireAuthenticated(nextCounter(&calls))(c)

	require.NoError(t, err)
	assert.Zero(t, calls)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?from=%2Fdashboard%2Fgallery%3Fpage%3D2", rec.Header().Get(echo.HeaderLocation))
}

func TestGuard_AuthenticatedRunsRouteWithPrincipal(t *testing.T) {
	principal := &entity.Principal{Email: "ada@example.com", Role: entity.RoleUser}
	c, _ := newGuardContext(t, "/dashboard/gallery", usecase.SessionSnapshot{
		State: usecase.SessionAuthenticated, Principal: principal,
	})
	guard := NewGuardMiddleware()
	calls := 0

	err := guard.RequireAuthenticated(nextCounter(&calls))(c)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Same(t, principal, Principal(c))
}

func TestGuard_AdminRejectsOrdinaryUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/admin/stats", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("principal", &entity.Principal{Email: "ada@example.com", Role: entity.RoleUser})
	guard := NewGuardMiddleware()
	calls := 0

	err := guard.RequireAdmin(nextCounter(&calls))(c)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Zero(t, calls)
}

func TestGuard_AdminAdmitsAdministrator(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/admin/stats", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("principal", &entity.Principal{Email: "root@example.com", Role: entity.RoleAdmin})
	guard := NewGuardMiddleware()
	calls := 0

	err := guard.RequireAdmin(nextCounter(&calls))(c)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
