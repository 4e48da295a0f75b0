// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "artify/internal/delivery/context"
	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"
	"artify/internal/domain/service"
	"artify/internal/usecase"

	"github.com/pkg/errors"
)

// upsertTimeout bounds the fire-and-forget profile mirror write.
const upsertTimeout = 10 * time.Second

// sessionManager creates sessionService instances, one per browser session.
type sessionManager struct {
	provider       service.IdentityProvider
	oauth          service.OAuthService
	imageHost      service.ImageHost
	passwordPolicy service.PasswordPolicy
	users          repository.UserRepository
	logger         *slog.Logger
}

// NewSessionManager is the constructor for the session manager.
func NewSessionManager(
	provider service.IdentityProvider,
	oauth service.OAuthService,
	imageHost service.ImageHost,
	passwordPolicy service.PasswordPolicy,
	users repository.UserRepository,
	logger *slog.Logger,
) usecase.SessionManager {
	return &sessionManager{
		provider:       provider,
		oauth:          oauth,
		imageHost:      imageHost,
		passwordPolicy: passwordPolicy,
		users:          users,
		logger:         logger,
	}
}

// Open creates a session in the loading state and resolves it asynchronously,
// so observers registered right after Open still see the initial transition.
func (m *sessionManager) Open() usecase.Session {
	session := &sessionService{
		provider:       m.provider,
		oauth:          m.oauth,
		imageHost:      m.imageHost,
		passwordPolicy: m.passwordPolicy,
		users:          m.users,
		logger:         m.logger,
		state:          usecase.SessionLoading,
		observers:      make(map[int]chan usecase.SessionSnapshot),
	}
	go session.resolve()

	return session
}

// sessionService implements the Session interface. All identity state of one
// browser session lives here and nowhere else; the backend user collection is
// a mirror written on login, never read back into the session.
type sessionService struct {
	provider       service.IdentityProvider
	oauth          service.OAuthService
	imageHost      service.ImageHost
	passwordPolicy service.PasswordPolicy
	users          repository.UserRepository
	logger         *slog.Logger

	mu           sync.Mutex
	state        usecase.SessionState
	principal    *entity.Principal
	refreshToken string
	nextObserver int
	observers    map[int]chan usecase.SessionSnapshot
	closed       bool
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolve finishes the initial loading state. There is no persisted identity
// to restore, so a fresh session always resolves to anonymous. A login that
// raced ahead of the resolution wins.
func (srv *sessionService) resolve() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.state != usecase.SessionLoading {
		return
	}
	srv.transitionLocked(usecase.SessionAnonymous, nil, "")
}

// Login authenticates an email/password pair.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*entity.Principal, error) {
	user, err := srv.provider.SignIn(ctx, email, password)
	if err != nil {
		srv.log(ctx).Info("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	principal := srv.establish(ctx, user)
	if principal == nil {
		return nil, errors.Wrap(domainerrors.ErrAuthFailed, "provider account has no email")
	}
	srv.log(ctx).Info("Principal signed in", slog.String("email", principal.Email))

	return principal, nil
}

// GoogleAuthURL starts the Google sign-in flow.
func (srv *sessionService) GoogleAuthURL() string {
	url, _ := srv.oauth.AuthorizationURL()

	return url
}

// LoginWithGoogle completes the Google sign-in flow.
func (srv *sessionService) LoginWithGoogle(ctx context.Context, state, code string) (*entity.Principal, error) {
	if !srv.oauth.ValidateState(state) {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "state mismatch")
	}

	idToken, err := srv.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if _, err := srv.oauth.VerifyIDToken(ctx, idToken); err != nil {
		return nil, err
	}

	user, err := srv.provider.SignInWithGoogle(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Provider rejected Google sign-in", slog.Any("error", err))

		return nil, err
	}

	principal := srv.establish(ctx, user)
	if principal == nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "provider account has no email")
	}
	srv.log(ctx).Info("Principal signed in with Google", slog.String("email", principal.Email))

	return principal, nil
}

// Register creates a new account. The password policy runs before anything
// leaves the client: a weak password never reaches the provider.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.Principal, error) {
	if err := srv.passwordPolicy.Validate(input.Password); err != nil {
		return nil, err
	}

	photoURL := ""
	if input.Avatar != nil {
		url, err := srv.imageHost.Upload(ctx, input.AvatarName, input.Avatar)
		if err != nil {
			return nil, err
		}
		photoURL = url
	}

	user, err := srv.provider.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if input.Name != "" || photoURL != "" {
		updated, err := srv.provider.UpdateProfile(ctx, user.IDToken, input.Name, photoURL)
		if err != nil {
			// The account exists; a failed profile write should not strand
			// the registration.
			srv.log(ctx).Warn("Profile update after sign-up failed", slog.Any("error", err))
		} else {
			updated.RefreshToken = user.RefreshToken
			user = updated
		}
	}

	principal := srv.establish(ctx, user)
	if principal == nil {
		return nil, errors.Wrap(domainerrors.ErrAuthFailed, "provider account has no email")
	}
	srv.log(ctx).Info("Principal registered", slog.String("email", principal.Email))

	return principal, nil
}

// Logout signs out at the provider. The session goes anonymous either way; a
// provider error only means the refresh token may still be alive server-side.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	refreshToken := srv.refreshToken
	srv.mu.Unlock()

	err := srv.provider.SignOut(ctx, refreshToken)
	srv.transition(usecase.SessionAnonymous, nil, "")
	if err != nil {
		srv.log(ctx).Warn("Provider sign-out failed", slog.Any("error", err))

		return errors.Wrap(err, "provider sign-out failed")
	}

	return nil
}

// Expire forces the state to anonymous without a provider round trip.
func (srv *sessionService) Expire() {
	srv.transition(usecase.SessionAnonymous, nil, "")
}

// Current returns the present state and principal.
func (srv *sessionService) Current() usecase.SessionSnapshot {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return usecase.SessionSnapshot{State: srv.state, Principal: srv.principal}
}

// Subscribe registers an observer channel. Delivery is latest-wins: a slow
// observer sees the newest snapshot, not every intermediate one.
func (srv *sessionService) Subscribe() (<-chan usecase.SessionSnapshot, func()) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	id := srv.nextObserver
	srv.nextObserver++
	ch := make(chan usecase.SessionSnapshot, 1)
	srv.observers[id] = ch

	return ch, func() {
		srv.mu.Lock()
		defer srv.mu.Unlock()
		if _, ok := srv.observers[id]; ok {
			delete(srv.observers, id)
			close(ch)
		}
	}
}

// Close releases the session and its observers.
func (srv *sessionService) Close() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.closed {
		return
	}
	srv.closed = true
	for id, ch := range srv.observers {
		delete(srv.observers, id)
		close(ch)
	}
}

// establish turns a provider account into the authenticated principal and
// kicks off the profile mirror write. An account without an email cannot be
// addressed by any backend operation, so it yields no principal.
func (srv *sessionService) establish(ctx context.Context, user *service.IdentityUser) *entity.Principal {
	if user.Email == "" {
		srv.transition(usecase.SessionAnonymous, nil, "")

		return nil
	}

	principal := &entity.Principal{
		Email:    user.Email,
		Name:     user.DisplayName,
		PhotoURL: user.PhotoURL,
		Role:     srv.lookupRole(ctx, user.Email),
		IDToken:  user.IDToken,
	}

	srv.transition(usecase.SessionAuthenticated, principal, user.RefreshToken)
	srv.upsertProfile(principal)

	return principal
}

// lookupRole mirrors the role from the backend user collection. The check is
// advisory; a failed lookup degrades to the ordinary role.
func (srv *sessionService) lookupRole(ctx context.Context, email string) entity.Role {
	isAdmin, err := srv.users.IsAdmin(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Role lookup failed, assuming ordinary user",
			slog.String("email", email), slog.Any("error", err))

		return entity.RoleUser
	}
	if isAdmin {
		return entity.RoleAdmin
	}

	return entity.RoleUser
}

// upsertProfile mirrors the principal into the backend user collection.
// Fire-and-forget: a failure is logged and never surfaced to the login path.
func (srv *sessionService) upsertProfile(principal *entity.Principal) {
	record := &entity.User{
		Name:     principal.Name,
		Email:    principal.Email,
		PhotoURL: principal.PhotoURL,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), upsertTimeout)
		defer cancel()

		if err := srv.users.Upsert(ctx, record); err != nil {
			srv.logger.Warn("Profile upsert failed",
				slog.String("email", record.Email), slog.Any("error", err))
		}
	}()
}

// transition moves the state machine and notifies observers. A resolved
// non-loading state carries either a nil principal or a non-empty email.
func (srv *sessionService) transition(state usecase.SessionState, principal *entity.Principal, refreshToken string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.transitionLocked(state, principal, refreshToken)
}

// transitionLocked does the state change and notification. Caller holds the
// mutex.
func (srv *sessionService) transitionLocked(state usecase.SessionState, principal *entity.Principal, refreshToken string) {
	srv.state = state
	srv.principal = principal
	srv.refreshToken = refreshToken

	// Notification happens under the lock so a concurrent cancel cannot
	// close a channel mid-send. Sends never block: latest wins, a stale
	// undelivered snapshot is dropped first.
	snapshot := usecase.SessionSnapshot{State: state, Principal: principal}
	for _, ch := range srv.observers {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
