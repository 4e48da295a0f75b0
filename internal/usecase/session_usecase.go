// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"artify/internal/domain/entity"
)

// SessionState is one of the three identity states a browser session can be
// in. A session starts loading, resolves exactly once, and afterwards moves
// only between authenticated and anonymous.
type SessionState string

const (
	// SessionLoading means the initial identity resolution has not finished.
	SessionLoading SessionState = "loading"
	// SessionAuthenticated means a principal is signed in.
	SessionAuthenticated SessionState = "authenticated"
	// SessionAnonymous means nobody is signed in.
	SessionAnonymous SessionState = "anonymous"
)

// SessionSnapshot is one observation of the session state machine. Principal
// is non-nil exactly when State is SessionAuthenticated, and then always
// carries a non-empty email.
type SessionSnapshot struct {
	State     SessionState
	Principal *entity.Principal
}

// RegisterInput carries the registration form. Avatar is optional; when set
// it is uploaded to the image host before the account is created.
type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	AvatarName string
	Avatar     io.Reader
}

// Session is one browser session's identity state machine.
type Session interface {
	// Login authenticates an email/password pair and transitions to
	// authenticated. On success the profile is mirrored into the backend
	// user collection as a side effect; that write is fire-and-forget.
	Login(ctx context.Context, email, password string) (*entity.Principal, error)

	// GoogleAuthURL starts the Google sign-in flow and returns the URL the
	// user agent should visit.
	GoogleAuthURL() string

	// LoginWithGoogle completes the Google sign-in flow from the provider
	// callback parameters.
	LoginWithGoogle(ctx context.Context, state, code string) (*entity.Principal, error)

	// Register validates the password locally, creates the account, sets the
	// display name and optional avatar, and transitions to authenticated.
	Register(ctx context.Context, input RegisterInput) (*entity.Principal, error)

	// Logout signs out at the provider and forces the state to anonymous
	// regardless of the provider's answer.
	Logout(ctx context.Context) error

	// Expire forces the state to anonymous without a provider round trip.
	// Invoked by the remote data client when the backend rejects the session.
	Expire()

	// Current returns the present state and principal.
	Current() SessionSnapshot

	// Subscribe registers an observer. The channel receives a snapshot on
	// every transition, latest wins; cancel removes the observer.
	Subscribe() (updates <-chan SessionSnapshot, cancel func())

	// Close releases the session and its observers.
	Close()
}

// SessionManager creates identity sessions, one per browser session.
type SessionManager interface {
	Open() Session
}
