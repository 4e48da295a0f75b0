package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"artify/internal/domain/entity"
	"artify/internal/domain/repository"
	"artify/internal/domain/service"
)

// Hand-rolled fakes: each method delegates to an optional function field and
// otherwise returns zero values.

func testLogger(t *testing.T) *slog.Logger {
	t.Helper()

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeArtworkRepository struct {
	listFn        func(ctx context.Context, q repository.ArtworkQuery) (*repository.ArtworkPage, error)
	featuredFn    func(ctx context.Context) ([]entity.Artwork, error)
	getFn         func(ctx context.Context, id string) (*entity.Artwork, error)
	listByOwnerFn func(ctx context.Context, email string) ([]entity.Artwork, error)
	createFn      func(ctx context.Context, art *entity.Artwork) error
	updateFn      func(ctx context.Context, id string, patch entity.ArtworkPatch) error
	deleteFn      func(ctx context.Context, id string) error
	toggleLikeFn  func(ctx context.Context, id string) (int, error)
}

func (f *fakeArtworkRepository) List(ctx context.Context, q repository.ArtworkQuery) (*repository.ArtworkPage, error) {
	if f.listFn != nil {
		return f.listFn(ctx, q)
	}

	return &repository.ArtworkPage{}, nil
}

func (f *fakeArtworkRepository) Featured(ctx context.Context) ([]entity.Artwork, error) {
	if f.featuredFn != nil {
		return f.featuredFn(ctx)
	}

	return nil, nil
}

func (f *fakeArtworkRepository) Get(ctx context.Context, id string) (*entity.Artwork, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}

	return &entity.Artwork{ID: id}, nil
}

func (f *fakeArtworkRepository) ListByOwner(ctx context.Context, email string) ([]entity.Artwork, error) {
	if f.listByOwnerFn != nil {
		return f.listByOwnerFn(ctx, email)
	}

	return nil, nil
}

func (f *fakeArtworkRepository) Create(ctx context.Context, art *entity.Artwork) error {
	if f.createFn != nil {
		return f.createFn(ctx, art)
	}

	return nil
}

func (f *fakeArtworkRepository) Update(ctx context.Context, id string, patch entity.ArtworkPatch) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, patch)
	}

	return nil
}

func (f *fakeArtworkRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}

	return nil
}

func (f *fakeArtworkRepository) ToggleLike(ctx context.Context, id string) (int, error) {
	if f.toggleLikeFn != nil {
		return f.toggleLikeFn(ctx, id)
	}

	return 0, nil
}

type fakeFavoriteRepository struct {
	listByEmailFn func(ctx context.Context, email string) ([]entity.Favorite, error)
	addFn         func(ctx context.Context, artID, email string) (*entity.Favorite, error)
	removeFn      func(ctx context.Context, favoriteID string) error
	addCalls      int
}

func (f *fakeFavoriteRepository) ListByEmail(ctx context.Context, email string) ([]entity.Favorite, error) {
	if f.listByEmailFn != nil {
		return f.listByEmailFn(ctx, email)
	}

	return nil, nil
}

func (f *fakeFavoriteRepository) Add(ctx context.Context, artID, email string) (*entity.Favorite, error) {
	f.addCalls++
	if f.addFn != nil {
		return f.addFn(ctx, artID, email)
	}

	return &entity.Favorite{ID: "fav-1", ArtID: artID, UserEmail: email}, nil
}

func (f *fakeFavoriteRepository) Remove(ctx context.Context, favoriteID string) error {
	if f.removeFn != nil {
		return f.removeFn(ctx, favoriteID)
	}

	return nil
}

type fakeUserRepository struct {
	listFn       func(ctx context.Context) ([]entity.User, error)
	upsertFn     func(ctx context.Context, user *entity.User) error
	updateRoleFn func(ctx context.Context, userID string, role entity.Role) error
	deleteFn     func(ctx context.Context, userID string) error
	isAdminFn    func(ctx context.Context, email string) (bool, error)
}

func (f *fakeUserRepository) List(ctx context.Context) ([]entity.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}

	return nil, nil
}

func (f *fakeUserRepository) Upsert(ctx context.Context, user *entity.User) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, user)
	}

	return nil
}

func (f *fakeUserRepository) UpdateRole(ctx context.Context, userID string, role entity.Role) error {
	if f.updateRoleFn != nil {
		return f.updateRoleFn(ctx, userID, role)
	}

	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, userID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID)
	}

	return nil
}

func (f *fakeUserRepository) IsAdmin(ctx context.Context, email string) (bool, error) {
	if f.isAdminFn != nil {
		return f.isAdminFn(ctx, email)
	}

	return false, nil
}

type fakeAdminRepository struct {
	statsFn   func(ctx context.Context) (*entity.AdminStats, error)
	artsFn    func(ctx context.Context) ([]entity.Artwork, error)
	reportsFn func(ctx context.Context) ([]entity.Report, error)
	resolveFn func(ctx context.Context, reportID string) error
}

func (f *fakeAdminRepository) Stats(ctx context.Context) (*entity.AdminStats, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx)
	}

	return &entity.AdminStats{}, nil
}

func (f *fakeAdminRepository) Arts(ctx context.Context) ([]entity.Artwork, error) {
	if f.artsFn != nil {
		return f.artsFn(ctx)
	}

	return nil, nil
}

func (f *fakeAdminRepository) Reports(ctx context.Context) ([]entity.Report, error) {
	if f.reportsFn != nil {
		return f.reportsFn(ctx)
	}

	return nil, nil
}

func (f *fakeAdminRepository) ResolveReport(ctx context.Context, reportID string) error {
	if f.resolveFn != nil {
		return f.resolveFn(ctx, reportID)
	}

	return nil
}

type fakeLikesRepository struct {
	totalFn func(ctx context.Context) (int, error)
}

func (f *fakeLikesRepository) Total(ctx context.Context) (int, error) {
	if f.totalFn != nil {
		return f.totalFn(ctx)
	}

	return 0, nil
}

type fakeIdentityProvider struct {
	signInFn           func(ctx context.Context, email, password string) (*service.IdentityUser, error)
	signUpFn           func(ctx context.Context, email, password string) (*service.IdentityUser, error)
	signInWithGoogleFn func(ctx context.Context, googleIDToken string) (*service.IdentityUser, error)
	updateProfileFn    func(ctx context.Context, idToken, displayName, photoURL string) (*service.IdentityUser, error)
	signOutFn          func(ctx context.Context, refreshToken string) error
	signInCalls        int
	signUpCalls        int
	signOutCalls       int
}

func (f *fakeIdentityProvider) SignIn(ctx context.Context, email, password string) (*service.IdentityUser, error) {
	f.signInCalls++
	if f.signInFn != nil {
		return f.signInFn(ctx, email, password)
	}

	return &service.IdentityUser{Email: email, IDToken: "id-token", RefreshToken: "refresh"}, nil
}

func (f *fakeIdentityProvider) SignUp(ctx context.Context, email, password string) (*service.IdentityUser, error) {
	f.signUpCalls++
	if f.signUpFn != nil {
		return f.signUpFn(ctx, email, password)
	}

	return &service.IdentityUser{Email: email, IDToken: "id-token", RefreshToken: "refresh"}, nil
}

func (f *fakeIdentityProvider) SignInWithGoogle(ctx context.Context, googleIDToken string) (*service.IdentityUser, error) {
	if f.signInWithGoogleFn != nil {
		return f.signInWithGoogleFn(ctx, googleIDToken)
	}

	return &service.IdentityUser{Email: "google@example.com", IDToken: "id-token"}, nil
}

func (f *fakeIdentityProvider) UpdateProfile(ctx context.Context, idToken, displayName, photoURL string) (*service.IdentityUser, error) {
	if f.updateProfileFn != nil {
		return f.updateProfileFn(ctx, idToken, displayName, photoURL)
	}

	return &service.IdentityUser{Email: "user@example.com", DisplayName: displayName, PhotoURL: photoURL, IDToken: idToken}, nil
}

func (f *fakeIdentityProvider) SignOut(ctx context.Context, refreshToken string) error {
	f.signOutCalls++
	if f.signOutFn != nil {
		return f.signOutFn(ctx, refreshToken)
	}

	return nil
}

type fakeOAuthService struct {
	validateFn func(state string) bool
	exchangeFn func(ctx context.Context, code string) (string, error)
	verifyFn   func(ctx context.Context, idToken string) (*service.GoogleUser, error)
}

func (f *fakeOAuthService) AuthorizationURL() (string, string) {
	return "https://accounts.example/auth?state=s1", "s1"
}

func (f *fakeOAuthService) ValidateState(state string) bool {
	if f.validateFn != nil {
		return f.validateFn(state)
	}

	return true
}

func (f *fakeOAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	if f.exchangeFn != nil {
		return f.exchangeFn(ctx, code)
	}

	return "google-id-token", nil
}

func (f *fakeOAuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.GoogleUser, error) {
	if f.verifyFn != nil {
		return f.verifyFn(ctx, idToken)
	}

	return &service.GoogleUser{Email: "google@example.com", EmailVerified: true}, nil
}

type fakeImageHost struct {
	uploadFn    func(ctx context.Context, filename string, image io.Reader) (string, error)
	uploadCalls int
}

func (f *fakeImageHost) Upload(ctx context.Context, filename string, image io.Reader) (string, error) {
	f.uploadCalls++
	if f.uploadFn != nil {
		return f.uploadFn(ctx, filename, image)
	}

	return "https://images.example/" + filename, nil
}

type fakePasswordPolicy struct {
	validateFn func(password string) error
}

func (f *fakePasswordPolicy) Validate(password string) error {
	if f.validateFn != nil {
		return f.validateFn(password)
	}

	return nil
}
