package impl

import (
	"context"
	"log/slog"

	deliverycontext "artify/internal/delivery/context"
	"artify/internal/domain/entity"
	domainerrors "artify/internal/domain/errors"
	"artify/internal/domain/repository"
	"artify/internal/usecase"
)

// adminService implements the AdminUsecase interface. The admin tables are
// site-wide, so each one is a single shared optimistic view rather than a
// per-principal set. Authorization happens in the delivery guard; by the time
// a call lands here the caller is an administrator.
type adminService struct {
	admin  repository.AdminRepository
	arts   repository.ArtworkRepository
	users  repository.UserRepository
	logger *slog.Logger

	artView    listView[entity.Artwork]
	userView   listView[entity.User]
	reportView listView[entity.Report]
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	admin repository.AdminRepository,
	arts repository.ArtworkRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{admin: admin, arts: arts, users: users, logger: logger}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) Stats(ctx context.Context) (*entity.AdminStats, error) {
	stats, err := srv.admin.Stats(ctx)
	if err != nil {
		srv.log(ctx).Error("Admin stats fetch failed", slog.Any("error", err))

		return nil, wrapLoadError(err, "admin stats")
	}

	return stats, nil
}

func (srv *adminService) Arts(ctx context.Context) ([]entity.Artwork, error) {
	gen := srv.artView.begin()

	items, err := srv.admin.Arts(ctx)
	if err != nil {
		srv.log(ctx).Error("Admin listing fetch failed", slog.Any("error", err))

		return nil, wrapLoadError(err, "admin arts")
	}

	if !srv.artView.complete(gen, items) {
		return srv.artView.snapshot(), nil
	}

	return items, nil
}

func (srv *adminService) DeleteArt(ctx context.Context, artID string, confirmed bool) error {
	if !confirmed {
		return nil
	}

	err := commitMutation(&srv.artView, func(items []entity.Artwork) []entity.Artwork {
		return removeWhere(items, func(a entity.Artwork) bool { return a.ID == artID })
	}, func() error {
		return srv.arts.Delete(ctx, artID)
	})
	if err != nil {
		srv.log(ctx).Warn("Admin listing delete rolled back",
			slog.String("art_id", artID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrDeleteFailed, artID)
	}
	srv.log(ctx).Info("Admin deleted listing", slog.String("art_id", artID))

	return nil
}

// SetFeatured flips the home page flag with a single-field patch.
func (srv *adminService) SetFeatured(ctx context.Context, artID string, featured bool) error {
	patch := entity.ArtworkPatch{Featured: &featured}

	err := commitMutation(&srv.artView, func(items []entity.Artwork) []entity.Artwork {
		for i := range items {
			if items[i].ID == artID {
				items[i].Featured = featured
			}
		}

		return items
	}, func() error {
		return srv.arts.Update(ctx, artID, patch)
	})
	if err != nil {
		srv.log(ctx).Warn("Featured toggle rolled back",
			slog.String("art_id", artID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrUpdateFailed, artID)
	}

	return nil
}

func (srv *adminService) SetVisibility(ctx context.Context, artID string, visibility entity.Visibility) error {
	if !visibility.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage(string(visibility))
	}
	patch := entity.ArtworkPatch{Visibility: &visibility}

	err := commitMutation(&srv.artView, func(items []entity.Artwork) []entity.Artwork {
		for i := range items {
			if items[i].ID == artID {
				items[i].Visibility = visibility
			}
		}

		return items
	}, func() error {
		return srv.arts.Update(ctx, artID, patch)
	})
	if err != nil {
		srv.log(ctx).Warn("Visibility change rolled back",
			slog.String("art_id", artID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrUpdateFailed, artID)
	}

	return nil
}

func (srv *adminService) Users(ctx context.Context) ([]entity.User, error) {
	gen := srv.userView.begin()

	items, err := srv.users.List(ctx)
	if err != nil {
		srv.log(ctx).Error("User table fetch failed", slog.Any("error", err))

		return nil, wrapLoadError(err, "users")
	}

	if !srv.userView.complete(gen, items) {
		return srv.userView.snapshot(), nil
	}

	return items, nil
}

// ToggleRole flips a user between ordinary and administrator. The target role
// comes from the held view so the toggle matches what the administrator saw.
func (srv *adminService) ToggleRole(ctx context.Context, userID string) error {
	var next entity.Role
	found := false
	for _, user := range srv.userView.snapshot() {
		if user.ID == userID {
			next = entity.ParseRole(user.Role).Toggled()
			found = true

			break
		}
	}
	if !found {
		return domainerrors.ErrNotFound.WrapMessage(userID)
	}

	err := commitMutation(&srv.userView, func(items []entity.User) []entity.User {
		for i := range items {
			if items[i].ID == userID {
				items[i].Role = next.String()
			}
		}

		return items
	}, func() error {
		return srv.users.UpdateRole(ctx, userID, next)
	})
	if err != nil {
		srv.log(ctx).Warn("Role toggle rolled back",
			slog.String("user_id", userID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrUpdateFailed, userID)
	}
	srv.log(ctx).Info("Role changed", slog.String("user_id", userID), slog.String("role", next.String()))

	return nil
}

func (srv *adminService) DeleteUser(ctx context.Context, userID string, confirmed bool) error {
	if !confirmed {
		return nil
	}

	err := commitMutation(&srv.userView, func(items []entity.User) []entity.User {
		return removeWhere(items, func(u entity.User) bool { return u.ID == userID })
	}, func() error {
		return srv.users.Delete(ctx, userID)
	})
	if err != nil {
		srv.log(ctx).Warn("User delete rolled back",
			slog.String("user_id", userID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrDeleteFailed, userID)
	}
	srv.log(ctx).Info("User deleted", slog.String("user_id", userID))

	return nil
}

func (srv *adminService) Reports(ctx context.Context) ([]entity.Report, error) {
	gen := srv.reportView.begin()

	items, err := srv.admin.Reports(ctx)
	if err != nil {
		srv.log(ctx).Error("Report queue fetch failed", slog.Any("error", err))

		return nil, wrapLoadError(err, "reports")
	}

	if !srv.reportView.complete(gen, items) {
		return srv.reportView.snapshot(), nil
	}

	return items, nil
}

// ResolveReport dismisses a report without touching the listing.
func (srv *adminService) ResolveReport(ctx context.Context, reportID string) error {
	err := commitMutation(&srv.reportView, func(items []entity.Report) []entity.Report {
		return removeWhere(items, func(r entity.Report) bool { return r.ID == reportID })
	}, func() error {
		return srv.admin.ResolveReport(ctx, reportID)
	})
	if err != nil {
		srv.log(ctx).Warn("Report resolve rolled back",
			slog.String("report_id", reportID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrUpdateFailed, reportID)
	}

	return nil
}

// DeleteReportedArt removes the reported listing; the report goes with it.
func (srv *adminService) DeleteReportedArt(ctx context.Context, reportID, artID string, confirmed bool) error {
	if !confirmed {
		return nil
	}

	err := commitMutation(&srv.reportView, func(items []entity.Report) []entity.Report {
		return removeWhere(items, func(r entity.Report) bool { return r.ID == reportID })
	}, func() error {
		return srv.arts.Delete(ctx, artID)
	})
	if err != nil {
		srv.log(ctx).Warn("Reported listing delete rolled back",
			slog.String("art_id", artID), slog.Any("error", err))

		return wrapMutationError(err, domainerrors.ErrDeleteFailed, artID)
	}

	// The listing is gone either way; keep the admin table in step.
	srv.artView.mutate(func(items []entity.Artwork) []entity.Artwork {
		return removeWhere(items, func(a entity.Artwork) bool { return a.ID == artID })
	})
	srv.log(ctx).Info("Reported listing deleted",
		slog.String("report_id", reportID), slog.String("art_id", artID))

	return nil
}
