package handler

import (
	"log/slog"
	"net/http"

	"artify/internal/delivery/http/response"
	"artify/internal/domain/entity"
	"artify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the administrator screens. Authorization is enforced by
// the admin guard on the route group.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// Stats serves the dashboard aggregates.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Arts serves the full listing table.
func (h *AdminHandler) Arts(c echo.Context) error {
	items, err := h.uc.Arts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// DeleteArt removes any listing.
func (h *AdminHandler) DeleteArt(c echo.Context) error {
	confirmed := c.QueryParam("confirm") == "true"

	if err := h.uc.DeleteArt(c.Request().Context(), c.Param("id"), confirmed); err != nil {
		return errors.WithStack(err)
	}
	if !confirmed {
		return response.Success(c, http.StatusOK, nil, "Delete not confirmed, nothing happened")
	}

	return response.Success(c, http.StatusOK, nil, "Artwork deleted")
}

type featuredRequest struct {
	Featured bool `json:"featured"`
}

// SetFeatured flips the home page flag.
func (h *AdminHandler) SetFeatured(c echo.Context) error {
	var input featuredRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid featured input")
	}

	if err := h.uc.SetFeatured(c.Request().Context(), c.Param("id"), input.Featured); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Featured flag updated")
}

type visibilityRequest struct {
	Visibility string `json:"visibility" validate:"required"`
}

// SetVisibility changes whether a listing is public.
func (h *AdminHandler) SetVisibility(c echo.Context) error {
	var input visibilityRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visibility input")
	}

	if err := h.uc.SetVisibility(c.Request().Context(), c.Param("id"), entity.Visibility(input.Visibility)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Visibility updated")
}

// Users serves the user table.
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.uc.Users(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// ToggleRole flips a user's role.
func (h *AdminHandler) ToggleRole(c echo.Context) error {
	if err := h.uc.ToggleRole(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Role updated")
}

// DeleteUser removes a user record.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	confirmed := c.QueryParam("confirm") == "true"

	if err := h.uc.DeleteUser(c.Request().Context(), c.Param("id"), confirmed); err != nil {
		return errors.WithStack(err)
	}
	if !confirmed {
		return response.Success(c, http.StatusOK, nil, "Delete not confirmed, nothing happened")
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}

// Reports serves the open report queue.
func (h *AdminHandler) Reports(c echo.Context) error {
	reports, err := h.uc.Reports(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}

// ResolveReport dismisses a report without touching the listing.
func (h *AdminHandler) ResolveReport(c echo.Context) error {
	if err := h.uc.ResolveReport(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Report resolved")
}

// DeleteReportedArt removes the reported listing.
func (h *AdminHandler) DeleteReportedArt(c echo.Context) error {
	confirmed := c.QueryParam("confirm") == "true"
	artID := c.QueryParam("artId")
	if artID == "" {
		return response.BindingError(c, "INVALID_INPUT", "artId is required")
	}

	if err := h.uc.DeleteReportedArt(c.Request().Context(), c.Param("id"), artID, confirmed); err != nil {
		return errors.WithStack(err)
	}
	if !confirmed {
		return response.Success(c, http.StatusOK, nil, "Delete not confirmed, nothing happened")
	}

	return response.Success(c, http.StatusOK, nil, "Reported artwork deleted")
}
