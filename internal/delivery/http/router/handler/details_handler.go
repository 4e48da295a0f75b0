package handler

import (
	"log/slog"
	"net/http"

	"artify/internal/delivery/http/middleware"
	"artify/internal/delivery/http/response"
	"artify/internal/delivery/http/session"
	"artify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DetailsHandler serves the single-listing endpoints.
type DetailsHandler struct {
	uc     usecase.DetailsUsecase
	logger *slog.Logger
}

// NewDetailsHandler is the constructor for DetailsHandler, injected by Fx.
func NewDetailsHandler(uc usecase.DetailsUsecase, logger *slog.Logger) *DetailsHandler {
	return &DetailsHandler{uc: uc, logger: logger}
}

// Get serves one listing.
func (h *DetailsHandler) Get(c echo.Context) error {
	art, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, art, "")
}

// ToggleLike flips the caller's like and returns the fresh count.
func (h *DetailsHandler) ToggleLike(c echo.Context) error {
	likes, err := h.uc.ToggleLike(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"likes": likes}, "")
}

// AddFavorite saves the listing for the signed-in principal. The usecase
// rejects anonymous callers, so the route carries no guard: the page is
// public, only the action needs a login.
func (h *DetailsHandler) AddFavorite(c echo.Context) error {
	principal := middleware.Principal(c)
	if principal == nil {
		if snapshot := session.FromEcho(c).Current(); snapshot.Principal != nil {
			principal = snapshot.Principal
		}
	}

	favorite, err := h.uc.AddFavorite(c.Request().Context(), principal, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Added to favorites")
}

// ShareQR serves the PNG share code for the listing.
func (h *DetailsHandler) ShareQR(c echo.Context) error {
	png, err := h.uc.ShareQR(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
