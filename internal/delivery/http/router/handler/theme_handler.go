package handler

import (
	"net/http"

	"artify/internal/delivery/http/response"
	"artify/internal/infra/prefs"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ThemeHandler persists the theme preference in the local preference store.
type ThemeHandler struct {
	store *prefs.Store
}

// NewThemeHandler is the constructor for ThemeHandler, injected by Fx.
func NewThemeHandler(store *prefs.Store) *ThemeHandler {
	return &ThemeHandler{store: store}
}

// Get reports the stored theme, defaulting to light.
func (h *ThemeHandler) Get(c echo.Context) error {
	theme, err := h.store.Get(prefs.ThemeKey)
	if err != nil {
		return errors.WithStack(err)
	}
	if theme == "" {
		theme = "light"
	}

	return response.Success(c, http.StatusOK, map[string]string{"theme": theme}, "")
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// Set stores the theme preference.
func (h *ThemeHandler) Set(c echo.Context) error {
	var input themeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid theme input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.store.Set(prefs.ThemeKey, input.Theme); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"theme": input.Theme}, "Theme saved")
}
