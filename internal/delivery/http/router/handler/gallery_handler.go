package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"artify/internal/delivery/http/middleware"
	"artify/internal/delivery/http/response"
	"artify/internal/domain/entity"
	"artify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GalleryHandler serves the principal's dashboard: owned listings, the add
// form, favorites and personal statistics. Every route sits behind the
// authentication guard.
type GalleryHandler struct {
	gallery   usecase.GalleryUsecase
	favorites usecase.FavoritesUsecase
	logger    *slog.Logger
}

// NewGalleryHandler is the constructor for GalleryHandler, injected by Fx.
func NewGalleryHandler(gallery usecase.GalleryUsecase, favorites usecase.FavoritesUsecase, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{gallery: gallery, favorites: favorites, logger: logger}
}

// List serves the principal's own listings.
func (h *GalleryHandler) List(c echo.Context) error {
	items, err := h.gallery.List(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Create handles the add-artwork form, image as a multipart file.
func (h *GalleryHandler) Create(c echo.Context) error {
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	input := usecase.CreateArtworkInput{
		Title:       c.FormValue("title"),
		Category:    c.FormValue("category"),
		Medium:      c.FormValue("medium"),
		Description: c.FormValue("description"),
		Dimensions:  c.FormValue("dimensions"),
		Price:       price,
		Visibility:  entity.Visibility(c.FormValue("visibility")),
	}
	if input.Title == "" {
		return response.BindingError(c, "INVALID_INPUT", "Title is required")
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open image upload")
		}
		defer src.Close()
		input.ImageName = file.Filename
		input.Image = src
	}

	art, err := h.gallery.Create(c.Request().Context(), middleware.Principal(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, art, "Artwork added")
}

// Update applies a partial edit to an owned listing.
func (h *GalleryHandler) Update(c echo.Context) error {
	var patch entity.ArtworkPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := h.gallery.Update(c.Request().Context(), middleware.Principal(c), c.Param("id"), patch); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Artwork updated")
}

// Delete removes an owned listing. The confirm query parameter is the
// caller's confirm step.
func (h *GalleryHandler) Delete(c echo.Context) error {
	confirmed := c.QueryParam("confirm") == "true"

	if err := h.gallery.Delete(c.Request().Context(), middleware.Principal(c), c.Param("id"), confirmed); err != nil {
		return errors.WithStack(err)
	}
	if !confirmed {
		return response.Success(c, http.StatusOK, nil, "Delete not confirmed, nothing happened")
	}

	return response.Success(c, http.StatusOK, nil, "Artwork deleted")
}

// Stats serves the personal dashboard numbers.
func (h *GalleryHandler) Stats(c echo.Context) error {
	stats, err := h.gallery.Stats(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Favorites serves the principal's saved listings.
func (h *GalleryHandler) Favorites(c echo.Context) error {
	items, err := h.favorites.List(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// RemoveFavorite drops a saved listing.
func (h *GalleryHandler) RemoveFavorite(c echo.Context) error {
	confirmed := c.QueryParam("confirm") == "true"

	if err := h.favorites.Remove(c.Request().Context(), middleware.Principal(c), c.Param("id"), confirmed); err != nil {
		return errors.WithStack(err)
	}
	if !confirmed {
		return response.Success(c, http.StatusOK, nil, "Remove not confirmed, nothing happened")
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed")
}
