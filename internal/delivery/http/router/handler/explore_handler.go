package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"artify/internal/delivery/http/response"
	"artify/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExploreHandler serves the public browsing endpoints.
type ExploreHandler struct {
	uc     usecase.ExploreUsecase
	logger *slog.Logger
}

// NewExploreHandler is the constructor for ExploreHandler, injected by Fx.
func NewExploreHandler(uc usecase.ExploreUsecase, logger *slog.Logger) *ExploreHandler {
	return &ExploreHandler{uc: uc, logger: logger}
}

// Home serves the landing page data: the featured strip and the site-wide
// like count.
func (h *ExploreHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	featured, err := h.uc.Featured(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	likes, err := h.uc.SiteLikes(ctx)
	if err != nil {
		// The statistics strip is decoration; the page still renders.
		h.logger.Warn("Like aggregate unavailable", slog.Any("error", err))
		likes = 0
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"featured":   featured,
		"totalLikes": likes,
	}, "")
}

// Explore serves one page of the public grid.
func (h *ExploreHandler) Explore(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	view, err := h.uc.Browse(c.Request().Context(), usecase.ExploreQuery{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}
