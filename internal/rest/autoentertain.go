package rest

import (
	"context"
	"net/http"
	"time"

	"spectraSense/domain"
	"spectraSense/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AutoEntertainService interface {
	GetMedia(ctx context.Context, genre string) ([]domain.Media, error)
	Recommend(ctx context.Context, title string) (domain.SimilarityResult, error)
}

type AutoEntertainHandler struct {
	autoEntertainService AutoEntertainService
	validator            *validator.Validate
	timeout              time.Duration
}

func NewAutoEntertainHandler(autoEntertainService AutoEntertainService, timeout time.Duration) *AutoEntertainHandler {
	return &AutoEntertainHandler{
		autoEntertainService: autoEntertainService,
		validator:            validator.New(),
		timeout:              timeout,
	}
}

type RecommendQuery struct {
	Title string `query:"title" validate:"required"`
}

type MediaQuery struct {
	Genre string `query:"genre" validate:"required"`
}

// GET /api/v1/recommendations?title=Heat
func (h *AutoEntertainHandler) Recommend(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.autoEntertainService.Recommend(ctx, q.Title)
	if err != nil {
		logger.Error("Failed to recommend media", "title", q.Title, "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: messageFor(err)})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// GET /api/v1/media?genre=Drama
func (h *AutoEntertainHandler) GetMedia(c echo.Context) error {
	var q MediaQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	media, err := h.autoEntertainService.GetMedia(ctx, q.Genre)
	if err != nil {
		logger.Error("Failed to get media", "genre", q.Genre, "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: messageFor(err)})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(media))
}
