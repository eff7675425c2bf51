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

type AutoSenseService interface {
	PredictAndExplain(ctx context.Context, predictiveType string) (domain.PredictionResult, error)
}

type AutoSenseHandler struct {
	autoSenseService AutoSenseService
	validator        *validator.Validate
	timeout          time.Duration
}

func NewAutoSenseHandler(autoSenseService AutoSenseService, timeout time.Duration) *AutoSenseHandler {
	return &AutoSenseHandler{
		autoSenseService: autoSenseService,
		validator:        validator.New(),
		timeout:          timeout,
	}
}

type PredictRequest struct {
	Type string `param:"type" validate:"required"`
}

// GET /api/v1/predictions/:type
func (h *AutoSenseHandler) Predict(c echo.Context) error {
	var req PredictRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate predict request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.autoSenseService.PredictAndExplain(ctx, req.Type)
	if err != nil {
		logger.Error("Failed to predict", "type", req.Type, "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: messageFor(err)})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
