package rest

import (
	"context"
	"net/http"
	"time"

	"spectraSense/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	DimensionPredictive    = "P"
	DimensionEntertainment = "E"
	DimensionInformation   = "I"
)

// DimensionHandler serves the single-endpoint API used by the web client.
// Bodies are unwrapped and errors are reported as {"error": "..."}.
type DimensionHandler struct {
	autoSenseService     AutoSenseService
	autoEntertainService AutoEntertainService
	validator            *validator.Validate
	timeout              time.Duration
}

func NewDimensionHandler(autoSense AutoSenseService, autoEntertain AutoEntertainService, timeout time.Duration) *DimensionHandler {
	return &DimensionHandler{
		autoSenseService:     autoSense,
		autoEntertainService: autoEntertain,
		validator:            validator.New(),
		timeout:              timeout,
	}
}

type DimensionRequest struct {
	Dimension  string `json:"dimension" validate:"required"`
	Key        string `json:"key"`
	MediaInput string `json:"mediaInput"`
}

type dimensionError struct {
	Error string `json:"error"`
}

// POST /dimension
func (h *DimensionHandler) Dispatch(c echo.Context) error {
	var req DimensionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dimensionError{Error: err.Error()})
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dimensionError{Error: "Invalid Choice!"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	switch req.Dimension {
	case DimensionPredictive:
		result, err := h.autoSenseService.PredictAndExplain(ctx, req.Key)
		if err != nil {
			logger.Error("Failed to predict", "type", req.Key, "error", err)
			return c.JSON(statusFor(err), dimensionError{Error: messageFor(err)})
		}
		return c.JSON(http.StatusOK, result)

	case DimensionEntertainment:
		result, err := h.autoEntertainService.Recommend(ctx, req.MediaInput)
		if err != nil {
			logger.Error("Failed to recommend media", "title", req.MediaInput, "error", err)
			return c.JSON(statusFor(err), dimensionError{Error: messageFor(err)})
		}
		return c.JSON(http.StatusOK, result)

	case DimensionInformation:
		return c.JSON(http.StatusNotImplemented, dimensionError{Error: "Information Feature Not Implemented yet."})

	default:
		return c.JSON(http.StatusBadRequest, dimensionError{Error: "Invalid Choice!"})
	}
}
