package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		resp := toErrorResponse(err)
		if resp.Code >= http.StatusInternalServerError {
			logger.Error("request failed", "method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		}

		if writeErr := ctx.JSON(resp.Code, resp); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

func toErrorResponse(err error) errorResponse {
	var (
		validationErr *gomoku.ValidationError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.Is(err, apperror.ErrNameRequired):
		return badRequest("Name is required")
	case errors.Is(err, apperror.ErrInvalidDifficulty):
		return badRequest(err.Error())
	case errors.As(err, &validationErr):
		return badRequest(validationErr.Error())
	case errors.Is(err, apperror.ErrGameNotFound):
		return errorResponse{Code: http.StatusNotFound, Message: "Not found: game not found"}
	case errors.As(err, &httpErr):
		return errorResponse{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
	default:
		return errorResponse{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
	}
}

func badRequest(message string) errorResponse {
	return errorResponse{Code: http.StatusBadRequest, Message: "Bad request: " + message}
}
