package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/banking_services/internal/apperrors"
	"github.com/SscSPs/banking_services/internal/dto"
	"github.com/SscSPs/banking_services/internal/middleware"
	"github.com/SscSPs/banking_services/internal/utils/validation"
)

const msgInternalError = "Internal Server Error"

// respondError maps err onto its HTTP status and writes the standard error body.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromContext(c)
	_ = c.Error(err)

	status, details := classify(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Error("Request failed", slog.String("error", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(c.Request.URL.Path, details...))
}

func classify(err error) (int, []string) {
	var fieldErrs apperrors.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest, fieldErrs.Details()
	case errors.Is(err, apperrors.ErrMalformedInput):
		return http.StatusBadRequest, []string{apperrors.Message(err)}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, []string{apperrors.Message(err)}
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, []string{apperrors.Message(err)}
	case errors.Is(err, apperrors.ErrUnavailable):
		return http.StatusServiceUnavailable, []string{apperrors.Message(err)}
	default:
		return http.StatusInternalServerError, []string{msgInternalError}
	}
}

// bindJSON decodes and validates the request body. Constraint violations come
// back as apperrors.FieldErrors, anything else as malformed input.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindingError(err, "Malformed JSON request")
	}
	return nil
}

// bindQuery is bindJSON for query parameters.
func bindQuery(c *gin.Context, obj any) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return bindingError(err, "Malformed query parameters")
	}
	return nil
}

func bindingError(err error, message string) error {
	if fieldErrs, ok := validation.FieldErrors(err); ok {
		return fieldErrs
	}
	return apperrors.NewAppError(apperrors.ErrMalformedInput, message, err)
}
