package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jiayao2006/AIVest/internal/domain"
)

// requiredClientFields lists the create-client fields reported on validation failure
var requiredClientFields = []string{"name", "phone", "aum", "domicile", "riskProfile"}

// mapError converts domain errors to an HTTP status, message and extra body fields
func mapError(err error) (int, string, map[string]any) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		if len(vErr.Missing) > 0 {
			return http.StatusBadRequest, "Missing required fields", map[string]any{
				"required": requiredClientFields,
				"missing":  vErr.Missing,
			}
		}
		return http.StatusBadRequest, "Invalid data format", map[string]any{"details": vErr.Error()}
	case errors.Is(err, domain.ErrInvalidQuery):
		return http.StatusBadRequest, "Invalid search parameters", map[string]any{"details": err.Error()}
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, `Invalid action. Must be "approved" or "rejected"`, nil
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "Client not found", nil
	case errors.Is(err, domain.ErrPortfolioNotFound):
		return http.StatusNotFound, "Portfolio not found", nil
	case errors.Is(err, domain.ErrRecommendationNotFound):
		return http.StatusNotFound, "Recommendation not found", nil
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "Resource already exists", nil
	}

	return http.StatusInternalServerError, "Internal server error", nil
}

// writeError maps err and aborts the request; 5xx responses are logged with the cause
func writeError(c *gin.Context, logger *zap.Logger, err error, meta map[string]any) {
	status, message, details := mapError(err)
	for k, v := range meta {
		if details == nil {
			details = make(map[string]any, len(meta))
		}
		details[k] = v
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		if details == nil {
			details = make(map[string]any, 1)
		}
		details["requestId"] = c.GetString(requestIDKey)
	}

	_ = c.Error(err)
	Error(c, status, message, details)
}
