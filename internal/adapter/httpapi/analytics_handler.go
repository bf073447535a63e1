package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jiayao2006/AIVest/internal/usecase/analytics"
)

type AnalyticsHandler struct {
	Analytics *analytics.AnalyticsService
	Logger    *zap.Logger
}

func (h *AnalyticsHandler) Register(r *gin.Engine) {
	metadata := r.Group("/api/metadata")
	metadata.GET("/segments", h.distinct(h.Analytics.Segments))
	metadata.GET("/domiciles", h.distinct(h.Analytics.Domiciles))
	metadata.GET("/risk-profiles", h.distinct(h.Analytics.RiskProfiles))

	r.GET("/api/analytics/summary", h.summary)
}

func (h *AnalyticsHandler) distinct(values func(ctx context.Context) ([]string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := values(c.Request.Context())
		if err != nil {
			writeError(c, h.Logger, err, nil)
			return
		}
		Ok(c, out)
	}
}

func (h *AnalyticsHandler) summary(c *gin.Context) {
	s, err := h.Analytics.Summary(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}
	Ok(c, toSummaryResponse(s))
}
