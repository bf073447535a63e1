package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jiayao2006/AIVest/internal/usecase/recommendation"
)

type RecommendationHandler struct {
	Recommendations *recommendation.RecommendationService
	Metrics         *Metrics
	Logger          *zap.Logger
}

func (h *RecommendationHandler) Register(r *gin.Engine) {
	group := r.Group("/api/recommendations")
	group.GET("/:id/detail", h.getDetail)
	group.POST("/:id/action", h.takeAction)
}

func (h *RecommendationHandler) getDetail(c *gin.Context) {
	rec, err := h.Recommendations.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}
	Ok(c, toRecommendationResponse(rec))
}

func (h *RecommendationHandler) takeAction(c *gin.Context) {
	var req actionRequest
	// An empty body is treated as an empty action and rejected by the service
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		Error(c, http.StatusBadRequest, "Invalid request body", map[string]any{"details": err.Error()})
		return
	}

	result, err := h.Recommendations.TakeAction(c.Request.Context(), c.Param("id"), recommendation.ActionInput{
		Action: req.Action,
		Notes:  req.Notes,
	})
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}

	h.Metrics.recordRecommendationAction(string(result.Recommendation.Status), result.Resolution.String())
	Ok(c, actionResponse{
		Success:        true,
		Recommendation: toRecommendationResponse(result.Recommendation),
	})
}
