package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jiayao2006/AIVest/internal/domain"
	"github.com/Jiayao2006/AIVest/internal/usecase/client"
	"github.com/Jiayao2006/AIVest/internal/usecase/portfolio"
	"github.com/Jiayao2006/AIVest/internal/usecase/recommendation"
	"github.com/Jiayao2006/AIVest/internal/usecase/search"
)

type ClientHandler struct {
	Clients         *client.ClientService
	Portfolios      *portfolio.PortfolioService
	Recommendations *recommendation.RecommendationService
	Metrics         *Metrics
	Logger          *zap.Logger
}

func (h *ClientHandler) Register(r *gin.Engine) {
	group := r.Group("/api/clients")
	group.GET("", h.listClients)
	group.GET("/search", h.searchClients)
	group.GET("/:id", h.getClient)
	group.POST("", h.createClient)
	group.DELETE("/:id", h.deleteClient)
	group.GET("/:id/portfolio", h.getPortfolio)
	group.GET("/:id/recommendations", h.listRecommendations)
}

func (h *ClientHandler) listClients(c *gin.Context) {
	clients, err := h.Clients.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}
	Ok(c, toClientResponses(clients))
}

func (h *ClientHandler) searchClients(c *gin.Context) {
	raw := search.RawQuery{
		Text:         c.Query("q"),
		MinAUM:       c.Query("minAUM"),
		MaxAUM:       c.Query("maxAUM"),
		Segments:     queryList(c, "segments"),
		Domiciles:    queryList(c, "domiciles"),
		RiskProfiles: queryList(c, "riskProfiles"),
		SortBy:       c.Query("sortBy"),
		SortOrder:    c.Query("sortOrder"),
	}

	clients, err := h.Clients.Search(c.Request.Context(), raw)
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}
	Ok(c, toClientResponses(clients))
}

func (h *ClientHandler) getClient(c *gin.Context) {
	id := c.Param("id")
	found, err := h.Clients.Get(c.Request.Context(), id)
	if err != nil {
		var meta map[string]any
		if errors.Is(err, domain.ErrClientNotFound) {
			meta = map[string]any{"id": id}
		}
		writeError(c, h.Logger, err, meta)
		return
	}
	Ok(c, toClientResponse(found))
}

func (h *ClientHandler) createClient(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "Invalid data format", map[string]any{"details": err.Error()})
		return
	}

	created, err := h.Clients.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}
	h.Metrics.recordClientCreated()
	Created(c, toClientResponse(created))
}

func (h *ClientHandler) deleteClient(c *gin.Context) {
	deleted, err := h.Clients.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}
	h.Metrics.recordClientDeleted()
	Ok(c, toDeletedClientResponse(deleted))
}

func (h *ClientHandler) getPortfolio(c *gin.Context) {
	p, err := h.Portfolios.GetForClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}
	Ok(c, toPortfolioResponse(p))
}

func (h *ClientHandler) listRecommendations(c *gin.Context) {
	recs, err := h.Recommendations.ListForClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}
	Ok(c, toRecommendationResponses(recs))
}

// queryList accepts both "key=a&key=b" and the bracketed "key[]=a" form
func queryList(c *gin.Context, key string) []string {
	values := c.QueryArray(key)
	return append(values, c.QueryArray(key+"[]")...)
}
