package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jiayao2006/AIVest/internal/usecase/analytics"
)

const serviceName = "AIVest Banking API"

// availableEndpoints is reported on unknown /api routes and by the network diagnostic
var availableEndpoints = []string{
	"GET /api/health",
	"GET /api/clients",
	"GET /api/clients/search",
	"GET /api/clients/:id",
	"POST /api/clients",
	"DELETE /api/clients/:id",
	"GET /api/clients/:id/portfolio",
	"GET /api/clients/:id/recommendations",
	"GET /api/recommendations/:id/detail",
	"POST /api/recommendations/:id/action",
	"GET /api/metadata/segments",
	"GET /api/metadata/domiciles",
	"GET /api/metadata/risk-profiles",
	"GET /api/analytics/summary",
	"GET /api/debug/network",
	"GET /api/debug/cors",
	"GET /api/test",
}

type DiagnosticsHandler struct {
	Analytics      *analytics.AnalyticsService
	Env            string
	Version        string
	AllowedOrigins []string
	StartedAt      time.Time
	Now            func() time.Time
	Logger         *zap.Logger
}

func (h *DiagnosticsHandler) Register(r *gin.Engine) {
	r.GET("/api/health", h.health)
	r.GET("/api/test", h.test)

	debug := r.Group("/api/debug")
	debug.GET("/cors", h.cors)
	debug.GET("/network", h.network)
}

func (h *DiagnosticsHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *DiagnosticsHandler) uptime() float64 {
	return h.now().Sub(h.StartedAt).Seconds()
}

func (h *DiagnosticsHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   serviceName,
		"version":   h.Version,
		"timestamp": h.now().UTC(),
		"uptime":    h.uptime(),
	})
}

func (h *DiagnosticsHandler) test(c *gin.Context) {
	userAgent := c.GetHeader("User-Agent")
	if len(userAgent) > 100 {
		userAgent = userAgent[:100]
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"message":   "Backend server is reachable",
		"timestamp": h.now().UTC(),
		"echo": gin.H{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"query":     c.Request.URL.Query(),
			"origin":    c.GetHeader("Origin"),
			"userAgent": userAgent,
		},
	})
}

func (h *DiagnosticsHandler) cors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"message":        "CORS working correctly",
		"originReceived": c.GetHeader("Origin"),
		"allowedOrigins": nonNil(h.AllowedOrigins),
		"timestamp":      h.now().UTC(),
		"corsEnabled":    true,
	})
}

func (h *DiagnosticsHandler) network(c *gin.Context) {
	counts, err := h.Analytics.Counts(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":               "success",
		"message":              "Network connectivity verified",
		"timestamp":            h.now().UTC(),
		"uptime":               h.uptime(),
		"environment":          h.Env,
		"corsOrigins":          nonNil(h.AllowedOrigins),
		"databaseStatus":       "in-memory (operational)",
		"clientsCount":         counts.Clients,
		"recommendationsCount": counts.Recommendations,
		"portfoliosCount":      counts.Portfolios,
		"endpoints":            availableEndpoints,
	})
}
