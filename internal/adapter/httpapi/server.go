package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jiayao2006/AIVest/internal/usecase/analytics"
	"github.com/Jiayao2006/AIVest/internal/usecase/client"
	"github.com/Jiayao2006/AIVest/internal/usecase/portfolio"
	"github.com/Jiayao2006/AIVest/internal/usecase/recommendation"
)

// Services are the use cases exposed over HTTP
type Services struct {
	Clients         *client.ClientService
	Portfolios      *portfolio.PortfolioService
	Recommendations *recommendation.RecommendationService
	Analytics       *analytics.AnalyticsService
}

// Options configure the router
type Options struct {
	Env            string
	Version        string
	StaticDir      string // Served only in production
	AllowedOrigins []string

	// RequestsPerSecond <= 0 disables rate limiting
	RequestsPerSecond float64
	Burst             int

	StartedAt time.Time
}

// Server is the assembled gin engine plus the collaborators main needs to manage
type Server struct {
	Engine      *gin.Engine
	Metrics     *Metrics
	RateLimiter *RateLimiter // nil when disabled
}

// NewServer wires middleware and handlers
func NewServer(services Services, opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}
	if opts.StartedAt.IsZero() {
		opts.StartedAt = time.Now()
	}

	metrics := NewMetrics()

	engine := gin.New()
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
		Error(c, http.StatusInternalServerError, "Internal server error", map[string]any{
			"requestId": c.GetString(requestIDKey),
		})
	}))
	engine.Use(RequestIDMiddleware())
	engine.Use(LoggerMiddleware(logger))
	engine.Use(CORSMiddleware(opts.AllowedOrigins))
	engine.Use(metrics.Middleware())

	var limiter *RateLimiter
	if opts.RequestsPerSecond > 0 {
		limiter = NewRateLimiter(opts.RequestsPerSecond, opts.Burst, logger)
		limiter.onReject = metrics.recordRateLimited
		engine.Use(limiter.Middleware())
	}

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	clientHandler := &ClientHandler{
		Clients:         services.Clients,
		Portfolios:      services.Portfolios,
		Recommendations: services.Recommendations,
		Metrics:         metrics,
		Logger:          logger,
	}
	clientHandler.Register(engine)

	recommendationHandler := &RecommendationHandler{
		Recommendations: services.Recommendations,
		Metrics:         metrics,
		Logger:          logger,
	}
	recommendationHandler.Register(engine)

	analyticsHandler := &AnalyticsHandler{Analytics: services.Analytics, Logger: logger}
	analyticsHandler.Register(engine)

	diagnosticsHandler := &DiagnosticsHandler{
		Analytics:      services.Analytics,
		Env:            opts.Env,
		Version:        opts.Version,
		AllowedOrigins: opts.AllowedOrigins,
		StartedAt:      opts.StartedAt,
		Logger:         logger,
	}
	diagnosticsHandler.Register(engine)

	staticDir := ""
	if strings.EqualFold(opts.Env, "production") {
		if staticDirAvailable(opts.StaticDir) {
			staticDir = opts.StaticDir
		} else {
			logger.Warn("static directory not found, frontend will not be served", zap.String("dir", opts.StaticDir))
		}
	}
	engine.NoRoute(fallbackHandler(staticDir))

	return &Server{Engine: engine, Metrics: metrics, RateLimiter: limiter}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.Engine
}
