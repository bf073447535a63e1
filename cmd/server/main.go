package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	grpcadapter "github.com/Jiayao2006/AIVest/internal/adapter/grpc"
	"github.com/Jiayao2006/AIVest/internal/adapter/httpapi"
	"github.com/Jiayao2006/AIVest/internal/adapter/repository/memory"
	"github.com/Jiayao2006/AIVest/internal/config"
	"github.com/Jiayao2006/AIVest/internal/logger"
	"github.com/Jiayao2006/AIVest/internal/usecase/analytics"
	"github.com/Jiayao2006/AIVest/internal/usecase/client"
	"github.com/Jiayao2006/AIVest/internal/usecase/portfolio"
	"github.com/Jiayao2006/AIVest/internal/usecase/recommendation"
	"github.com/Jiayao2006/AIVest/internal/usecase/seeder"
)

const (
	apiVersion             = "1.0.0"
	rateLimiterCleanupTick = time.Minute
)

func main() {
	startedAt := time.Now()

	// 1. Load configuration (.env first, then optional YAML file, then environment)
	_ = godotenv.Load()

	cfgPath := strings.TrimSpace(os.Getenv("AIVEST_CONFIG"))
	envOnly := cfgPath == ""
	if envOnlyRaw := os.Getenv("AIVEST_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log, cfg.App.Env, apiVersion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Initialize Repositories (in-memory)
	clientRepo := memory.NewClientRepository()
	recommendationRepo := memory.NewRecommendationRepository()
	portfolioRepo := memory.NewPortfolioRepository(seeder.SeedPortfolios())

	// 3. Seed the initial dataset
	if err := seeder.NewSeeder(clientRepo, recommendationRepo, log).Seed(ctx); err != nil {
		log.Fatal("failed to seed stores", zap.Error(err))
	}

	// 4. Initialize Services (Use Cases)
	services := httpapi.Services{
		Clients:         client.NewClientService(clientRepo, log, cfg.Clients.StrictRiskProfile),
		Portfolios:      portfolio.NewPortfolioService(portfolioRepo),
		Recommendations: recommendation.NewRecommendationService(clientRepo, recommendationRepo, log),
		Analytics:       analytics.NewAnalyticsService(clientRepo, recommendationRepo, portfolioRepo),
	}

	// 5. Build the HTTP server
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	origins := cfg.CORS.Origins()
	api := httpapi.NewServer(services, httpapi.Options{
		Env:               cfg.App.Env,
		Version:           apiVersion,
		StaticDir:         cfg.Server.StaticDir,
		AllowedOrigins:    origins,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		StartedAt:         startedAt,
	}, log)
	if api.RateLimiter != nil {
		api.RateLimiter.StartCleanup(ctx, rateLimiterCleanupTick)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("http server listening",
			zap.String("addr", httpServer.Addr),
			zap.String("env", cfg.App.Env),
			zap.Strings("allowed_origins", origins),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	// 6. Start the gRPC server (read RPCs + health)
	var grpcServer *grpcadapter.Server
	if cfg.Server.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
		if err != nil {
			// The HTTP server is already running, so fail through the shutdown path below
			errCh <- fmt.Errorf("grpc listen on %s: %w", cfg.Server.GRPCAddr, err)
		} else {
			grpcServer = grpcadapter.NewServer(log, grpcadapter.Services{
				Clients:         services.Clients,
				Recommendations: services.Recommendations,
			})
			grpcServer.SetServing(true)
			go func() {
				if err := grpcServer.Serve(lis); err != nil {
					errCh <- fmt.Errorf("grpc server: %w", err)
				}
			}()
		}
	}

	// 7. Graceful shutdown
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		log.Error("server failed", zap.Error(err))
	}

	if grpcServer != nil {
		grpcServer.SetServing(false)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	log.Info("server stopped", zap.Duration("uptime", time.Since(startedAt)))
}
