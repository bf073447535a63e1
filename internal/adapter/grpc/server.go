package grpc

import (
	"errors"
	"net"

	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/Jiayao2006/AIVest/internal/domain"
)

// Health service names reported alongside the overall ("") status
const (
	ServiceClients         = "aivest.Clients"
	ServiceRecommendations = "aivest.Recommendations"
)

// Server exposes the read RPCs, health checking and reflection for the API process
type Server struct {
	GRPC   *grpclib.Server
	Health *health.Server

	logger   *zap.Logger
	services []string
}

// NewServer creates a new gRPC server instance.
// Every service starts NOT_SERVING until SetServing(true) is called.
func NewServer(logger *zap.Logger, services Services) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(LoggingInterceptor(logger)),
		grpclib.ChainStreamInterceptor(StreamLoggingInterceptor(logger)),
	)

	api := &apiServer{clients: services.Clients, recommendations: services.Recommendations}
	if services.Clients != nil {
		grpcServer.RegisterService(&clientsServiceDesc, api)
	}
	if services.Recommendations != nil {
		grpcServer.RegisterService(&recommendationsServiceDesc, api)
	}

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	s := &Server{
		GRPC:     grpcServer,
		Health:   healthServer,
		logger:   logger,
		services: []string{"", ServiceClients, ServiceRecommendations},
	}
	s.SetServing(false)
	return s
}

// SetServing flips every registered health service between SERVING and NOT_SERVING
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	for _, svc := range s.services {
		s.Health.SetServingStatus(svc, st)
	}
}

// Serve blocks until the listener fails or the server is stopped
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server listening", zap.String("addr", lis.Addr().String()))
	if err := s.GRPC.Serve(lis); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
		return err
	}
	return nil
}

// GracefulStop marks the server as not serving and drains in-flight calls
func (s *Server) GracefulStop() {
	s.Health.Shutdown()
	s.GRPC.GracefulStop()
	s.logger.Info("gRPC server stopped")
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidQuery),
		errors.Is(err, domain.ErrInvalidAction):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrPortfolioNotFound),
		errors.Is(err, domain.ErrRecommendationNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		return status.Errorf(codes.AlreadyExists, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
