package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor returns a gRPC unary server interceptor that logs every call
// with its method, status code and duration.
// Plain errors returned by handlers are converted to status errors via mapError.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		err = mapError(err)

		logCall(logger, info.FullMethod, err, time.Since(start))
		return resp, err
	}
}

// StreamLoggingInterceptor is the streaming counterpart of LoggingInterceptor
func StreamLoggingInterceptor(logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		start := time.Now()
		err := mapError(handler(srv, ss))

		logCall(logger, info.FullMethod, err, time.Since(start))
		return err
	}
}

func logCall(logger *zap.Logger, method string, err error, elapsed time.Duration) {
	code := status.Code(err)
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("code", code.String()),
		zap.Duration("duration", elapsed),
	}

	switch code {
	case codes.OK:
		logger.Debug("grpc call", fields...)
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		logger.Error("grpc call failed", append(fields, zap.Error(err))...)
	default:
		logger.Info("grpc call rejected", append(fields, zap.Error(err))...)
	}
}
