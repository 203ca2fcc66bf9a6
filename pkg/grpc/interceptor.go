package grpc

import (
	"context"
	"time"

	"github.com/scienceol/psat/pkg/middleware/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func UnaryLogInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warnf(ctx, "grpc %s code: %s cost: %s err: %v",
				info.FullMethod, status.Code(err), time.Since(start), err)
			return resp, err
		}
		logger.Debugf(ctx, "grpc %s cost: %s", info.FullMethod, time.Since(start))
		return resp, nil
	}
}
