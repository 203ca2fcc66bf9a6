package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/scienceol/psat/pkg/middleware/logger"
	"github.com/scienceol/psat/pkg/utils"
	ggrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health-check name of the saturation service.
const ServiceName = "psat.v1.SaturationService"

type Server struct {
	*ggrpc.Server
	health *health.Server
}

func NewServer(ctx context.Context, port int) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	s := newServer()
	utils.SafelyGo(func() {
		logger.Infof(ctx, "gRPC server starting on port %d", port)
		if err := s.Serve(lis); err != nil {
			logger.Errorf(ctx, "gRPC server error: %v", err)
		}
	}, func(err error) {
		logger.Errorf(ctx, "gRPC server panic: %+v", err)
	})
	return s, nil
}

func newServer() *Server {
	gs := ggrpc.NewServer(ggrpc.ChainUnaryInterceptor(UnaryLogInterceptor()))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Server{Server: gs, health: hs}
}

// SetServing flips the health status once the services behind it are built.
func (s *Server) SetServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// GracefulStop marks every service NOT_SERVING before draining.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.Server.GracefulStop()
}
