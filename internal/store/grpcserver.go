package store

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"iot-system/internal/pb"
)

// grpcServer wraps the gRPC server with the same Start/Shutdown lifecycle
// the HTTP server exposes.
type grpcServer struct {
	server *grpc.Server
	port   uint16
	logger *slog.Logger
}

func newGRPCServer(port uint16, svc *grpcService, logger *slog.Logger) *grpcServer {
	server := grpc.NewServer()
	pb.RegisterStoreServer(server, svc)
	reflection.Register(server)

	return &grpcServer{server: server, port: port, logger: logger}
}

func (s *grpcServer) Start() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	s.logger.Info("starting grpc server", "port", s.port)
	return s.server.Serve(lis)
}

func (s *grpcServer) Shutdown(ctx context.Context) error {
	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-ctx.Done():
		s.server.Stop()
		return ctx.Err()
	case <-stopped:
		return nil
	}
}
