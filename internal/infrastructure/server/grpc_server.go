package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/marcos-nsantos/pixbox/internal/adapter/rpc/pixbox"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/middleware"
)

// GRPCServer hosts the pixbox.Storage service.
type GRPCServer struct {
	server  *grpc.Server
	addr    string
	limiter *middleware.ConcurrencyLimiter
	logger  *zap.Logger
}

type GRPCServerConfig struct {
	Addr                   string
	MaxMsgSize             int
	MaxConcurrentDownloads int
	Service                pixbox.StorageServer
	Logger                 *zap.Logger
}

func NewGRPCServer(cfg GRPCServerConfig) *GRPCServer {
	limiter := middleware.NewConcurrencyLimiter(cfg.MaxConcurrentDownloads, pixbox.Storage_Download_FullMethodName)

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			middleware.UnaryRecovery(cfg.Logger),
			middleware.UnaryRequestID(),
			middleware.UnaryLogger(cfg.Logger),
			limiter.UnaryServerInterceptor(),
		),
	}
	if cfg.MaxMsgSize > 0 {
		opts = append(opts,
			grpc.MaxRecvMsgSize(cfg.MaxMsgSize),
			grpc.MaxSendMsgSize(cfg.MaxMsgSize),
		)
	}

	srv := grpc.NewServer(opts...)
	pixbox.RegisterStorageServer(srv, cfg.Service)

	return &GRPCServer{
		server:  srv,
		addr:    cfg.Addr,
		limiter: limiter,
		logger:  cfg.Logger,
	}
}

func (s *GRPCServer) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return s.Serve(lis)
}

func (s *GRPCServer) Serve(lis net.Listener) error {
	s.logger.Info("starting grpc server",
		zap.String("addr", lis.Addr().String()),
		zap.Int("max_concurrent_downloads", s.limiter.Limit()),
	)
	if err := s.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc server error: %w", err)
	}
	return nil
}

// Shutdown drains in-flight calls, forcing a stop when ctx ends first.
func (s *GRPCServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down grpc server")

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		s.logger.Warn("graceful stop timed out, forcing stop")
		s.server.Stop()
		<-stopped
		return ctx.Err()
	}
}
