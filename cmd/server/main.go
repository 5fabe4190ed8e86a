package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/pixbox/internal/adapter/handler"
	adapterstorage "github.com/marcos-nsantos/pixbox/internal/adapter/storage"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/config"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/observability"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/server"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/storage"
	"github.com/marcos-nsantos/pixbox/internal/infrastructure/transform"
	"github.com/marcos-nsantos/pixbox/internal/usecase/imagestore"
)

// grpcEnvelope is the headroom above the image limit for message framing.
const grpcEnvelope = 1 << 16

//	@title			pixbox API
//	@version		1.0
//	@description	HTTP mirror of the pixbox image storage service.
//	@BasePath		/api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry, err := transform.NewRegistry(cfg.Transform.Names...)
	if err != nil {
		logger.Fatal("failed to build transform registry", zap.Error(err))
	}

	artifactStorage, err := newArtifactStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create artifact storage", zap.Error(err))
	}

	// Use cases
	imageSvc := imagestore.NewService(
		transform.NewSelector(registry, transform.DefaultSource),
		storage.NewImageCodec(),
		artifactStorage,
		logger,
	)

	// gRPC
	grpcSrv := server.NewGRPCServer(server.GRPCServerConfig{
		Addr:                   cfg.Server.GRPCAddr(),
		MaxMsgSize:             cfg.Storage.MaxImageBytes + grpcEnvelope,
		MaxConcurrentDownloads: cfg.Limit.MaxConcurrentDownloads,
		Service:                handler.NewStorageServer(imageSvc),
		Logger:                 logger,
	})

	// HTTP mirror
	var httpSrv *server.Server
	if cfg.Server.HTTPEnabled() {
		router := server.NewRouter(server.RouterConfig{
			ImageHandler: handler.NewImageHandler(imageSvc, int64(cfg.Storage.MaxImageBytes)),
			Logger:       logger,
			Environment:  cfg.Server.Environment,
		})
		httpSrv = server.NewServer(server.ServerConfig{
			Port:         cfg.Server.HTTPPort,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			Handler:      router.Engine(),
			Logger:       logger,
		})
	}

	logger.Info("pixbox ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.Strings("transforms", imageSvc.Transforms()),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(grpcSrv.Start)
	if httpSrv != nil {
		g.Go(httpSrv.Start)
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		if httpSrv != nil {
			errs = append(errs, httpSrv.Shutdown(shutdownCtx))
		}
		errs = append(errs, grpcSrv.Shutdown(shutdownCtx))
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newArtifactStorage(ctx context.Context, cfg *config.Config) (adapterstorage.ArtifactStorage, error) {
	switch cfg.Storage.Backend {
	case config.BackendS3:
		s3Storage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			return nil, err
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return s3Storage, nil
	default:
		localStorage, err := storage.NewLocalStorage(cfg.Storage.EditedRoot)
		if err != nil {
			return nil, err
		}
		return localStorage, nil
	}
}
