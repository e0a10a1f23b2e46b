// Package store persists classified records and exposes them over REST,
// gRPC, and a websocket notification stream.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"iot-system/internal/config"
)

const migrationsDir = "migrations"

// Service owns the database connection and the HTTP and gRPC servers
// built on top of it.
type Service struct {
	cfg    config.StoreConfig
	logger *slog.Logger

	db         *gorm.DB
	httpServer *httpServer
	grpcServer *grpcServer
}

func NewService(cfg config.StoreConfig, logger *slog.Logger) (*Service, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := runMigrations(sqlDB, migrationsDir); err != nil {
		return nil, err
	}

	repo := newRepository(db)
	subs := newSubscribers()
	svc := newService(repo, subs, logger)

	api := newHTTPAPI(svc, subs)

	return &Service{
		cfg:        cfg,
		logger:     logger,
		db:         db,
		httpServer: newHTTPServer(cfg.Server.Port, api, logger),
		grpcServer: newGRPCServer(cfg.Grpc.Port, newGRPCService(svc), logger),
	}, nil
}

// Run starts both servers and blocks until both have returned, then
// reports the first error either one returned. A failure of one server
// does not stop the other.
func (s *Service) Run() error {
	var g errgroup.Group
	g.Go(s.httpServer.Start)
	g.Go(s.grpcServer.Start)
	return g.Wait()
}

func (s *Service) Shutdown(ctx context.Context) error {
	httpErr := s.httpServer.Shutdown(ctx)
	grpcErr := s.grpcServer.Shutdown(ctx)
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	dbErr := sqlDB.Close()

	if httpErr != nil {
		return httpErr
	}
	if grpcErr != nil {
		return grpcErr
	}
	return dbErr
}
