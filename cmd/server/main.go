package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/priyatech/agency-api/internal/api"
	"github.com/priyatech/agency-api/internal/core/domain"
	"github.com/priyatech/agency-api/internal/core/ports"
	"github.com/priyatech/agency-api/internal/core/service"
	"github.com/priyatech/agency-api/internal/infrastructure/config"
	mongodb "github.com/priyatech/agency-api/internal/infrastructure/db/mongo"
	redisdb "github.com/priyatech/agency-api/internal/infrastructure/db/redis"
	"github.com/priyatech/agency-api/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{Level: os.Getenv("LOG_LEVEL"), Pretty: os.Getenv("ENV") == "development"})
	cfg := config.Load(log)

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	if err := ensureIndexes(ctx,
		userRepo,
		mongodb.NewRequestRepository(db),
		mongodb.NewProjectRepository(db),
		mongodb.NewMessageRepository(db),
	); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	seedAdmin(ctx, userRepo, cfg, log)

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureIndexes(ctx context.Context, repos ...indexEnsurer) error {
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

// seedAdmin bootstraps the first admin account from SEED_ADMIN_* variables
// so a fresh deployment has someone who can approve requests. Skipped when
// no seed email is configured or the account already exists.
func seedAdmin(ctx context.Context, users ports.UserRepository, cfg *config.Config, log zerolog.Logger) {
	if cfg.Seed.Email == "" {
		return
	}

	auth := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	_, _, err := auth.Register(ctx, ports.RegisterInput{
		Name:     cfg.Seed.Name,
		Email:    cfg.Seed.Email,
		Password: cfg.Seed.Password,
		Role:     "admin",
	})
	switch {
	case err == nil:
		log.Info().Str("email", cfg.Seed.Email).Msg("seed admin created")
	case errors.Is(err, domain.ErrUserExists):
		log.Debug().Str("email", cfg.Seed.Email).Msg("seed admin already exists")
	default:
		log.Warn().Err(err).Msg("seed admin creation failed")
	}
}
