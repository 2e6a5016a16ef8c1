package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/surveybasket/api/internal/adapters/handler/http"
	"github.com/surveybasket/api/internal/adapters/repository/postgres"
	"github.com/surveybasket/api/internal/adapters/token/jwt"
	"github.com/surveybasket/api/internal/config"
	"github.com/surveybasket/api/internal/core/services"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	logger := setupLogger(cfg.Env)
	logger.Info("starting server", slog.String("address", cfg.HTTP.Address), slog.String("env", cfg.Env))

	db, err := sql.Open("postgres", cfg.DB.URL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	authRepo := postgres.NewAuthRepository(db)
	pollRepo := postgres.NewPollRepository(db)

	signer := jwt.NewSigner([]byte(cfg.JWT.SigningKey), cfg.JWT.Issuer, cfg.JWT.Audience)

	authSvc := services.NewAuthService(userRepo, authRepo, signer, logger, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	userSvc := services.NewUserService(userRepo, logger)
	pollSvc := services.NewPollService(pollRepo, logger)

	authHandler := http.NewAuthHandler(authSvc, logger)
	userHandler := http.NewUserHandler(userSvc)
	pollHandler := http.NewPollHandler(pollSvc)

	handler := http.NewHandler(authHandler, userHandler, pollHandler, signer)

	server := &stdhttp.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case envLocal:
		fallthrough
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
