package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"intrinio_sdk/internal/app/di"
	"intrinio_sdk/internal/app/router"
	securityhandler "intrinio_sdk/internal/feature/securities/transport/handler"
	securityusecase "intrinio_sdk/internal/feature/securities/usecase"
	"intrinio_sdk/internal/platform/http/handler"
	jwtmw "intrinio_sdk/internal/platform/jwt"
	infraredis "intrinio_sdk/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api, err := di.NewSecurityAPI()
	if err != nil {
		slog.Error("failed to configure Intrinio client", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	checks := map[string]handler.Check{}
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfigFromEnv()); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository → Usecase → Handler
	securityRepo := di.NewSecurityRepository(api, rdb)
	securityUC := securityusecase.NewSecurityUsecase(securityRepo)
	securityH := securityhandler.NewSecurityHandler(securityUC)

	r := router.NewRouter(securityH, checks)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	addr := ":" + envOr("PORT", "8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
