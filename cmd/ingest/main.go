package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"intrinio_sdk/internal/app/di"
	pricesadapters "intrinio_sdk/internal/feature/prices/adapters"
	"intrinio_sdk/internal/feature/prices/domain/entity"
	"intrinio_sdk/internal/platform/cache"
	infradb "intrinio_sdk/internal/platform/db"
	infraredis "intrinio_sdk/internal/platform/redis"
)

func main() {
	track := flag.String("track", "", "comma separated identifiers to add to the tracked list before ingesting")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall deadline for the run")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := infradb.Migrate(db, &pricesadapters.StockPriceModel{}, &entity.TrackedSecurity{}); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	if ids := splitIdentifiers(*track); len(ids) > 0 {
		if err := pricesadapters.NewTrackedSecurityRepository(db).Track(ctx, ids); err != nil {
			slog.Error("failed to track securities", "error", err)
			os.Exit(1)
		}
	}

	api, err := di.NewSecurityAPI()
	if err != nil {
		slog.Error("failed to configure Intrinio client", "error", err)
		os.Exit(1)
	}

	uc, err := di.NewIngestUsecase(api, db, di.IngestOptions{
		RateLimit:    envInt("INGEST_RATE_LIMIT", 2),
		RateInterval: envDuration("INGEST_RATE_INTERVAL", time.Second),
		PageSize:     int32(envInt("INGEST_PAGE_SIZE", 100)),
		Lookback:     envDuration("INGEST_LOOKBACK", 0),
		MaxRetries:   uint64(envInt("INGEST_MAX_RETRIES", 0)),
	})
	if err != nil {
		slog.Error("failed to build ingest usecase", "error", err)
		os.Exit(1)
	}

	res, err := uc.IngestAll(ctx)
	if err != nil {
		slog.Error("ingest aborted", "error", err, "securities", res.Securities, "failed", res.Failed)
		os.Exit(1)
	}
	slog.Info("ingest ok", "securities", res.Securities, "failed", res.Failed, "rows", res.Rows)

	// 取り込み後はキャッシュを破棄して古い応答を返さないようにする
	rdb, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfigFromEnv())
	if err != nil {
		slog.Info("skipping cache purge", "reason", err)
		return
	}
	defer rdb.Close()
	if err := cache.NewCachingSecurityRepository(rdb, 0, nil, "securities").Purge(ctx); err != nil {
		slog.Warn("cache purge failed", "error", err)
	}
}

func splitIdentifiers(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
