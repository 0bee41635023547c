// Package redis はキャッシュ用の Redis クライアントを生成します。
package redis

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config は Redis 接続設定です。
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr は host:port 形式のアドレスを返します。
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// LoadConfigFromEnv は REDIS_* 環境変数から設定を読み込みます。
func LoadConfigFromEnv() Config {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return Config{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     os.Getenv("REDIS_PORT"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
}

// NewRedisClient は接続確認済みのクライアントを返します。
// REDIS_HOST が未設定の場合は nil クライアントとエラーを返し、呼び出し側はキャッシュなしで動作します。
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 接続確認
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.Addr(), "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.Addr())
	return rdb, nil
}
