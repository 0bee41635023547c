// Package db は gorm の接続を生成します。本番は PostgreSQL（pgx）、開発とテストは SQLite を使います。
package db

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultConnectTimeout = 60 * time.Second
)

// Config はデータベース接続設定です。
type Config struct {
	Driver   string
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SSLMode  string

	// SQLitePath は Driver が sqlite のときのファイルパスです（":memory:" も可）。
	SQLitePath string
	// ConnectTimeout は接続リトライを諦めるまでの時間です。
	ConnectTimeout time.Duration
}

// LoadConfigFromEnv は DB_* 環境変数から設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:     os.Getenv("DB_DRIVER"),
		User:       os.Getenv("DB_USER"),
		Password:   os.Getenv("DB_PASSWORD"),
		Name:       os.Getenv("DB_NAME"),
		Host:       os.Getenv("DB_HOST"),
		Port:       os.Getenv("DB_PORT"),
		SSLMode:    os.Getenv("DB_SSLMODE"),
		SQLitePath: os.Getenv("DB_SQLITE_PATH"),
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if v := os.Getenv("DB_CONNECT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ConnectTimeout = d
		}
	}
	return cfg
}

// BuildDSN は PostgreSQL 用の接続 URL を生成します。
func BuildDSN(cfg Config) string {
	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, port),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslmode}}.Encode(),
	}
	return u.String()
}

// Opener は DSN から gorm.DB を開く関数です。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は timeout まで指数バックオフで接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = timeout

	var db *gorm.DB
	err := backoff.RetryNotify(func() error {
		var err error
		db, err = open(dsn)
		return err
	}, b, func(err error, wait time.Duration) {
		slog.Warn("DB connect failed, retrying", "error", err, "wait", wait)
	})
	if err != nil {
		return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
	}
	return db, nil
}

// OpenDB は cfg.Driver に応じて接続します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	switch cfg.Driver {
	case DriverSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = "file::memory:?cache=shared"
		}
		return ConnectWithRetry(path, timeout, openSQLite)
	case DriverPostgres, "":
		return ConnectWithRetry(BuildDSN(cfg), timeout, openPostgres)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func openSQLite(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// openPostgres は pgx の database/sql ドライバーを gorm に渡します。
func openPostgres(dsn string) (*gorm.DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("invalid DSN: %w", err))
	}
	sqlDB := stdlib.OpenDB(*connCfg)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
}

// Migrate は models のテーブルを作成・更新します。
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
