// Command token はファサード API 用の JWT を発行します。
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	jwtmw "intrinio_sdk/internal/platform/jwt"
)

func main() {
	subject := flag.String("subject", "", "client name stored in the sub claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	token, err := jwtmw.NewGenerator(secret, *ttl).GenerateToken(*subject)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
