// Package router はファサード API のルーティングを定義します。
package router

import (
	"github.com/gin-gonic/gin"

	securityhandler "intrinio_sdk/internal/feature/securities/transport/handler"
	"intrinio_sdk/internal/platform/http/handler"
	jwtmw "intrinio_sdk/internal/platform/jwt"
)

func NewRouter(securities *securityhandler.SecurityHandler, checks map[string]handler.Check) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// 依存先（Redis など）の疎通確認
	r.GET("/readyz", handler.Readiness(checks))

	// 認証必須のルート
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/securities")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/search", securities.Search)
		auth.GET("/:identifier", securities.GetSecurity)
		auth.GET("/:identifier/prices/intraday", securities.IntradayPrices)
	}

	return r
}
