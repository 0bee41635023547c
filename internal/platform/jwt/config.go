// Package jwtmw は API 利用者向けの JWT 発行と検証を提供します。
package jwtmw

// EnvKeyJWTSecret は署名鍵を保持する環境変数名です。
const EnvKeyJWTSecret = "JWT_SECRET"
