package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func runMiddleware(authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	AuthRequired()(c)
	return w, c
}

// TestAuthRequired_MissingBearerToken はBearerトークンがない場合やプレフィックスが不正な場合に401が返されることを検証します。
func TestAuthRequired_MissingBearerToken(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "test-secret")

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth", "Basic dXNlcjpwYXNz"},
		{"bearer lowercase", "bearer token123"},
		{"no space after Bearer", "Bearertoken123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, c := runMiddleware(tt.authHeader)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}

// TestAuthRequired_MissingJWTSecret はJWT_SECRET環境変数が未設定の場合に500が返されることを検証します。
func TestAuthRequired_MissingJWTSecret(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "")

	w, _ := runMiddleware("Bearer sometoken")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// TestAuthRequired_InvalidToken は不正なトークン（改ざん・期限切れ等）で401が返されることを検証します。
func TestAuthRequired_InvalidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-invalid"
	t.Setenv(EnvKeyJWTSecret, testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{"malformed token", "not.a.valid.token"},
		{"random string", "randomstring"},
		{"wrong secret", createToken(t, "wrong-secret", "dashboard", time.Hour)},
		{"expired token", createToken(t, testSecret, "dashboard", -time.Hour)},
		{"empty subject", createToken(t, testSecret, "", time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := runMiddleware("Bearer " + tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

// TestAuthRequired_ValidToken は有効なトークンでリクエストが通過し、コンテキストに subject が設定されることを検証します。
func TestAuthRequired_ValidToken(t *testing.T) {
	const testSecret = "test-secret-key-for-valid"
	t.Setenv(EnvKeyJWTSecret, testSecret)

	token, err := NewGenerator(testSecret, time.Hour).GenerateToken("dashboard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, c := runMiddleware("Bearer " + token)
	if c.IsAborted() {
		t.Fatalf("expected request not to be aborted, response: %s", w.Body.String())
	}
	assert.Equal(t, "dashboard", c.GetString(ContextSubject))
}

// TestAuthRequired_InvalidSigningMethod はnoneアルゴリズム（未署名）のトークンが拒否されることを検証します。
func TestAuthRequired_InvalidSigningMethod(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "test-secret-key-for-signing")

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "dashboard",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tokenStr, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)

	w, _ := runMiddleware("Bearer " + tokenStr)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestAuthRequired_MissingExpiry は exp クレームのないトークンが拒否されることを検証します。
func TestAuthRequired_MissingExpiry(t *testing.T) {
	const testSecret = "test-secret-key-for-exp"
	t.Setenv(EnvKeyJWTSecret, testSecret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "dashboard"})
	tokenStr, _ := token.SignedString([]byte(testSecret))

	w, _ := runMiddleware("Bearer " + tokenStr)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// createToken はテスト用に指定されたシークレットと subject で署名済みJWTトークンを生成します。
func createToken(t *testing.T, secret, subject string, expiration time.Duration) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}
