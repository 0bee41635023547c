package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		secret     string
		expiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour},
		{"long expiration", "secret", 24 * time.Hour * 30},
		{"short expiration", "s", time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)
			require.NotNil(t, gen)
			assert.Equal(t, tt.secret, string(gen.secret))
			assert.Equal(t, tt.expiration, gen.expiration)
		})
	}
}

// TestGenerator_GenerateToken は生成されたJWTトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	for _, subject := range []string{"dashboard", "batch-reporter", "analyst@example.com"} {
		subject := subject
		t.Run(subject, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", time.Hour)
			tokenStr, err := gen.GenerateToken(subject)
			require.NoError(t, err)

			var claims jwt.RegisteredClaims
			token, err := jwt.ParseWithClaims(tokenStr, &claims, func(tok *jwt.Token) (interface{}, error) {
				assert.Equal(t, jwt.SigningMethodHS256, tok.Method)
				return []byte("test-secret"), nil
			})
			require.NoError(t, err)
			assert.True(t, token.Valid)
			assert.Equal(t, subject, claims.Subject)
			require.NotNil(t, claims.ExpiresAt)
			require.NotNil(t, claims.IssuedAt)
		})
	}
}

// TestGenerator_GenerateToken_EmptySubject は subject が空の場合にエラーとなることを検証します。
func TestGenerator_GenerateToken_EmptySubject(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator("test-secret", time.Hour).GenerateToken("")
	assert.Error(t, err)
}

// TestGenerator_GenerateToken_Expiration はトークンのexp・iatクレームが正しい時刻範囲内であることを検証します。
func TestGenerator_GenerateToken_Expiration(t *testing.T) {
	t.Parallel()

	expiration := 2 * time.Hour
	gen := NewGenerator("test-secret", expiration)

	before := time.Now().Truncate(time.Second)
	tokenStr, err := gen.GenerateToken("dashboard")
	after := time.Now().Truncate(time.Second).Add(time.Second)
	require.NoError(t, err)

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	exp := claims.ExpiresAt.Unix()
	assert.GreaterOrEqual(t, exp, before.Add(expiration).Unix())
	assert.LessOrEqual(t, exp, after.Add(expiration).Unix())

	iat := claims.IssuedAt.Unix()
	assert.GreaterOrEqual(t, iat, before.Unix())
	assert.LessOrEqual(t, iat, after.Unix())
}
