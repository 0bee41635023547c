package intrinio

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody_Scalars(t *testing.T) {
	t.Parallel()

	var s string
	require.NoError(t, decodeBody([]byte(`"quoted"`), "application/json", &s))
	assert.Equal(t, "quoted", s)

	require.NoError(t, decodeBody([]byte(`"kept as is"`), "text/plain", &s))
	assert.Equal(t, `"kept as is"`, s)

	var d decimal.Decimal
	require.NoError(t, decodeBody([]byte(" 12.50\n"), "text/plain", &d))
	assert.Equal(t, "12.5", d.String())

	require.NoError(t, decodeBody([]byte(`"0.000000000000000001"`), "application/json", &d))
	assert.Equal(t, "0.000000000000000001", d.String())

	assert.Error(t, decodeBody([]byte("n/a"), "text/plain", &d))
	assert.Error(t, decodeBody(nil, "text/plain", &d))
}

func TestDecodeBody_JSON(t *testing.T) {
	t.Parallel()

	var sec Security
	require.NoError(t, decodeBody(nil, "application/json", &sec))
	assert.Empty(t, sec.ID)

	require.NoError(t, decodeBody([]byte(`{"id":"x","etf":false}`), "application/json; charset=utf-8", &sec))
	assert.Equal(t, "x", sec.ID)
	require.NotNil(t, sec.ETF)
	assert.False(t, *sec.ETF)
}
