package intrinio

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_FollowsNextPage(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"":   `{"stock_prices":[{"date":"2024-01-03","close":3},{"date":"2024-01-02","close":2}],"next_page":"p2"}`,
		"p2": `{"stock_prices":[{"date":"2024-01-01","close":1}],"next_page":null}`,
	}
	api, hits := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Query().Get("next_page")]
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, body)
	})

	var closes []float64
	err := Paginate(context.Background(),
		func(ctx context.Context, next *string) (*APIResponse[ApiResponseSecurityStockPrices], error) {
			return api.GetSecurityStockPricesWithHTTPInfo(ctx, "AAPL", &GetSecurityStockPricesParams{NextPage: next})
		},
		func(page ApiResponseSecurityStockPrices) error {
			for _, p := range page.StockPrices {
				closes = append(closes, *p.Close)
			}
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2, 1}, closes)
	assert.EqualValues(t, 2, hits.Load())
}

func TestPaginate_StopEarly(t *testing.T) {
	t.Parallel()

	api, hits := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"securities":[],"next_page":"p`+r.URL.Query().Get("next_page")+`x"}`)
	})

	calls := 0
	err := Paginate(context.Background(),
		func(ctx context.Context, next *string) (*APIResponse[ApiResponseSecurities], error) {
			return api.GetAllSecuritiesWithHTTPInfo(ctx, &GetAllSecuritiesParams{NextPage: next})
		},
		func(ApiResponseSecurities) error {
			calls++
			if calls == 3 {
				return ErrStopPagination
			}
			return nil
		})
	require.NoError(t, err)
	assert.EqualValues(t, 3, hits.Load())
	assert.Equal(t, 3, calls)
}

func TestPaginate_StopsOnRepeatedCursor(t *testing.T) {
	t.Parallel()

	api, hits := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"securities":[],"next_page":"same"}`)
	})

	err := Paginate(context.Background(),
		func(ctx context.Context, next *string) (*APIResponse[ApiResponseSecurities], error) {
			return api.GetAllSecuritiesWithHTTPInfo(ctx, &GetAllSecuritiesParams{NextPage: next})
		},
		func(ApiResponseSecurities) error { return nil })
	require.NoError(t, err)
	assert.EqualValues(t, 2, hits.Load())
}

func TestPaginate_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := Paginate(context.Background(),
		func(ctx context.Context, next *string) (*APIResponse[ApiResponseSecurities], error) {
			return nil, boom
		},
		func(ApiResponseSecurities) error { return nil })
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Paginate(ctx,
		func(ctx context.Context, next *string) (*APIResponse[ApiResponseSecurities], error) {
			t.Fatal("fetch must not run on a cancelled context")
			return nil, nil
		},
		func(ApiResponseSecurities) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNextPageToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", NextPageToken([]byte(`{"next_page":"abc"}`)))
	assert.Empty(t, NextPageToken([]byte(`{"next_page":null}`)))
	assert.Empty(t, NextPageToken([]byte(`{"next_page":""}`)))
	assert.Empty(t, NextPageToken([]byte(`{"data":[]}`)))
	assert.Empty(t, NextPageToken([]byte(`[]`)))
}
