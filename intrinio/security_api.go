package intrinio

import (
	"context"
	"net/http"

	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// SecurityAPI groups the /securities endpoints.
//
// Every endpoint X comes as X, which returns the decoded model, and
// XWithHTTPInfo, which also returns status, headers and the raw body. Both run
// through the same request builder; wrap either in Async for a Future.
type SecurityAPI struct {
	client *APIClient
}

// NewSecurityAPI binds the Security API to client.
func NewSecurityAPI(client *APIClient) *SecurityAPI {
	return &SecurityAPI{client: client}
}

// GetAllSecuritiesParams holds the optional parameters of GetAllSecurities.
type GetAllSecuritiesParams struct {
	Active            *bool
	Delisted          *bool
	Code              *string
	Currency          *string
	Ticker            *string
	Name              *string
	CompositeMIC      *string
	ExchangeMIC       *string
	StockPricesAfter  *types.Date
	StockPricesBefore *types.Date
	CIK               *string
	FIGI              *string
	CompositeFIGI     *string
	ShareClassFIGI    *string
	FIGIUniqueID      *string
	IncludeNonFIGI    *bool
	PageSize          *int32
	PrimaryListing    *bool
	NextPage          *string
}

// GetAllSecuritiesWithHTTPInfo lists securities matching the given filters.
func (a *SecurityAPI) GetAllSecuritiesWithHTTPInfo(ctx context.Context, params *GetAllSecuritiesParams) (*APIResponse[ApiResponseSecurities], error) {
	r := newRequest("GetAllSecurities", http.MethodGet, "/securities")
	if p := params; p != nil {
		setQuery(r, "active", p.Active)
		setQuery(r, "delisted", p.Delisted)
		setQuery(r, "code", p.Code)
		setQuery(r, "currency", p.Currency)
		setQuery(r, "ticker", p.Ticker)
		setQuery(r, "name", p.Name)
		setQuery(r, "composite_mic", p.CompositeMIC)
		setQuery(r, "exchange_mic", p.ExchangeMIC)
		setQuery(r, "stock_prices_after", p.StockPricesAfter)
		setQuery(r, "stock_prices_before", p.StockPricesBefore)
		setQuery(r, "cik", p.CIK)
		setQuery(r, "figi", p.FIGI)
		setQuery(r, "composite_figi", p.CompositeFIGI)
		setQuery(r, "share_class_figi", p.ShareClassFIGI)
		setQuery(r, "figi_unique_id", p.FIGIUniqueID)
		setQuery(r, "include_non_figi", p.IncludeNonFIGI)
		setQuery(r, "page_size", p.PageSize)
		setQuery(r, "primary_listing", p.PrimaryListing)
		setQuery(r, "next_page", p.NextPage)
	}
	return invoke[ApiResponseSecurities](ctx, a.client, r)
}

// GetAllSecurities lists securities matching the given filters.
func (a *SecurityAPI) GetAllSecurities(ctx context.Context, params *GetAllSecuritiesParams) (*ApiResponseSecurities, error) {
	return dataOf(a.GetAllSecuritiesWithHTTPInfo(ctx, params))
}

// GetSecurityByIDWithHTTPInfo looks a security up by ticker, FIGI or Intrinio ID.
func (a *SecurityAPI) GetSecurityByIDWithHTTPInfo(ctx context.Context, identifier string) (*APIResponse[Security], error) {
	r := newRequest("GetSecurityByID", http.MethodGet, "/securities/{identifier}").
		pathParam("identifier", identifier)
	return invoke[Security](ctx, a.client, r)
}

// GetSecurityByID looks a security up by ticker, FIGI or Intrinio ID.
func (a *SecurityAPI) GetSecurityByID(ctx context.Context, identifier string) (*Security, error) {
	return dataOf(a.GetSecurityByIDWithHTTPInfo(ctx, identifier))
}

// GetSecurityDataPointNumberWithHTTPInfo returns the latest numeric value of tag.
// The server answers with a bare number; RawBody keeps its exact text.
func (a *SecurityAPI) GetSecurityDataPointNumberWithHTTPInfo(ctx context.Context, identifier, tag string) (*APIResponse[decimal.Decimal], error) {
	r := newRequest("GetSecurityDataPointNumber", http.MethodGet, "/securities/{identifier}/data_point/{tag}/number").
		pathParam("identifier", identifier).
		pathParam("tag", tag).
		acceptText()
	return invoke[decimal.Decimal](ctx, a.client, r)
}

// GetSecurityDataPointNumber returns the latest numeric value of tag.
func (a *SecurityAPI) GetSecurityDataPointNumber(ctx context.Context, identifier, tag string) (decimal.Decimal, error) {
	return valueOf(a.GetSecurityDataPointNumberWithHTTPInfo(ctx, identifier, tag))
}

// GetSecurityDataPointTextWithHTTPInfo returns the latest text value of tag.
func (a *SecurityAPI) GetSecurityDataPointTextWithHTTPInfo(ctx context.Context, identifier, tag string) (*APIResponse[string], error) {
	r := newRequest("GetSecurityDataPointText", http.MethodGet, "/securities/{identifier}/data_point/{tag}/text").
		pathParam("identifier", identifier).
		pathParam("tag", tag).
		acceptText()
	return invoke[string](ctx, a.client, r)
}

// GetSecurityDataPointText returns the latest text value of tag, as sent.
func (a *SecurityAPI) GetSecurityDataPointText(ctx context.Context, identifier, tag string) (string, error) {
	return valueOf(a.GetSecurityDataPointTextWithHTTPInfo(ctx, identifier, tag))
}

// GetSecurityHistoricalDataParams holds the optional parameters of GetSecurityHistoricalData.
type GetSecurityHistoricalDataParams struct {
	Frequency *string
	Type      *string
	StartDate *types.Date
	EndDate   *types.Date
	SortOrder *string
	PageSize  *int32
	NextPage  *string
}

// GetSecurityHistoricalDataWithHTTPInfo returns the history of a data tag, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityHistoricalDataWithHTTPInfo(ctx context.Context, identifier, tag string, params *GetSecurityHistoricalDataParams) (*APIResponse[ApiResponseSecurityHistoricalData], error) {
	r := newRequest("GetSecurityHistoricalData", http.MethodGet, "/securities/{identifier}/historical_data/{tag}").
		pathParam("identifier", identifier).
		pathParam("tag", tag)
	if p := params; p != nil {
		setQuery(r, "frequency", p.Frequency)
		setQuery(r, "type", p.Type)
		setQuery(r, "start_date", p.StartDate)
		setQuery(r, "end_date", p.EndDate)
		setQuery(r, "sort_order", p.SortOrder)
		setQuery(r, "page_size", p.PageSize)
		setQuery(r, "next_page", p.NextPage)
	}
	return invoke[ApiResponseSecurityHistoricalData](ctx, a.client, r)
}

// GetSecurityHistoricalData returns the history of a data tag.
func (a *SecurityAPI) GetSecurityHistoricalData(ctx context.Context, identifier, tag string, params *GetSecurityHistoricalDataParams) (*ApiResponseSecurityHistoricalData, error) {
	return dataOf(a.GetSecurityHistoricalDataWithHTTPInfo(ctx, identifier, tag, params))
}

// GetSecurityIntervalPricesParams carries the optional filters of the interval
// bars endpoint. StartTime and EndTime are "hh:mm" and are checked when given
// together with their date.
type GetSecurityIntervalPricesParams struct {
	Source               *string
	StartDate            *types.Date
	StartTime            *string
	EndDate              *types.Date
	EndTime              *string
	Timezone             *string
	PageSize             *int32
	SplitAdjusted        *bool
	IncludeQuoteOnlyBars *bool
	NextPage             *string
}

// GetSecurityIntervalPricesWithHTTPInfo returns OHLCV bars of intervalSize
// (e.g. "1m", "5m", "60m", "1h").
func (a *SecurityAPI) GetSecurityIntervalPricesWithHTTPInfo(ctx context.Context, identifier, intervalSize string, params *GetSecurityIntervalPricesParams) (*APIResponse[ApiResponseSecurityIntervalPrices], error) {
	r := newRequest("GetSecurityIntervalPrices", http.MethodGet, "/securities/{identifier}/prices/intervals").
		pathParam("identifier", identifier).
		requiredQuery("interval_size", intervalSize)
	if p := params; p != nil {
		setQuery(r, "source", p.Source)
		setDateTime(r, "start_date", "start_time", p.StartDate, p.StartTime)
		setDateTime(r, "end_date", "end_time", p.EndDate, p.EndTime)
		setQuery(r, "timezone", p.Timezone)
		setQuery(r, "page_size", p.PageSize)
		setQuery(r, "split_adjusted", p.SplitAdjusted)
		setQuery(r, "include_quote_only_bars", p.IncludeQuoteOnlyBars)
		setQuery(r, "next_page", p.NextPage)
	}
	return invoke[ApiResponseSecurityIntervalPrices](ctx, a.client, r)
}

// GetSecurityIntervalPrices returns OHLCV bars of intervalSize.
func (a *SecurityAPI) GetSecurityIntervalPrices(ctx context.Context, identifier, intervalSize string, params *GetSecurityIntervalPricesParams) (*ApiResponseSecurityIntervalPrices, error) {
	return dataOf(a.GetSecurityIntervalPricesWithHTTPInfo(ctx, identifier, intervalSize, params))
}

// GetSecurityIntradayPricesParams holds the optional parameters of GetSecurityIntradayPrices.
type GetSecurityIntradayPricesParams struct {
	Source    *string
	StartDate *types.Date
	StartTime *string
	EndDate   *types.Date
	EndTime   *string
	PageSize  *int32
	NextPage  *string
}

// GetSecurityIntradayPricesWithHTTPInfo returns intraday trades and quotes, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityIntradayPricesWithHTTPInfo(ctx context.Context, identifier string, params *GetSecurityIntradayPricesParams) (*APIResponse[ApiResponseSecurityIntradayPrices], error) {
	r := newRequest("GetSecurityIntradayPrices", http.MethodGet, "/securities/{identifier}/prices/intraday").
		pathParam("identifier", identifier)
	if p := params; p != nil {
		setQuery(r, "source", p.Source)
		setDateTime(r, "start_date", "start_time", p.StartDate, p.StartTime)
		setDateTime(r, "end_date", "end_time", p.EndDate, p.EndTime)
		setQuery(r, "page_size", p.PageSize)
		setQuery(r, "next_page", p.NextPage)
	}
	return invoke[ApiResponseSecurityIntradayPrices](ctx, a.client, r)
}

// GetSecurityIntradayPrices returns intraday trades and quotes.
func (a *SecurityAPI) GetSecurityIntradayPrices(ctx context.Context, identifier string, params *GetSecurityIntradayPricesParams) (*ApiResponseSecurityIntradayPrices, error) {
	return dataOf(a.GetSecurityIntradayPricesWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityLatestDividendRecordWithHTTPInfo returns the most recent dividend, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityLatestDividendRecordWithHTTPInfo(ctx context.Context, identifier string) (*APIResponse[DividendRecord], error) {
	r := newRequest("GetSecurityLatestDividendRecord", http.MethodGet, "/securities/{identifier}/dividends/latest").
		pathParam("identifier", identifier)
	return invoke[DividendRecord](ctx, a.client, r)
}

// GetSecurityLatestDividendRecord returns the most recent dividend.
func (a *SecurityAPI) GetSecurityLatestDividendRecord(ctx context.Context, identifier string) (*DividendRecord, error) {
	return dataOf(a.GetSecurityLatestDividendRecordWithHTTPInfo(ctx, identifier))
}

// GetSecurityLatestEarningsRecordWithHTTPInfo returns the most recent earnings date, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityLatestEarningsRecordWithHTTPInfo(ctx context.Context, identifier string) (*APIResponse[EarningsRecord], error) {
	r := newRequest("GetSecurityLatestEarningsRecord", http.MethodGet, "/securities/{identifier}/earnings/latest").
		pathParam("identifier", identifier)
	return invoke[EarningsRecord](ctx, a.client, r)
}

// GetSecurityLatestEarningsRecord returns the most recent earnings date.
func (a *SecurityAPI) GetSecurityLatestEarningsRecord(ctx context.Context, identifier string) (*EarningsRecord, error) {
	return dataOf(a.GetSecurityLatestEarningsRecordWithHTTPInfo(ctx, identifier))
}

// GetSecurityRealtimePriceParams holds the optional parameters of GetSecurityRealtimePrice.
type GetSecurityRealtimePriceParams struct {
	Source *string
}

// GetSecurityRealtimePriceWithHTTPInfo returns the current price, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityRealtimePriceWithHTTPInfo(ctx context.Context, identifier string, params *GetSecurityRealtimePriceParams) (*APIResponse[RealtimeStockPrice], error) {
	r := newRequest("GetSecurityRealtimePrice", http.MethodGet, "/securities/{identifier}/prices/realtime").
		pathParam("identifier", identifier)
	if params != nil {
		setQuery(r, "source", params.Source)
	}
	return invoke[RealtimeStockPrice](ctx, a.client, r)
}

// GetSecurityRealtimePrice returns the current price.
func (a *SecurityAPI) GetSecurityRealtimePrice(ctx context.Context, identifier string, params *GetSecurityRealtimePriceParams) (*RealtimeStockPrice, error) {
	return dataOf(a.GetSecurityRealtimePriceWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityStockPriceAdjustmentsParams holds the optional parameters of GetSecurityStockPriceAdjustments.
type GetSecurityStockPriceAdjustmentsParams struct {
	StartDate *types.Date
	EndDate   *types.Date
	PageSize  *int32
	NextPage  *string
}

// GetSecurityStockPriceAdjustmentsWithHTTPInfo returns split and dividend adjustment factors, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityStockPriceAdjustmentsWithHTTPInfo(ctx context.Context, identifier string, params *GetSecurityStockPriceAdjustmentsParams) (*APIResponse[ApiResponseSecurityStockPriceAdjustments], error) {
	r := newRequest("GetSecurityStockPriceAdjustments", http.MethodGet, "/securities/{identifier}/prices/adjustments").
		pathParam("identifier", identifier)
	if p := params; p != nil {
		setQuery(r, "start_date", p.StartDate)
		setQuery(r, "end_date", p.EndDate)
		setQuery(r, "page_size", p.PageSize)
		setQuery(r, "next_page", p.NextPage)
	}
	return invoke[ApiResponseSecurityStockPriceAdjustments](ctx, a.client, r)
}

// GetSecurityStockPriceAdjustments returns split and dividend adjustment factors.
func (a *SecurityAPI) GetSecurityStockPriceAdjustments(ctx context.Context, identifier string, params *GetSecurityStockPriceAdjustmentsParams) (*ApiResponseSecurityStockPriceAdjustments, error) {
	return dataOf(a.GetSecurityStockPriceAdjustmentsWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityStockPricesParams holds the optional parameters of GetSecurityStockPrices.
type GetSecurityStockPricesParams struct {
	StartDate *types.Date
	EndDate   *types.Date
	Frequency *string
	PageSize  *int32
	NextPage  *string
}

// GetSecurityStockPricesWithHTTPInfo returns end-of-day bars, newest first.
func (a *SecurityAPI) GetSecurityStockPricesWithHTTPInfo(ctx context.Context, identifier string, params *GetSecurityStockPricesParams) (*APIResponse[ApiResponseSecurityStockPrices], error) {
	r := newRequest("GetSecurityStockPrices", http.MethodGet, "/securities/{identifier}/prices").
		pathParam("identifier", identifier)
	if p := params; p != nil {
		setQuery(r, "start_date", p.StartDate)
		setQuery(r, "end_date", p.EndDate)
		setQuery(r, "frequency", p.Frequency)
		setQuery(r, "page_size", p.PageSize)
		setQuery(r, "next_page", p.NextPage)
	}
	return invoke[ApiResponseSecurityStockPrices](ctx, a.client, r)
}

// GetSecurityStockPrices returns end-of-day bars, newest first.
func (a *SecurityAPI) GetSecurityStockPrices(ctx context.Context, identifier string, params *GetSecurityStockPricesParams) (*ApiResponseSecurityStockPrices, error) {
	return dataOf(a.GetSecurityStockPricesWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityZacksAnalystRatingsParams holds the optional parameters of GetSecurityZacksAnalystRatings.
type GetSecurityZacksAnalystRatingsParams struct {
	StartDate          *types.Date
	EndDate            *types.Date
	MeanGreater        *float64
	MeanLess           *float64
	StrongBuysGreater  *int32
	StrongBuysLess     *int32
	BuysGreater        *int32
	BuysLess           *int32
	HoldsGreater       *int32
	HoldsLess          *int32
	SellsGreater       *int32
	SellsLess          *int32
	StrongSellsGreater *int32
	StrongSellsLess    *int32
	TotalGreater       *int32
	TotalLess          *int32
	PageSize           *int32
	NextPage           *string
}

// GetSecurityZacksAnalystRatingsWithHTTPInfo returns Zacks analyst ratings over time, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityZacksAnalystRatingsWithHTTPInfo(ctx context.Context, identifier string, params *GetSecurityZacksAnalystRatingsParams) (*APIResponse[ApiResponseSecurityZacksAnalystRatings], error) {
	r := newRequest("GetSecurityZacksAnalystRatings", http.MethodGet, "/securities/{identifier}/zacks/analyst_ratings").
		pathParam("identifier", identifier)
	if p := params; p != nil {
		setQuery(r, "start_date", p.StartDate)
		setQuery(r, "end_date", p.EndDate)
		setQuery(r, "mean_greater", p.MeanGreater)
		setQuery(r, "mean_less", p.MeanLess)
		setQuery(r, "strong_buys_greater", p.StrongBuysGreater)
		setQuery(r, "strong_buys_less", p.StrongBuysLess)
		setQuery(r, "buys_greater", p.BuysGreater)
		setQuery(r, "buys_less", p.BuysLess)
		setQuery(r, "holds_greater", p.HoldsGreater)
		setQuery(r, "holds_less", p.HoldsLess)
		setQuery(r, "sells_greater", p.SellsGreater)
		setQuery(r, "sells_less", p.SellsLess)
		setQuery(r, "strong_sells_greater", p.StrongSellsGreater)
		setQuery(r, "strong_sells_less", p.StrongSellsLess)
		setQuery(r, "total_greater", p.TotalGreater)
		setQuery(r, "total_less", p.TotalLess)
		setQuery(r, "page_size", p.PageSize)
		setQuery(r, "next_page", p.NextPage)
	}
	return invoke[ApiResponseSecurityZacksAnalystRatings](ctx, a.client, r)
}

// GetSecurityZacksAnalystRatings returns Zacks analyst ratings over time.
func (a *SecurityAPI) GetSecurityZacksAnalystRatings(ctx context.Context, identifier string, params *GetSecurityZacksAnalystRatingsParams) (*ApiResponseSecurityZacksAnalystRatings, error) {
	return dataOf(a.GetSecurityZacksAnalystRatingsWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityZacksAnalystRatingsSnapshotParams holds the optional parameters of GetSecurityZacksAnalystRatingsSnapshot.
type GetSecurityZacksAnalystRatingsSnapshotParams struct {
	Date *types.Date
}

// GetSecurityZacksAnalystRatingsSnapshotWithHTTPInfo returns the Zacks analyst ratings of one day, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityZacksAnalystRatingsSnapshotWithHTTPInfo(ctx context.Context, identifier string, params *GetSecurityZacksAnalystRatingsSnapshotParams) (*APIResponse[ApiResponseSecurityZacksAnalystRatingsSnapshot], error) {
	r := newRequest("GetSecurityZacksAnalystRatingsSnapshot", http.MethodGet, "/securities/{identifier}/zacks/analyst_ratings/snapshot").
		pathParam("identifier", identifier)
	if params != nil {
		setQuery(r, "date", params.Date)
	}
	return invoke[ApiResponseSecurityZacksAnalystRatingsSnapshot](ctx, a.client, r)
}

// GetSecurityZacksAnalystRatingsSnapshot returns the Zacks analyst ratings of one day.
func (a *SecurityAPI) GetSecurityZacksAnalystRatingsSnapshot(ctx context.Context, identifier string, params *GetSecurityZacksAnalystRatingsSnapshotParams) (*ApiResponseSecurityZacksAnalystRatingsSnapshot, error) {
	return dataOf(a.GetSecurityZacksAnalystRatingsSnapshotWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityZacksEPSSurprisesParams holds the optional parameters of GetSecurityZacksEPSSurprises.
type GetSecurityZacksEPSSurprisesParams struct {
	PageSize *int32
	NextPage *string
}

// GetSecurityZacksEPSSurprisesWithHTTPInfo returns Zacks EPS surprises, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityZacksEPSSurprisesWithHTTPInfo(ctx context.Context, identifier string, params *GetSecurityZacksEPSSurprisesParams) (*APIResponse[ApiResponseSecurityZacksEPSSurprises], error) {
	r := newRequest("GetSecurityZacksEPSSurprises", http.MethodGet, "/securities/{identifier}/zacks/eps_surprises").
		pathParam("identifier", identifier)
	if p := params; p != nil {
		setQuery(r, "page_size", p.PageSize)
		setQuery(r, "next_page", p.NextPage)
	}
	return invoke[ApiResponseSecurityZacksEPSSurprises](ctx, a.client, r)
}

// GetSecurityZacksEPSSurprises returns Zacks EPS surprises.
func (a *SecurityAPI) GetSecurityZacksEPSSurprises(ctx context.Context, identifier string, params *GetSecurityZacksEPSSurprisesParams) (*ApiResponseSecurityZacksEPSSurprises, error) {
	return dataOf(a.GetSecurityZacksEPSSurprisesWithHTTPInfo(ctx, identifier, params))
}

// ScreenSecuritiesParams configures a screen. Logic is sent as the JSON body;
// a nil Logic posts no body at all.
type ScreenSecuritiesParams struct {
	Logic          *SecurityScreenGroup
	OrderColumn    *string
	OrderDirection *string
	PrimaryOnly    *bool
	PageSize       *int32
}

// ScreenSecuritiesWithHTTPInfo returns the securities that pass the screen, with status, headers and raw body.
func (a *SecurityAPI) ScreenSecuritiesWithHTTPInfo(ctx context.Context, params *ScreenSecuritiesParams) (*APIResponse[[]SecurityScreenResult], error) {
	r := newRequest("ScreenSecurities", http.MethodPost, "/securities/screen")
	if p := params; p != nil {
		if p.Logic != nil {
			r.withBody(p.Logic)
		}
		setQuery(r, "order_column", p.OrderColumn)
		setQuery(r, "order_direction", p.OrderDirection)
		setQuery(r, "primary_only", p.PrimaryOnly)
		setQuery(r, "page_size", p.PageSize)
	}
	return invoke[[]SecurityScreenResult](ctx, a.client, r)
}

// ScreenSecurities returns the securities that pass the screen.
func (a *SecurityAPI) ScreenSecurities(ctx context.Context, params *ScreenSecuritiesParams) ([]SecurityScreenResult, error) {
	return valueOf(a.ScreenSecuritiesWithHTTPInfo(ctx, params))
}

// SearchSecuritiesParams holds the optional parameters of SearchSecurities.
type SearchSecuritiesParams struct {
	Active   *bool
	PageSize *int32
}

// SearchSecuritiesWithHTTPInfo runs a free-text search over names, tickers and
// identifiers.
func (a *SecurityAPI) SearchSecuritiesWithHTTPInfo(ctx context.Context, query string, params *SearchSecuritiesParams) (*APIResponse[ApiResponseSecuritiesSearch], error) {
	r := newRequest("SearchSecurities", http.MethodGet, "/securities/search").
		requiredQuery("query", query)
	if p := params; p != nil {
		setQuery(r, "active", p.Active)
		setQuery(r, "page_size", p.PageSize)
	}
	return invoke[ApiResponseSecuritiesSearch](ctx, a.client, r)
}

// SearchSecurities searches names, tickers and identifiers.
func (a *SecurityAPI) SearchSecurities(ctx context.Context, query string, params *SearchSecuritiesParams) (*ApiResponseSecuritiesSearch, error) {
	return dataOf(a.SearchSecuritiesWithHTTPInfo(ctx, query, params))
}
