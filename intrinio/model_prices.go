package intrinio

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// StockPriceSummary is one end-of-day bar.
type StockPriceSummary struct {
	Date          types.Date `json:"date"`
	IntraPeriod   *bool      `json:"intraperiod,omitempty"`
	Frequency     *string    `json:"frequency,omitempty"`
	Open          *float64   `json:"open,omitempty"`
	High          *float64   `json:"high,omitempty"`
	Low           *float64   `json:"low,omitempty"`
	Close         *float64   `json:"close,omitempty"`
	Volume        *float64   `json:"volume,omitempty"`
	AdjOpen       *float64   `json:"adj_open,omitempty"`
	AdjHigh       *float64   `json:"adj_high,omitempty"`
	AdjLow        *float64   `json:"adj_low,omitempty"`
	AdjClose      *float64   `json:"adj_close,omitempty"`
	AdjVolume     *float64   `json:"adj_volume,omitempty"`
	Factor        *float64   `json:"factor,omitempty"`
	SplitRatio    *float64   `json:"split_ratio,omitempty"`
	Dividend      *float64   `json:"dividend,omitempty"`
	Change        *float64   `json:"change,omitempty"`
	PercentChange *float64   `json:"percent_change,omitempty"`
}

// ApiResponseSecurityStockPrices is a page of end-of-day bars.
type ApiResponseSecurityStockPrices struct {
	StockPrices []StockPriceSummary `json:"stock_prices"`
	Security    *SecuritySummary    `json:"security,omitempty"`
	NextPage    *string             `json:"next_page,omitempty"`
}

// IntradayStockPrice is one intraday trade or quote.
type IntradayStockPrice struct {
	Time         time.Time `json:"time"`
	LastPrice    *float64  `json:"last_price,omitempty"`
	AskPrice     *float64  `json:"ask_price,omitempty"`
	AskSize      *float64  `json:"ask_size,omitempty"`
	BidPrice     *float64  `json:"bid_price,omitempty"`
	BidSize      *float64  `json:"bid_size,omitempty"`
	Volume       *float64  `json:"volume,omitempty"`
	Source       *string   `json:"source,omitempty"`
	MarketCenter *string   `json:"market_center,omitempty"`
}

// ApiResponseSecurityIntradayPrices is a page of intraday prices.
type ApiResponseSecurityIntradayPrices struct {
	IntradayPrices []IntradayStockPrice `json:"intraday_prices"`
	Security       *SecuritySummary     `json:"security,omitempty"`
	Source         *string              `json:"source,omitempty"`
	NextPage       *string              `json:"next_page,omitempty"`
}

// IntervalStockPrice is one OHLCV bar of a fixed interval.
type IntervalStockPrice struct {
	Time         time.Time  `json:"time"`
	CloseTime    *time.Time `json:"close_time,omitempty"`
	Interval     *string    `json:"interval,omitempty"`
	Open         *float64   `json:"open,omitempty"`
	High         *float64   `json:"high,omitempty"`
	Low          *float64   `json:"low,omitempty"`
	Close        *float64   `json:"close,omitempty"`
	Volume       *float64   `json:"volume,omitempty"`
	AveragePrice *float64   `json:"average,omitempty"`
	Change       *float64   `json:"change,omitempty"`
	TradeCount   *int64     `json:"trade_count,omitempty"`
}

// ApiResponseSecurityIntervalPrices is a page of interval bars.
type ApiResponseSecurityIntervalPrices struct {
	Intervals []IntervalStockPrice `json:"intervals"`
	Security  *SecuritySummary     `json:"security,omitempty"`
	Source    *string              `json:"source,omitempty"`
	NextPage  *string              `json:"next_page,omitempty"`
}

// RealtimeStockPrice is the latest quote of a security.
type RealtimeStockPrice struct {
	LastPrice      *float64         `json:"last_price,omitempty"`
	LastTime       *time.Time       `json:"last_time,omitempty"`
	LastSize       *float64         `json:"last_size,omitempty"`
	BidPrice       *float64         `json:"bid_price,omitempty"`
	BidSize        *float64         `json:"bid_size,omitempty"`
	AskPrice       *float64         `json:"ask_price,omitempty"`
	AskSize        *float64         `json:"ask_size,omitempty"`
	OpenPrice      *float64         `json:"open_price,omitempty"`
	HighPrice      *float64         `json:"high_price,omitempty"`
	LowPrice       *float64         `json:"low_price,omitempty"`
	ClosePrice     *float64         `json:"close_price,omitempty"`
	ExchangeVolume *float64         `json:"exchange_volume,omitempty"`
	MarketVolume   *float64         `json:"market_volume,omitempty"`
	UpdatedOn      *time.Time       `json:"updated_on,omitempty"`
	Source         *string          `json:"source,omitempty"`
	Security       *SecuritySummary `json:"security,omitempty"`
}

// StockPriceAdjustment is one split or dividend adjustment.
type StockPriceAdjustment struct {
	Date             types.Date `json:"date"`
	Factor           *float64   `json:"factor,omitempty"`
	Dividend         *float64   `json:"dividend,omitempty"`
	DividendCurrency *string    `json:"dividend_currency,omitempty"`
	SplitRatio       *float64   `json:"split_ratio,omitempty"`
}

// ApiResponseSecurityStockPriceAdjustments is a page of adjustments.
type ApiResponseSecurityStockPriceAdjustments struct {
	StockPriceAdjustments []StockPriceAdjustment `json:"stock_price_adjustments"`
	Security              *SecuritySummary       `json:"security,omitempty"`
	NextPage              *string                `json:"next_page,omitempty"`
}

// HistoricalData is one dated value of a data tag.
type HistoricalData struct {
	Date  types.Date `json:"date"`
	Value *float64   `json:"value,omitempty"`
}

// ApiResponseSecurityHistoricalData is a page of historical values.
type ApiResponseSecurityHistoricalData struct {
	HistoricalData []HistoricalData `json:"historical_data"`
	Security       *SecuritySummary `json:"security,omitempty"`
	NextPage       *string          `json:"next_page,omitempty"`
}

// DividendRecord describes one dividend.
type DividendRecord struct {
	ExDividendDate             *types.Date      `json:"ex_dividend_date,omitempty"`
	DividendAmount             *float64         `json:"dividend_amount,omitempty"`
	DividendCurrency           *string          `json:"dividend_currency,omitempty"`
	AnnouncementDate           *types.Date      `json:"announcement_date,omitempty"`
	RecordDate                 *types.Date      `json:"record_date,omitempty"`
	PayDate                    *types.Date      `json:"pay_date,omitempty"`
	Frequency                  *string          `json:"frequency,omitempty"`
	Status                     *string          `json:"status,omitempty"`
	StockPriceAdjustmentFactor *float64         `json:"stock_price_adjustment_factor,omitempty"`
	Security                   *SecuritySummary `json:"security,omitempty"`
}

// EarningsRecord describes one earnings release.
type EarningsRecord struct {
	Quarter              *string          `json:"quarter,omitempty"`
	Time                 *string          `json:"time,omitempty"`
	BroadcastURL         *string          `json:"broadcast_url,omitempty"`
	TranscriptURL        *string          `json:"transcript_url,omitempty"`
	PreliminaryURL       *string          `json:"preliminary_url,omitempty"`
	FiscalYearEndingDate *types.Date      `json:"fiscal_year_ending_date,omitempty"`
	NextEarningsDate     *types.Date      `json:"next_earnings_date,omitempty"`
	NextEarningsQuarter  *string          `json:"next_earnings_quarter,omitempty"`
	LastUpdated          *time.Time       `json:"last_updated,omitempty"`
	Security             *SecuritySummary `json:"security,omitempty"`
}
