package intrinio

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// Security is a tradable listing as returned by GET /securities/{identifier}.
type Security struct {
	ID                  string      `json:"id"`
	CompanyID           *string     `json:"company_id,omitempty"`
	StockExchangeID     *string     `json:"stock_exchange_id,omitempty"`
	Name                *string     `json:"name,omitempty"`
	Code                *string     `json:"code,omitempty"`
	Currency            *string     `json:"currency,omitempty"`
	Ticker              *string     `json:"ticker,omitempty"`
	CompositeTicker     *string     `json:"composite_ticker,omitempty"`
	FIGI                *string     `json:"figi,omitempty"`
	CompositeFIGI       *string     `json:"composite_figi,omitempty"`
	ShareClassFIGI      *string     `json:"share_class_figi,omitempty"`
	FIGIUniqueID        *string     `json:"figi_uniqueid,omitempty"`
	Active              *bool       `json:"active,omitempty"`
	ETF                 *bool       `json:"etf,omitempty"`
	Delisted            *bool       `json:"delisted,omitempty"`
	PrimaryListing      *bool       `json:"primary_listing,omitempty"`
	PrimarySecurity     *bool       `json:"primary_security,omitempty"`
	FirstStockPrice     *types.Date `json:"first_stock_price,omitempty"`
	LastStockPrice      *types.Date `json:"last_stock_price,omitempty"`
	LastStockPriceAdj   *types.Date `json:"last_stock_price_adjustment,omitempty"`
	LastCorporateAction *types.Date `json:"last_corporate_action,omitempty"`
	PreviousTickers     []string    `json:"previous_tickers,omitempty"`
	ListingExchangeMIC  *string     `json:"listing_exchange_mic,omitempty"`
	CompanyCIK          *string     `json:"cik,omitempty"`
	CompanyTicker       *string     `json:"company_ticker,omitempty"`
	UpdatedAt           *time.Time  `json:"updated_at,omitempty"`
}

// SecuritySummary is the compact form used in list and search results.
type SecuritySummary struct {
	ID                 string      `json:"id"`
	CompanyID          *string     `json:"company_id,omitempty"`
	Name               *string     `json:"name,omitempty"`
	Code               *string     `json:"code,omitempty"`
	Currency           *string     `json:"currency,omitempty"`
	Ticker             *string     `json:"ticker,omitempty"`
	CompositeTicker    *string     `json:"composite_ticker,omitempty"`
	FIGI               *string     `json:"figi,omitempty"`
	CompositeFIGI      *string     `json:"composite_figi,omitempty"`
	ShareClassFIGI     *string     `json:"share_class_figi,omitempty"`
	PrimaryListing     *bool       `json:"primary_listing,omitempty"`
	FirstStockPrice    *types.Date `json:"first_stock_price,omitempty"`
	LastStockPrice     *types.Date `json:"last_stock_price,omitempty"`
	ListingExchangeMIC *string     `json:"listing_exchange_mic,omitempty"`
}

// ApiResponseSecurities is a page of securities.
type ApiResponseSecurities struct {
	Securities []SecuritySummary `json:"securities"`
	NextPage   *string           `json:"next_page,omitempty"`
}

// ApiResponseSecuritiesSearch holds search hits.
type ApiResponseSecuritiesSearch struct {
	Securities []SecuritySummary `json:"securities"`
}
