// Package dto は securities フィーチャーの HTTP レスポンス DTO を定義します。
package dto

// SecurityResponse は銘柄情報のレスポンスDTOです。
type SecurityResponse struct {
	ID             string `json:"id"`
	Ticker         string `json:"ticker"`
	Name           string `json:"name"`
	CompositeFIGI  string `json:"composite_figi,omitempty"`
	Currency       string `json:"currency,omitempty"`
	ExchangeMIC    string `json:"exchange_mic,omitempty"`
	Active         bool   `json:"active"`
	FirstPriceDate string `json:"first_price_date,omitempty"`
	LastPriceDate  string `json:"last_price_date,omitempty"`
}

// IntradayPriceResponse は日中価格1件のレスポンスDTOです。
type IntradayPriceResponse struct {
	Time      string  `json:"time"`
	LastPrice float64 `json:"last_price"`
	BidPrice  float64 `json:"bid_price"`
	AskPrice  float64 `json:"ask_price"`
	Volume    float64 `json:"volume"`
	Source    string  `json:"source,omitempty"`
}

// ErrorResponse はエラー時のレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
