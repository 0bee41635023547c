// Package entity defines the domain models for the securities feature.
package entity

import "time"

// Security is a listed instrument as served by the facade.
type Security struct {
	ID             string     // Intrinio security ID (e.g., "sec_agjrgj")
	Ticker         string     // Exchange ticker (e.g., "AAPL")
	Name           string     // Display name
	CompositeFIGI  string     // Composite FIGI, empty if unknown
	Currency       string     // ISO currency code
	ExchangeMIC    string     // Listing exchange MIC
	Active         bool       // Whether the security is currently traded
	FirstPriceDate *time.Time // First day with a stock price
	LastPriceDate  *time.Time // Latest day with a stock price
}

// IntradayPrice is one intraday quote.
type IntradayPrice struct {
	Time      time.Time
	LastPrice float64
	BidPrice  float64
	AskPrice  float64
	Volume    float64
	Source    string
}
