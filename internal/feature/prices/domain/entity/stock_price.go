// Package entity defines the domain models for the prices feature.
package entity

import "time"

// StockPrice is one end-of-day bar of a security.
type StockPrice struct {
	Identifier string    // Security identifier as tracked (e.g., "AAPL")
	Date       time.Time // Trading day, midnight UTC
	Open       float64
	High       float64
	Low        float64
	Close      float64
	AdjClose   float64 // Close adjusted for splits and dividends
	Volume     int64
}
