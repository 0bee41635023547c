package intrinio

import "time"

// TechnicalIndicator describes the indicator a technicals page was computed
// with.
type TechnicalIndicator struct {
	Name        *string `json:"name,omitempty"`
	Symbol      *string `json:"symbol,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// TechnicalsResponse is a page of indicator values, V being one of the
// *TechnicalValue types below.
type TechnicalsResponse[V any] struct {
	Technicals []V                 `json:"technicals"`
	Indicator  *TechnicalIndicator `json:"indicator,omitempty"`
	Security   *SecuritySummary    `json:"security,omitempty"`
	NextPage   *string             `json:"next_page,omitempty"`
}

// AdtvTechnicalValue holds average daily trading volume.
type AdtvTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Adtv     *float64   `json:"adtv,omitempty"`
}

// AdxTechnicalValue holds the average directional index.
type AdxTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Adx      *float64   `json:"adx,omitempty"`
	DiNeg    *float64   `json:"di_neg,omitempty"`
	DiPos    *float64   `json:"di_pos,omitempty"`
}

// AtrTechnicalValue holds the average true range.
type AtrTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Atr      *float64   `json:"atr,omitempty"`
}

// BbTechnicalValue holds Bollinger bands.
type BbTechnicalValue struct {
	DateTime   *time.Time `json:"date_time,omitempty"`
	LowerBand  *float64   `json:"lower_band,omitempty"`
	MiddleBand *float64   `json:"middle_band,omitempty"`
	UpperBand  *float64   `json:"upper_band,omitempty"`
}

// CciTechnicalValue holds the commodity channel index.
type CciTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Cci      *float64   `json:"cci,omitempty"`
}

// MacdTechnicalValue holds MACD, its signal line and histogram.
type MacdTechnicalValue struct {
	DateTime      *time.Time `json:"date_time,omitempty"`
	MacdHistogram *float64   `json:"macd_histogram,omitempty"`
	MacdLine      *float64   `json:"macd_line,omitempty"`
	SignalLine    *float64   `json:"signal_line,omitempty"`
}

// MfiTechnicalValue holds the money flow index.
type MfiTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Mfi      *float64   `json:"mfi,omitempty"`
}

// ObvTechnicalValue holds on-balance volume.
type ObvTechnicalValue struct {
	DateTime        *time.Time `json:"date_time,omitempty"`
	OnBalanceVolume *float64   `json:"on_balance_volume,omitempty"`
}

// RsiTechnicalValue holds the relative strength index.
type RsiTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Rsi      *float64   `json:"rsi,omitempty"`
}

// SmaTechnicalValue holds the simple moving average.
type SmaTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Sma      *float64   `json:"sma,omitempty"`
}

// SrTechnicalValue holds the stochastic oscillator and its signal line.
type SrTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Sr       *float64   `json:"sr,omitempty"`
	SrSignal *float64   `json:"sr_signal,omitempty"`
}

// VwapTechnicalValue holds the volume weighted average price.
type VwapTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Vwap     *float64   `json:"vwap,omitempty"`
}

// WrTechnicalValue holds Williams %R.
type WrTechnicalValue struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Wr       *float64   `json:"wr,omitempty"`
}
