package intrinio

import (
	"context"
	"net/http"

	"github.com/oapi-codegen/runtime/types"
)

// TechnicalsWindow is shared by every technical indicator endpoint.
type TechnicalsWindow struct {
	Source    *string
	StartDate *types.Date
	EndDate   *types.Date
	PageSize  *int32
	NextPage  *string
}

func (w *TechnicalsWindow) apply(r *request) {
	if w == nil {
		return
	}
	setQuery(r, "source", w.Source)
	setQuery(r, "start_date", w.StartDate)
	setQuery(r, "end_date", w.EndDate)
	setQuery(r, "page_size", w.PageSize)
	setQuery(r, "next_page", w.NextPage)
}

func getTechnicals[V any](ctx context.Context, c *APIClient, operation, indicator, identifier string, w *TechnicalsWindow, extra func(*request)) (*APIResponse[TechnicalsResponse[V]], error) {
	r := newRequest(operation, http.MethodGet, "/securities/{identifier}/prices/technicals/"+indicator).
		pathParam("identifier", identifier)
	w.apply(r)
	if extra != nil {
		extra(r)
	}
	return invoke[TechnicalsResponse[V]](ctx, c, r)
}

// TechnicalsPeriodParams is used by indicators that only take a look-back
// period (ADTV, ADX, ATR, MFI, Williams %R).
type TechnicalsPeriodParams struct {
	TechnicalsWindow
	Period *int32
}

func (p *TechnicalsPeriodParams) window() *TechnicalsWindow {
	if p == nil {
		return nil
	}
	return &p.TechnicalsWindow
}

func (p *TechnicalsPeriodParams) query(r *request) {
	if p != nil {
		setQuery(r, "period", p.Period)
	}
}

// TechnicalsPriceParams adds the price column the indicator is computed on
// (RSI, SMA).
type TechnicalsPriceParams struct {
	TechnicalsWindow
	Period   *int32
	PriceKey *string
}

func (p *TechnicalsPriceParams) window() *TechnicalsWindow {
	if p == nil {
		return nil
	}
	return &p.TechnicalsWindow
}

func (p *TechnicalsPriceParams) query(r *request) {
	if p != nil {
		setQuery(r, "period", p.Period)
		setQuery(r, "price_key", p.PriceKey)
	}
}

// TechnicalsBbParams configures Bollinger bands.
type TechnicalsBbParams struct {
	TechnicalsWindow
	Period             *int32
	StandardDeviations *float64
	PriceKey           *string
}

// TechnicalsCciParams configures the commodity channel index.
type TechnicalsCciParams struct {
	TechnicalsWindow
	Period   *int32
	Constant *float64
}

// TechnicalsMacdParams configures MACD.
type TechnicalsMacdParams struct {
	TechnicalsWindow
	FastPeriod   *int32
	SlowPeriod   *int32
	SignalPeriod *int32
	PriceKey     *string
}

// TechnicalsSrParams configures the stochastic oscillator.
type TechnicalsSrParams struct {
	TechnicalsWindow
	Period       *int32
	SignalPeriod *int32
}

// GetSecurityPriceTechnicalsAdtvWithHTTPInfo returns the average daily trading volume, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsAdtvWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*APIResponse[TechnicalsResponse[AdtvTechnicalValue]], error) {
	return getTechnicals[AdtvTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsAdtv", "adtv", identifier, params.window(), params.query)
}

// GetSecurityPriceTechnicalsAdtv returns the average daily trading volume.
func (a *SecurityAPI) GetSecurityPriceTechnicalsAdtv(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*TechnicalsResponse[AdtvTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsAdtvWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsAdxWithHTTPInfo returns the average directional index, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsAdxWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*APIResponse[TechnicalsResponse[AdxTechnicalValue]], error) {
	return getTechnicals[AdxTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsAdx", "adx", identifier, params.window(), params.query)
}

// GetSecurityPriceTechnicalsAdx returns the average directional index.
func (a *SecurityAPI) GetSecurityPriceTechnicalsAdx(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*TechnicalsResponse[AdxTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsAdxWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsAtrWithHTTPInfo returns the average true range, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsAtrWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*APIResponse[TechnicalsResponse[AtrTechnicalValue]], error) {
	return getTechnicals[AtrTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsAtr", "atr", identifier, params.window(), params.query)
}

// GetSecurityPriceTechnicalsAtr returns the average true range.
func (a *SecurityAPI) GetSecurityPriceTechnicalsAtr(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*TechnicalsResponse[AtrTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsAtrWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsBbWithHTTPInfo returns Bollinger bands, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsBbWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsBbParams) (*APIResponse[TechnicalsResponse[BbTechnicalValue]], error) {
	var w *TechnicalsWindow
	if params != nil {
		w = &params.TechnicalsWindow
	}
	return getTechnicals[BbTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsBb", "bb", identifier, w, func(r *request) {
		if params == nil {
			return
		}
		setQuery(r, "period", params.Period)
		setQuery(r, "standard_deviations", params.StandardDeviations)
		setQuery(r, "price_key", params.PriceKey)
	})
}

// GetSecurityPriceTechnicalsBb returns Bollinger bands.
func (a *SecurityAPI) GetSecurityPriceTechnicalsBb(ctx context.Context, identifier string, params *TechnicalsBbParams) (*TechnicalsResponse[BbTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsBbWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsCciWithHTTPInfo returns the commodity channel index, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsCciWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsCciParams) (*APIResponse[TechnicalsResponse[CciTechnicalValue]], error) {
	var w *TechnicalsWindow
	if params != nil {
		w = &params.TechnicalsWindow
	}
	return getTechnicals[CciTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsCci", "cci", identifier, w, func(r *request) {
		if params == nil {
			return
		}
		setQuery(r, "period", params.Period)
		setQuery(r, "constant", params.Constant)
	})
}

// GetSecurityPriceTechnicalsCci returns the commodity channel index.
func (a *SecurityAPI) GetSecurityPriceTechnicalsCci(ctx context.Context, identifier string, params *TechnicalsCciParams) (*TechnicalsResponse[CciTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsCciWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsMacdWithHTTPInfo returns MACD and its signal line, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsMacdWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsMacdParams) (*APIResponse[TechnicalsResponse[MacdTechnicalValue]], error) {
	var w *TechnicalsWindow
	if params != nil {
		w = &params.TechnicalsWindow
	}
	return getTechnicals[MacdTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsMacd", "macd", identifier, w, func(r *request) {
		if params == nil {
			return
		}
		setQuery(r, "fast_period", params.FastPeriod)
		setQuery(r, "slow_period", params.SlowPeriod)
		setQuery(r, "signal_period", params.SignalPeriod)
		setQuery(r, "price_key", params.PriceKey)
	})
}

// GetSecurityPriceTechnicalsMacd returns MACD and its signal line.
func (a *SecurityAPI) GetSecurityPriceTechnicalsMacd(ctx context.Context, identifier string, params *TechnicalsMacdParams) (*TechnicalsResponse[MacdTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsMacdWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsMfiWithHTTPInfo returns the money flow index, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsMfiWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*APIResponse[TechnicalsResponse[MfiTechnicalValue]], error) {
	return getTechnicals[MfiTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsMfi", "mfi", identifier, params.window(), params.query)
}

// GetSecurityPriceTechnicalsMfi returns the money flow index.
func (a *SecurityAPI) GetSecurityPriceTechnicalsMfi(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*TechnicalsResponse[MfiTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsMfiWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsObvWithHTTPInfo returns on-balance volume, which
// has no parameters beyond the window.
func (a *SecurityAPI) GetSecurityPriceTechnicalsObvWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsWindow) (*APIResponse[TechnicalsResponse[ObvTechnicalValue]], error) {
	return getTechnicals[ObvTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsObv", "obv", identifier, params, nil)
}

// GetSecurityPriceTechnicalsObv returns on-balance volume.
func (a *SecurityAPI) GetSecurityPriceTechnicalsObv(ctx context.Context, identifier string, params *TechnicalsWindow) (*TechnicalsResponse[ObvTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsObvWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsRsiWithHTTPInfo returns the relative strength index, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsRsiWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsPriceParams) (*APIResponse[TechnicalsResponse[RsiTechnicalValue]], error) {
	return getTechnicals[RsiTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsRsi", "rsi", identifier, params.window(), params.query)
}

// GetSecurityPriceTechnicalsRsi returns the relative strength index.
func (a *SecurityAPI) GetSecurityPriceTechnicalsRsi(ctx context.Context, identifier string, params *TechnicalsPriceParams) (*TechnicalsResponse[RsiTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsRsiWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsSmaWithHTTPInfo returns the simple moving average, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsSmaWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsPriceParams) (*APIResponse[TechnicalsResponse[SmaTechnicalValue]], error) {
	return getTechnicals[SmaTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsSma", "sma", identifier, params.window(), params.query)
}

// GetSecurityPriceTechnicalsSma returns the simple moving average.
func (a *SecurityAPI) GetSecurityPriceTechnicalsSma(ctx context.Context, identifier string, params *TechnicalsPriceParams) (*TechnicalsResponse[SmaTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsSmaWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsSrWithHTTPInfo returns the stochastic oscillator, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsSrWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsSrParams) (*APIResponse[TechnicalsResponse[SrTechnicalValue]], error) {
	var w *TechnicalsWindow
	if params != nil {
		w = &params.TechnicalsWindow
	}
	return getTechnicals[SrTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsSr", "sr", identifier, w, func(r *request) {
		if params == nil {
			return
		}
		setQuery(r, "period", params.Period)
		setQuery(r, "signal_period", params.SignalPeriod)
	})
}

// GetSecurityPriceTechnicalsSr returns the stochastic oscillator.
func (a *SecurityAPI) GetSecurityPriceTechnicalsSr(ctx context.Context, identifier string, params *TechnicalsSrParams) (*TechnicalsResponse[SrTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsSrWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsVwapWithHTTPInfo returns the volume weighted average price, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsVwapWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsWindow) (*APIResponse[TechnicalsResponse[VwapTechnicalValue]], error) {
	return getTechnicals[VwapTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsVwap", "vwap", identifier, params, nil)
}

// GetSecurityPriceTechnicalsVwap returns the volume weighted average price.
func (a *SecurityAPI) GetSecurityPriceTechnicalsVwap(ctx context.Context, identifier string, params *TechnicalsWindow) (*TechnicalsResponse[VwapTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsVwapWithHTTPInfo(ctx, identifier, params))
}

// GetSecurityPriceTechnicalsWrWithHTTPInfo returns Williams %R, with status, headers and raw body.
func (a *SecurityAPI) GetSecurityPriceTechnicalsWrWithHTTPInfo(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*APIResponse[TechnicalsResponse[WrTechnicalValue]], error) {
	return getTechnicals[WrTechnicalValue](ctx, a.client, "GetSecurityPriceTechnicalsWr", "wr", identifier, params.window(), params.query)
}

// GetSecurityPriceTechnicalsWr returns Williams %R.
func (a *SecurityAPI) GetSecurityPriceTechnicalsWr(ctx context.Context, identifier string, params *TechnicalsPeriodParams) (*TechnicalsResponse[WrTechnicalValue], error) {
	return dataOf(a.GetSecurityPriceTechnicalsWrWithHTTPInfo(ctx, identifier, params))
}
