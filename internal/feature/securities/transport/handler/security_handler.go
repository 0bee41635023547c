// Package handler は securities フィーチャーの HTTP ハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"intrinio_sdk/internal/feature/securities/domain/entity"
	"intrinio_sdk/internal/feature/securities/transport/http/dto"
	"intrinio_sdk/internal/feature/securities/usecase"
)

const dateLayout = "2006-01-02"

// SecurityUsecase は銘柄参照のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SecurityUsecase interface {
	GetSecurity(ctx context.Context, identifier string) (*entity.Security, error)
	Search(ctx context.Context, query string, limit int) ([]entity.Security, error)
	IntradayPrices(ctx context.Context, identifier string, window usecase.IntradayWindow) ([]entity.IntradayPrice, error)
}

// SecurityHandler は銘柄情報の HTTP リクエストを処理します。
type SecurityHandler struct {
	uc SecurityUsecase
}

// NewSecurityHandler は SecurityHandler の新しいインスタンスを生成します。
func NewSecurityHandler(uc SecurityUsecase) *SecurityHandler {
	return &SecurityHandler{uc: uc}
}

// GetSecurity は銘柄情報を JSON で返します。
//
// エンドポイント例:
// GET /securities/AAPL
func (h *SecurityHandler) GetSecurity(c *gin.Context) {
	sec, err := h.uc.GetSecurity(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSecurityResponse(*sec))
}

// Search は銘柄を検索します。
//
// エンドポイント例:
// GET /securities/search?query=apple&limit=10
func (h *SecurityHandler) Search(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	secs, err := h.uc.Search(c.Request.Context(), c.Query("query"), limit)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.SecurityResponse, 0, len(secs))
	for _, s := range secs {
		out = append(out, toSecurityResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

// IntradayPrices は日中価格を返します。start_time/end_time は hh:mm 形式です。
//
// エンドポイント例:
// GET /securities/AAPL/prices/intraday?start_date=2024-01-02&start_time=09:30
func (h *SecurityHandler) IntradayPrices(c *gin.Context) {
	start, err := parseDate(c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date: " + err.Error()})
		return
	}
	end, err := parseDate(c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date: " + err.Error()})
		return
	}

	prices, err := h.uc.IntradayPrices(c.Request.Context(), c.Param("identifier"), usecase.IntradayWindow{
		StartDate: start,
		StartTime: c.Query("start_time"),
		EndDate:   end,
		EndTime:   c.Query("end_time"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.IntradayPriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, dto.IntradayPriceResponse{
			Time:      p.Time.UTC().Format(time.RFC3339),
			LastPrice: p.LastPrice,
			BidPrice:  p.BidPrice,
			AskPrice:  p.AskPrice,
			Volume:    p.Volume,
			Source:    p.Source,
		})
	}
	c.JSON(http.StatusOK, out)
}

// writeError はエラー種別を HTTP ステータスに変換します。
func writeError(c *gin.Context, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrSecurityNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toSecurityResponse(s entity.Security) dto.SecurityResponse {
	out := dto.SecurityResponse{
		ID:            s.ID,
		Ticker:        s.Ticker,
		Name:          s.Name,
		CompositeFIGI: s.CompositeFIGI,
		Currency:      s.Currency,
		ExchangeMIC:   s.ExchangeMIC,
		Active:        s.Active,
	}
	if s.FirstPriceDate != nil {
		out.FirstPriceDate = s.FirstPriceDate.Format(dateLayout)
	}
	if s.LastPriceDate != nil {
		out.LastPriceDate = s.LastPriceDate.Format(dateLayout)
	}
	return out
}
