// Package http provides the outbound HTTP client shared by the Intrinio API client and its consumers.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTP_PROXYなど）が設定されている場合に使用
//   - Dialer.KeepAlive: 再利用可能なTCP接続の維持期間
//   - MaxIdleConnsPerHost: 同一ホストへの接続の再利用数
//
// timeout が 0 以下の場合、リクエスト全体のタイムアウトは設定しません。
// キャンセルは呼び出し側の context に任せます。
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout < 0 {
		timeout = 0
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
