package intrinio

import (
	"context"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrStopPagination may be returned by a Paginate callback to end the walk
// early without an error.
var ErrStopPagination = errors.New("intrinio: stop pagination")

// PageFetcher loads one page. nextPage is nil for the first page and
// afterwards carries the server's opaque cursor.
type PageFetcher[T any] func(ctx context.Context, nextPage *string) (*APIResponse[T], error)

// Paginate follows next_page cursors until the server stops returning one.
func Paginate[T any](ctx context.Context, fetch PageFetcher[T], yield func(T) error) error {
	var cursor *string
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		resp, err := fetch(ctx, cursor)
		if err != nil {
			return err
		}
		if err := yield(resp.Data); err != nil {
			if errors.Is(err, ErrStopPagination) {
				return nil
			}
			return err
		}

		next := NextPageToken(resp.RawBody)
		if next == "" {
			return nil
		}
		if cursor != nil && *cursor == next {
			return nil
		}
		cursor = &next
	}
}

// NextPageToken returns the next_page cursor of a raw page body, or "" when
// the body is the last page.
func NextPageToken(body []byte) string {
	res := gjson.GetBytes(body, "next_page")
	if !res.Exists() || res.Type != gjson.String {
		return ""
	}
	return res.String()
}
