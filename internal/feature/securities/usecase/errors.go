package usecase

import "errors"

var (
	// ErrInvalidInput はリクエストパラメータが不正な場合に返されます。
	ErrInvalidInput = errors.New("invalid input")
	// ErrSecurityNotFound は指定された銘柄が存在しない場合に返されます。
	ErrSecurityNotFound = errors.New("security not found")
)
