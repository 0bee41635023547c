package usecase

import "errors"

var (
	// ErrTemporary はリトライで回復し得る上流エラー（429 や 5xx）を表します。
	ErrTemporary = errors.New("temporary upstream failure")
	// ErrInvalidIdentifier は上流が識別子を受け付けなかったことを表します。
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
