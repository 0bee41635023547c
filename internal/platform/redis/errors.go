package redis

import "errors"

// ErrNotConfigured は REDIS_HOST が未設定のときに返されます。
var ErrNotConfigured = errors.New("redis is not configured")
