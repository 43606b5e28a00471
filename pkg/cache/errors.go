package cache

import "errors"

var (
	// ErrCacheMiss is returned by Store.Get when the key is absent or expired.
	ErrCacheMiss = errors.New("cache: miss")

	ErrEmptyKey      = errors.New("cache: empty key")
	ErrValueTooLarge = errors.New("cache: value exceeds memory limit")
)
