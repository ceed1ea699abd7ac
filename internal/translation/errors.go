package translation

import "errors"

var (
	ErrNotTranslatable = errors.New("bitmask has no compressed encoding")
	ErrNotFound        = errors.New("translation not found")
)
