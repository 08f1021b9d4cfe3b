package domain

import "errors"

var (
	ErrNotFound           = errors.New("url not found")
	ErrInvalidURL         = errors.New("invalid url")
	ErrCodeSpaceExhausted = errors.New("short code space exhausted")
)
