package auth

import "errors"

var (
	ErrEmptyCode     = errors.New("authorization code is required")
	ErrCodeExchange  = errors.New("authorization code exchange failed")
	ErrTokenGenerate = errors.New("failed to generate session token")
)
