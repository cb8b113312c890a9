package completion

import "errors"

var (
	ErrLocalStore = errors.New("local completion store unavailable")
)
