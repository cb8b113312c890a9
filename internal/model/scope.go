package model

// Scope identifies the caller of a use case. Guest scopes belong to
// ephemeral sessions with no durable account; their completion state
// never leaves the local cache.
type Scope struct {
	UserID string
	Guest  bool
}
