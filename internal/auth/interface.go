package auth

import (
	"context"

	"study-deadline-engine/pkg/googleauth"
)

type UseCase interface {
	// GoogleSignIn exchanges an OAuth authorization code for a session.
	GoogleSignIn(ctx context.Context, input GoogleSignInInput) (SessionOutput, error)
	// GuestSession mints an anonymous local-only session.
	GuestSession(ctx context.Context) (SessionOutput, error)
}

// GoogleVerifier abstracts the OAuth code exchange.
type GoogleVerifier interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (googleauth.UserInfo, error)
}
