package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"study-deadline-engine/internal/auth"
	"study-deadline-engine/pkg/scope"
)

// GoogleSignIn exchanges the OAuth authorization code for a verified
// identity and mints a session token scoped to that user.
func (uc *implUseCase) GoogleSignIn(ctx context.Context, input auth.GoogleSignInInput) (auth.SessionOutput, error) {
	if input.Code == "" {
		return auth.SessionOutput{}, auth.ErrEmptyCode
	}

	info, err := uc.google.ExchangeCode(ctx, input.Code, input.RedirectURI)
	if err != nil {
		uc.l.Warnf(ctx, "auth.usecase.GoogleSignIn.ExchangeCode: %v", err)
		return auth.SessionOutput{}, fmt.Errorf("%w: %v", auth.ErrCodeExchange, err)
	}

	token, err := uc.sessions.Generate(scope.Payload{UserID: info.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.GoogleSignIn.Generate: %v", err)
		return auth.SessionOutput{}, auth.ErrTokenGenerate
	}

	uc.l.Infof(ctx, "auth.usecase.GoogleSignIn: user=%s", info.UserID)
	return auth.SessionOutput{
		Token:  token,
		UserID: info.UserID,
		Email:  info.Email,
		Name:   info.Name,
	}, nil
}

// GuestSession mints an anonymous session. Guest identities never
// reach the durable record store; their completion state stays in the
// local cache.
func (uc *implUseCase) GuestSession(ctx context.Context) (auth.SessionOutput, error) {
	userID := "guest-" + uuid.NewString()

	token, err := uc.sessions.Generate(scope.Payload{UserID: userID, Guest: true})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.GuestSession.Generate: %v", err)
		return auth.SessionOutput{}, auth.ErrTokenGenerate
	}

	return auth.SessionOutput{
		Token:  token,
		UserID: userID,
		Guest:  true,
	}, nil
}
