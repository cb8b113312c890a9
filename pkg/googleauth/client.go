package googleauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var ErrEmptyCode = errors.New("authorization code is empty")

// UserInfo is the Google account identity resolved from a sign-in.
type UserInfo struct {
	UserID  string
	Email   string
	Name    string
	Picture string
}

// Client exchanges Google OAuth authorization codes for account identities.
type Client struct {
	config *oauth2.Config
}

// NewClient creates a Google sign-in client for the given OAuth app.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Scopes: []string{
				oauth2api.UserinfoEmailScope,
				oauth2api.UserinfoProfileScope,
			},
			Endpoint: google.Endpoint,
		},
	}
}

// ExchangeCode redeems an authorization code (from the browser sign-in
// flow) and resolves the account behind it via the userinfo endpoint.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (UserInfo, error) {
	if code == "" {
		return UserInfo{}, ErrEmptyCode
	}

	cfg := *c.config
	cfg.RedirectURL = redirectURI

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, token)))
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return UserInfo{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	if info.Id == "" {
		return UserInfo{}, errors.New("userinfo response missing account id")
	}

	return UserInfo{
		UserID:  info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
