package auth

// GoogleSignInInput carries the OAuth authorization code flow result.
type GoogleSignInInput struct {
	Code        string
	RedirectURI string
}

// SessionOutput is a signed session token plus the identity it encodes.
type SessionOutput struct {
	Token  string
	UserID string
	Email  string
	Name   string
	Guest  bool
}
