package domain

import sharedauth "condoYaAdmin/internal/shared/auth"

// Session is what the cookie stores between requests: the backend token pair
// plus the name shown in the navigation bar.
type Session struct {
	Tokens      sharedauth.TokenPair
	DisplayName string
}

func (s Session) Authenticated() bool {
	return !s.Tokens.Empty()
}
