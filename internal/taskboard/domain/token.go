package domain

import "time"

// TokenPair is what a successful login or refresh hands out.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// RefreshGrant is the content of a verified refresh token.
type RefreshGrant struct {
	UserID       string
	TokenVersion int
}
