package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes. Access tokens are short, refresh tokens outlive a working
// month so people are not logged out between sprints.
const (
	DefaultAccessTokenTTL  = 30 * time.Minute
	DefaultRefreshTokenTTL = 30 * 24 * time.Hour
)

// AccessClaims carry everything needed to rebuild the caller's identity
// without a database round trip.
type AccessClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Validate is called by the parser after the registered claims pass.
func (c AccessClaims) Validate() error {
	if c.UserID == "" || c.Email == "" || c.Role == "" {
		return ErrInvalidClaim
	}
	return nil
}

// RefreshClaims identify the user and the token generation the refresh token
// belongs to.
type RefreshClaims struct {
	jwt.RegisteredClaims

	UserID       string `json:"userId"`
	TokenVersion int    `json:"tokenVersion"`
}

// Validate is called by the parser after the registered claims pass.
func (c RefreshClaims) Validate() error {
	if c.UserID == "" || c.TokenVersion < 1 {
		return ErrInvalidClaim
	}
	return nil
}

// NewRegisteredClaims fills in the standard claims for a token issued at now.
func NewRegisteredClaims(issuer, subject string, ttl time.Duration, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        NewJTI(),
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim. Two tokens
// minted in the same second for the same user still differ because of it.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
