package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret NewHMACKey accepts.
const MinSecretLength = 32

// Signer turns claims into a compact JWT.
type Signer interface {
	Sign(claims jwt.Claims) (string, error)
}

// Verifier checks a compact JWT and decodes it into claims.
type Verifier interface {
	Verify(token string, claims jwt.Claims) error
}

var (
	ErrSecretTooShort = errors.New("jwtx: secret shorter than 32 characters")

	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// classify folds the parser's error into one of our sentinels, keeping the
// original error wrapped for logging.
func classify(err error) error {
	var kind error
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		kind = ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		kind = ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		kind = ErrIssuer
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		kind = ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenMalformed):
		kind = ErrMalformed
	case errors.Is(err, ErrInvalidClaim):
		return err
	default:
		kind = ErrInvalidClaim
	}
	return fmt.Errorf("%w: %w", kind, err)
}
