package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 12

var (
	ErrMismatch          = errors.New("cryptox: password does not match")
	ErrUnknownHashFormat = errors.New("cryptox: unknown hash format")
	ErrInvalidCost       = errors.New("cryptox: bcrypt cost out of range")
)

// pepperedPrefix marks hashes whose bcrypt input was the HMAC prehash. Bare
// "$2a$"/"$2b$" strings are plain bcrypt over the password itself.
const pepperedPrefix = "$tb1$"

// Hasher derives and checks password hashes. New hashes are bcrypt over an
// HMAC-SHA256 prehash of the password keyed with the pepper, stored as
// "$tb1$" followed by the bcrypt string. Plain bcrypt hashes written before
// the prehash existed still verify against the raw password.
//
// bcrypt only looks at the first 72 bytes of its input, and the policy allows
// 128 characters, hence the prehash. The digest is base64 encoded to keep NUL
// bytes away from bcrypt.
type Hasher struct {
	cost   int
	pepper []byte
}

// NewHasher returns a Hasher with the given bcrypt cost (0 means DefaultCost)
// and an optional pepper.
func NewHasher(cost int, pepper []byte) (*Hasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	return &Hasher{cost: cost, pepper: pepper}, nil
}

// Cost reports the configured work factor.
func (h *Hasher) Cost() int { return h.cost }

// Hash validates password against the policy and returns a salted bcrypt hash.
// Every call uses a fresh salt, so hashing the same password twice gives two
// different strings.
func (h *Hasher) Hash(password string) (string, error) {
	if res := ValidatePassword(password); !res.Valid {
		return "", &PolicyError{Reasons: res.Errors}
	}

	out, err := bcrypt.GenerateFromPassword(h.prehash(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: bcrypt: %w", err)
	}
	return pepperedPrefix + string(out), nil
}

// Verify returns nil when password produced encoded, ErrMismatch when it did
// not, and another error when encoded cannot be parsed.
func (h *Hasher) Verify(password, encoded string) error {
	switch {
	case strings.HasPrefix(encoded, pepperedPrefix+"$2"):
		return compareBcrypt(strings.TrimPrefix(encoded, pepperedPrefix), h.prehash(password))
	case strings.HasPrefix(encoded, "$2"):
		return compareBcrypt(encoded, []byte(password))
	default:
		return ErrUnknownHashFormat
	}
}

func compareBcrypt(hash string, input []byte) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), input)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword),
		errors.Is(err, bcrypt.ErrPasswordTooLong):
		return ErrMismatch
	default:
		return fmt.Errorf("%w: %w", ErrUnknownHashFormat, err)
	}
}

func (h *Hasher) prehash(password string) []byte {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))
	sum := mac.Sum(nil)

	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum)
	return out
}
