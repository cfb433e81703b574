package domain

import (
	"crypto/subtle"
	"log/slog"
)

// PasswordHasher derives and checks password hashes. Hash must refuse
// passwords that fail the strength policy. Verify returns nil on a match.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, encoded string) error
}

// Password holds a password hash, never the plaintext. It comes either from
// DerivePassword, which enforces the policy, or from RestorePassword, which
// trusts storage.
type Password struct {
	hash string
}

func DerivePassword(h PasswordHasher, plaintext string) (Password, error) {
	hash, err := h.Hash(plaintext)
	if err != nil {
		return Password{}, err
	}
	return Password{hash: hash}, nil
}

// RestorePassword wraps a stored hash as is. Legacy hashes that predate the
// current policy are fine here.
func RestorePassword(hash string) Password {
	return Password{hash: hash}
}

// Verify reports whether plaintext matches. An unreadable stored hash is a
// mismatch.
func (p Password) Verify(h PasswordHasher, plaintext string) bool {
	if p.hash == "" {
		return false
	}
	return h.Verify(plaintext, p.hash) == nil
}

// Equal compares hashes, not plaintexts.
func (p Password) Equal(other Password) bool {
	return subtle.ConstantTimeCompare([]byte(p.hash), []byte(other.hash)) == 1
}

// Hash is the encoded form for storage.
func (p Password) Hash() string { return p.hash }

func (p Password) String() string { return "[REDACTED]" }

func (p Password) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }
