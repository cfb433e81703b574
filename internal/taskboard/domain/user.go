package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

// DefaultTokenVersion is the refresh token generation of a new account.
const DefaultTokenVersion = 1

var ErrInvalidName = errors.New("domain: name is required")

// User is an account. It is immutable: build one with NewUser or RestoreUser.
type User struct {
	id           string
	name         string
	email        string
	password     Password
	role         Role
	tokenVersion int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser checks and hashes plaintext, then assigns a fresh id. Email is kept
// exactly as given; lookups are case-sensitive.
func NewUser(h PasswordHasher, name, email, plaintext string, role Role) (User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return User{}, ErrInvalidName
	}
	if !role.Valid() {
		return User{}, ErrUnknownRole
	}

	pw, err := DerivePassword(h, plaintext)
	if err != nil {
		return User{}, err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	return User{
		id:           idx.NewAt(now).String(),
		name:         name,
		email:        email,
		password:     pw,
		role:         role,
		tokenVersion: DefaultTokenVersion,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// RestoreUser rebuilds a stored account without validating anything.
func RestoreUser(
	id, name, email, passwordHash string,
	role Role,
	tokenVersion int,
	createdAt, updatedAt time.Time,
) User {
	return User{
		id:           id,
		name:         name,
		email:        email,
		password:     RestorePassword(passwordHash),
		role:         role,
		tokenVersion: tokenVersion,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u User) ID() string { return u.id }
func (u User) Name() string { return u.name }
func (u User) Email() string { return u.email }
func (u User) Password() Password { return u.password }
func (u User) Role() Role { return u.role }
func (u User) TokenVersion() int { return u.tokenVersion }
func (u User) CreatedAt() time.Time { return u.createdAt }
func (u User) UpdatedAt() time.Time { return u.updatedAt }
func (u User) Principal() Principal { return Principal{UserID: u.id, Email: u.email, Role: u.role} }

func (u User) VerifyPassword(h PasswordHasher, plaintext string) bool {
	return u.password.Verify(h, plaintext)
}
