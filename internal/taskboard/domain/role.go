package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the coarse permission level of an account. The string form is what
// travels in tokens and JSON; the database stores a small integer code.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Storage codes. Never compare these against role strings directly.
const (
	roleCodeMember = 1
	roleCodeAdmin  = 2
)

var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole accepts either casing ("admin", "ADMIN").
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RoleMember):
		return RoleMember, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func RoleFromCode(code int) (Role, error) {
	switch code {
	case roleCodeMember:
		return RoleMember, nil
	case roleCodeAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("%w: code %d", ErrUnknownRole, code)
}

// Code is the storage encoding of r.
func (r Role) Code() (int, error) {
	switch r {
	case RoleMember:
		return roleCodeMember, nil
	case RoleAdmin:
		return roleCodeAdmin, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, string(r))
}

func (r Role) Valid() bool {
	_, err := r.Code()
	return err == nil
}

// Is is the one role comparison authorization should use. Unknown roles never
// match anything, themselves included.
func (r Role) Is(other Role) bool {
	a, err := ParseRole(string(r))
	if err != nil {
		return false
	}
	b, err := ParseRole(string(other))
	if err != nil {
		return false
	}
	return a == b
}

func (r Role) String() string { return string(r) }
