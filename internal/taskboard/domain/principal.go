package domain

// Principal is the caller of a request, rebuilt from a verified access token.
// It is never loaded from storage, so a role change only shows up once the
// user's access token is reissued.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

func (p Principal) HasRole(r Role) bool { return p.Role.Is(r) }
