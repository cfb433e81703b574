package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories hang off it so a transaction can hand out
// the same repos bound to the tx, and nobody opens a tx inside a tx.
type Store interface {
	Users() Users
	Projects() Projects
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error

	// LockUsers holds off every other writer of the users table until this
	// transaction ends. Call it before reading anything the write depends on.
	LockUsers(ctx context.Context) error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the address exactly, case included.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Projects interface {
	CreateProject(ctx context.Context, p domain.Project) error

	// AddMember returns ErrAlreadyExists if the user is already a member.
	AddMember(ctx context.Context, m domain.ProjectMember) error

	// ListProjectsByMember pages through the user's projects, newest first.
	ListProjectsByMember(ctx context.Context, userID string, offset, limit int) ([]domain.Project, error)

	CountProjectsByMember(ctx context.Context, userID string) (int, error)

	GetProjectByID(ctx context.Context, id string) (domain.Project, error)
}

type Tasks interface {
	CreateTask(ctx context.Context, t domain.Task) error

	// ListTasks returns every task, newest first.
	ListTasks(ctx context.Context) ([]domain.Task, error)
}
