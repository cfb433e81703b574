package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, role, token_version, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	code, err := u.Role().Code()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID(), u.Name(), u.Email(), u.Password().Hash(), code, u.TokenVersion(),
		u.CreatedAt(), u.UpdatedAt(),
	)
	return mapWriteError(err)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		id, name, email, hash string
		roleCode, version     int
		createdAt, updatedAt  time.Time
	)
	if err := row.Scan(&id, &name, &email, &hash, &roleCode, &version, &createdAt, &updatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}

	role, err := domain.RoleFromCode(roleCode)
	if err != nil {
		return domain.User{}, err
	}

	return domain.RestoreUser(id, name, email, hash, role, version, createdAt.UTC(), updatedAt.UTC()), nil
}
