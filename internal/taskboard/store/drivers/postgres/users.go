package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/jackc/pgx/v5"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, name, email, password_hash, role, token_version, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	code, err := u.Role().Code()
	if err != nil {
		return err
	}

	_, err = r.q.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID(), u.Name(), u.Email(), u.Password().Hash(), code, u.TokenVersion(),
		u.CreatedAt(), u.UpdatedAt(),
	)
	return mapWriteError(err)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
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
