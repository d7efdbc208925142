package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/accadex/accadex/internal/domain/entity"
	"github.com/accadex/accadex/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password, academy, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, u.Name, u.Email, u.Password, u.Academy, string(u.Role), u.CreatedAt)

	if err := row.Scan(&u.ID); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validUUID(id) {
		return nil, repository.ErrNotFound
	}
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id::text, name, email, password, academy, role, created_at
		FROM users
		WHERE id = $1::uuid
	`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id::text, name, email, password, academy, role, created_at
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Academy, &role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.Role = entity.Role(role)
	return u, nil
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users`)
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
