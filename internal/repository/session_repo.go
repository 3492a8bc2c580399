package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"persona-lab/internal/domain"
)

type SessionRepository interface {
	Create(ctx context.Context, session domain.ValidationSession) error
	GetByID(ctx context.Context, id string) (domain.ValidationSession, error)
	GetByShareToken(ctx context.Context, token string) (domain.ValidationSession, error)
}

type PgSessionRepository struct {
	pool *pgxpool.Pool
}

func NewPgSessionRepository(pool *pgxpool.Pool) *PgSessionRepository {
	return &PgSessionRepository{pool: pool}
}

func (r *PgSessionRepository) Create(ctx context.Context, session domain.ValidationSession) error {
	const query = `
		INSERT INTO validation_sessions (id, founder_name, founder_email, product_name, share_token, share_password_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.FounderName,
		session.FounderEmail,
		session.ProductName,
		session.ShareToken,
		session.SharePasswordHash,
		session.ExpiresAt,
		session.CreatedAt,
	)
	return err
}

func (r *PgSessionRepository) GetByID(ctx context.Context, id string) (domain.ValidationSession, error) {
	const query = `
		SELECT id, founder_name, founder_email, product_name, share_token, share_password_hash, expires_at, created_at
		FROM validation_sessions
		WHERE id = $1
	`
	return r.scanOne(ctx, query, id)
}

func (r *PgSessionRepository) GetByShareToken(ctx context.Context, token string) (domain.ValidationSession, error) {
	const query = `
		SELECT id, founder_name, founder_email, product_name, share_token, share_password_hash, expires_at, created_at
		FROM validation_sessions
		WHERE share_token = $1
	`
	return r.scanOne(ctx, query, token)
}

func (r *PgSessionRepository) scanOne(ctx context.Context, query, arg string) (domain.ValidationSession, error) {
	var session domain.ValidationSession
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&session.ID,
		&session.FounderName,
		&session.FounderEmail,
		&session.ProductName,
		&session.ShareToken,
		&session.SharePasswordHash,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ValidationSession{}, err
	}
	return session, err
}
