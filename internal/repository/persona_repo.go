package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"persona-lab/internal/domain"
)

type PersonaRepository interface {
	Upsert(ctx context.Context, persona domain.PersonaDisplay) error
	GetBySessionID(ctx context.Context, sessionID string) (domain.PersonaDisplay, error)
}

type PgPersonaRepository struct {
	pool *pgxpool.Pool
}

func NewPgPersonaRepository(pool *pgxpool.Pool) *PgPersonaRepository {
	return &PgPersonaRepository{pool: pool}
}

func (r *PgPersonaRepository) Upsert(ctx context.Context, persona domain.PersonaDisplay) error {
	profileJSON, err := json.Marshal(persona)
	if err != nil {
		return fmt.Errorf("marshal persona: %w", err)
	}

	const query = `
		INSERT INTO personas (id, session_id, profile, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id)
		DO UPDATE SET
			profile = EXCLUDED.profile,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.pool.Exec(ctx, query,
		persona.ID,
		persona.SessionID,
		profileJSON,
		persona.CreatedAt,
		persona.UpdatedAt,
	)
	return err
}

func (r *PgPersonaRepository) GetBySessionID(ctx context.Context, sessionID string) (domain.PersonaDisplay, error) {
	const query = `
		SELECT profile
		FROM personas
		WHERE session_id = $1
	`
	var profileJSON []byte
	if err := r.pool.QueryRow(ctx, query, sessionID).Scan(&profileJSON); err != nil {
		return domain.PersonaDisplay{}, err
	}

	var persona domain.PersonaDisplay
	if err := json.Unmarshal(profileJSON, &persona); err != nil {
		return domain.PersonaDisplay{}, fmt.Errorf("unmarshal persona: %w", err)
	}
	return persona, nil
}
