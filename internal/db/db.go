package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"persona-lab/internal/config"
)

// NewPool construye y devuelve un pool de conexiones configurado.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Configuración razonable para ambientes iniciales.
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 1
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	return pool.Ping(ctx)
}

const schemaDDL = `
CREATE EXTENSION IF NOT EXISTS vector;

CREATE TABLE IF NOT EXISTS validation_sessions (
	id UUID PRIMARY KEY,
	founder_name TEXT NOT NULL,
	founder_email TEXT NOT NULL DEFAULT '',
	product_name TEXT NOT NULL DEFAULT '',
	share_token UUID NOT NULL UNIQUE,
	share_password_hash TEXT NOT NULL,
	expires_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS responses (
	id UUID PRIMARY KEY,
	session_id UUID NOT NULL REFERENCES validation_sessions(id) ON DELETE CASCADE,
	respondent_id UUID NOT NULL,
	role TEXT NOT NULL,
	question_id TEXT NOT NULL,
	value JSONB,
	is_unsure BOOLEAN NOT NULL DEFAULT FALSE,
	confidence INT NOT NULL DEFAULT 0,
	context TEXT,
	context_embedding vector(1536),
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_responses_session_role ON responses (session_id, role, respondent_id, question_id, created_at DESC);

CREATE TABLE IF NOT EXISTS personas (
	id UUID PRIMARY KEY,
	session_id UUID NOT NULL UNIQUE REFERENCES validation_sessions(id) ON DELETE CASCADE,
	profile JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`

// Migrate aplica el esquema mínimo. Las Responses nunca se editan en sitio:
// una corrección es una fila nueva y la última por pregunta gana al leer.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaDDL)
	return err
}
