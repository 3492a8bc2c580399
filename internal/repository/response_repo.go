package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"persona-lab/internal/domain"
)

type ResponseRepository interface {
	Create(ctx context.Context, response domain.Response) error
	// ListLatestByRole devuelve la última respuesta por pregunta y respondente
	// de un rol: una corrección es una Response nueva que supersede la vieja.
	ListLatestByRole(ctx context.Context, sessionID, role string) ([]domain.Response, error)
	CountValidators(ctx context.Context, sessionID string) (int, error)
	// SearchSimilarContext busca respuestas con contexto libre parecido usando
	// el embedding producido por el paso externo de extracción.
	SearchSimilarContext(ctx context.Context, sessionID string, embedding pgvector.Vector, k int) ([]domain.Response, error)
}

type PgResponseRepository struct {
	pool *pgxpool.Pool
}

func NewPgResponseRepository(pool *pgxpool.Pool) *PgResponseRepository {
	return &PgResponseRepository{pool: pool}
}

func (r *PgResponseRepository) Create(ctx context.Context, response domain.Response) error {
	valueJSON, err := json.Marshal(response.Value)
	if err != nil {
		return fmt.Errorf("marshal response value: %w", err)
	}

	var embedding interface{}
	if response.ContextEmbedding != nil {
		embedding = *response.ContextEmbedding
	}

	const query = `
		INSERT INTO responses (id, session_id, respondent_id, role, question_id, value, is_unsure, confidence, context, context_embedding, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.pool.Exec(ctx, query,
		response.ID,
		response.SessionID,
		response.RespondentID,
		response.Role,
		response.QuestionID,
		valueJSON,
		response.IsUnsure,
		response.Confidence,
		response.Context,
		embedding,
		response.CreatedAt,
	)
	return err
}

func (r *PgResponseRepository) ListLatestByRole(ctx context.Context, sessionID, role string) ([]domain.Response, error) {
	const query = `
		SELECT DISTINCT ON (respondent_id, question_id)
			id, session_id, respondent_id, role, question_id, value, is_unsure, confidence, context, created_at
		FROM responses
		WHERE session_id = $1 AND role = $2
		ORDER BY respondent_id, question_id, created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, sessionID, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []domain.Response
	for rows.Next() {
		var resp domain.Response
		var valueJSON []byte
		var context sql.NullString

		if err := rows.Scan(
			&resp.ID,
			&resp.SessionID,
			&resp.RespondentID,
			&resp.Role,
			&resp.QuestionID,
			&valueJSON,
			&resp.IsUnsure,
			&resp.Confidence,
			&context,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(valueJSON) > 0 {
			if err := json.Unmarshal(valueJSON, &resp.Value); err != nil {
				return nil, fmt.Errorf("unmarshal response value: %w", err)
			}
		}
		if context.Valid {
			resp.Context = context.String
		}
		responses = append(responses, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *PgResponseRepository) CountValidators(ctx context.Context, sessionID string) (int, error) {
	const query = `
		SELECT COUNT(DISTINCT respondent_id)
		FROM responses
		WHERE session_id = $1 AND role = $2
	`
	var count int
	err := r.pool.QueryRow(ctx, query, sessionID, domain.RespondentRoleValidator).Scan(&count)
	return count, err
}

func (r *PgResponseRepository) SearchSimilarContext(ctx context.Context, sessionID string, embedding pgvector.Vector, k int) ([]domain.Response, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT id, session_id, respondent_id, role, question_id, value, is_unsure, confidence, context, created_at
		FROM responses
		WHERE session_id = $1 AND context_embedding IS NOT NULL
		ORDER BY context_embedding <-> $2
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, sessionID, embedding, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []domain.Response
	for rows.Next() {
		var resp domain.Response
		var valueJSON []byte
		var context sql.NullString

		if err := rows.Scan(
			&resp.ID,
			&resp.SessionID,
			&resp.RespondentID,
			&resp.Role,
			&resp.QuestionID,
			&valueJSON,
			&resp.IsUnsure,
			&resp.Confidence,
			&context,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(valueJSON) > 0 {
			if err := json.Unmarshal(valueJSON, &resp.Value); err != nil {
				return nil, fmt.Errorf("unmarshal response value: %w", err)
			}
		}
		if context.Valid {
			resp.Context = context.String
		}
		responses = append(responses, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}
