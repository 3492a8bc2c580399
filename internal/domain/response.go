package domain

import (
	"time"

	pgvector "github.com/pgvector/pgvector-go"
)

const (
	RespondentRoleFounder   = "founder"
	RespondentRoleValidator = "validator"
)

// Response es una respuesta única a una pregunta. Es inmutable: una corrección
// se modela como una nueva Response para la misma pregunta, nunca como edición.
// Value es el escape sin tipar del borde del sistema; la forma real depende
// del tipo de la pregunta (primitivo, lista de ids o mapa blank-id -> texto).
type Response struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	RespondentID string    `json:"respondent_id"`
	Role         string    `json:"role"`
	QuestionID   string    `json:"question_id"`
	Value        any       `json:"value"`
	IsUnsure     bool      `json:"is_unsure"`
	Confidence   int       `json:"confidence"` // 0-100, solo significativo si IsUnsure es false
	Context      string    `json:"context,omitempty"`
	// Embedding opcional del texto de contexto, producido por el paso externo
	// de extracción; el motor de scoring nunca lo lee.
	ContextEmbedding *pgvector.Vector `json:"-"`
	CreatedAt        time.Time        `json:"created_at"`
}

// HasValue indica si la respuesta trae un valor definido.
func (r Response) HasValue() bool {
	return r.Value != nil
}
