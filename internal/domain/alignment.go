package domain

import "time"

// MatchType resume un score de alineación en un bucket grueso para display.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
	MatchNone    MatchType = "none"
)

// AlignmentResult es el resultado derivado de comparar una respuesta candidata
// contra la referencia del founder. Nunca se persiste; se recalcula on demand.
// Score siempre cae en [0,100], incluso con input malformado.
type AlignmentResult struct {
	Score       int       `json:"score"`
	MatchType   MatchType `json:"match_type"`
	Explanation string    `json:"explanation"`
}

// QuestionAlignment agrega la alineación de todos los candidatos de una pregunta.
// MatchCount cuenta candidatos con score >= 70; Total es el número de candidatos.
type QuestionAlignment struct {
	QuestionID   string `json:"question_id"`
	AverageScore int    `json:"average_score"`
	MatchCount   int    `json:"match_count"`
	Total        int    `json:"total"`
}

// PersonaClarity es el snapshot de completitud del perfil del founder.
// Social se pliega en Emotional; AntiPatterns nunca aporta a claridad.
type PersonaClarity struct {
	Overall      int `json:"overall"`
	Identity     int `json:"identity"`
	Goals        int `json:"goals"`
	Frustrations int `json:"frustrations"`
	Emotional    int `json:"emotional"`
	Behaviors    int `json:"behaviors"`
}

// ValidationReport es el reporte derivado de una sesión completa.
type ValidationReport struct {
	SessionID      string              `json:"session_id"`
	OverallScore   int                 `json:"overall_score"`
	Questions      []QuestionAlignment `json:"questions"`
	ValidatorCount int                 `json:"validator_count"`
	GeneratedAt    time.Time           `json:"generated_at"`
}
