package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"persona-lab/internal/domain"
	"persona-lab/internal/llm"
)

// ExtractionService es el puente con el paso externo de personalización: pide
// al LLM un nombre de display para la persona, redacciones contextualizadas de
// preguntas y embeddings del contexto libre. Todo lo que devuelve es opcional:
// el motor de scoring funciona igual sin este servicio.
type ExtractionService struct {
	client llm.LLMClient
	logger *zap.Logger
}

func NewExtractionService(client llm.LLMClient, logger *zap.Logger) *ExtractionService {
	return &ExtractionService{client: client, logger: logger}
}

// ExtractPersonaName propone un nombre de display a partir del perfil armado.
// Devuelve cadena vacía si el LLM no está disponible o no responde algo usable.
func (s *ExtractionService) ExtractPersonaName(ctx context.Context, persona domain.PersonaDisplay) string {
	if s == nil || s.client == nil {
		return ""
	}

	prompt := fmt.Sprintf(
		"Suggest a short display name for this customer persona. Respond only with JSON {\"display_name\": \"...\"}.\n"+
			"Emotional driver: %s\nLifestyle: %s\nQuote: %s\nFrustrations: %s",
		persona.Jobs.Emotional,
		persona.Demographics.Lifestyle,
		persona.Quote,
		strings.Join(persona.Frustrations, "; "),
	)

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("persona name extraction failed", zap.Error(err))
		}
		return ""
	}

	var parsed struct {
		DisplayName string `json:"display_name"`
	}
	object := extractFirstJSONObject(raw)
	if object == "" {
		return ""
	}
	if err := json.Unmarshal([]byte(object), &parsed); err != nil {
		return ""
	}
	return strings.TrimSpace(parsed.DisplayName)
}

// CustomizeQuestionText pide una redacción de la pregunta contextualizada al
// producto del founder. Ante cualquier fallo devuelve el texto original.
func (s *ExtractionService) CustomizeQuestionText(ctx context.Context, question domain.Question, productName string) string {
	if s == nil || s.client == nil || strings.TrimSpace(productName) == "" {
		return question.Text
	}

	prompt := fmt.Sprintf(
		"Rewrite this customer research question so it mentions the product naturally. Keep it one sentence. Respond only with JSON {\"text\": \"...\"}.\n"+
			"Product: %s\nQuestion: %s",
		productName,
		question.Text,
	)

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return question.Text
	}
	var parsed struct {
		Text string `json:"text"`
	}
	object := extractFirstJSONObject(raw)
	if object == "" {
		return question.Text
	}
	if err := json.Unmarshal([]byte(object), &parsed); err != nil || strings.TrimSpace(parsed.Text) == "" {
		return question.Text
	}
	return strings.TrimSpace(parsed.Text)
}

// EmbedContext calcula el embedding del contexto libre de una respuesta.
// Devuelve nil si no hay texto o si el servicio externo falla.
func (s *ExtractionService) EmbedContext(ctx context.Context, text string) *pgvector.Vector {
	if s == nil || s.client == nil || strings.TrimSpace(text) == "" {
		return nil
	}
	values, err := s.client.Embed(ctx, text)
	if err != nil || len(values) == 0 {
		if err != nil && s.logger != nil {
			s.logger.Warn("context embedding failed", zap.Error(err))
		}
		return nil
	}
	vector := pgvector.NewVector(values)
	return &vector
}

// extractFirstJSONObject recorta el primer objeto JSON balanceado de una
// respuesta del LLM, que suele venir envuelta en texto o fences de markdown.
func extractFirstJSONObject(input string) string {
	start := strings.IndexByte(input, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(input); i++ {
		ch := input[i]
		switch {
		case escaped:
			escaped = false
		case inString && ch == '\\':
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
			// dentro de un string solo interesan escapes y el cierre
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}
	return ""
}
