package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"persona-lab/internal/domain"
	"persona-lab/internal/repository"
	"persona-lab/internal/schema"
)

// ClaritySnapshot es la foto de completitud y confianza del founder.
type ClaritySnapshot struct {
	Clarity       domain.PersonaClarity `json:"clarity"`
	AvgConfidence int                   `json:"avg_confidence"`
	UnsureCount   int                   `json:"unsure_count"`
}

// ValidationService orquesta persistencia y engines puros: recibe respuestas,
// reconstruye el perfil del founder y deriva claridad y alineación on demand.
type ValidationService struct {
	logger    *zap.Logger
	responses repository.ResponseRepository
	personas  repository.PersonaRepository
	alignment AlignmentEngine
	clarity   ClarityEngine
	builder   PersonaBuilder
	extractor *ExtractionService
	cache     ReportCache
	cacheTTL  time.Duration
}

func NewValidationService(
	logger *zap.Logger,
	responses repository.ResponseRepository,
	personas repository.PersonaRepository,
	extractor *ExtractionService,
	cache ReportCache,
	cacheTTL time.Duration,
) *ValidationService {
	if cache == nil {
		cache = NewMemoryReportCache()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &ValidationService{
		logger:    logger,
		responses: responses,
		personas:  personas,
		alignment: NewAlignmentEngine(),
		clarity:   NewClarityEngine(),
		builder:   NewPersonaBuilder(),
		extractor: extractor,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// SubmitResponse persiste una respuesta nueva. Una respuesta repetida para la
// misma pregunta no edita nada: supersede a la anterior al leer. El reporte
// cacheado de la sesión queda invalidado.
func (s *ValidationService) SubmitResponse(ctx context.Context, response domain.Response) (domain.Response, error) {
	if _, ok := schema.QuestionByID(response.QuestionID); !ok {
		return domain.Response{}, fmt.Errorf("unknown question %q", response.QuestionID)
	}
	if response.Role != domain.RespondentRoleFounder && response.Role != domain.RespondentRoleValidator {
		return domain.Response{}, fmt.Errorf("unknown respondent role %q", response.Role)
	}

	response.ID = uuid.NewString()
	response.CreatedAt = time.Now().UTC()
	if response.Context != "" {
		response.ContextEmbedding = s.extractor.EmbedContext(ctx, response.Context)
	}

	if err := s.responses.Create(ctx, response); err != nil {
		return domain.Response{}, fmt.Errorf("store response: %w", err)
	}
	s.cache.Invalidate(ctx, response.SessionID)

	if response.Role == domain.RespondentRoleFounder {
		if _, err := s.RebuildPersona(ctx, response.SessionID); err != nil && s.logger != nil {
			s.logger.Warn("persona rebuild failed", zap.String("session_id", response.SessionID), zap.Error(err))
		}
	}
	return response, nil
}

// RebuildPersona reconstruye el PersonaDisplay desde cero con las últimas
// respuestas del founder y lo persiste. El perfil es un valor derivado: la
// fuente de verdad siempre son las Responses.
func (s *ValidationService) RebuildPersona(ctx context.Context, sessionID string) (domain.PersonaDisplay, error) {
	responses, err := s.responses.ListLatestByRole(ctx, sessionID, domain.RespondentRoleFounder)
	if err != nil {
		return domain.PersonaDisplay{}, fmt.Errorf("list founder responses: %w", err)
	}

	now := time.Now().UTC()
	persona := domain.PersonaDisplay{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Orden del banco para que el resultado sea determinista.
	byQuestion := make(map[string]domain.Response, len(responses))
	for _, r := range responses {
		byQuestion[r.QuestionID] = r
	}
	for _, q := range schema.Questions() {
		if r, ok := byQuestion[q.ID]; ok {
			s.builder.Apply(&persona, r)
		}
	}

	persona.ExtractedName = s.extractor.ExtractPersonaName(ctx, persona)
	persona.Archetype = ResolveArchetype(persona.ExtractedName, persona)

	if err := s.personas.Upsert(ctx, persona); err != nil {
		return domain.PersonaDisplay{}, fmt.Errorf("upsert persona: %w", err)
	}
	return persona, nil
}

// ClaritySnapshot calcula la foto de claridad del founder para una sesión.
func (s *ValidationService) ClaritySnapshot(ctx context.Context, sessionID string) (ClaritySnapshot, error) {
	responses, err := s.responses.ListLatestByRole(ctx, sessionID, domain.RespondentRoleFounder)
	if err != nil {
		return ClaritySnapshot{}, fmt.Errorf("list founder responses: %w", err)
	}
	return ClaritySnapshot{
		Clarity:       s.clarity.CalculateClarity(responses),
		AvgConfidence: s.clarity.CalculateAvgConfidence(responses),
		UnsureCount:   s.clarity.UnsureCount(responses),
	}, nil
}

// ValidationReport deriva el reporte de alineación de la sesión, cacheado.
func (s *ValidationService) ValidationReport(ctx context.Context, sessionID string) (domain.ValidationReport, error) {
	if report, ok := s.cache.Get(ctx, sessionID); ok {
		return report, nil
	}

	founder, err := s.responses.ListLatestByRole(ctx, sessionID, domain.RespondentRoleFounder)
	if err != nil {
		return domain.ValidationReport{}, fmt.Errorf("list founder responses: %w", err)
	}
	validators, err := s.responses.ListLatestByRole(ctx, sessionID, domain.RespondentRoleValidator)
	if err != nil {
		return domain.ValidationReport{}, fmt.Errorf("list validator responses: %w", err)
	}

	references := make(map[string]domain.Response, len(founder))
	for _, r := range founder {
		if r.HasValue() {
			references[r.QuestionID] = r
		}
	}
	candidates := make(map[string][]any)
	for _, r := range validators {
		if r.HasValue() {
			candidates[r.QuestionID] = append(candidates[r.QuestionID], r.Value)
		}
	}

	report := domain.ValidationReport{
		SessionID:   sessionID,
		GeneratedAt: time.Now().UTC(),
	}
	for _, q := range schema.Questions() {
		reference, ok := references[q.ID]
		if !ok {
			continue
		}
		report.Questions = append(report.Questions, s.alignment.CalculateQuestionAlignment(q.ID, reference.Value, candidates[q.ID]))
	}
	report.OverallScore = s.alignment.CalculateOverallAlignment(report.Questions)

	if count, err := s.responses.CountValidators(ctx, sessionID); err == nil {
		report.ValidatorCount = count
	}

	s.cache.Set(ctx, sessionID, report, s.cacheTTL)
	return report, nil
}

// SimilarContext busca respuestas de la sesión con contexto libre parecido al
// texto dado, vía embeddings. Sin embedding disponible devuelve lista vacía.
func (s *ValidationService) SimilarContext(ctx context.Context, sessionID, text string, k int) ([]domain.Response, error) {
	embedding := s.extractor.EmbedContext(ctx, text)
	if embedding == nil {
		return nil, nil
	}
	return s.responses.SearchSimilarContext(ctx, sessionID, *embedding, k)
}
