package service

import (
	"persona-lab/internal/domain"
	"persona-lab/internal/schema"
)

// ClarityEngine puntúa qué tan completo y confiado es el perfil propio del
// founder, independiente de cualquier comparación con validadores.
type ClarityEngine struct {
	lookup func(id string) (domain.Question, bool)
}

// NewClarityEngine crea un engine que resuelve preguntas en el banco estático.
func NewClarityEngine() ClarityEngine {
	return ClarityEngine{lookup: schema.QuestionByID}
}

// Cantidad fija de preguntas que una categoría necesita para claridad total.
var clarityQuestionCounts = map[domain.QuestionCategory]float64{
	domain.CategoryIdentity:     4,
	domain.CategoryGoals:        3,
	domain.CategoryFrustrations: 3,
	domain.CategoryEmotional:    3,
	domain.CategoryBehaviors:    3,
}

// CalculateClarity acumula 100/N puntos por cada respuesta definida y segura
// de una categoría, con N fijo por categoría. Social se pliega en Emotional;
// AntiPatterns nunca aporta. Cada categoría se recorta a 100: responder de
// más no supera el 100% de claridad.
func (e ClarityEngine) CalculateClarity(responses []domain.Response) domain.PersonaClarity {
	lookup := e.lookup
	if lookup == nil {
		lookup = schema.QuestionByID
	}

	scores := map[domain.QuestionCategory]float64{}
	for _, r := range responses {
		if r.IsUnsure || !r.HasValue() {
			continue
		}
		question, ok := lookup(r.QuestionID)
		if !ok {
			continue
		}
		category := question.Category
		if category == domain.CategorySocial {
			category = domain.CategoryEmotional
		}
		count, scored := clarityQuestionCounts[category]
		if !scored {
			continue
		}
		scores[category] += 100 / count
	}

	clamped := func(category domain.QuestionCategory) int {
		score := scores[category]
		if score > 100 {
			score = 100
		}
		return roundHalfUp(score)
	}

	clarity := domain.PersonaClarity{
		Identity:     clamped(domain.CategoryIdentity),
		Goals:        clamped(domain.CategoryGoals),
		Frustrations: clamped(domain.CategoryFrustrations),
		Emotional:    clamped(domain.CategoryEmotional),
		Behaviors:    clamped(domain.CategoryBehaviors),
	}
	clarity.Overall = roundHalfUp(float64(clarity.Identity+clarity.Goals+clarity.Frustrations+clarity.Emotional+clarity.Behaviors) / 5)
	return clarity
}

// CalculateAvgConfidence promedia la confianza auto-reportada de las
// respuestas definidas y seguras; 0 si no hay ninguna.
func (e ClarityEngine) CalculateAvgConfidence(responses []domain.Response) int {
	sum, count := 0, 0
	for _, r := range responses {
		if r.IsUnsure || !r.HasValue() {
			continue
		}
		sum += r.Confidence
		count++
	}
	if count == 0 {
		return 0
	}
	return roundHalfUp(float64(sum) / float64(count))
}

// UnsureCount cuenta las respuestas marcadas como inseguras.
func (e ClarityEngine) UnsureCount(responses []domain.Response) int {
	count := 0
	for _, r := range responses {
		if r.IsUnsure {
			count++
		}
	}
	return count
}
