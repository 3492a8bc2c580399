package service

import "persona-lab/internal/domain"

// CalculateQuestionAlignment compara la referencia contra cada candidato y
// agrega el resultado por pregunta. Una lista vacía de candidatos devuelve
// ceros; no es un fallo, solo una pregunta sin validadores todavía.
func (e AlignmentEngine) CalculateQuestionAlignment(questionID string, reference any, candidates []any) domain.QuestionAlignment {
	stats := domain.QuestionAlignment{QuestionID: questionID, Total: len(candidates)}
	if len(candidates) == 0 {
		return stats
	}

	sum := 0
	for _, candidate := range candidates {
		result := e.CalculateAlignment(questionID, reference, candidate)
		sum += result.Score
		if result.Score >= 70 {
			stats.MatchCount++
		}
	}
	stats.AverageScore = roundHalfUp(float64(sum) / float64(len(candidates)))
	return stats
}

// CalculateOverallAlignment combina los promedios por pregunta en un score de
// sesión. El peso de cada pregunta es min(respuestas, 5) para acotar la
// influencia de una pregunta muy respondida; preguntas sin respuestas quedan
// fuera. Input vacío devuelve 0.
func (e AlignmentEngine) CalculateOverallAlignment(perQuestion []domain.QuestionAlignment) int {
	var weightedSum, totalWeight float64
	for _, stats := range perQuestion {
		if stats.Total == 0 {
			continue
		}
		weight := float64(stats.Total)
		if weight > 5 {
			weight = 5
		}
		weightedSum += float64(stats.AverageScore) * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}
	return clampScore(roundHalfUp(weightedSum / totalWeight))
}
