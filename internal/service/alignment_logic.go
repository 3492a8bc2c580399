package service

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"persona-lab/internal/domain"
	"persona-lab/internal/schema"
)

// AlignmentEngine compara la respuesta de un validador contra la suposición
// del founder. Es puro y sin estado: nunca lanza panic ni devuelve error;
// el input malformado degrada al resultado de menor confianza.
type AlignmentEngine struct {
	lookup func(id string) (domain.Question, bool)
}

// NewAlignmentEngine crea un engine que resuelve preguntas en el banco estático.
func NewAlignmentEngine() AlignmentEngine {
	return AlignmentEngine{lookup: schema.QuestionByID}
}

// Pesos posicionales del ranking por índice de la lista de referencia.
// Posiciones posteriores valen 1.
var rankingWeights = []float64{30, 25, 20, 15, 7, 3}

// Stopwords fijas para la comparación de escenarios de texto libre.
var scenarioStopwords = map[string]struct{}{
	"the": {}, "and": {}, "that": {}, "this": {}, "with": {}, "from": {},
	"they": {}, "their": {}, "them": {}, "have": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "about": {}, "because": {}, "when": {},
	"what": {}, "where": {}, "which": {}, "while": {}, "there": {},
	"been": {}, "being": {}, "into": {}, "more": {}, "most": {}, "other": {},
	"some": {}, "such": {}, "than": {}, "then": {}, "very": {}, "just": {},
	"also": {}, "like": {}, "want": {}, "need": {}, "really": {},
}

// CalculateAlignment calcula la similitud entre referencia y candidato usando
// la estrategia del tipo de la pregunta. Pregunta desconocida o valores fuera
// de contrato degradan a score 0 / match none en vez de fallar.
func (e AlignmentEngine) CalculateAlignment(questionID string, reference, candidate any) domain.AlignmentResult {
	lookup := e.lookup
	if lookup == nil {
		lookup = schema.QuestionByID
	}
	question, ok := lookup(questionID)
	if !ok {
		return domain.AlignmentResult{Score: 0, MatchType: domain.MatchNone, Explanation: "unknown question"}
	}

	switch question.Type {
	case domain.QuestionTypeExactChoice:
		return compareExactChoice(reference, candidate)
	case domain.QuestionTypeSlider:
		return compareSlider(reference, candidate)
	case domain.QuestionTypeRanking:
		return compareRanking(reference, candidate)
	case domain.QuestionTypeMultiSelect:
		return compareMultiSelect(reference, candidate)
	case domain.QuestionTypeFillBlank:
		return compareFillBlank(reference, candidate)
	case domain.QuestionTypeScenario:
		return compareScenario(reference, candidate)
	default:
		// Tipo no reconocido: igualdad estructural, misma semántica que exact choice.
		return compareExactChoice(reference, candidate)
	}
}

func compareExactChoice(reference, candidate any) domain.AlignmentResult {
	if reflect.DeepEqual(reference, candidate) {
		return domain.AlignmentResult{Score: 100, MatchType: domain.MatchExact, Explanation: "respondent confirmed the assumption"}
	}
	return domain.AlignmentResult{Score: 0, MatchType: domain.MatchNone, Explanation: "respondent chose a different option"}
}

func compareSlider(reference, candidate any) domain.AlignmentResult {
	ref := asSliderValue(reference)
	cand := asSliderValue(candidate)
	diff := math.Abs(ref - cand)

	var score int
	var match domain.MatchType
	switch {
	case diff <= 10:
		score, match = 100, domain.MatchExact
	case diff <= 25:
		// Decae lineal de 100 a 70.
		score, match = roundHalfUp(100-(diff-10)*2), domain.MatchPartial
	case diff <= 50:
		// Decae lineal de 70 a 45.
		score, match = roundHalfUp(70-(diff-25)), domain.MatchPartial
	default:
		score, match = roundHalfUp(math.Max(0, 45-(diff-50))), domain.MatchNone
	}

	return domain.AlignmentResult{
		Score:       clampScore(score),
		MatchType:   match,
		Explanation: fmt.Sprintf("slider values differ by %d points", int(diff)),
	}
}

func compareRanking(reference, candidate any) domain.AlignmentResult {
	refIDs := asIDList(reference)
	candIDs := asIDList(candidate)
	if refIDs == nil || candIDs == nil {
		return domain.AlignmentResult{Score: 0, MatchType: domain.MatchNone, Explanation: "ranking values must be ordered lists"}
	}

	candIndex := make(map[string]int, len(candIDs))
	for i, id := range candIDs {
		if _, seen := candIndex[id]; !seen {
			candIndex[id] = i
		}
	}

	var earned, max float64
	for i, id := range refIDs {
		weight := 1.0
		if i < len(rankingWeights) {
			weight = rankingWeights[i]
		}
		max += weight

		j, present := candIndex[id]
		if !present {
			continue // el peso completo igual cuenta en el máximo
		}
		switch distance := absInt(i - j); {
		case distance == 0:
			earned += weight
		case distance == 1:
			earned += weight * 0.7
		case distance == 2:
			earned += weight * 0.4
		}
	}

	if max == 0 {
		return domain.AlignmentResult{Score: 0, MatchType: domain.MatchNone, Explanation: "reference ranking is empty"}
	}

	score := clampScore(roundHalfUp(earned / max * 100))
	return domain.AlignmentResult{
		Score:       score,
		MatchType:   matchTypeByThresholds(score, 80, 50),
		Explanation: fmt.Sprintf("ranking overlap earned %d of 100 possible points", score),
	}
}

func compareMultiSelect(reference, candidate any) domain.AlignmentResult {
	refIDs := asIDList(reference)
	candIDs := asIDList(candidate)
	if refIDs == nil || candIDs == nil {
		return domain.AlignmentResult{Score: 0, MatchType: domain.MatchNone, Explanation: "multi-select values must be lists of option ids"}
	}

	refSet := toSet(refIDs)
	candSet := toSet(candIDs)

	intersection := 0
	for id := range refSet {
		if _, ok := candSet[id]; ok {
			intersection++
		}
	}
	union := len(refSet) + len(candSet) - intersection

	score := 0
	if union > 0 {
		score = clampScore(roundHalfUp(float64(intersection) / float64(union) * 100))
	}
	return domain.AlignmentResult{
		Score:       score,
		MatchType:   matchTypeByThresholds(score, 70, 40),
		Explanation: fmt.Sprintf("%d shared selections", intersection),
	}
}

func compareFillBlank(reference, candidate any) domain.AlignmentResult {
	refBlanks := asStringMap(reference)
	candBlanks := asStringMap(candidate)
	if refBlanks == nil || candBlanks == nil {
		return domain.AlignmentResult{Score: 0, MatchType: domain.MatchNone, Explanation: "fill-blank values must be maps of blank id to text"}
	}
	if len(refBlanks) == 0 {
		return domain.AlignmentResult{Score: 0, MatchType: domain.MatchNone, Explanation: "reference has no blanks to compare"}
	}

	var exact, partial int
	for blankID, refText := range refBlanks {
		ref := normalizeBlank(refText)
		cand := normalizeBlank(candBlanks[blankID])
		switch {
		case ref != "" && ref == cand:
			exact++
		case ref != "" && cand != "" && shareLongToken(ref, cand):
			partial++
		}
	}

	score := clampScore(roundHalfUp((float64(exact) + 0.5*float64(partial)) / float64(len(refBlanks)) * 100))
	return domain.AlignmentResult{
		Score:       score,
		MatchType:   matchTypeByThresholds(score, 70, 40),
		Explanation: fmt.Sprintf("%d exact and %d partial blank matches", exact, partial),
	}
}

func compareScenario(reference, candidate any) domain.AlignmentResult {
	refText := strings.TrimSpace(asText(reference))
	candText := strings.TrimSpace(asText(candidate))
	if refText == "" || candText == "" {
		return domain.AlignmentResult{Score: 50, MatchType: domain.MatchPartial, Explanation: "open-ended, no comparison possible"}
	}

	refTokens := scenarioTokens(refText)
	candTokens := scenarioTokens(candText)
	smaller := len(refTokens)
	if len(candTokens) < smaller {
		smaller = len(candTokens)
	}
	if smaller == 0 {
		return domain.AlignmentResult{Score: 50, MatchType: domain.MatchPartial, Explanation: "open-ended, no comparison possible"}
	}

	overlap := 0
	for token := range refTokens {
		if _, ok := candTokens[token]; ok {
			overlap++
		}
	}

	raw := roundHalfUp(float64(overlap) / float64(smaller) * 100)
	if raw > 100 {
		raw = 100
	}
	// El texto libre es subjetivo: nunca se puntúa como desacuerdo total.
	score := raw
	if score < 40 {
		score = 40
	}

	match := domain.MatchNone
	if score >= 60 {
		match = domain.MatchPartial
	}
	return domain.AlignmentResult{
		Score:       score,
		MatchType:   match,
		Explanation: fmt.Sprintf("%d shared key terms", overlap),
	}
}

// --- coerción del valor sin tipar que llega del borde ---

// asSliderValue coerce a número; input no numérico usa el punto medio 50.
func asSliderValue(value any) float64 {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 50
		}
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return n
		}
	}
	return 50
}

// asIDList coerce a lista de ids; los elementos pueden venir envueltos en
// objetos con campo "id". Devuelve nil si el valor no es una lista.
func asIDList(value any) []string {
	var raw []any
	switch v := value.(type) {
	case []any:
		raw = v
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		switch it := item.(type) {
		case string:
			out = append(out, it)
		case map[string]any:
			if id, ok := it["id"].(string); ok {
				out = append(out, id)
			}
		}
	}
	return out
}

// asStringMap coerce a mapa blank-id -> texto; nil si la forma no corresponde.
func asStringMap(value any) map[string]string {
	switch v := value.(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, val := range v {
			out[k] = val
		}
		return out
	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			if s, ok := val.(string); ok {
				out[k] = s
			} else {
				out[k] = ""
			}
		}
		return out
	}
	return nil
}

func asText(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

func normalizeBlank(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// shareLongToken indica si ambos textos comparten algún token de más de 3 letras.
func shareLongToken(a, b string) bool {
	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(a) {
		if len(t) > 3 {
			tokens[t] = struct{}{}
		}
	}
	for _, t := range strings.Fields(b) {
		if len(t) > 3 {
			if _, ok := tokens[t]; ok {
				return true
			}
		}
	}
	return false
}

// scenarioTokens tokeniza texto libre: minúsculas, sin stopwords, largo >= 4.
func scenarioTokens(text string) map[string]struct{} {
	cleaned := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return ' '
	}, strings.ToLower(text))

	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(cleaned) {
		if len(t) < 4 {
			continue
		}
		if _, stop := scenarioStopwords[t]; stop {
			continue
		}
		tokens[t] = struct{}{}
	}
	return tokens
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func matchTypeByThresholds(score, exactAt, partialAt int) domain.MatchType {
	switch {
	case score >= exactAt:
		return domain.MatchExact
	case score >= partialAt:
		return domain.MatchPartial
	default:
		return domain.MatchNone
	}
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
