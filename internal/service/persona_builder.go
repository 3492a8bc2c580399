package service

import (
	"sort"
	"strings"

	"persona-lab/internal/domain"
	"persona-lab/internal/schema"
)

// PersonaBuilder construye el PersonaDisplay incrementalmente aplicando cada
// Response sobre la ruta Field de su pregunta. Rutas desconocidas o valores
// que no coercen se ignoran en silencio: el perfil solo crece con lo usable.
type PersonaBuilder struct {
	lookup func(id string) (domain.Question, bool)
}

// NewPersonaBuilder crea un builder que resuelve preguntas en el banco estático.
func NewPersonaBuilder() PersonaBuilder {
	return PersonaBuilder{lookup: schema.QuestionByID}
}

// Apply vuelca una respuesta sobre el perfil. Las respuestas inseguras o sin
// valor no modifican nada.
func (b PersonaBuilder) Apply(persona *domain.PersonaDisplay, response domain.Response) {
	if persona == nil || response.IsUnsure || !response.HasValue() {
		return
	}
	lookup := b.lookup
	if lookup == nil {
		lookup = schema.QuestionByID
	}
	question, ok := lookup(response.QuestionID)
	if !ok || question.Field == "" {
		return
	}

	switch question.Field {
	case "demographics.age_range":
		persona.Demographics.AgeRange = asText(response.Value)
	case "demographics.lifestyle":
		persona.Demographics.Lifestyle = asText(response.Value)
	case "demographics.occupation":
		persona.Demographics.Occupation = joinedBlanks(response.Value)
	case "demographics.setting":
		persona.Demographics.Setting = asText(response.Value)
	case "jobs.functional":
		persona.Jobs.Functional = asText(response.Value)
	case "jobs.emotional":
		persona.Jobs.Emotional = asText(response.Value)
	case "jobs.social":
		persona.Jobs.Social = joinedBlanks(response.Value)
	case "goals":
		persona.Goals = appendEntries(persona.Goals, question, response.Value)
	case "frustrations":
		persona.Frustrations = appendEntries(persona.Frustrations, question, response.Value)
	case "behaviors":
		persona.Behaviors = appendEntries(persona.Behaviors, question, response.Value)
	case "anti_patterns":
		persona.AntiPatterns = appendEntries(persona.AntiPatterns, question, response.Value)
	case "quote":
		persona.Quote = strings.TrimSpace(asText(response.Value))
	}
}

// joinedBlanks aplana un valor fill-blank en un solo texto; si el valor ya es
// texto plano lo devuelve tal cual.
func joinedBlanks(value any) string {
	if text := asText(value); text != "" {
		return strings.TrimSpace(text)
	}
	blanks := asStringMap(value)
	if blanks == nil {
		return ""
	}
	parts := make([]string, 0, len(blanks))
	for _, key := range sortedKeys(blanks) {
		if text := strings.TrimSpace(blanks[key]); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, ", ")
}

// appendEntries agrega entradas de display a una lista del perfil sin
// duplicar. Los ids de opciones se traducen a sus labels cuando existen.
func appendEntries(existing []string, question domain.Question, value any) []string {
	labels := map[string]string{}
	for _, option := range question.Options {
		labels[option.ID] = option.Label
	}
	for _, item := range question.Items {
		labels[item.ID] = item.Label
	}

	var entries []string
	if ids := asIDList(value); ids != nil {
		for _, id := range ids {
			if label, ok := labels[id]; ok {
				entries = append(entries, label)
			} else {
				entries = append(entries, id)
			}
		}
	} else if text := strings.TrimSpace(asText(value)); text != "" {
		if label, ok := labels[text]; ok {
			entries = append(entries, label)
		} else {
			entries = append(entries, text)
		}
	}

	for _, entry := range entries {
		if !containsString(existing, entry) {
			existing = append(existing, entry)
		}
	}
	return existing
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
