package service

import (
	"strings"

	"persona-lab/internal/domain"
)

// DefaultArchetype es la etiqueta de fallback cuando la combinación
// emocional-lifestyle no está mapeada.
const DefaultArchetype = "Your Ideal Customer"

// Tabla fija de arquetipos, clave "jobs.emotional"-"demographics.lifestyle".
var archetypeTable = map[string]string{
	"in-control-busy-professional": "The Busy Executive",
	"in-control-balance-seeker":    "The Systematic Planner",
	"inspired-busy-professional":   "The Ambitious Builder",
	"inspired-free-spirit":         "The Creative Explorer",
	"secure-family-first":          "The Family Guardian",
	"secure-balance-seeker":        "The Steady Pragmatist",
	"connected-family-first":       "The Community Anchor",
	"connected-free-spirit":        "The Social Connector",
}

// GenerateArchetype deriva una etiqueta legible a partir del job emocional y
// el lifestyle de la persona. Combinaciones no mapeadas caen al default.
func GenerateArchetype(persona domain.PersonaDisplay) string {
	emotional := strings.TrimSpace(persona.Jobs.Emotional)
	lifestyle := strings.TrimSpace(persona.Demographics.Lifestyle)
	if emotional == "" || lifestyle == "" {
		return DefaultArchetype
	}
	if label, ok := archetypeTable[emotional+"-"+lifestyle]; ok {
		return label
	}
	return DefaultArchetype
}

// ResolveArchetype aplica la cadena de prioridad en tres niveles:
// 1) el nombre extraído externamente, si viene no vacío;
// 2) el arquetipo generado, solo si difiere del default;
// 3) el default. La cadena se preserva tal cual: colapsarla cambia el
// comportamiento observable.
func ResolveArchetype(extractedName string, persona domain.PersonaDisplay) string {
	if name := strings.TrimSpace(extractedName); name != "" {
		return name
	}
	if generated := GenerateArchetype(persona); generated != DefaultArchetype {
		return generated
	}
	return DefaultArchetype
}
