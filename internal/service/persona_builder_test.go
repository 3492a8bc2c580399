package service

import (
	"testing"

	"persona-lab/internal/domain"
)

func TestPersonaBuilder_AppliesFieldPaths(t *testing.T) {
	builder := NewPersonaBuilder()
	persona := domain.PersonaDisplay{}

	builder.Apply(&persona, domain.Response{QuestionID: "identity_lifestyle", Value: "busy-professional"})
	builder.Apply(&persona, domain.Response{QuestionID: "emotional_driver", Value: "in-control"})
	builder.Apply(&persona, domain.Response{QuestionID: "goals_success", Value: "calm mornings and a growing client base"})
	builder.Apply(&persona, domain.Response{QuestionID: "identity_occupation", Value: map[string]any{
		"industry": "software",
		"role":     "marketing manager",
	}})

	if persona.Demographics.Lifestyle != "busy-professional" {
		t.Fatalf("expected lifestyle set, got %+v", persona.Demographics)
	}
	if persona.Jobs.Emotional != "in-control" {
		t.Fatalf("expected emotional job set, got %+v", persona.Jobs)
	}
	if persona.Quote != "calm mornings and a growing client base" {
		t.Fatalf("expected quote set, got %q", persona.Quote)
	}
	if persona.Demographics.Occupation != "software, marketing manager" {
		t.Fatalf("expected blanks joined in key order, got %q", persona.Demographics.Occupation)
	}

	// El perfil construido alimenta directamente la generación de arquetipo.
	if got := GenerateArchetype(persona); got != "The Busy Executive" {
		t.Fatalf("expected archetype from built persona, got %q", got)
	}
}

func TestPersonaBuilder_ListsUseLabelsAndDedupe(t *testing.T) {
	builder := NewPersonaBuilder()
	persona := domain.PersonaDisplay{}

	builder.Apply(&persona, domain.Response{QuestionID: "frustrations_main", Value: []any{"no-time", "overwhelm"}})
	builder.Apply(&persona, domain.Response{QuestionID: "frustrations_main", Value: []any{"no-time"}})

	if len(persona.Frustrations) != 2 {
		t.Fatalf("expected deduplicated list, got %v", persona.Frustrations)
	}
	if persona.Frustrations[0] != "Never enough time" || persona.Frustrations[1] != "Information overload" {
		t.Fatalf("expected option labels, got %v", persona.Frustrations)
	}
}

func TestPersonaBuilder_SkipsUnsureUnknownAndUnmapped(t *testing.T) {
	builder := NewPersonaBuilder()
	persona := domain.PersonaDisplay{}

	builder.Apply(&persona, domain.Response{QuestionID: "identity_lifestyle", Value: "family-first", IsUnsure: true})
	builder.Apply(&persona, domain.Response{QuestionID: "no_such_question", Value: "x"})
	builder.Apply(&persona, domain.Response{QuestionID: "goals_horizon", Value: 80}) // pregunta sin field

	if persona.Demographics.Lifestyle != "" || len(persona.Goals) != 0 {
		t.Fatalf("expected persona untouched, got %+v", persona)
	}
}
