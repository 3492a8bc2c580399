package service

import (
	"testing"

	"persona-lab/internal/domain"
)

func personaWith(emotional, lifestyle string) domain.PersonaDisplay {
	return domain.PersonaDisplay{
		Jobs:         domain.PersonaJobs{Emotional: emotional},
		Demographics: domain.PersonaDemographics{Lifestyle: lifestyle},
	}
}

func TestGenerateArchetype_KnownCombinations(t *testing.T) {
	if got := GenerateArchetype(personaWith("in-control", "busy-professional")); got != "The Busy Executive" {
		t.Fatalf("expected The Busy Executive, got %q", got)
	}
	if got := GenerateArchetype(personaWith("connected", "free-spirit")); got != "The Social Connector" {
		t.Fatalf("expected The Social Connector, got %q", got)
	}
}

func TestGenerateArchetype_UnmappedFallsBackToDefault(t *testing.T) {
	if got := GenerateArchetype(personaWith("inspired", "family-first")); got != DefaultArchetype {
		t.Fatalf("expected default archetype, got %q", got)
	}
	if got := GenerateArchetype(domain.PersonaDisplay{}); got != DefaultArchetype {
		t.Fatalf("expected default archetype for empty persona, got %q", got)
	}
}

func TestResolveArchetype_ExtractedNameWinsAlways(t *testing.T) {
	persona := personaWith("secure", "family-first") // generaría The Family Guardian
	if got := ResolveArchetype("The Busy Executive", persona); got != "The Busy Executive" {
		t.Fatalf("extracted name must win over generated, got %q", got)
	}
	if got := ResolveArchetype("  ", persona); got != "The Family Guardian" {
		t.Fatalf("blank extracted name must fall through to generated, got %q", got)
	}
}

func TestResolveArchetype_GeneratedOnlyWhenNotDefault(t *testing.T) {
	persona := personaWith("inspired", "family-first") // combinación no mapeada
	if got := ResolveArchetype("", persona); got != DefaultArchetype {
		t.Fatalf("unmapped combination must resolve to default, got %q", got)
	}
}
