package schema

import (
	"testing"

	"persona-lab/internal/domain"
)

func TestBank_UniqueIDsAndLookup(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range Questions() {
		if q.ID == "" {
			t.Fatalf("question with empty id: %+v", q)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		got, ok := QuestionByID(q.ID)
		if !ok || got.ID != q.ID {
			t.Fatalf("lookup failed for %q", q.ID)
		}
	}
	if _, ok := QuestionByID("missing"); ok {
		t.Fatalf("expected lookup miss for unknown id")
	}
}

func TestBank_CategoryCountsMatchClarityTable(t *testing.T) {
	// Las categorías puntuables deben tener exactamente las preguntas que la
	// tabla de claridad espera (Social se pliega en Emotional en el scorer,
	// por eso no aparece acá).
	expected := map[domain.QuestionCategory]int{
		domain.CategoryIdentity:     4,
		domain.CategoryGoals:        3,
		domain.CategoryFrustrations: 3,
		domain.CategoryEmotional:    3,
		domain.CategoryBehaviors:    3,
	}
	for category, want := range expected {
		if got := len(QuestionsByCategory(category)); got != want {
			t.Fatalf("category %s: expected %d questions, got %d", category, want, got)
		}
	}
}

func TestBank_TypeSpecificConfigPresent(t *testing.T) {
	for _, q := range Questions() {
		switch q.Type {
		case domain.QuestionTypeExactChoice:
			if len(q.Options) < 2 {
				t.Fatalf("%s: exact choice needs options", q.ID)
			}
		case domain.QuestionTypeMultiSelect:
			if len(q.Options) < 2 || q.MaxSelections <= 0 {
				t.Fatalf("%s: multi select needs options and a max", q.ID)
			}
		case domain.QuestionTypeRanking:
			if len(q.Items) < 2 {
				t.Fatalf("%s: ranking needs items", q.ID)
			}
		case domain.QuestionTypeFillBlank:
			if len(q.Blanks) == 0 {
				t.Fatalf("%s: fill blank needs blank specs", q.ID)
			}
		case domain.QuestionTypeSlider:
			if q.Slider == nil || q.Slider.Max <= q.Slider.Min {
				t.Fatalf("%s: slider needs valid bounds", q.ID)
			}
		case domain.QuestionTypeScenario:
			// texto libre, sin configuración extra
		default:
			t.Fatalf("%s: unexpected question type %q", q.ID, q.Type)
		}
	}
}
