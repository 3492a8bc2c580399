package service

import (
	"testing"

	"persona-lab/internal/domain"
	"persona-lab/internal/schema"
)

func answered(questionID string, confidence int) domain.Response {
	return domain.Response{QuestionID: questionID, Value: "something", Confidence: confidence}
}

func TestCalculateClarity_NoResponses(t *testing.T) {
	engine := NewClarityEngine()

	clarity := engine.CalculateClarity(nil)
	if clarity != (domain.PersonaClarity{}) {
		t.Fatalf("expected all-zero clarity, got %+v", clarity)
	}
}

func TestCalculateClarity_FullBank(t *testing.T) {
	engine := NewClarityEngine()

	// Responder todas las preguntas puntuables con valor definido y sin dudas.
	var responses []domain.Response
	for _, q := range schema.Questions() {
		responses = append(responses, answered(q.ID, 80))
	}

	clarity := engine.CalculateClarity(responses)
	if clarity.Identity != 100 || clarity.Goals != 100 || clarity.Frustrations != 100 ||
		clarity.Emotional != 100 || clarity.Behaviors != 100 {
		t.Fatalf("expected every category at 100, got %+v", clarity)
	}
	if clarity.Overall != 100 {
		t.Fatalf("expected overall 100, got %d", clarity.Overall)
	}
}

func TestCalculateClarity_SocialFoldsIntoEmotional(t *testing.T) {
	engine := NewClarityEngine()

	clarity := engine.CalculateClarity([]domain.Response{answered("social_image", 70)})
	if clarity.Emotional != 33 {
		t.Fatalf("social response must add 100/3 to emotional, got %+v", clarity)
	}
}

func TestCalculateClarity_AntiPatternsExcluded(t *testing.T) {
	engine := NewClarityEngine()

	clarity := engine.CalculateClarity([]domain.Response{
		answered("anti_dealbreakers", 90),
		answered("anti_wrong_fit", 90),
	})
	if clarity != (domain.PersonaClarity{}) {
		t.Fatalf("anti-pattern responses must not add clarity, got %+v", clarity)
	}
}

func TestCalculateClarity_UnsureAndUndefinedSkipped(t *testing.T) {
	engine := NewClarityEngine()

	clarity := engine.CalculateClarity([]domain.Response{
		{QuestionID: "identity_age", Value: "younger", IsUnsure: true},
		{QuestionID: "identity_lifestyle", Value: nil},
	})
	if clarity.Identity != 0 {
		t.Fatalf("unsure or undefined answers must not score, got %+v", clarity)
	}
}

func TestCalculateClarity_DuplicatesClampAt100(t *testing.T) {
	engine := NewClarityEngine()

	var responses []domain.Response
	for i := 0; i < 10; i++ {
		responses = append(responses, answered("identity_age", 60))
	}
	clarity := engine.CalculateClarity(responses)
	if clarity.Identity != 100 {
		t.Fatalf("duplicate answers must clamp at 100, got %+v", clarity)
	}
}

func TestCalculateAvgConfidence(t *testing.T) {
	engine := NewClarityEngine()

	if got := engine.CalculateAvgConfidence(nil); got != 0 {
		t.Fatalf("expected 0 with no responses, got %d", got)
	}

	responses := []domain.Response{
		answered("identity_age", 80),
		answered("goals_success", 61),
		{QuestionID: "identity_lifestyle", Value: "x", Confidence: 10, IsUnsure: true}, // no cuenta
		{QuestionID: "identity_setting", Confidence: 10},                              // sin valor, no cuenta
	}
	if got := engine.CalculateAvgConfidence(responses); got != 71 {
		t.Fatalf("expected average 71, got %d", got)
	}
}

func TestUnsureCount(t *testing.T) {
	engine := NewClarityEngine()

	responses := []domain.Response{
		{QuestionID: "a", IsUnsure: true},
		{QuestionID: "b"},
		{QuestionID: "c", IsUnsure: true},
	}
	if got := engine.UnsureCount(responses); got != 2 {
		t.Fatalf("expected 2 unsure answers, got %d", got)
	}
}
