package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"persona-lab/internal/domain"
	"persona-lab/internal/llm"
)

func TestExtractPersonaName_ParsesWrappedJSON(t *testing.T) {
	client := &llm.MockClient{Response: "Sure! Here you go:\n```json\n{\"display_name\": \"The Overbooked Owner\"}\n```"}
	svc := NewExtractionService(client, zap.NewNop())

	name := svc.ExtractPersonaName(context.Background(), domain.PersonaDisplay{Quote: "no time for anything"})
	if name != "The Overbooked Owner" {
		t.Fatalf("expected extracted name, got %q", name)
	}
}

func TestExtractPersonaName_SoftFailures(t *testing.T) {
	svc := NewExtractionService(&llm.MockClient{Err: errors.New("llm down")}, zap.NewNop())
	if name := svc.ExtractPersonaName(context.Background(), domain.PersonaDisplay{}); name != "" {
		t.Fatalf("expected empty name on llm error, got %q", name)
	}

	svc = NewExtractionService(&llm.MockClient{Response: "no json here"}, zap.NewNop())
	if name := svc.ExtractPersonaName(context.Background(), domain.PersonaDisplay{}); name != "" {
		t.Fatalf("expected empty name on unparsable output, got %q", name)
	}

	var nilSvc *ExtractionService
	if name := nilSvc.ExtractPersonaName(context.Background(), domain.PersonaDisplay{}); name != "" {
		t.Fatalf("nil service must be a no-op, got %q", name)
	}
}

func TestCustomizeQuestionText_FallsBackToOriginal(t *testing.T) {
	question := domain.Question{ID: "q", Text: "How old is your ideal customer?"}

	svc := NewExtractionService(&llm.MockClient{Err: errors.New("llm down")}, zap.NewNop())
	if got := svc.CustomizeQuestionText(context.Background(), question, "LaunchKit"); got != question.Text {
		t.Fatalf("expected fallback to original text, got %q", got)
	}

	svc = NewExtractionService(&llm.MockClient{Response: "{\"text\": \"How old is the typical LaunchKit buyer?\"}"}, zap.NewNop())
	if got := svc.CustomizeQuestionText(context.Background(), question, "LaunchKit"); got != "How old is the typical LaunchKit buyer?" {
		t.Fatalf("expected customized text, got %q", got)
	}
	if got := svc.CustomizeQuestionText(context.Background(), question, "  "); got != question.Text {
		t.Fatalf("expected original text without product, got %q", got)
	}
}

func TestEmbedContext(t *testing.T) {
	svc := NewExtractionService(&llm.MockClient{Embedding: []float32{0.1, 0.2}}, zap.NewNop())

	if vec := svc.EmbedContext(context.Background(), "some context"); vec == nil {
		t.Fatalf("expected embedding vector")
	}
	if vec := svc.EmbedContext(context.Background(), "   "); vec != nil {
		t.Fatalf("expected nil for empty text")
	}

	svc = NewExtractionService(&llm.MockClient{Err: errors.New("llm down")}, zap.NewNop())
	if vec := svc.EmbedContext(context.Background(), "text"); vec != nil {
		t.Fatalf("expected nil on llm error")
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`prefix {"a": 1} suffix`, `{"a": 1}`},
		{`{"a": {"b": "}"}}`, `{"a": {"b": "}"}}`},
		{`no braces`, ``},
		{`{"unterminated": true`, ``},
	}
	for _, tc := range cases {
		if got := extractFirstJSONObject(tc.input); got != tc.want {
			t.Fatalf("input %q: expected %q, got %q", tc.input, tc.want, got)
		}
	}
}
