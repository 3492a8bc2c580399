// alignment_check corre el motor de scoring contra un fixture JSON local, sin
// base de datos ni servidor. Útil para revisar a ojo cómo puntúa una sesión.
//
// Uso: alignment_check <fixture.json>
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"persona-lab/internal/domain"
	"persona-lab/internal/schema"
	"persona-lab/internal/service"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
	colorReset  = "\033[0m"
)

type fixtureAnswer struct {
	QuestionID string `json:"question_id"`
	Value      any    `json:"value"`
	IsUnsure   bool   `json:"is_unsure"`
	Confidence int    `json:"confidence"`
}

type fixture struct {
	Founder    []fixtureAnswer   `json:"founder"`
	Validators [][]fixtureAnswer `json:"validators"`
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <fixture.json>\n", os.Args[0])
		os.Exit(2)
	}

	payload, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	var fix fixture
	if err := json.Unmarshal(payload, &fix); err != nil {
		log.Fatal(err)
	}

	founderResponses := make([]domain.Response, 0, len(fix.Founder))
	references := make(map[string]any, len(fix.Founder))
	for _, a := range fix.Founder {
		founderResponses = append(founderResponses, domain.Response{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			IsUnsure:   a.IsUnsure,
			Confidence: a.Confidence,
		})
		if a.Value != nil {
			references[a.QuestionID] = a.Value
		}
	}

	candidates := make(map[string][]any)
	for _, validator := range fix.Validators {
		for _, a := range validator {
			if a.Value != nil {
				candidates[a.QuestionID] = append(candidates[a.QuestionID], a.Value)
			}
		}
	}

	clarity := service.NewClarityEngine()
	snapshot := clarity.CalculateClarity(founderResponses)
	fmt.Printf("%s== Founder clarity ==%s\n", colorCyan, colorReset)
	fmt.Printf("  identity=%d goals=%d frustrations=%d emotional=%d behaviors=%d\n",
		snapshot.Identity, snapshot.Goals, snapshot.Frustrations, snapshot.Emotional, snapshot.Behaviors)
	fmt.Printf("  overall=%d avg_confidence=%d unsure=%d\n",
		snapshot.Overall,
		clarity.CalculateAvgConfidence(founderResponses),
		clarity.UnsureCount(founderResponses),
	)

	alignment := service.NewAlignmentEngine()
	var perQuestion []domain.QuestionAlignment
	fmt.Printf("\n%s== Alignment per question ==%s\n", colorCyan, colorReset)
	for _, q := range schema.Questions() {
		reference, ok := references[q.ID]
		if !ok {
			continue
		}
		stats := alignment.CalculateQuestionAlignment(q.ID, reference, candidates[q.ID])
		perQuestion = append(perQuestion, stats)
		fmt.Printf("  %s%-22s%s avg=%3d matches=%d/%d\n",
			scoreColor(stats.AverageScore), q.ID, colorReset, stats.AverageScore, stats.MatchCount, stats.Total)
	}

	overall := alignment.CalculateOverallAlignment(perQuestion)
	fmt.Printf("\n%s== Overall alignment: %d ==%s\n", scoreColor(overall), overall, colorReset)
}

func scoreColor(score int) string {
	switch {
	case score >= 70:
		return colorGreen
	case score >= 40:
		return colorYellow
	default:
		return colorRed
	}
}
