package domain

// QuestionType determina la estrategia de comparación del motor de alineación.
// El tipo de una pregunta es inmutable: nunca se re-tipa en runtime.
type QuestionType string

const (
	QuestionTypeExactChoice QuestionType = "exact_choice"
	QuestionTypeSlider      QuestionType = "slider"
	QuestionTypeRanking     QuestionType = "ranking"
	QuestionTypeMultiSelect QuestionType = "multi_select"
	QuestionTypeFillBlank   QuestionType = "fill_blank"
	QuestionTypeScenario    QuestionType = "scenario"
)

// QuestionCategory agrupa preguntas por tema del perfil de persona.
type QuestionCategory string

const (
	CategoryIdentity     QuestionCategory = "identity"
	CategoryGoals        QuestionCategory = "goals"
	CategoryFrustrations QuestionCategory = "frustrations"
	CategoryEmotional    QuestionCategory = "emotional"
	CategorySocial       QuestionCategory = "social"
	CategoryBehaviors    QuestionCategory = "behaviors"
	CategoryAntiPatterns QuestionCategory = "anti_patterns"
)

// ChoiceOption es una opción seleccionable de una pregunta de elección.
type ChoiceOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RankingItem es un elemento ordenable de una pregunta de ranking.
type RankingItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// BlankSpec describe un hueco de una pregunta de completar.
type BlankSpec struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

// SliderBounds define los límites y etiquetas de un slider.
type SliderBounds struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	MinLabel string `json:"min_label,omitempty"`
	MaxLabel string `json:"max_label,omitempty"`
}

// Question es una definición inmutable del banco estático de preguntas.
// Field es una ruta con puntos dentro del perfil de persona (ej: "jobs.emotional").
// La configuración específica por tipo viaja en los campos opcionales.
type Question struct {
	ID            string           `json:"id"`
	Type          QuestionType     `json:"type"`
	Category      QuestionCategory `json:"category"`
	Field         string           `json:"field"`
	Text          string           `json:"text"`
	Options       []ChoiceOption   `json:"options,omitempty"`
	Items         []RankingItem    `json:"items,omitempty"`
	Blanks        []BlankSpec      `json:"blanks,omitempty"`
	Slider        *SliderBounds    `json:"slider,omitempty"`
	MaxSelections int              `json:"max_selections,omitempty"`
}
