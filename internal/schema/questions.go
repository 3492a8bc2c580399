// Package schema contiene el banco estático de preguntas del motor de
// validación. Se carga una sola vez al inicio del proceso y nunca muta.
package schema

import "persona-lab/internal/domain"

var bank = []domain.Question{
	// Identity
	{
		ID:       "identity_age",
		Type:     domain.QuestionTypeExactChoice,
		Category: domain.CategoryIdentity,
		Field:    "demographics.age_range",
		Text:     "How old is your ideal customer?",
		Options: []domain.ChoiceOption{
			{ID: "younger", Label: "Under 30"},
			{ID: "middle", Label: "30 to 45"},
			{ID: "older", Label: "Over 45"},
		},
	},
	{
		ID:       "identity_lifestyle",
		Type:     domain.QuestionTypeExactChoice,
		Category: domain.CategoryIdentity,
		Field:    "demographics.lifestyle",
		Text:     "Which lifestyle describes them best?",
		Options: []domain.ChoiceOption{
			{ID: "busy-professional", Label: "Busy professional, always on"},
			{ID: "balance-seeker", Label: "Protects their work-life balance"},
			{ID: "family-first", Label: "Family comes before everything"},
			{ID: "free-spirit", Label: "Flexible, follows what excites them"},
		},
	},
	{
		ID:       "identity_occupation",
		Type:     domain.QuestionTypeFillBlank,
		Category: domain.CategoryIdentity,
		Field:    "demographics.occupation",
		Text:     "Complete their professional profile.",
		Blanks: []domain.BlankSpec{
			{ID: "role", Prompt: "They work as a ..."},
			{ID: "industry", Prompt: "... in the ... industry"},
		},
	},
	{
		ID:       "identity_setting",
		Type:     domain.QuestionTypeExactChoice,
		Category: domain.CategoryIdentity,
		Field:    "demographics.setting",
		Text:     "Where do they live?",
		Options: []domain.ChoiceOption{
			{ID: "urban", Label: "Big city"},
			{ID: "suburban", Label: "Suburbs"},
			{ID: "rural", Label: "Small town or rural"},
		},
	},

	// Goals
	{
		ID:       "goals_priorities",
		Type:     domain.QuestionTypeRanking,
		Category: domain.CategoryGoals,
		Field:    "goals",
		Text:     "Rank what matters most to them right now.",
		Items: []domain.RankingItem{
			{ID: "save-time", Label: "Getting time back"},
			{ID: "grow-revenue", Label: "Growing their income"},
			{ID: "reduce-stress", Label: "Lowering day-to-day stress"},
			{ID: "look-good", Label: "Looking competent to others"},
			{ID: "learn-skills", Label: "Learning new skills"},
			{ID: "stay-healthy", Label: "Staying healthy"},
		},
	},
	{
		ID:       "goals_success",
		Type:     domain.QuestionTypeScenario,
		Category: domain.CategoryGoals,
		Field:    "quote",
		Text:     "A year from now, how would they describe success in their own words?",
	},
	{
		ID:       "goals_horizon",
		Type:     domain.QuestionTypeSlider,
		Category: domain.CategoryGoals,
		Field:    "",
		Text:     "How urgent is solving this for them?",
		Slider:   &domain.SliderBounds{Min: 0, Max: 100, MinLabel: "Someday", MaxLabel: "This week"},
	},

	// Frustrations
	{
		ID:       "frustrations_main",
		Type:     domain.QuestionTypeMultiSelect,
		Category: domain.CategoryFrustrations,
		Field:    "frustrations",
		Text:     "Pick their top frustrations.",
		Options: []domain.ChoiceOption{
			{ID: "no-time", Label: "Never enough time"},
			{ID: "too-many-options", Label: "Too many options, no clarity"},
			{ID: "wasted-money", Label: "Burned money on things that didn't work"},
			{ID: "no-support", Label: "No one to ask for help"},
			{ID: "overwhelm", Label: "Information overload"},
			{ID: "slow-progress", Label: "Progress feels too slow"},
		},
		MaxSelections: 3,
	},
	{
		ID:       "frustrations_severity",
		Type:     domain.QuestionTypeSlider,
		Category: domain.CategoryFrustrations,
		Field:    "",
		Text:     "How painful is their biggest frustration?",
		Slider:   &domain.SliderBounds{Min: 0, Max: 100, MinLabel: "Mild annoyance", MaxLabel: "Keeps them up at night"},
	},
	{
		ID:       "frustrations_blocker",
		Type:     domain.QuestionTypeScenario,
		Category: domain.CategoryFrustrations,
		Field:    "frustrations",
		Text:     "What have they already tried that failed, and why?",
	},

	// Emotional
	{
		ID:       "emotional_driver",
		Type:     domain.QuestionTypeExactChoice,
		Category: domain.CategoryEmotional,
		Field:    "jobs.emotional",
		Text:     "Deep down, what do they want to feel?",
		Options: []domain.ChoiceOption{
			{ID: "in-control", Label: "In control of their situation"},
			{ID: "inspired", Label: "Inspired and energized"},
			{ID: "secure", Label: "Safe and secure"},
			{ID: "connected", Label: "Connected to people like them"},
		},
	},
	{
		ID:       "emotional_fears",
		Type:     domain.QuestionTypeMultiSelect,
		Category: domain.CategoryEmotional,
		Field:    "frustrations",
		Text:     "What are they most afraid of?",
		Options: []domain.ChoiceOption{
			{ID: "falling-behind", Label: "Falling behind their peers"},
			{ID: "wasting-money", Label: "Wasting money again"},
			{ID: "looking-foolish", Label: "Looking foolish"},
			{ID: "missing-out", Label: "Missing their window"},
			{ID: "losing-stability", Label: "Losing what they've built"},
		},
		MaxSelections: 2,
	},
	{
		ID:       "emotional_confidence",
		Type:     domain.QuestionTypeSlider,
		Category: domain.CategoryEmotional,
		Field:    "",
		Text:     "How confident do they feel about solving this on their own?",
		Slider:   &domain.SliderBounds{Min: 0, Max: 100, MinLabel: "Totally lost", MaxLabel: "Has it handled"},
	},

	// Social (se pliega en Emotional para claridad)
	{
		ID:       "social_image",
		Type:     domain.QuestionTypeFillBlank,
		Category: domain.CategorySocial,
		Field:    "jobs.social",
		Text:     "Complete how others see them.",
		Blanks: []domain.BlankSpec{
			{ID: "admired_for", Prompt: "People admire them for ..."},
			{ID: "judged_for", Prompt: "They worry about being judged for ..."},
		},
	},

	// Behaviors
	{
		ID:       "behaviors_channels",
		Type:     domain.QuestionTypeMultiSelect,
		Category: domain.CategoryBehaviors,
		Field:    "behaviors",
		Text:     "Where do they actually spend attention?",
		Options: []domain.ChoiceOption{
			{ID: "podcasts", Label: "Podcasts"},
			{ID: "newsletters", Label: "Newsletters"},
			{ID: "linkedin", Label: "LinkedIn"},
			{ID: "communities", Label: "Private communities"},
			{ID: "youtube", Label: "YouTube"},
			{ID: "events", Label: "In-person events"},
		},
		MaxSelections: 3,
	},
	{
		ID:       "behaviors_research",
		Type:     domain.QuestionTypeExactChoice,
		Category: domain.CategoryBehaviors,
		Field:    "behaviors",
		Text:     "How do they decide on a purchase like yours?",
		Options: []domain.ChoiceOption{
			{ID: "impulse", Label: "Gut feeling, fast"},
			{ID: "compare-everything", Label: "Compares every alternative"},
			{ID: "ask-peers", Label: "Asks people they trust"},
			{ID: "trust-reviews", Label: "Reads reviews and case studies"},
		},
	},
	{
		ID:       "behaviors_budget",
		Type:     domain.QuestionTypeSlider,
		Category: domain.CategoryBehaviors,
		Field:    "",
		Text:     "How price sensitive are they for a real solution?",
		Slider:   &domain.SliderBounds{Min: 0, Max: 100, MinLabel: "Every dollar counts", MaxLabel: "Pays for quality"},
	},

	// AntiPatterns (nunca aportan a claridad)
	{
		ID:       "anti_dealbreakers",
		Type:     domain.QuestionTypeMultiSelect,
		Category: domain.CategoryAntiPatterns,
		Field:    "anti_patterns",
		Text:     "What would make them walk away immediately?",
		Options: []domain.ChoiceOption{
			{ID: "pushy-sales", Label: "Pushy sales tactics"},
			{ID: "hidden-pricing", Label: "Hidden pricing"},
			{ID: "generic-advice", Label: "Generic one-size-fits-all advice"},
			{ID: "long-contracts", Label: "Long lock-in contracts"},
			{ID: "hype", Label: "Overpromising and hype"},
		},
		MaxSelections: 3,
	},
	{
		ID:       "anti_wrong_fit",
		Type:     domain.QuestionTypeScenario,
		Category: domain.CategoryAntiPatterns,
		Field:    "anti_patterns",
		Text:     "Describe someone who looks like your customer but is a terrible fit.",
	},
}

var byID = func() map[string]domain.Question {
	m := make(map[string]domain.Question, len(bank))
	for _, q := range bank {
		m[q.ID] = q
	}
	return m
}()

// Questions devuelve una copia del banco completo en orden estable.
func Questions() []domain.Question {
	out := make([]domain.Question, len(bank))
	copy(out, bank)
	return out
}

// QuestionByID busca una pregunta por id.
func QuestionByID(id string) (domain.Question, bool) {
	q, ok := byID[id]
	return q, ok
}

// QuestionsByCategory devuelve las preguntas de una categoría en orden estable.
func QuestionsByCategory(category domain.QuestionCategory) []domain.Question {
	var out []domain.Question
	for _, q := range bank {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}
