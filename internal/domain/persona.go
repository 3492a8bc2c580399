package domain

import "time"

// PersonaDemographics describe quién es el cliente objetivo.
type PersonaDemographics struct {
	AgeRange   string `json:"age_range,omitempty"`
	Lifestyle  string `json:"lifestyle,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Setting    string `json:"setting,omitempty"`
}

// PersonaJobs son los "jobs to be done" del cliente objetivo.
type PersonaJobs struct {
	Functional string `json:"functional,omitempty"`
	Emotional  string `json:"emotional,omitempty"`
	Social     string `json:"social,omitempty"`
}

// PersonaDisplay es el perfil de persona de cara al founder, construido
// incrementalmente a medida que llegan Responses. Su dueño es la sesión que
// lo creó; vive y muere con ella.
type PersonaDisplay struct {
	ID           string              `json:"id"`
	SessionID    string              `json:"session_id"`
	Demographics PersonaDemographics `json:"demographics"`
	Jobs         PersonaJobs         `json:"jobs"`
	Goals        []string            `json:"goals,omitempty"`
	Frustrations []string            `json:"frustrations,omitempty"`
	Behaviors    []string            `json:"behaviors,omitempty"`
	AntiPatterns []string            `json:"anti_patterns,omitempty"`
	// ExtractedName es el nombre de display propuesto por el paso externo de
	// extracción; tiene prioridad sobre el arquetipo generado.
	ExtractedName string    `json:"extracted_name,omitempty"`
	Archetype     string    `json:"archetype,omitempty"`
	Quote         string    `json:"quote,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
