package domain

import "time"

// ValidationSession es una sesión de validación de persona: el founder hace su
// brain dump y comparte un link protegido por password con sus validadores.
type ValidationSession struct {
	ID                string    `json:"id"`
	FounderName       string    `json:"founder_name"`
	FounderEmail      string    `json:"founder_email,omitempty"`
	ProductName       string    `json:"product_name,omitempty"`
	ShareToken        string    `json:"share_token"`
	SharePasswordHash string    `json:"-"`
	ExpiresAt         time.Time `json:"expires_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// IsExpired indica si el link compartido ya no acepta validadores.
func (s ValidationSession) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
