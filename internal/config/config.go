package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	ShareBaseURL          string `env:"SHARE_BASE_URL" envDefault:"http://localhost:8080"`
	SessionTTLDays        int    `env:"SESSION_TTL_DAYS" envDefault:"30"`
	JWTSecret             string `env:"JWT_SECRET"`
	ValidatorTokenTTLMins int    `env:"VALIDATOR_TOKEN_TTL_MINUTES" envDefault:"1440"`

	LLMAPIKey     string `env:"LLM_API_KEY"`
	LLMBaseURL    string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel      string `env:"LLM_MODEL" envDefault:"gpt-5.1"`
	LLMEmbedModel string `env:"LLM_EMBED_MODEL" envDefault:"text-embedding-3-small"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`

	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" envDefault:"0"`
	ReportCacheTTLMins int    `env:"REPORT_CACHE_TTL_MINUTES" envDefault:"5"`
	ShareAttemptWindow int    `env:"SHARE_ATTEMPT_WINDOW_MINUTES" envDefault:"10"`
	ShareAttemptMax    int    `env:"SHARE_ATTEMPT_MAX" envDefault:"5"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
