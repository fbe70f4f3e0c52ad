package config

import "github.com/caarlos0/env/v10"

// Config centraliza a configuração do serviço. DATABASE_URL, LLM_API_KEY e
// REDIS_ADDR são opcionais: sem eles o serviço sobe degradado (sem
// persistência, com conteúdo de fallback, sem rate limit).
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8001"`
	DatabaseURL string `env:"DATABASE_URL"`

	LLMAPIKey  string `env:"LLM_API_KEY"`
	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"gpt-4o"`

	WebhookURL string `env:"WEBHOOK_URL" envDefault:"https://flows.profissionalai.com.br/webhook-test/6e2f0fa5-6cc5-4415-943c-7d7b9a6a7719"`
	PDFEnabled bool   `env:"PDF_ENABLED" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	RateLimitMax           int `env:"RATE_LIMIT_MAX" envDefault:"5"`
	RateLimitWindowMinutes int `env:"RATE_LIMIT_WINDOW_MINUTES" envDefault:"10"`
}

// LoadConfig carrega a configuração a partir das variáveis de ambiente.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
