package configs

import "time"

// GenAI configures the text generation backend. Provider is "gemini",
// "ollama" or "none". With "gemini" and no APIKey the generator reports
// itself unconfigured and template fallbacks are used.
type GenAI struct {
	Provider string `env:"PROVIDER" envDefault:"gemini"`
	// APIKey is the Gemini API key.
	APIKey string `env:"API_KEY"`
	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL string `env:"BASE_URL"`
	// Model is the model name passed to the backend.
	Model string `env:"MODEL" envDefault:"gemini-2.5-flash"`
	// OllamaURL is the base URL of a local Ollama server.
	OllamaURL   string        `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	Temperature float32       `env:"TEMPERATURE" envDefault:"0.7"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
