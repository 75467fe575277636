package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	LLMProvider     string
	LLMModel        string
	LLMBaseURL      string
	LLMTimeout      time.Duration
	OpenAIAPIKey    string
	GeminiAPIKey    string
	MaxUploadBytes  int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return FromViper(NewViper())
}

// NewViper returns a viper instance primed with defaults and bound to the environment.
// Callers may bind command-line flags onto it before calling FromViper.
func NewViper() *viper.Viper {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("env", "dev")
	v.SetDefault("cors_allow_origins", "http://localhost:5173")
	v.SetDefault("llm_provider", ProviderOpenAI)
	v.SetDefault("llm_model", "")
	v.SetDefault("llm_base_url", "")
	v.SetDefault("llm_timeout", 120*time.Second)
	v.SetDefault("openai_api_key", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("max_upload_bytes", int64(10<<20))
	return v
}

// FromViper resolves a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	provider := normalizeProvider(v.GetString("llm_provider"))

	timeout := v.GetDuration("llm_timeout")
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	maxUpload := v.GetInt64("max_upload_bytes")
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}

	return Config{
		Port:            v.GetString("port"),
		CORSAllowOrigin: splitAndTrim(v.GetString("cors_allow_origins")),
		Env:             normalizeEnv(v.GetString("env")),
		LLMProvider:     provider,
		LLMModel:        resolveModel(provider, v.GetString("llm_model")),
		LLMBaseURL:      strings.TrimSpace(v.GetString("llm_base_url")),
		LLMTimeout:      timeout,
		OpenAIAPIKey:    strings.TrimSpace(v.GetString("openai_api_key")),
		GeminiAPIKey:    strings.TrimSpace(v.GetString("gemini_api_key")),
		MaxUploadBytes:  maxUpload,
	}
}

// APIKey returns the key for the configured provider.
func (c Config) APIKey() string {
	if c.LLMProvider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

func resolveModel(provider, model string) string {
	if m := strings.TrimSpace(model); m != "" {
		return m
	}
	if provider == ProviderGemini {
		return "gemini-2.0-flash"
	}
	return "gpt-3.5-turbo"
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ProviderGemini, "google":
		return ProviderGemini
	default:
		return ProviderOpenAI
	}
}
