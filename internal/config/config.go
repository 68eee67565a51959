package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Enhancer   EnhancerConfig   `yaml:"enhancer"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"4111"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"4096"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DictionaryConfig holds settings for the lexical-data provider.
type DictionaryConfig struct {
	BaseURL      string        `yaml:"base_url"       env:"DICTIONARY_BASE_URL"       env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout      time.Duration `yaml:"timeout"        env:"DICTIONARY_TIMEOUT"        env-default:"10s"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"DICTIONARY_MAX_BODY_BYTES" env-default:"2097152"`
}

// Supported generative-text providers.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// EnhancerConfig holds settings for the generative-text provider.
// An empty APIKey is allowed; enhancement requests then fail with a config error.
type EnhancerConfig struct {
	Provider    string        `yaml:"provider"    env:"ENHANCER_PROVIDER"    env-default:"anthropic"`
	APIKey      string        `yaml:"api_key"     env:"ENHANCER_API_KEY"`
	Model       string        `yaml:"model"       env:"ENHANCER_MODEL"`
	BaseURL     string        `yaml:"base_url"    env:"ENHANCER_BASE_URL"`
	MaxTokens   int           `yaml:"max_tokens"  env:"ENHANCER_MAX_TOKENS"  env-default:"2048"`
	Temperature float64       `yaml:"temperature" env:"ENHANCER_TEMPERATURE" env-default:"0.7"`
	Timeout     time.Duration `yaml:"timeout"     env:"ENHANCER_TIMEOUT"     env-default:"60s"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// Provider-specific fallbacks applied when the generic enhancer settings are empty.
var (
	defaultModels = map[string]string{
		ProviderAnthropic: "claude-sonnet-4-5",
		ProviderOpenAI:    "gpt-4o-mini",
	}
	providerKeyEnv = map[string]string{
		ProviderAnthropic: "ANTHROPIC_API_KEY",
		ProviderOpenAI:    "OPENAI_API_KEY",
	}
)

// KeySetting names the setting an operator must fill in to supply the credential.
func (c EnhancerConfig) KeySetting() string {
	if env, ok := providerKeyEnv[c.Provider]; ok {
		return "ENHANCER_API_KEY (or " + env + ")"
	}
	return "ENHANCER_API_KEY"
}
