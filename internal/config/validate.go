package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration
// and fills provider-specific enhancer defaults.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if err := c.Enhancer.validate(); err != nil {
		return fmt.Errorf("enhancer: %w", err)
	}

	// A response must be writable after both outbound calls have had their full budget.
	if budget := c.Dictionary.Timeout + c.Enhancer.Timeout; c.Server.WriteTimeout < budget {
		return fmt.Errorf("server.write_timeout (%s) must be >= dictionary.timeout + enhancer.timeout (%s)",
			c.Server.WriteTimeout, budget)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	return nil
}

func (d *DictionaryConfig) validate() error {
	u, err := url.Parse(d.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", d.BaseURL)
	}
	d.BaseURL = strings.TrimRight(d.BaseURL, "/")
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", d.Timeout)
	}
	if d.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", d.MaxBodyBytes)
	}
	return nil
}

func (e *EnhancerConfig) validate() error {
	e.Provider = strings.ToLower(strings.TrimSpace(e.Provider))
	switch e.Provider {
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("provider must be %s or %s (got %q)", ProviderAnthropic, ProviderOpenAI, e.Provider)
	}
	if e.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", e.Timeout)
	}
	if e.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", e.MaxTokens)
	}
	if e.Temperature < 0 || e.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0, 2] (got %v)", e.Temperature)
	}
	if e.BaseURL != "" {
		if u, err := url.Parse(e.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base_url must be an absolute URL (got %q)", e.BaseURL)
		}
	}

	if e.Model == "" {
		e.Model = defaultModels[e.Provider]
	}
	if e.APIKey == "" {
		e.APIKey = os.Getenv(providerKeyEnv[e.Provider])
	}
	return nil
}
