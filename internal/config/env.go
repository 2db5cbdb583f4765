package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
)

// APIKeyEnv maps each provider to the environment variable holding its key.
var APIKeyEnv = map[llm.Provider]string{
	llm.ProviderGemini:    "GEMINI_API_KEY",
	llm.ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// ResolveAPIKey returns the API key for provider from the environment. An empty provider
// means gemini.
func ResolveAPIKey(provider string) (string, error) {
	p := llm.Provider(strings.ToLower(strings.TrimSpace(provider)))
	if p == "" {
		p = llm.ProviderGemini
	}

	name, ok := APIKeyEnv[p]
	if !ok {
		return "", fmt.Errorf("unsupported provider %q", provider)
	}

	key := strings.TrimSpace(os.Getenv(name))
	if key == "" {
		return "", fmt.Errorf("%s is required but not set", name)
	}
	return key, nil
}

// APIKeyFor prefers the configured key and falls back to the environment.
func (c *Config) APIKeyFor() (string, error) {
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key, nil
	}
	return ResolveAPIKey(c.Provider)
}
