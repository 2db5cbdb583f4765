// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// Default values applied by Defaults.
const (
	DefaultProvider             = string(llm.ProviderGemini)
	DefaultTemplate             = string(rendering.TemplateSimple)
	DefaultOutputDir            = "."
	DefaultRenderTimeoutSeconds = 60
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// LLM
	Provider string `json:"provider,omitempty" validate:"omitempty,provider"` // gemini or anthropic
	APIKey   string `json:"api_key,omitempty"`                                // Overrides the provider's env var
	Model    string `json:"model,omitempty"`                                  // Overrides the tier model

	// Rendering
	Template   string `json:"template,omitempty" validate:"omitempty,template"`
	OutputDir  string `json:"output_dir,omitempty"`
	ChromePath string `json:"chrome_path,omitempty"` // Chrome/Chromium binary for PDF export

	// Limits
	RenderTimeoutSeconds int `json:"render_timeout_seconds,omitempty" validate:"gte=0"`
	MaxPages             int `json:"max_pages,omitempty" validate:"gte=0"` // 0 disables the page check

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Provider:             DefaultProvider,
		Template:             DefaultTemplate,
		OutputDir:            DefaultOutputDir,
		RenderTimeoutSeconds: DefaultRenderTimeoutSeconds,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("provider", validateProvider); err != nil {
		return err
	}
	if err := validate.RegisterValidation("template", validateTemplate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

func validateProvider(fl validator.FieldLevel) bool {
	_, err := llm.ConfigFor(llm.Provider(fl.Field().String()))
	return err == nil
}

func validateTemplate(fl validator.FieldLevel) bool {
	_, err := rendering.Lookup(fl.Field().String())
	return err == nil
}

// fieldError turns a validator failure into a message naming the JSON key.
func fieldError(fe validator.FieldError) error {
	key := jsonKeys[fe.Field()]
	switch fe.Tag() {
	case "gte":
		return fmt.Errorf("config error: '%s' must be non-negative", key)
	case "provider":
		return fmt.Errorf("config error: unsupported provider %q", fe.Value())
	case "template":
		return fmt.Errorf("config error: unknown template %q", fe.Value())
	default:
		return fmt.Errorf("config error: '%s' failed %s", key, fe.Tag())
	}
}

var jsonKeys = map[string]string{
	"Provider":             "provider",
	"Template":             "template",
	"RenderTimeoutSeconds": "render_timeout_seconds",
	"MaxPages":             "max_pages",
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	// Int fields: use default if zero
	if result.RenderTimeoutSeconds == 0 {
		result.RenderTimeoutSeconds = defaults.RenderTimeoutSeconds
	}
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// RenderTimeout returns the PDF export timeout, or zero to use the exporter default.
func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutSeconds) * time.Second
}
