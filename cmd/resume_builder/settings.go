package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// llmTimeout bounds a single extraction or tailoring request.
const llmTimeout = 3 * time.Minute

// loadSettings reads --config, applies the flags the user set explicitly, then fills
// defaults. overrides maps flag names to the config field they replace.
func loadSettings(cmd *cobra.Command, overrides map[string]func(*config.Config)) (config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Step 2: Apply CLI overrides, only for flags that were explicitly set
	for name, apply := range overrides {
		if cmd.Flags().Changed(name) {
			apply(&cfg)
		}
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *logrus.Logger {
	return observability.NewLogger(os.Stderr, cfg.Verbose)
}

// newExtractor builds the LLM client for cfg.Provider. The returned close func releases it.
func newExtractor(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*extraction.Extractor, func(), error) {
	llmCfg, err := llm.ConfigFor(llm.Provider(cfg.Provider))
	if err != nil {
		return nil, nil, err
	}
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, cfg.Model)
	}

	apiKey, err := cfg.APIKeyFor()
	if err != nil {
		return nil, nil, err
	}

	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	closeFn := func() { _ = client.Close() }
	return extraction.New(client, extraction.WithLogger(logger)), closeFn, nil
}

// userFacing replaces extraction failures with the message shown to end users.
func userFacing(err error) error {
	var failed *extraction.ExtractionFailedError
	if errors.As(err, &failed) {
		return errors.New(failed.UserMessage())
	}
	return err
}

// sourcePath picks the --pdf or --text input.
func sourcePath(pdfPath, textPath string) (string, error) {
	switch {
	case pdfPath != "" && textPath != "":
		return "", fmt.Errorf("--pdf and --text are mutually exclusive; provide only one")
	case pdfPath != "":
		return pdfPath, nil
	case textPath != "":
		return textPath, nil
	default:
		return "", fmt.Errorf("either --pdf or --text must be provided")
	}
}

func loadSource(pdfPath, textPath string) (string, *ingestion.Metadata, error) {
	path, err := sourcePath(pdfPath, textPath)
	if err != nil {
		return "", nil, err
	}
	return ingestion.LoadDocument(path)
}

func readResume(path string) (*types.ResumeData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	resume, err := types.Unmarshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return resume, nil
}

// writeResume writes r as indented JSON. An empty path writes to stdout.
func writeResume(path string, r *types.ResumeData) error {
	jsonBytes, err := types.Marshal(r)
	if err != nil {
		return err
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err = os.Stdout.Write(jsonBytes)
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
