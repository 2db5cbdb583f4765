package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract ResumeData JSON from a resume with an LLM",
	Long: `Send the resume text to the configured LLM provider in a single request and coerce the reply
into ResumeData. On failure nothing is written and, with --into, the existing file is left untouched.

The API key is read from --api-key, the config file, or GEMINI_API_KEY / ANTHROPIC_API_KEY.`,
	RunE: runExtract,
}

var (
	extractPDF        string
	extractText       string
	extractOutputFile string
	extractInto       string
	extractProvider   string
	extractModel      string
	extractAPIKey     string
)

func init() {
	extractCmd.Flags().StringVar(&extractPDF, "pdf", "", "Path to resume PDF (mutually exclusive with --text)")
	extractCmd.Flags().StringVar(&extractText, "text", "", "Path to plain-text resume (mutually exclusive with --pdf)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout, or --into when set)")
	extractCmd.Flags().StringVar(&extractInto, "into", "", "Existing ResumeData JSON to replace with the extracted resume")
	extractCmd.Flags().StringVar(&extractProvider, "provider", "", "LLM provider: gemini or anthropic (default gemini)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Model name (overrides the provider default)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "API key (overrides the provider env var)")

	rootCmd.AddCommand(extractCmd)
}

func llmOverrides(provider, model, apiKey *string) map[string]func(*config.Config) {
	return map[string]func(*config.Config){
		"provider": func(c *config.Config) { c.Provider = *provider },
		"model":    func(c *config.Config) { c.Model = *model },
		"api-key":  func(c *config.Config) { c.APIKey = *apiKey },
	}
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, llmOverrides(&extractProvider, &extractModel, &extractAPIKey))
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	text, _, err := loadSource(extractPDF, extractText)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), llmTimeout)
	defer cancel()

	extractor, closeClient, err := newExtractor(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeClient()

	var resume *types.ResumeData
	outPath := extractOutputFile
	if extractInto != "" {
		resume, err = readResume(extractInto)
		if err != nil {
			return err
		}
		if err := extractor.Refresh(ctx, resume, text); err != nil {
			return userFacing(err)
		}
		if outPath == "" {
			outPath = extractInto
		}
	} else {
		resume, err = extractor.Extract(ctx, text)
		if err != nil {
			return userFacing(err)
		}
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintResume(resume)
	}

	if err := writeResume(outPath, resume); err != nil {
		return err
	}
	if outPath != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully extracted resume\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)
	}
	return nil
}
