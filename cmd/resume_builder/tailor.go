package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Rewrite a resume for a job description with an LLM",
	Long:  "Tailor a ResumeData JSON file to a job description. The improved resume is written as JSON and the model's summary of changes is printed.",
	RunE:  runTailor,
}

var (
	tailorInput      string
	tailorJob        string
	tailorOutputFile string
	tailorProvider   string
	tailorModel      string
	tailorAPIKey     string
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorInput, "in", "i", "", "Path to ResumeData JSON (required)")
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job description text file (required)")
	tailorCmd.Flags().StringVarP(&tailorOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	tailorCmd.Flags().StringVar(&tailorProvider, "provider", "", "LLM provider: gemini or anthropic (default gemini)")
	tailorCmd.Flags().StringVar(&tailorModel, "model", "", "Model name (overrides the provider default)")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "API key (overrides the provider env var)")

	if err := tailorCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := tailorCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, llmOverrides(&tailorProvider, &tailorModel, &tailorAPIKey))
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	resume, err := readResume(tailorInput)
	if err != nil {
		return err
	}
	job, err := os.ReadFile(tailorJob)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	if strings.TrimSpace(string(job)) == "" {
		return fmt.Errorf("job description is empty: %s", tailorJob)
	}

	ctx, cancel := context.WithTimeout(context.Background(), llmTimeout)
	defer cancel()

	extractor, closeClient, err := newExtractor(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeClient()

	result, err := extractor.Tailor(ctx, resume, string(job))
	if err != nil {
		return userFacing(err)
	}

	observability.NewPrinter(os.Stderr).PrintTailorSummary(result.Summary)

	if err := writeResume(tailorOutputFile, result.Resume); err != nil {
		return err
	}
	if tailorOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", tailorOutputFile)
	}
	return nil
}
