package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a resume into ResumeData JSON with the heuristic section parsers",
	Long: `Parse a PDF or plain-text resume without calling any model. The text is split into sections
by heading, each section is parsed into entries and dates are normalized to YYYY-MM.

With --into, the parsed fields replace those of an existing ResumeData file; location and any
field the parser does not produce are kept.

Skills are kept exactly as written. --canonical-skills maps common aliases such as "golang"
or "k8s" to one spelling and drops case-insensitive duplicates.`,
	RunE: runParse,
}

var (
	parsePDF        string
	parseText       string
	parseOutputFile string
	parseInto       string
	parseCleanedDir string
	parseCanonical  bool
)

func init() {
	parseCmd.Flags().StringVar(&parsePDF, "pdf", "", "Path to resume PDF (mutually exclusive with --text)")
	parseCmd.Flags().StringVar(&parseText, "text", "", "Path to plain-text resume (mutually exclusive with --pdf)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	parseCmd.Flags().StringVar(&parseInto, "into", "", "Existing ResumeData JSON to update with the parsed fields")
	parseCmd.Flags().StringVar(&parseCleanedDir, "cleaned-dir", "", "Directory to write resume.cleaned.txt and resume.meta.json")
	parseCmd.Flags().BoolVar(&parseCanonical, "canonical-skills", false, "Map skill aliases to canonical names and drop duplicates")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, nil)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	text, meta, err := loadSource(parsePDF, parseText)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"source":      meta.Source,
		"pages":       meta.Pages,
		"text_length": len(text),
	}).Debug("Loaded resume text")

	if parseCleanedDir != "" {
		if err := ingestion.WriteOutput(parseCleanedDir, text, meta); err != nil {
			return err
		}
	}

	resume := parsing.ParseResume(text)
	if parseCanonical {
		resume.Skills = parsing.CanonicalizeSkills(resume.Skills)
	}
	if parseInto != "" {
		current, err := readResume(parseInto)
		if err != nil {
			return err
		}
		parsing.Apply(current, resume)
		resume = current
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintResume(resume)
	}

	if err := writeResume(parseOutputFile, resume); err != nil {
		return err
	}
	if parseOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	}
	return nil
}
