package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/validation"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render ResumeData JSON to an A4 PDF",
	Long: `Render a ResumeData JSON file with one of the built-in templates (simple, classic, modern,
professional, business) and print it to an A4 PDF with headless Chrome.

--html writes the rendered HTML instead and needs no browser. --all renders every template into
the output directory. --max-pages fails the command when a PDF runs longer than the limit.`,
	RunE: runRender,
}

var (
	renderInput      string
	renderTemplate   string
	renderOutputFile string
	renderOutputDir  string
	renderHTML       bool
	renderAll        bool
	renderOutline    bool
	renderMaxPages   int
	renderChromePath string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to ResumeData JSON (required)")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template name (default simple)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Output file (defaults to <out-dir>/resume-<template>.pdf or .html)")
	renderCmd.Flags().StringVar(&renderOutputDir, "out-dir", "", "Output directory (default .)")
	renderCmd.Flags().BoolVar(&renderHTML, "html", false, "Write HTML instead of PDF")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every template to <out-dir>/resume-<template>.pdf")
	renderCmd.Flags().BoolVar(&renderOutline, "outline", false, "Print the rendered heading outline")
	renderCmd.Flags().IntVar(&renderMaxPages, "max-pages", 0, "Fail when a PDF has more pages than this (0 disables)")
	renderCmd.Flags().StringVar(&renderChromePath, "chrome-path", "", "Chrome or Chromium binary used for PDF export")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	renderCmd.MarkFlagsMutuallyExclusive("all", "html")
	renderCmd.MarkFlagsMutuallyExclusive("all", "out")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd, map[string]func(*config.Config){
		"template":    func(c *config.Config) { c.Template = renderTemplate },
		"out-dir":     func(c *config.Config) { c.OutputDir = renderOutputDir },
		"max-pages":   func(c *config.Config) { c.MaxPages = renderMaxPages },
		"chrome-path": func(c *config.Config) { c.ChromePath = renderChromePath },
	})
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	resume, err := readResume(renderInput)
	if err != nil {
		return err
	}

	exporter := &rendering.PDFExporter{
		ChromePath: cfg.ChromePath,
		Timeout:    cfg.RenderTimeout(),
		Logger:     logger,
	}
	ctx := context.Background()

	if renderAll {
		outputs, err := rendering.RenderAll(ctx, resume, exporter, cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to render templates: %w", err)
		}
		if cfg.Verbose {
			observability.NewPrinter(os.Stderr).PrintOutputs(outputs)
		}
		var errs []error
		for _, o := range outputs {
			_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", o.Path)
			if err := checkPages(o.PDF, cfg.MaxPages, o.Path); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	renderer, err := rendering.Lookup(cfg.Template)
	if err != nil {
		return err
	}
	doc, err := renderer.Render(resume)
	if err != nil {
		return err
	}

	if renderOutline {
		outline, err := rendering.Outline(doc)
		if err != nil {
			return err
		}
		for _, heading := range outline {
			_, _ = fmt.Fprintln(os.Stdout, heading)
		}
	}

	ext := ".pdf"
	if renderHTML {
		ext = ".html"
	}
	outPath := renderOutputFile
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("resume-%s%s", renderer.Name(), ext))
	}
	if dir := filepath.Dir(outPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if renderHTML {
		if err := os.WriteFile(outPath, []byte(doc.HTML), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)
		return nil
	}

	pdf, err := exporter.Export(ctx, doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"template": renderer.Name(),
		"bytes":    len(pdf),
	}).Debug("Wrote PDF")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)

	return checkPages(pdf, cfg.MaxPages, outPath)
}

func checkPages(pdf []byte, maxPages int, path string) error {
	if err := validation.CheckPageLimit(pdf, maxPages); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
