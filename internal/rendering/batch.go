package rendering

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/sync/errgroup"
)

// Output is one exported layout.
type Output struct {
	Template Template
	Path     string
	PDF      []byte
}

// RenderAll renders data with every layout and exports each to outDir as
// resume-<template>.pdf. Exports run concurrently; the first failure cancels the rest.
// Results follow the order of Templates().
func RenderAll(ctx context.Context, data *types.ResumeData, exporter Exporter, outDir string) ([]Output, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	templates := Templates()
	outputs := make([]Output, len(templates))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range templates {
		g.Go(func() error {
			r, err := Lookup(string(name))
			if err != nil {
				return err
			}
			doc, err := r.Render(data)
			if err != nil {
				return err
			}
			pdf, err := exporter.Export(gctx, doc)
			if err != nil {
				return err
			}
			path := filepath.Join(outDir, fmt.Sprintf("resume-%s.pdf", name))
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			outputs[i] = Output{Template: name, Path: path, PDF: pdf}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
