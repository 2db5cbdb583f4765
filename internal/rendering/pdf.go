package rendering

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"
)

// DefaultExportTimeout bounds one browser print when PDFExporter.Timeout is unset.
const DefaultExportTimeout = 60 * time.Second

// A4 in inches.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// Exporter converts a rendered document into PDF bytes.
type Exporter interface {
	Export(ctx context.Context, doc *Document) ([]byte, error)
}

// PDFExporter prints documents to PDF with headless Chrome. Requires Chrome or Chromium
// to be installed; ChromePath overrides the binary lookup.
type PDFExporter struct {
	ChromePath string
	Timeout    time.Duration
	Logger     *logrus.Logger
}

// Export implements Exporter.
func (e *PDFExporter) Export(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, &RenderError{Message: "nil document"}
	}
	log := e.logger().WithFields(logrus.Fields{
		"template": doc.Template,
		"document": doc.ID,
	})
	start := time.Now()

	// The page is loaded from disk so relative resources and print CSS behave as in a browser.
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, &RenderError{Template: doc.Template, Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(doc.HTML), 0o644); err != nil {
		return nil, &RenderError{Template: doc.Template, Message: "failed to write HTML", Cause: err}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, e.timeout())
	defer cancel()

	log.Debug("Printing document with headless Chrome")

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		log.WithError(err).Error("PDF export failed")
		return nil, &RenderError{Template: doc.Template, Message: "pdf export failed", Cause: err}
	}

	log.WithFields(logrus.Fields{
		"bytes":    len(pdf),
		"duration": time.Since(start),
	}).Info("Exported PDF")
	return pdf, nil
}

func (e *PDFExporter) timeout() time.Duration {
	if e.Timeout <= 0 {
		return DefaultExportTimeout
	}
	return e.Timeout
}

func (e *PDFExporter) logger() *logrus.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return silent
}
