package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	innerSpace  = regexp.MustCompile(`[ \t\x{00a0}]+`)
	blankRuns   = regexp.MustCompile(`\n\n\n+`)
	bulletGlyph = []string{"- ", "* ", "• ", "· ", "▪ ", "◦ "}
)

// CleanText normalizes extracted resume text while preserving its line structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := removeExcessiveBlankLines(strings.Join(cleaned, "\n"))
	return strings.TrimSpace(result)
}

// cleanLine trims trailing whitespace and collapses inner runs of spaces. Bullet lines
// keep their indentation so nested lists survive.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t\u00a0")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	indent := ""
	if isBulletLine(trimmed) {
		indent = strings.Repeat(" ", len(line)-len(trimmed))
	}
	return indent + innerSpace.ReplaceAllString(trimmed, " ")
}

func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, glyph := range bulletGlyph {
		if strings.HasPrefix(trimmed, glyph) {
			return true
		}
	}
	return false
}

// removeExcessiveBlankLines reduces consecutive blank lines to at most one.
func removeExcessiveBlankLines(content string) string {
	return blankRuns.ReplaceAllString(content, "\n\n")
}

// LoadDocument reads a resume from disk. PDFs go through page extraction and get page
// markers; any other file is read as plain text.
func LoadDocument(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		cleaned := CleanText(string(content))
		return cleaned, NewMetadata(cleaned, path, 0), nil
	}

	pages, err := ExtractPages(content)
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract %s: %w", filepath.Base(path), err)
	}
	cleaned := CleanText(JoinPages(pages))
	return cleaned, NewMetadata(cleaned, path, len(pages)), nil
}

// WriteOutput writes the cleaned text and its metadata next to each other in outDir.
func WriteOutput(outDir string, cleanedText string, metadata *Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cleanedPath := filepath.Join(outDir, "resume.cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return err
	}
	metaPath := filepath.Join(outDir, "resume.meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
