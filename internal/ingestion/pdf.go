package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// ExtractPages returns the text of every page of a PDF, in page order. Text fragments that
// share a row are joined by a single space and rows are separated by newlines.
func ExtractPages(data []byte) (pages []string, err error) {
	if len(data) == 0 {
		return nil, &PDFError{Message: "empty document"}
	}

	// The reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = &PDFError{Message: "malformed document", Cause: fmt.Errorf("%v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &PDFError{Message: "failed to open document", Cause: err}
	}

	total := r.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, &PDFError{Message: "failed to read text", Page: i, Cause: err}
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, text := range row.Content {
				if s := strings.TrimSpace(text.S); s != "" {
					words = append(words, s)
				}
			}
			if len(words) > 0 {
				lines = append(lines, strings.Join(words, " "))
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}

	if total > 0 && strings.TrimSpace(strings.Join(pages, "")) == "" {
		// Some producers only expose text through the content stream walk.
		plain, err := plainText(r)
		if err != nil {
			return nil, err
		}
		return []string{plain}, nil
	}
	return pages, nil
}

func plainText(r *pdf.Reader) (string, error) {
	rs, err := r.GetPlainText()
	if err != nil {
		return "", &PDFError{Message: "failed to read text", Cause: err}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", &PDFError{Message: "failed to read text", Cause: err}
	}
	return strings.TrimSpace(buf.String()), nil
}

// JoinPages concatenates page texts, prefixing each with a "Page N:" marker line.
func JoinPages(pages []string) string {
	var sb strings.Builder
	for i, text := range pages {
		fmt.Fprintf(&sb, "\n\nPage %d:\n%s", i+1, text)
	}
	return sb.String()
}
