package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Outline returns the text of the document's h1 and h2 headings in document order.
func Outline(doc *Document) ([]string, error) {
	if doc == nil {
		return nil, &RenderError{Message: "nil document"}
	}
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML))
	if err != nil {
		return nil, &RenderError{Template: doc.Template, Message: "failed to parse document", Cause: err}
	}

	headings := []string{}
	parsed.Find("h1, h2").Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, strings.TrimSpace(s.Text()))
	})
	return headings, nil
}
