// Package rendering lays out ResumeData as paginated A4 HTML documents in one of several
// templates and exports them to PDF through headless Chrome.
package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Template names a layout.
type Template string

// Available layouts.
const (
	TemplateSimple       Template = "simple"
	TemplateClassic      Template = "classic"
	TemplateModern       Template = "modern"
	TemplateProfessional Template = "professional"
	TemplateBusiness     Template = "business"
)

// PageSizeA4 is the page size every layout is designed for.
const PageSizeA4 = "A4"

//go:embed templates/*.tmpl
var templateFiles embed.FS

var (
	parseOnce sync.Once
	layouts   *template.Template
	parseErr  error
)

// Document is a rendered, self-contained HTML resume.
type Document struct {
	ID       uuid.UUID
	Template Template
	PageSize string
	Title    string
	HTML     string
}

// Renderer turns resume data into a Document. Rendering is pure and safe for concurrent use.
type Renderer interface {
	Name() Template
	Render(data *types.ResumeData) (*Document, error)
}

// Templates lists the available layouts in display order.
func Templates() []Template {
	return []Template{TemplateSimple, TemplateClassic, TemplateModern, TemplateProfessional, TemplateBusiness}
}

// Lookup returns the renderer for a layout name. Names are case-insensitive.
func Lookup(name string) (Renderer, error) {
	want := Template(strings.ToLower(strings.TrimSpace(name)))
	for _, t := range Templates() {
		if t == want {
			return htmlRenderer{name: t}, nil
		}
	}
	return nil, &TemplateError{Message: fmt.Sprintf("unknown template %q", name)}
}

func parsedLayouts() (*template.Template, error) {
	parseOnce.Do(func() {
		layouts, parseErr = template.New("layouts").
			Funcs(template.FuncMap{"join": strings.Join}).
			ParseFS(templateFiles, "templates/*.tmpl")
	})
	return layouts, parseErr
}

type htmlRenderer struct {
	name Template
}

func (r htmlRenderer) Name() Template {
	return r.name
}

// Render lays out data. A nil resume renders like an empty one.
func (r htmlRenderer) Render(data *types.ResumeData) (*Document, error) {
	set, err := parsedLayouts()
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse layouts", Cause: err}
	}

	v := newView(data)
	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, string(r.name), v); err != nil {
		return nil, &RenderError{Template: r.name, Message: "failed to execute template", Cause: err}
	}

	return &Document{
		ID:       uuid.New(),
		Template: r.name,
		PageSize: PageSizeA4,
		Title:    v.Title,
		HTML:     buf.String(),
	}, nil
}
