// Package observability provides logging setup and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/dates"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to limit runes, ending in "..." when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// PrintResume outputs a human-readable summary of a parsed or extracted resume.
func (p *Printer) PrintResume(r *types.ResumeData) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(r.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(r.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(r.Phone)))
	if r.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", r.Location))
	}
	sb.WriteString("\n")

	if len(r.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:   %s\n\n", r.Skills.Display()))
	}

	if len(r.WorkExperience) > 0 {
		sb.WriteString("Work Experience:\n")
		count := min(len(r.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			w := r.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s", orDash(w.Role)))
			if w.Company != "" {
				sb.WriteString(fmt.Sprintf(" @ %s", w.Company))
			}
			sb.WriteString("\n")
			if span := period(w.StartDate, w.EndDate, w.CurrentlyWorking); span != "" {
				sb.WriteString(fmt.Sprintf("    %s\n", span))
			}
		}
		if len(r.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Projects: %d  Education: %d  Certifications: %d\n",
		len(r.Projects), len(r.Education), len(r.Certifications)))
	sb.WriteString(fmt.Sprintf("Activities: %d  Achievements: %d",
		len(r.Extracurriculars), len(r.Achievements)))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintTailorSummary outputs the model's description of what it changed.
func (p *Printer) PrintTailorSummary(summary string) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return
	}
	p.printBox("TAILORING SUMMARY", wrap(summary, boxWidth-4))
}

// PrintOutputs lists the PDFs written by a batch render.
func (p *Printer) PrintOutputs(outputs []rendering.Output) {
	if len(outputs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rendered %d templates:\n\n", len(outputs)))
	for _, o := range outputs {
		sb.WriteString(fmt.Sprintf("%-13s %s (%d bytes)\n", o.Template, o.Path, len(o.PDF)))
	}

	p.printBox("RENDERED PDFS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSchemaErrors outputs the schema violations found in a resume document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSchemaErrors(errs []schemas.FieldError) {
	if len(errs) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME MATCHES SCHEMA")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(errs)))

	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", e.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", e.Message))
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

func period(start, end string, current bool) string {
	from := dates.Display(start)
	to := dates.Display(end)
	if current {
		to = "Present"
	}
	switch {
	case from != "" && to != "":
		return from + " – " + to
	case from != "":
		return from
	default:
		return to
	}
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
