package report

import (
	"bufio"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/obsidianstack/empviz/internal/aggregate"
	"github.com/obsidianstack/empviz/internal/checks"
)

// Page is everything the report template renders.
type Page struct {
	Title   string
	Contact string

	// ChartSVG is embedded verbatim; it must come from chart.Render.
	ChartSVG string

	Summary aggregate.Summary
	Checks  []checks.Result

	// Code is the source listing shown at the bottom of the page.
	Code         string
	CodeLanguage string

	// Highlight selects chroma highlighting in Style; otherwise Code is
	// escaped into a plain <pre><code> block.
	Highlight bool
	Style     string

	RunID       string
	GeneratedAt time.Time
}

// view is the template data derived from a Page.
type view struct {
	Page
	Chart       template.HTML
	CodeHTML    template.HTML
	FiredChecks int
}

var pageTmpl = template.Must(template.New("report").Parse(pageHTML))

// Render writes the HTML document for p to w.
func Render(w io.Writer, p Page) error {
	v := view{
		Page:        p,
		Chart:       template.HTML(p.ChartSVG),
		FiredChecks: len(checks.Fired(p.Checks)),
	}
	if p.Highlight {
		code, err := Highlight(p.Code, p.CodeLanguage, p.Style)
		if err != nil {
			return err
		}
		v.CodeHTML = code
	}

	if err := pageTmpl.Execute(w, v); err != nil {
		return fmt.Errorf("report: render: %w", err)
	}
	return nil
}

// Write renders p and writes it to path, replacing any existing file.
func Write(path string, p Page) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("report: write: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Render(bw, p); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}
