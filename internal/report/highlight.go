package report

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlight renders code as an HTML <pre> block with inline styles, so the
// result needs no stylesheet. All source text is HTML-escaped.
// Unknown languages fall back to plain text; unknown styles to chroma's
// fallback style.
func Highlight(code, language, style string) (template.HTML, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("report: tokenise: %w", err)
	}

	formatter := chromahtml.New(
		chromahtml.WithLineNumbers(true),
		chromahtml.TabWidth(4),
	)

	var buf bytes.Buffer
	if err := formatter.Format(&buf, styles.Get(style), it); err != nil {
		return "", fmt.Errorf("report: highlight: %w", err)
	}
	return template.HTML(buf.String()), nil
}
