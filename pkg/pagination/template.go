package pagination

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed templates/pagination.gohtml
var defaultTemplateText string

// TemplateData is passed to the template function on every render.
type TemplateData struct {
	PageCount int
	NotFirst  bool
	Pages     LinkCollection
	NotLast   bool
}

// TemplateFunc turns link data into markup with a single top-level element.
type TemplateFunc func(data TemplateData) (string, error)

// NewTemplate parses text as an html/template and returns a TemplateFunc
// executing it. Anchors should carry the target page (href or data-page) so a
// clicked element is enough to recover the requested page.
func NewTemplate(name, text string) (TemplateFunc, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	return func(data TemplateData) (string, error) {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("execute template %s: %w", name, err)
		}
		return buf.String(), nil
	}, nil
}

// DefaultTemplate returns the embedded template: a <ul class="pagination">
// list whose anchors carry href and data-page.
func DefaultTemplate() TemplateFunc {
	fn, err := NewTemplate("pagination", defaultTemplateText)
	if err != nil {
		// embedded template is fixed at build time
		panic(err)
	}
	return fn
}
