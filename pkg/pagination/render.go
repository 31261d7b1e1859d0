package pagination

import (
	"strings"
	"time"

	"github.com/Sternrassler/pagelinks/pkg/dom"
)

// ParsePaginationTemplate renders the control to markup without parsing it
// or binding events.
func (p *Pagination) ParsePaginationTemplate() (string, error) {
	start := time.Now()

	data := TemplateData{
		PageCount: p.pageCount,
		NotFirst:  p.NotFirst(),
		Pages:     p.Links(),
		NotLast:   p.NotLast(),
	}

	markup, err := p.template(data)
	RenderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		RendersTotal.WithLabelValues("error").Inc()
		p.logger.Error().
			Err(err).
			Int("page", p.page).
			Int("page_count", p.pageCount).
			Msg("Pagination template failed")
		return "", &RenderError{Stage: StageTemplate, Page: p.page, Err: err}
	}

	RendersTotal.WithLabelValues("ok").Inc()
	return markup, nil
}

// ParsePagination renders the control, parses the trimmed markup into the
// document and binds click handlers to its anchors. Only the first top-level
// node of the markup is kept. A nil node is returned when the markup is empty.
func (p *Pagination) ParsePagination() (dom.Node, error) {
	markup, err := p.ParsePaginationTemplate()
	if err != nil {
		return nil, err
	}

	root, err := p.document.Parse(strings.TrimSpace(markup))
	if err != nil {
		return nil, &RenderError{Stage: StageParse, Page: p.page, Err: err}
	}

	return p.ApplyPaginationEvents(root), nil
}

// ApplyPaginationEvents attaches a click handler to every anchor below root.
// The handler prevents the default navigation and emits a pagination-request
// event with the anchor as payload. A nil root is returned as is.
func (p *Pagination) ApplyPaginationEvents(root dom.Node) dom.Node {
	if root == nil {
		return root
	}

	anchors := p.document.FindAnchors(root)
	for _, anchor := range anchors {
		p.document.OnClick(anchor, func(ev *dom.Event) {
			ev.PreventDefault()
			RequestsEmitted.Inc()
			p.emitter.Emit(EventPaginationRequest, anchor)
		})
	}

	p.logger.Debug().
		Int("anchors", len(anchors)).
		Msg("Bound pagination click handlers")

	return root
}
