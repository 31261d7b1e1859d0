package pagination

import (
	"net/url"

	"github.com/Sternrassler/pagelinks/pkg/dom"
	"github.com/Sternrassler/pagelinks/pkg/events"
	"github.com/Sternrassler/pagelinks/pkg/location"
	"github.com/Sternrassler/pagelinks/pkg/logging"
	"github.com/rs/zerolog"
)

// EventPaginationRequest is emitted when a rendered page link is clicked.
// The payload is the clicked dom.Node.
const EventPaginationRequest = "pagination-request"

// Config holds the collaborators and settings of a Pagination.
type Config struct {
	// Locator supplies the base URL and query string encoding (REQUIRED).
	Locator location.Locator

	// Template turns link data into markup.
	Template TemplateFunc

	// Document parses markup and binds click handlers.
	Document dom.Document

	// NumberOfLinks is the size of the numbered window (default: 5).
	NumberOfLinks int

	// Logger for debug output (default: component logger "pagination").
	Logger *zerolog.Logger
}

// DefaultConfig returns a configuration using the embedded template and an
// HTML document.
func DefaultConfig(locator location.Locator) Config {
	return Config{
		Locator:       locator,
		Template:      DefaultTemplate(),
		Document:      dom.NewHTMLDocument(),
		NumberOfLinks: DefaultNumberOfLinks,
	}
}

// Pagination holds the state of one pagination control.
// Setters return the receiver so calls can be chained.
type Pagination struct {
	requestParams url.Values
	page          int
	pageCount     int
	numberOfLinks int

	locator  location.Locator
	template TemplateFunc
	document dom.Document
	emitter  *events.Emitter
	logger   zerolog.Logger
}

// New creates a Pagination from cfg.
func New(cfg Config) (*Pagination, error) {
	if cfg.Locator == nil {
		return nil, ErrNoLocator
	}
	if cfg.Template == nil {
		return nil, ErrNoTemplate
	}
	if cfg.Document == nil {
		return nil, ErrNoDocument
	}

	if cfg.NumberOfLinks <= 0 {
		cfg.NumberOfLinks = DefaultNumberOfLinks
	}

	logger := logging.NewLogger("pagination")
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Pagination{
		numberOfLinks: cfg.NumberOfLinks,
		locator:       cfg.Locator,
		template:      cfg.Template,
		document:      cfg.Document,
		emitter:       events.NewEmitter(),
		logger:        logger,
	}, nil
}

// SetRequestParams sets the query parameters page links are built from.
// The values are read, never modified.
func (p *Pagination) SetRequestParams(params url.Values) *Pagination {
	p.requestParams = params
	return p
}

// SetPage sets the current page (1-based). No validation is performed.
func (p *Pagination) SetPage(page int) *Pagination {
	p.page = page
	return p
}

// SetPageCount sets the total number of pages. No validation is performed.
func (p *Pagination) SetPageCount(pageCount int) *Pagination {
	p.pageCount = pageCount
	return p
}

// RequestParams returns the configured query parameters.
func (p *Pagination) RequestParams() url.Values {
	return p.requestParams
}

// Page returns the current page.
func (p *Pagination) Page() int {
	return p.page
}

// PageCount returns the total number of pages.
func (p *Pagination) PageCount() int {
	return p.pageCount
}

// NumberOfLinks returns the size of the numbered window.
func (p *Pagination) NumberOfLinks() int {
	return p.numberOfLinks
}

// Document returns the document rendered trees are parsed into.
func (p *Pagination) Document() dom.Document {
	return p.document
}

// Events returns the event channel of this instance. It is created by New and
// lives as long as the Pagination.
func (p *Pagination) Events() *events.Emitter {
	return p.emitter
}

// OnRequest subscribes handler to pagination-request events.
// Subscribe before rendering: clicks emitted without listeners are lost.
func (p *Pagination) OnRequest(handler func(el dom.Node)) events.Subscription {
	return p.emitter.On(EventPaginationRequest, func(payload any) {
		el, _ := payload.(dom.Node)
		handler(el)
	})
}

// Window returns the numbered page window for the current state.
func (p *Pagination) Window() Window {
	return CalculateWindow(p.page, p.pageCount, p.numberOfLinks)
}

// NotFirst reports whether first/prev controls are meaningful.
func (p *Pagination) NotFirst() bool {
	return p.page != 1 && p.pageCount > 1
}

// NotLast reports whether next/last controls are meaningful.
func (p *Pagination) NotLast() bool {
	return p.page != p.pageCount && p.pageCount > 1
}
