package pagination

import (
	"strconv"

	"github.com/Sternrassler/pagelinks/pkg/location"
)

// PageParam is the query parameter carrying the target page.
const PageParam = "page"

// PageLink is one link of the control.
type PageLink struct {
	Page int
	Href string

	// Current is true only for the numbered link of the active page.
	Current bool
}

// LinkCollection holds the numbered window links plus the four control links.
// Control links are not clamped: Prev may point at page 0 and Next at
// pageCount+1.
type LinkCollection struct {
	Links []PageLink

	Prev  PageLink
	First PageLink
	Next  PageLink
	Last  PageLink
}

// Links builds the link collection for the current state.
func (p *Pagination) Links() LinkCollection {
	window := p.Window()

	links := LinkCollection{
		Prev:  p.link(p.page - 1),
		First: p.link(1),
		Next:  p.link(p.page + 1),
		Last:  p.link(p.pageCount),
		Links: make([]PageLink, 0, window.Len()),
	}

	for i := window.First; i <= window.Last; i++ {
		link := p.link(i)
		link.Current = i == p.page
		links.Links = append(links.Links, link)
	}

	LinksBuilt.WithLabelValues("control").Add(4)
	LinksBuilt.WithLabelValues("numbered").Add(float64(len(links.Links)))

	p.logger.Debug().
		Int("page", p.page).
		Int("page_count", p.pageCount).
		Int("window_first", window.First).
		Int("window_last", window.Last).
		Msg("Built pagination links")

	return links
}

func (p *Pagination) link(page int) PageLink {
	return PageLink{Page: page, Href: p.BuildPageURL(page)}
}

// BuildPageURL returns the URL for page: the locator's base URL followed by
// the request parameters with the page parameter replaced.
// The configured parameters are copied, never modified.
func (p *Pagination) BuildPageURL(page int) string {
	params := location.Clone(p.requestParams)
	params.Set(PageParam, strconv.Itoa(page))

	return p.locator.Current() + p.locator.BuildQueryString(params)
}
