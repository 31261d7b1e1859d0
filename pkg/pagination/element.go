package pagination

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Sternrassler/pagelinks/pkg/dom"
)

// PageFromElement recovers the target page from a clicked element.
// The data-page attribute wins; otherwise the page parameter of href is used.
func PageFromElement(el dom.Node) (int, error) {
	if el == nil {
		return 0, ErrNoPage
	}

	if v, ok := el.Attr("data-page"); ok {
		page, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: data-page %q: %v", ErrNoPage, v, err)
		}
		return page, nil
	}

	href, ok := el.Attr("href")
	if !ok {
		return 0, ErrNoPage
	}

	u, err := url.Parse(href)
	if err != nil {
		return 0, fmt.Errorf("%w: href %q: %v", ErrNoPage, href, err)
	}

	v := u.Query().Get(PageParam)
	if v == "" {
		return 0, ErrNoPage
	}

	page, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: page %q: %v", ErrNoPage, v, err)
	}
	return page, nil
}
