// Package pagination renders a pagination control for a paged list of results.
//
// Given the current page, the total page count and the request's query
// parameters, a Pagination computes a bounded window of numbered page links
// around the current page, adds first/prev/next/last links, builds every href
// by merging the target page into the existing query string, renders the
// links through a template and binds click handlers that announce a
// "pagination-request" event. Navigation itself is left to the caller.
//
// Example usage:
//
//	p, err := pagination.New(pagination.DefaultConfig(location.Static("https://example.com/orders")))
//	if err != nil {
//		return err
//	}
//
//	p.OnRequest(func(el dom.Node) {
//		page, _ := pagination.PageFromElement(el)
//		// load page
//	})
//
//	root, err := p.SetRequestParams(url.Values{"filter": {"open"}}).
//		SetPage(5).
//		SetPageCount(20).
//		ParsePagination()
//
// The window always holds min(NumberOfLinks, pageCount) pages. It is centred
// on the current page and shifted back when it would run past the last page.
// With an even window size the half width truncates, so away from the edges
// the window holds one more page before the current page than after it
// (size 4 on page 5 gives 3..6).
//
// First/prev/next/last links are built without clamping (prev of page 1 points
// at page 0). The NotFirst and NotLast flags passed to the template decide
// whether they are shown.
package pagination
