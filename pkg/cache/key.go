package cache

import (
	"fmt"
	"net/url"
	"strings"
)

// CacheKey identifies one rendered pagination control.
type CacheKey struct {
	// BaseURL is the location the links point at (scheme, host, path)
	BaseURL string

	// QueryParams are the request parameters merged into every link.
	// A "page" parameter is ignored; Page carries the current page.
	QueryParams url.Values

	// Page is the current page
	Page int

	// PageCount is the total number of pages
	PageCount int

	// NumberOfLinks is the size of the numbered window
	NumberOfLinks int
}

// String generates a deterministic cache key string.
// Format: pagination:base?encoded-query:page=N:count=M:links=L
//
// The query is url-encoded with sorted keys, so values containing ',' or ':'
// and repeated parameters keep distinct keys.
//
// Example:
//
//	pagination:https://h/orders?filter=open:page=5:count=20:links=5
func (k CacheKey) String() string {
	var sb strings.Builder
	sb.WriteString("pagination:")
	sb.WriteString(strings.TrimSuffix(k.BaseURL, "/"))

	if len(k.QueryParams) > 0 {
		params := make(url.Values, len(k.QueryParams))
		for key, values := range k.QueryParams {
			if key == "page" {
				continue
			}
			params[key] = values
		}
		if encoded := params.Encode(); encoded != "" {
			sb.WriteString("?")
			sb.WriteString(encoded)
		}
	}

	fmt.Fprintf(&sb, ":page=%d:count=%d:links=%d", k.Page, k.PageCount, k.NumberOfLinks)
	return sb.String()
}
