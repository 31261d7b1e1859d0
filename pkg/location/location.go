// Package location resolves the base URL of the page a pagination control is
// rendered for and serialises query parameters for page links.
package location

import (
	"net/http"
	"net/url"
	"strings"
)

// Locator supplies the two URL operations page links are built from.
type Locator interface {
	// Current returns scheme, host and path of the active location,
	// without query or fragment.
	Current() string

	// BuildQueryString serialises params with a leading "?".
	// Returns "" when params is empty.
	BuildQueryString(params url.Values) string
}

// BuildQueryString encodes params as a query string with a leading "?".
// Keys are sorted by url.Values.Encode.
func BuildQueryString(params url.Values) string {
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// StaticLocator is a Locator with a fixed base URL.
type StaticLocator struct {
	base string
}

// Static returns a Locator for base. Any query or fragment on base is dropped.
func Static(base string) *StaticLocator {
	return &StaticLocator{base: stripQuery(base)}
}

// Current returns the fixed base URL.
func (l *StaticLocator) Current() string {
	return l.base
}

// BuildQueryString encodes params.
func (l *StaticLocator) BuildQueryString(params url.Values) string {
	return BuildQueryString(params)
}

// RequestLocator resolves the base URL from an incoming HTTP request.
type RequestLocator struct {
	base string
}

// FromRequest returns a Locator for the URL r was made to.
// X-Forwarded-Proto and X-Forwarded-Host take precedence when present.
func FromRequest(r *http.Request) *RequestLocator {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := firstHeaderValue(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		scheme = proto
	}

	host := r.Host
	if fwd := firstHeaderValue(r.Header.Get("X-Forwarded-Host")); fwd != "" {
		host = fwd
	}

	u := url.URL{
		Scheme: scheme,
		Host:   host,
		Path:   r.URL.Path,
	}

	return &RequestLocator{base: u.String()}
}

// Current returns the request's base URL.
func (l *RequestLocator) Current() string {
	return l.base
}

// BuildQueryString encodes params.
func (l *RequestLocator) BuildQueryString(params url.Values) string {
	return BuildQueryString(params)
}

// QueryParams returns a copy of the request's query parameters.
func QueryParams(r *http.Request) url.Values {
	return Clone(r.URL.Query())
}

// Clone returns a deep copy of params. A nil params yields an empty set.
func Clone(params url.Values) url.Values {
	out := make(url.Values, len(params)+1)
	for key, values := range params {
		out[key] = append([]string(nil), values...)
	}
	return out
}

func stripQuery(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		return raw[:i]
	}
	return raw
}

// firstHeaderValue returns the first entry of a comma separated header.
func firstHeaderValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
