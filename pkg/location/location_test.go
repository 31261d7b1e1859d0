package location

import (
	"crypto/tls"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestBuildQueryString(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
		want   string
	}{
		{
			name:   "nil params",
			params: nil,
			want:   "",
		},
		{
			name:   "empty params",
			params: url.Values{},
			want:   "",
		},
		{
			name:   "single param",
			params: url.Values{"page": []string{"2"}},
			want:   "?page=2",
		},
		{
			name: "sorted keys",
			params: url.Values{
				"page":   []string{"2"},
				"filter": []string{"x"},
			},
			want: "?filter=x&page=2",
		},
		{
			name:   "escaped values",
			params: url.Values{"q": []string{"a b&c"}},
			want:   "?q=a+b%26c",
		},
		{
			name:   "repeated values",
			params: url.Values{"tag": []string{"a", "b"}},
			want:   "?tag=a&tag=b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildQueryString(tt.params)
			if got != tt.want {
				t.Errorf("BuildQueryString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatic(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"https://h/path", "https://h/path"},
		{"https://h/path?page=3", "https://h/path"},
		{"https://h/path#top", "https://h/path"},
		{"/relative/list", "/relative/list"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			l := Static(tt.base)
			if got := l.Current(); got != tt.want {
				t.Errorf("Current() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromRequest(t *testing.T) {
	t.Run("plain http", func(t *testing.T) {
		req := httptest.NewRequest("GET", "http://example.com/items?page=4&sort=name", nil)

		got := FromRequest(req).Current()
		if got != "http://example.com/items" {
			t.Errorf("Current() = %q, want %q", got, "http://example.com/items")
		}
	})

	t.Run("tls", func(t *testing.T) {
		req := httptest.NewRequest("GET", "http://example.com/items", nil)
		req.TLS = &tls.ConnectionState{}

		got := FromRequest(req).Current()
		if got != "https://example.com/items" {
			t.Errorf("Current() = %q, want %q", got, "https://example.com/items")
		}
	})

	t.Run("forwarded headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "http://internal:8080/items", nil)
		req.Header.Set("X-Forwarded-Proto", "https, http")
		req.Header.Set("X-Forwarded-Host", "public.example.com")

		got := FromRequest(req).Current()
		if got != "https://public.example.com/items" {
			t.Errorf("Current() = %q, want %q", got, "https://public.example.com/items")
		}
	})
}

func TestQueryParams_ReturnsCopy(t *testing.T) {
	req := httptest.NewRequest("GET", "http://example.com/items?filter=x", nil)

	params := QueryParams(req)
	params.Set("filter", "changed")

	if req.URL.Query().Get("filter") != "x" {
		t.Error("QueryParams should not alias the request URL")
	}
}

func TestClone(t *testing.T) {
	orig := url.Values{"tag": []string{"a", "b"}}

	cp := Clone(orig)
	cp["tag"][0] = "z"
	cp.Set("page", "2")

	if orig["tag"][0] != "a" {
		t.Error("Clone should copy value slices")
	}
	if orig.Has("page") {
		t.Error("Clone should not share the map")
	}

	if got := Clone(nil); got == nil {
		t.Error("Clone(nil) should return an empty, non-nil set")
	}
}
