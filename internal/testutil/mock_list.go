// Package testutil provides testing utilities for pagination controls.
package testutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

// MockList is a paged list server that pagination links can point at.
// Each page is plain text with one item per line.
type MockList struct {
	server    *httptest.Server
	mu        sync.RWMutex
	itemCount int
	pageSize  int

	// Tracking
	RequestCount     int
	ConditionalCount int
	LastQuery        url.Values
	pages            []int
}

// NewMockList creates a list of itemCount items served pageSize at a time
// under /items.
func NewMockList(itemCount, pageSize int) *MockList {
	mock := &MockList{
		itemCount: itemCount,
		pageSize:  pageSize,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/items", mock.itemsHandler)
	mock.server = httptest.NewServer(mux)

	return mock
}

// URL returns the mock server URL.
func (m *MockList) URL() string {
	return m.server.URL
}

// ItemsURL returns the URL of the paged list.
func (m *MockList) ItemsURL() string {
	return m.server.URL + "/items"
}

// Close shuts down the mock server.
func (m *MockList) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockList) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.ConditionalCount = 0
	m.LastQuery = nil
	m.pages = nil
}

// PageCount returns the number of pages the list spans.
func (m *MockList) PageCount() int {
	if m.pageSize <= 0 || m.itemCount <= 0 {
		return 0
	}
	return (m.itemCount + m.pageSize - 1) / m.pageSize
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockList) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetConditionalCount returns the number of conditional requests.
func (m *MockList) GetConditionalCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ConditionalCount
}

// RequestedPages returns the pages requested so far, in order.
func (m *MockList) RequestedPages() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]int(nil), m.pages...)
}

func (m *MockList) itemsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if query.Get("page") == "" {
		page, err = 1, nil
	}

	m.mu.Lock()
	m.RequestCount++
	m.LastQuery = query
	if r.Header.Get("If-None-Match") != "" {
		m.ConditionalCount++
	}
	if err == nil {
		m.pages = append(m.pages, page)
	}
	m.mu.Unlock()

	if err != nil || page < 1 || page > m.PageCount() {
		http.Error(w, fmt.Sprintf("page %q out of range", query.Get("page")), http.StatusNotFound)
		return
	}

	var sb strings.Builder
	first := (page-1)*m.pageSize + 1
	last := min(first+m.pageSize-1, m.itemCount)
	for i := first; i <= last; i++ {
		fmt.Fprintf(&sb, "Item %d\n", i)
	}
	body := sb.String()

	sum := sha256.Sum256([]byte(body))
	etag := `"` + hex.EncodeToString(sum[:8]) + `"`

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Page", strconv.Itoa(page))
	w.Header().Set("X-Page-Count", strconv.Itoa(m.PageCount()))
	w.Header().Set("ETag", etag)

	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
