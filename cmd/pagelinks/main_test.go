package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sternrassler/pagelinks/pkg/config"
	"github.com/Sternrassler/pagelinks/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	host, err := redisC.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := redisC.MappedPort(ctx, "6379")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})

	cleanup := func() {
		redisClient.Close()
		redisC.Terminate(ctx)
	}

	return redisClient, cleanup
}

func newTestServer(redisClient *redis.Client) *server {
	cfg := config.Default()
	if redisClient == nil {
		cfg.RedisURL = ""
	}
	return newServer(cfg, redisClient, zerolog.Nop())
}

func get(t *testing.T, h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest("GET", target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	healthHandler(w, req)

	resp := w.Result()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	if string(body) != "OK" {
		t.Errorf("Expected body 'OK', got %s", string(body))
	}
}

func TestReadyEndpoint_NoCache(t *testing.T) {
	w := get(t, readyHandler(nil), "/ready", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 without Redis, got %d", w.Code)
	}
}

func TestReadyEndpoint(t *testing.T) {
	redisClient, cleanup := setupTestRedis(t)
	defer cleanup()

	handler := readyHandler(redisClient)

	t.Run("ready", func(t *testing.T) {
		w := get(t, handler, "/ready", nil)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Body.String() != "OK" {
			t.Errorf("Expected body 'OK', got %s", w.Body.String())
		}
	})

	t.Run("not_ready_redis_down", func(t *testing.T) {
		// Close Redis to simulate failure
		redisClient.Close()

		w := get(t, handler, "/ready", nil)

		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("Expected status 503, got %d", w.Code)
		}
	})
}

func TestMetricsEndpoint(t *testing.T) {
	// Render once so the labelled counters have a series
	get(t, newTestServer(nil).routes(), "http://example.com/items?page=2", nil)

	w := get(t, metrics.Handler(), "/metrics", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	bodyStr := w.Body.String()
	if !strings.Contains(bodyStr, "# HELP") || !strings.Contains(bodyStr, "# TYPE") {
		t.Error("Expected Prometheus format metrics output")
	}

	for _, name := range []string{
		"pagination_renders_total",
		"pagination_render_duration_seconds",
		"pagination_links_built_total",
		"pagination_cache_hits_total",
	} {
		if !strings.Contains(bodyStr, name) {
			t.Errorf("Expected metrics output to contain %s", name)
		}
	}
}

func TestItemsHandler(t *testing.T) {
	h := newTestServer(nil).routes()

	tests := []struct {
		name     string
		target   string
		contains []string
		excludes []string
	}{
		{
			name:   "middle page with filter",
			target: "http://example.com/items?page=5&filter=x",
			contains: []string{
				"<title>Items, page 5 of 20</title>",
				"<li>Item 41</li>",
				"<li>Item 50</li>",
				`href="http://example.com/items?filter=x&amp;page=3"`,
				`<li class="pagination-page active"><a href="http://example.com/items?filter=x&amp;page=5" data-page="5">5</a></li>`,
				`class="pagination-first"`,
				`class="pagination-last"`,
			},
			excludes: []string{"<li>Item 51</li>", `data-page="8">8<`},
		},
		{
			name:     "first page has no back controls",
			target:   "http://example.com/items",
			contains: []string{"<li>Item 1</li>", `data-page="5">5<`},
			excludes: []string{`class="pagination-first"`, `class="pagination-prev"`},
		},
		{
			name:     "invalid page falls back to 1",
			target:   "http://example.com/items?page=abc",
			contains: []string{"<title>Items, page 1 of 20</title>"},
		},
		{
			name:     "page beyond the end is clamped",
			target:   "http://example.com/items?page=99",
			contains: []string{"<li>Item 195</li>", `data-page="16">16<`},
			excludes: []string{`class="pagination-next"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, h, tt.target, nil)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if w.Header().Get("ETag") == "" {
				t.Error("ETag header missing")
			}

			body := w.Body.String()
			for _, s := range tt.contains {
				if !strings.Contains(body, s) {
					t.Errorf("body missing %q", s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(body, s) {
					t.Errorf("body should not contain %q", s)
				}
			}
		})
	}
}

func TestItemsHandler_NotModified(t *testing.T) {
	h := newTestServer(nil).routes()

	first := get(t, h, "http://example.com/items?page=3", nil)
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("ETag header missing")
	}

	second := get(t, h, "http://example.com/items?page=3", http.Header{"If-None-Match": {etag}})
	if second.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", second.Code)
	}

	other := get(t, h, "http://example.com/items?page=4", http.Header{"If-None-Match": {etag}})
	if other.Code != http.StatusOK {
		t.Errorf("different page status = %d, want 200", other.Code)
	}
}

func TestPaginationHandler(t *testing.T) {
	h := newTestServer(nil).routes()

	t.Run("fragment", func(t *testing.T) {
		w := get(t, h, "http://example.com/pagination?page=2&pages=3", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}

		body := w.Body.String()
		if !strings.HasPrefix(body, `<ul class="pagination" data-page-count="3">`) {
			t.Errorf("unexpected fragment start: %q", body)
		}
		if !strings.Contains(body, `href="http://example.com/pagination?page=1&amp;pages=3"`) {
			t.Errorf("links should keep the pages parameter: %s", body)
		}
		if strings.Contains(body, "<html>") {
			t.Error("fragment should not contain a full page")
		}
	})

	t.Run("no pages", func(t *testing.T) {
		w := get(t, h, "http://example.com/pagination?pages=0", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if strings.Contains(w.Body.String(), "<a ") {
			t.Errorf("zero pages should render no links: %s", w.Body.String())
		}
	})

	t.Run("invalid pages", func(t *testing.T) {
		w := get(t, h, "http://example.com/pagination?pages=-1", nil)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestItemsHandler_RedisCache(t *testing.T) {
	redisClient, cleanup := setupTestRedis(t)
	defer cleanup()

	h := newTestServer(redisClient).routes()
	ctx := context.Background()

	first := get(t, h, "http://example.com/items?page=7&sort=name", nil)
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", first.Code)
	}

	keys, err := redisClient.Keys(ctx, "pagination:*").Result()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("cached keys = %v, want exactly one", keys)
	}
	if !strings.Contains(keys[0], "sort=name") || !strings.Contains(keys[0], "page=7") {
		t.Errorf("unexpected cache key %q", keys[0])
	}

	second := get(t, h, "http://example.com/items?page=7&sort=name", nil)
	if second.Body.String() != first.Body.String() {
		t.Error("cached response differs from the first render")
	}
	if second.Header().Get("ETag") != first.Header().Get("ETag") {
		t.Error("ETag should be stable across cache hits")
	}
}

func TestItemsHandler_RedisCacheKeepsQueriesApart(t *testing.T) {
	redisClient, cleanup := setupTestRedis(t)
	defer cleanup()

	h := newTestServer(redisClient).routes()

	joined := get(t, h, "http://example.com/items?page=2&tag=a%2Cb", nil)
	if !strings.Contains(joined.Body.String(), `tag=a%2cb`) && !strings.Contains(joined.Body.String(), `tag=a%2Cb`) {
		t.Fatalf("first response missing joined tag: %s", joined.Body.String())
	}

	repeated := get(t, h, "http://example.com/items?page=2&tag=a&tag=b", nil)
	body := repeated.Body.String()
	if !strings.Contains(body, `tag=a&amp;tag=b`) {
		t.Errorf("repeated tags served links of another query: %s", body)
	}
	if repeated.Header().Get("ETag") == joined.Header().Get("ETag") {
		t.Error("different queries should not share an ETag")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render",
		"--page", "5", "--page-count", "20",
		"--base", "https://h/path", "--param", "filter=x")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(out, `href="https://h/path?filter=x&amp;page=3"`) {
		t.Errorf("output missing page 3 link:\n%s", out)
	}
	if !strings.Contains(out, `pagination-page active`) {
		t.Errorf("output missing active page:\n%s", out)
	}
}

func TestRenderCommand_Parse(t *testing.T) {
	out, err := execute(t, "render", "--page", "5", "--page-count", "20", "--parse")
	if err != nil {
		t.Fatalf("render --parse failed: %v", err)
	}

	// first, prev, five numbered links, next, last
	if !strings.Contains(out, "9 anchors bound") {
		t.Errorf("unexpected anchor count:\n%s", out)
	}
	if !strings.HasPrefix(out, `<ul class="pagination"`) {
		t.Errorf("output should start with the control root:\n%s", out)
	}
}

func TestRenderCommand_InvalidParam(t *testing.T) {
	if _, err := execute(t, "render", "--param", "novalue"); err == nil {
		t.Error("render should reject a parameter without '='")
	}
}

func TestWindowCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--page", "5", "--page-count", "20"}, "3..7 [3 4 5 6 7]\n"},
		{[]string{"--page", "20", "--page-count", "20"}, "16..20 [16 17 18 19 20]\n"},
		{[]string{"--page", "5", "--page-count", "20", "--links", "4"}, "3..6 [3 4 5 6]\n"},
		{[]string{"--page", "1", "--page-count", "0"}, "empty\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, append([]string{"window"}, tt.args...)...)
			if err != nil {
				t.Fatalf("window failed: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}
