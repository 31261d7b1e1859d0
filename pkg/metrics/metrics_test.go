package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sternrassler/pagelinks/pkg/cache"
	"github.com/Sternrassler/pagelinks/pkg/metrics"
	"github.com/Sternrassler/pagelinks/pkg/pagination"
	"github.com/prometheus/client_golang/prometheus"
)

func TestRegistry(t *testing.T) {
	if metrics.Registry == nil {
		t.Error("Registry should not be nil")
	}

	if metrics.Registry != prometheus.DefaultRegisterer {
		t.Error("Registry should be the default Prometheus registerer")
	}
}

func TestNames_Registered(t *testing.T) {
	// Give the labelled vectors a series so they are gathered
	pagination.RendersTotal.WithLabelValues("ok")
	pagination.LinksBuilt.WithLabelValues("numbered")
	cache.CacheErrors.WithLabelValues("get")

	families, err := metrics.Gatherer.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	gathered := make(map[string]bool, len(families))
	for _, mf := range families {
		gathered[mf.GetName()] = true
	}

	for _, name := range metrics.Names {
		if !gathered[name] {
			t.Errorf("metric %s is documented but not registered", name)
		}
	}
}

func TestHandler(t *testing.T) {
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != 200 {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "# HELP") || !strings.Contains(body, "pagination_cache_hits_total") {
		t.Error("Expected Prometheus format metrics output")
	}
}
