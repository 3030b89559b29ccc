package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/otsubo234039/NewsAPP/internal/cache"
	"github.com/otsubo234039/NewsAPP/internal/config"
)

const rssWithDates = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Feed A</title>
<item><title>newest</title><link>https://a.example/3</link><description>c</description><pubDate>Wed, 03 Dec 2025 10:00:00 +0000</pubDate></item>
<item><title>oldest</title><link>https://a.example/1</link><description>a</description><pubDate>Mon, 01 Dec 2025 10:00:00 +0000</pubDate></item>
<item><title>middle</title><link>https://a.example/2</link><description>b</description><pubDate>Tue, 02 Dec 2025 10:00:00 +0000</pubDate></item>
</channel>
</rss>`

const rssNoDates = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Feed B</title>
<item><title>undated</title><link>https://b.example/1</link><description>x</description></item>
</channel>
</rss>`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAggregator(feeds *config.Feeds) *Aggregator {
	return NewAggregator(feeds, cache.New(), NewFetcher(time.Second, 2*time.Second), discardLogger())
}

func feedsWithCategory(key string, cacheSeconds int, sources ...config.SourceConfig) *config.Feeds {
	return &config.Feeds{
		Categories: map[string]config.CategoryConfig{
			key: {Sources: sources, CacheSeconds: cacheSeconds},
		},
	}
}

func rssServer(t *testing.T, body string, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestArticlesUnconfiguredCategory(t *testing.T) {
	agg := newTestAggregator(feedsWithCategory("it", 60))

	got := agg.Articles(context.Background(), "xyz")
	if got == nil {
		t.Fatal("unconfigured category must return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no articles, got %d", len(got))
	}
}

func TestArticlesSortedDescending(t *testing.T) {
	srv := rssServer(t, rssWithDates, nil)
	agg := newTestAggregator(feedsWithCategory("it", 60, config.SourceConfig{Title: "Feed A", URL: srv.URL}))

	got := agg.Articles(context.Background(), "it")
	if len(got) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(got))
	}
	wantOrder := []string{"newest", "middle", "oldest"}
	for i, title := range wantOrder {
		if got[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestArticlesUndatedSortLast(t *testing.T) {
	srvA := rssServer(t, rssWithDates, nil)
	srvB := rssServer(t, rssNoDates, nil)
	agg := newTestAggregator(feedsWithCategory("it", 60,
		config.SourceConfig{Title: "Feed B", URL: srvB.URL},
		config.SourceConfig{Title: "Feed A", URL: srvA.URL},
	))

	got := agg.Articles(context.Background(), "it")
	if len(got) != 4 {
		t.Fatalf("expected 4 articles, got %d", len(got))
	}
	if got[3].Title != "undated" {
		t.Errorf("undated article must sort last, tail is %q", got[3].Title)
	}
}

func TestArticlesPartialFailureIsolation(t *testing.T) {
	srvA := rssServer(t, rssWithDates, nil)
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)

	agg := newTestAggregator(feedsWithCategory("it", 60,
		config.SourceConfig{Title: "Feed A", URL: srvA.URL},
		config.SourceConfig{Title: "Broken", URL: broken.URL},
	))

	got := agg.Articles(context.Background(), "it")
	if len(got) != 3 {
		t.Fatalf("expected the healthy source's 3 articles, got %d", len(got))
	}
	for _, a := range got {
		if a.Source != "Feed A" {
			t.Errorf("unexpected source label %q", a.Source)
		}
	}
}

func TestArticlesCachedWithinTTL(t *testing.T) {
	var hits atomic.Int64
	srv := rssServer(t, rssWithDates, &hits)
	agg := newTestAggregator(feedsWithCategory("it", 300, config.SourceConfig{Title: "Feed A", URL: srv.URL}))

	first := agg.Articles(context.Background(), "it")
	second := agg.Articles(context.Background(), "it")

	if hits.Load() != 1 {
		t.Fatalf("second call within TTL must not refetch, upstream saw %d requests", hits.Load())
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("calls within the TTL must return structurally identical results")
	}
}

func TestArticlesAllSourcesFailedCachesEmpty(t *testing.T) {
	var hits atomic.Int64
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(broken.Close)

	agg := newTestAggregator(feedsWithCategory("it", 300, config.SourceConfig{Title: "Broken", URL: broken.URL}))

	if got := agg.Articles(context.Background(), "it"); len(got) != 0 {
		t.Fatalf("expected empty result, got %d articles", len(got))
	}
	// Empty results are cached for the TTL window.
	if got := agg.Articles(context.Background(), "it"); len(got) != 0 {
		t.Fatalf("expected empty cached result, got %d articles", len(got))
	}
	if hits.Load() != 1 {
		t.Fatalf("empty result must be served from cache, upstream saw %d requests", hits.Load())
	}
}
