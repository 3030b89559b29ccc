package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/otsubo234039/NewsAPP/internal/config"
)

func TestFetchParsesRSS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != userAgent {
			t.Errorf("unexpected User-Agent %q", ua)
		}
		fmt.Fprint(w, rssWithDates)
	}))
	defer srv.Close()

	f := NewFetcher(time.Second, 2*time.Second)
	items, err := f.Fetch(context.Background(), config.SourceConfig{Title: "A", URL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Title != "newest" {
		t.Errorf("first item title = %q", items[0].Title)
	}
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(time.Second, 2*time.Second)
	if _, err := f.Fetch(context.Background(), config.SourceConfig{Title: "A", URL: srv.URL}); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestFetchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not a feed document")
	}))
	defer srv.Close()

	f := NewFetcher(time.Second, 2*time.Second)
	if _, err := f.Fetch(context.Background(), config.SourceConfig{Title: "A", URL: srv.URL}); err == nil {
		t.Fatal("expected parse error for malformed body")
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	f := NewFetcher(50*time.Millisecond, 50*time.Millisecond)
	if _, err := f.Fetch(context.Background(), config.SourceConfig{Title: "Slow", URL: srv.URL}); err == nil {
		t.Fatal("expected timeout error")
	}
}
