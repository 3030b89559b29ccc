package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFeedsEmbeddedDefaults(t *testing.T) {
	feeds, err := LoadFeeds("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, ok := feeds.Lookup("it")
	if !ok {
		t.Fatal("embedded defaults must configure the 'it' category")
	}
	if len(cfg.Sources) == 0 {
		t.Fatal("'it' category must have sources")
	}
	if cfg.CacheSeconds <= 0 {
		t.Errorf("cache_seconds must be positive, got %d", cfg.CacheSeconds)
	}
}

func TestLoadFeedsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feeds.yaml")
	data := `feeds:
  tech:
    cache_seconds: 120
    sources:
      - title: "Example"
        url: "https://example.com/rss"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	feeds, err := LoadFeeds(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, ok := feeds.Lookup("tech")
	if !ok {
		t.Fatal("expected 'tech' category")
	}
	if cfg.CacheSeconds != 120 {
		t.Errorf("cache_seconds = %d, want 120", cfg.CacheSeconds)
	}
	if cfg.Sources[0].Title != "Example" || cfg.Sources[0].URL != "https://example.com/rss" {
		t.Errorf("unexpected source: %+v", cfg.Sources[0])
	}
}

func TestLoadFeedsRejectsSourceWithoutURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feeds.yaml")
	data := `feeds:
  tech:
    cache_seconds: 120
    sources:
      - title: "No URL"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFeeds(path); err == nil {
		t.Fatal("expected validation error for source without url")
	}
}

func TestLookupMissingCategory(t *testing.T) {
	feeds := &Feeds{Categories: map[string]CategoryConfig{}}
	if _, ok := feeds.Lookup("nope"); ok {
		t.Fatal("expected lookup miss")
	}
}
