package config

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_feeds.yaml
var defaultFeedsFS embed.FS

// SourceConfig is one configured feed: a display title and the feed URL.
// Identity is the URL; Title is the label stamped onto every article the
// source contributes.
type SourceConfig struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// CategoryConfig groups the sources for one category key and the TTL for
// its aggregated result.
type CategoryConfig struct {
	Sources      []SourceConfig `yaml:"sources"`
	CacheSeconds int            `yaml:"cache_seconds"`
}

// Feeds is the category key -> CategoryConfig mapping. It is loaded once
// at startup and never mutated afterwards.
type Feeds struct {
	Categories map[string]CategoryConfig `yaml:"feeds"`
}

// Lookup returns the config for a category key. A missing key is not an
// error; callers treat it as an empty source list.
func (f *Feeds) Lookup(category string) (CategoryConfig, bool) {
	cfg, ok := f.Categories[category]
	return cfg, ok
}

// CategoryKeys returns all configured category keys.
func (f *Feeds) CategoryKeys() []string {
	keys := make([]string, 0, len(f.Categories))
	for k := range f.Categories {
		keys = append(keys, k)
	}
	return keys
}

// LoadFeeds reads the category->sources mapping from the YAML file at
// path, or from the embedded default config when path is empty.
func LoadFeeds(path string) (*Feeds, error) {
	var data []byte
	var err error
	if path == "" {
		data, err = defaultFeedsFS.ReadFile("default_feeds.yaml")
		if err != nil {
			return nil, fmt.Errorf("reading embedded feeds config: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading feeds config %s: %w", path, err)
		}
	}

	var feeds Feeds
	if err := yaml.Unmarshal(data, &feeds); err != nil {
		return nil, fmt.Errorf("parsing feeds config: %w", err)
	}

	for key, cat := range feeds.Categories {
		for i, s := range cat.Sources {
			if s.URL == "" {
				return nil, fmt.Errorf("category %q: source %d has no url", key, i)
			}
		}
	}

	return &feeds, nil
}
