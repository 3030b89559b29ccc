package feed

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/otsubo234039/NewsAPP/internal/cache"
	"github.com/otsubo234039/NewsAPP/internal/config"
	"github.com/otsubo234039/NewsAPP/internal/metrics"
)

const defaultCacheTTL = 5 * time.Minute

// Aggregator runs the fetch -> parse -> normalize pipeline across all
// sources of a category and memoizes the sorted result behind a TTL cache.
type Aggregator struct {
	feeds   *config.Feeds
	cache   *cache.Cache
	fetcher *Fetcher
	log     *slog.Logger
}

func NewAggregator(feeds *config.Feeds, c *cache.Cache, fetcher *Fetcher, log *slog.Logger) *Aggregator {
	return &Aggregator{
		feeds:   feeds,
		cache:   c,
		fetcher: fetcher,
		log:     log,
	}
}

func cacheKey(category string) string {
	return "rss:" + category
}

// Articles returns the sorted article list for a category, serving from
// cache when a live entry exists. An unconfigured category yields an empty
// list, never an error.
func (a *Aggregator) Articles(ctx context.Context, category string) []Article {
	cfg, ok := a.feeds.Lookup(category)
	if !ok {
		return []Article{}
	}

	key := cacheKey(category)
	if v, ok := a.cache.Get(key); ok {
		if articles, ok := v.([]Article); ok {
			metrics.Global.IncrementCacheHits()
			return articles
		}
	}
	metrics.Global.IncrementCacheMisses()

	start := time.Now()
	articles := make([]Article, 0)

	for _, src := range cfg.Sources {
		items, err := a.fetcher.Fetch(ctx, src)
		if err != nil {
			// Skip the source, the rest of the aggregation continues.
			a.log.Warn("source failed", "source", src.Title, "url", src.URL, "error", err)
			metrics.Global.IncrementFeedsFailed()
			continue
		}
		metrics.Global.IncrementFeedsFetched()
		a.log.Debug("source fetched", "source", src.Title, "items", len(items))

		for _, item := range items {
			articles = append(articles, Normalize(item, src))
		}
	}

	sortArticles(articles)

	// Empty results are cached for the full TTL too, matching the
	// cache-aside contract: a flapping upstream is retried once per TTL
	// window, not once per request.
	a.cache.Set(key, articles, ttlFor(cfg))

	metrics.Global.AddArticlesAggregated(len(articles))
	metrics.Global.RecordAggregation(time.Since(start))
	a.log.Info("category aggregated", "category", category, "articles", len(articles), "took", time.Since(start))

	return articles
}

func ttlFor(cfg config.CategoryConfig) time.Duration {
	if cfg.CacheSeconds <= 0 {
		return defaultCacheTTL
	}
	return time.Duration(cfg.CacheSeconds) * time.Second
}

// sortArticles orders by descending derived publish time. Articles with an
// unknown publish time (SortTime 0) end up at the tail in their incoming
// relative order.
func sortArticles(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].SortTime() > articles[j].SortTime()
	})
}
