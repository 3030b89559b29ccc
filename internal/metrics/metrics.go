package metrics

import (
	"sync"
	"time"
)

// Metrics collects process counters for the aggregation pipeline and the
// translation add-on. A single instance is shared via Global.
type Metrics struct {
	mu sync.RWMutex

	// Counters
	FeedsFetched       int64
	FeedsFailed        int64
	ArticlesAggregated int64
	CacheHits          int64
	CacheMisses        int64
	TranslationsOK     int64
	TranslationsFailed int64

	// Timings
	LastAggregationTime time.Duration

	// Status
	LastRunTime time.Time
	LastError   string
	IsHealthy   bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementFeedsFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFetched++
}

func (m *Metrics) IncrementFeedsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFailed++
}

func (m *Metrics) AddArticlesAggregated(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesAggregated += int64(n)
}

func (m *Metrics) IncrementCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *Metrics) IncrementCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *Metrics) IncrementTranslationsOK() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranslationsOK++
}

func (m *Metrics) IncrementTranslationsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TranslationsFailed++
}

func (m *Metrics) RecordAggregation(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastAggregationTime = duration
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]any {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]any{
		"feeds_fetched":            m.FeedsFetched,
		"feeds_failed":             m.FeedsFailed,
		"articles_aggregated":      m.ArticlesAggregated,
		"cache_hits":               m.CacheHits,
		"cache_misses":             m.CacheMisses,
		"translations_ok":          m.TranslationsOK,
		"translations_failed":      m.TranslationsFailed,
		"last_aggregation_time_ms": m.LastAggregationTime.Milliseconds(),
		"last_run_time":            m.LastRunTime.Format(time.RFC3339),
		"last_error":               m.LastError,
		"is_healthy":               m.IsHealthy,
	}
}
