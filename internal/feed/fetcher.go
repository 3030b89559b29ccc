package feed

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/otsubo234039/NewsAPP/internal/config"
)

const userAgent = "NewsAPP/1.0 (+https://github.com/otsubo234039/NewsAPP)"

// Fetcher downloads one feed document and parses it as RSS or Atom. Each
// source is independent: a failure here never aborts the aggregation, the
// caller just skips the source.
type Fetcher struct {
	client *http.Client
	parser *gofeed.Parser
}

// NewFetcher builds a fetcher with a connect timeout for dialing and an
// overall request timeout covering the body read.
func NewFetcher(connectTimeout, requestTimeout time.Duration) *Fetcher {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: connectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: connectTimeout,
	}

	return &Fetcher{
		client: &http.Client{
			Timeout:   requestTimeout,
			Transport: transport,
		},
		parser: gofeed.NewParser(),
	}
}

// Fetch performs a single GET against the source URL and parses the body
// as a syndication feed.
func (f *Fetcher) Fetch(ctx context.Context, src config.SourceConfig) ([]*gofeed.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", src.URL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", src.URL, resp.StatusCode)
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.URL, err)
	}

	return parsed.Items, nil
}
