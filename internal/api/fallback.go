package api

import "github.com/otsubo234039/NewsAPP/internal/feed"

// placeholderArticles returns the fixed development fallback shown when
// aggregation yields nothing, so the frontend always receives a
// well-formed, non-empty payload. A fresh slice is returned on every call
// so handlers can decorate it without sharing state.
func placeholderArticles() []feed.Article {
	return []feed.Article{
		{
			Title:   "フォールバック記事: フィードを取得できませんでした",
			Link:    "https://example.com/fallback/1",
			Summary: "現在、ニュースソースに接続できません。しばらくしてから再度お試しください。",
			Source:  "NewsAPP",
			Lang:    "ja",
		},
		{
			Title:   "開発用サンプル記事: カテゴリ設定を確認してください",
			Link:    "https://example.com/fallback/2",
			Summary: "feeds.yaml に対象カテゴリのソースが設定されているか確認してください。",
			Source:  "NewsAPP",
			Lang:    "ja",
		},
		{
			Title:   "Sample article: feed sources unreachable",
			Link:    "https://example.com/fallback/3",
			Summary: "All configured sources failed or returned no items for this category.",
			Source:  "NewsAPP",
			Lang:    "en",
		},
		{
			Title:   "Sample article: placeholder content",
			Link:    "https://example.com/fallback/4",
			Summary: "This is development fallback content, not live news.",
			Source:  "NewsAPP",
			Lang:    "en",
		},
	}
}
