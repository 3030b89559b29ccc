package feed

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/otsubo234039/NewsAPP/internal/config"
)

// Normalize maps one parsed feed item and its originating source into an
// Article. It is a pure function: normalizing the same item twice yields
// identical values.
func Normalize(item *gofeed.Item, src config.SourceConfig) Article {
	link := item.Link
	if link == "" && len(item.Links) > 0 {
		link = item.Links[0]
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	published := item.Published
	if published == "" {
		published = item.Updated
	}

	publishedAt := item.PublishedParsed
	if publishedAt == nil {
		publishedAt = item.UpdatedParsed
	}

	return Article{
		Title:       item.Title,
		Link:        link,
		Summary:     summary,
		Published:   published,
		PublishedAt: publishedAt,
		Source:      src.Title,
		ImageURL:    extractImageURL(item, src.URL),
		Lang:        detectLang(item.Title + " " + summary),
	}
}

// extractImageURL probes, in order: enclosure URL, media:content /
// media:thumbnail extension URL, first <img src> inside the summary HTML.
// Relative URLs are resolved against the source URL. Never fails: any
// lookup problem just yields "".
func extractImageURL(item *gofeed.Item, sourceURL string) string {
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if enc.Type == "" || strings.HasPrefix(enc.Type, "image/") {
			return resolveURL(sourceURL, enc.URL)
		}
	}

	if media, ok := item.Extensions["media"]; ok {
		for _, name := range []string{"content", "thumbnail"} {
			for _, ext := range media[name] {
				if u := ext.Attrs["url"]; u != "" {
					return resolveURL(sourceURL, u)
				}
			}
		}
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}
	if summary != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(summary))
		if err == nil {
			if src, ok := doc.Find("img").First().Attr("src"); ok && src != "" {
				return resolveURL(sourceURL, src)
			}
		}
	}

	return ""
}

// resolveURL resolves ref against base, returning ref untouched when it is
// already absolute and "" when nothing sensible can be built.
func resolveURL(base, ref string) string {
	refURL, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	if refURL.IsAbs() {
		return refURL.String()
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(refURL).String()
}

// detectLang tags text as "ja" when it contains any Han, Hiragana or
// Katakana rune, "en" otherwise. A binary heuristic, not a language
// detector.
func detectLang(text string) string {
	for _, r := range text {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) {
			return "ja"
		}
	}
	return "en"
}
