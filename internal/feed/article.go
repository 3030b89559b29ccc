package feed

import "time"

// Article is the canonical normalized record produced by the pipeline.
// Every field except ImageURL and Translations is always present; Lang is
// always "ja" or "en". Articles are plain values and are never mutated
// after normalization.
type Article struct {
	Title        string            `json:"title"`
	Link         string            `json:"link"`
	Summary      string            `json:"summary"`
	Published    string            `json:"published,omitempty"` // raw feed value, untouched
	Source       string            `json:"source"`              // configured source title, not the feed's own branding
	ImageURL     string            `json:"imageUrl,omitempty"`
	Lang         string            `json:"lang"`
	Translations map[string]string `json:"translations,omitempty"`

	// PublishedAt is the parsed publish time when the feed library could
	// parse one. Kept out of the JSON payload; used only for ordering.
	PublishedAt *time.Time `json:"-"`
}

// sortLayouts are tried in order when only the raw published string is
// available.
var sortLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC822Z,
	time.RFC822,
}

// SortTime derives the unix timestamp used for ordering. Articles whose
// publish time cannot be determined get 0 and therefore sort last.
func (a Article) SortTime() int64 {
	if a.PublishedAt != nil {
		return a.PublishedAt.Unix()
	}
	if a.Published == "" {
		return 0
	}
	for _, layout := range sortLayouts {
		if t, err := time.Parse(layout, a.Published); err == nil {
			return t.Unix()
		}
	}
	return 0
}
