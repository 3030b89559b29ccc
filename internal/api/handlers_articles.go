package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/otsubo234039/NewsAPP/internal/feed"
	"github.com/otsubo234039/NewsAPP/internal/metrics"
)

const defaultCategory = "it"

// translateLimit caps how many leading articles get translated per
// request; translation is slow and quota-bound.
const translateLimit = 3

type articlesResponse struct {
	Status   string         `json:"status"`
	Category string         `json:"category"`
	Count    int            `json:"count"`
	Articles []feed.Article `json:"articles"`
	Fallback bool           `json:"fallback"`
}

// handleArticles serves GET /api/articles. Feed problems never surface as
// a 5xx: the response is always 200 with live, empty-filtered, or
// placeholder data.
func (s *Server) handleArticles(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = defaultCategory
	}

	articles := s.aggregator.Articles(r.Context(), category)

	if onlyLang := r.URL.Query().Get("only_lang"); onlyLang == "ja" || onlyLang == "en" {
		filtered := make([]feed.Article, 0, len(articles))
		for _, a := range articles {
			if a.Lang == onlyLang {
				filtered = append(filtered, a)
			}
		}
		articles = filtered
	}

	fallback := false
	if len(articles) == 0 {
		articles = placeholderArticles()
		fallback = true
	} else if langs := r.URL.Query().Get("langs"); langs != "" && s.translator != nil {
		articles = s.withTranslations(r, articles, langs)
	}

	respondJSON(w, http.StatusOK, articlesResponse{
		Status:   "ok",
		Category: category,
		Count:    len(articles),
		Articles: articles,
		Fallback: fallback,
	})
}

// withTranslations attaches translated titles for each requested target
// language to the leading articles. Works on copies so the cached slice
// stays untouched.
func (s *Server) withTranslations(r *http.Request, articles []feed.Article, langs string) []feed.Article {
	out := make([]feed.Article, len(articles))
	copy(out, articles)

	limit := translateLimit
	if limit > len(out) {
		limit = len(out)
	}

	for i := 0; i < limit; i++ {
		for _, target := range strings.Split(langs, ",") {
			target = strings.TrimSpace(target)
			if target == "" || target == out[i].Lang {
				continue
			}
			translated := s.translator.Translate(r.Context(), out[i].Title, out[i].Lang, target)
			if translated == "" {
				continue
			}
			if out[i].Translations == nil {
				out[i].Translations = make(map[string]string)
			}
			out[i].Translations[target] = translated
		}
	}

	return out
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

type tagPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID *int64 `json:"parent_id"`
}

// handleTags serves the category taxonomy as a flat tag list.
func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	cats, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.logger.Error("list categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load tags")
		return
	}

	tags := make([]tagPayload, 0, len(cats))
	for _, c := range cats {
		tags = append(tags, tagPayload{ID: c.ID, Name: c.Name, Slug: c.Slug, ParentID: nil})
	}
	respondJSON(w, http.StatusOK, map[string]any{"tags": tags})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	code := http.StatusOK
	if healthy, ok := stats["is_healthy"].(bool); ok && !healthy {
		status = "error"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, code, map[string]any{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, metrics.Global.GetStats())
}
