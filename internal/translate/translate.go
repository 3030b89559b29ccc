// Package translate is the external translation add-on. It is a thin,
// stateless collaborator: callers always get a string back, an empty one
// when translation is unavailable for any reason.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/otsubo234039/NewsAPP/internal/config"
	"github.com/otsubo234039/NewsAPP/internal/metrics"
	"github.com/otsubo234039/NewsAPP/internal/retry"
)

// Provider performs one translation call against an external service.
type Provider interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Service wraps a Provider with retries, a daily rate limit and error
// absorption: provider failures are logged and turned into "".
type Service struct {
	provider Provider
	limiter  *RateLimiter
	retries  int
	log      *slog.Logger
}

// NewService builds the translation service for the configured provider.
func NewService(cfg *config.Config, log *slog.Logger) (*Service, error) {
	var provider Provider
	var err error

	switch cfg.TranslateProvider {
	case "libre":
		provider = NewLibreProvider(cfg.TranslateURL, cfg.TranslateAPIKey, cfg.TranslateTimeout)
	case "gemini":
		provider, err = NewGeminiProvider(cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("init gemini provider: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported translate provider: %s", cfg.TranslateProvider)
	}

	retries := cfg.TranslateRetries
	if retries < 1 {
		retries = 1
	}

	return &Service{
		provider: provider,
		limiter:  NewRateLimiter(cfg.MaxTranslatePerDay),
		retries:  retries,
		log:      log,
	}, nil
}

// Translate returns text translated to target, or "" when the text is
// empty, the daily budget is spent, or the provider keeps failing. It
// never returns an error to the caller.
func (s *Service) Translate(ctx context.Context, text, source, target string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if !s.limiter.Allow() {
		s.log.Warn("translation budget exhausted", "target", target)
		return ""
	}

	var out string
	err := retry.Do(ctx, retry.Config{MaxAttempts: s.retries, Delay: time.Second, Backoff: true}, func() error {
		translated, err := s.provider.Translate(ctx, text, source, target)
		if err != nil {
			return err
		}
		out = translated
		return nil
	})
	if err != nil {
		s.log.Warn("translation failed", "target", target, "error", err)
		metrics.Global.IncrementTranslationsFailed()
		return ""
	}

	metrics.Global.IncrementTranslationsOK()
	return strings.TrimSpace(out)
}
