package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(p Provider) *Service {
	return &Service{
		provider: p,
		limiter:  NewRateLimiter(0),
		retries:  1,
		log:      testLogger(),
	}
}

func TestLibreProviderTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req libreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Q != "hello" || req.Target != "ja" || req.Format != "text" {
			t.Errorf("unexpected payload: %+v", req)
		}
		if req.Source != "auto" {
			t.Errorf("empty source must default to auto, got %q", req.Source)
		}
		fmt.Fprint(w, `{"translatedText":"こんにちは"}`)
	}))
	defer srv.Close()

	p := NewLibreProvider(srv.URL, "", 5*time.Second)
	got, err := p.Translate(context.Background(), "hello", "", "ja")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "こんにちは" {
		t.Errorf("got %q", got)
	}
}

func TestLibreProviderNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewLibreProvider(srv.URL, "", 5*time.Second)
	if _, err := p.Translate(context.Background(), "hello", "en", "ja"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

type stubProvider struct {
	out   string
	err   error
	calls int
}

func (s *stubProvider) Translate(ctx context.Context, text, source, target string) (string, error) {
	s.calls++
	return s.out, s.err
}

func TestServiceAbsorbsFailures(t *testing.T) {
	stub := &stubProvider{err: fmt.Errorf("provider down")}
	svc := testService(stub)

	if got := svc.Translate(context.Background(), "text", "en", "da"); got != "" {
		t.Fatalf("failure must yield empty string, got %q", got)
	}
}

func TestServiceEmptyInput(t *testing.T) {
	stub := &stubProvider{out: "should not be called"}
	svc := testService(stub)

	if got := svc.Translate(context.Background(), "   ", "en", "da"); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if stub.calls != 0 {
		t.Fatalf("provider must not be called for empty input, saw %d calls", stub.calls)
	}
}

func TestServiceRespectsRateLimit(t *testing.T) {
	stub := &stubProvider{out: "oversat"}
	svc := testService(stub)
	svc.limiter = NewRateLimiter(1)

	if got := svc.Translate(context.Background(), "text", "en", "da"); got != "oversat" {
		t.Fatalf("first call should translate, got %q", got)
	}
	if got := svc.Translate(context.Background(), "text", "en", "da"); got != "" {
		t.Fatalf("second call should hit the budget, got %q", got)
	}
	if stub.calls != 1 {
		t.Fatalf("provider called %d times, want 1", stub.calls)
	}
}

func TestRateLimiterUnlimited(t *testing.T) {
	rl := NewRateLimiter(0)
	for i := 0; i < 100; i++ {
		if !rl.Allow() {
			t.Fatal("unlimited limiter must always allow")
		}
	}
	if rl.Used() != 100 {
		t.Fatalf("used = %d, want 100", rl.Used())
	}
}
