package loadgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var ErrNoCodes = errors.New("no seeded codes")

func headers(bypassSecret string, extra ...string) http.Header {
	h := http.Header{}
	for i := 0; i+1 < len(extra); i += 2 {
		h.Set(extra[i], extra[i+1])
	}
	if bypassSecret != "" {
		h.Set(bypassHeader, bypassSecret)
	}
	return h
}

// CreateTargeter posts a distinct destination on every hit so that no two
// requests share a URL.
func CreateTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	var counter atomic.Uint64
	header := headers(bypassSecret, "Content-Type", "application/json")
	url := baseURL + "/api/v1/urls"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header
		t.Body = fmt.Appendf(nil, `{"url":"https://example.com/load/%d"}`, counter.Add(1))
		return nil
	}
}

func RedirectTargeter(baseURL string, codes []string, bypassSecret string) (vegeta.Targeter, error) {
	return codeTargeter(baseURL+"/", codes, bypassSecret)
}

// LookupTargeter reads mappings through the API, which does not count clicks.
func LookupTargeter(baseURL string, codes []string, bypassSecret string) (vegeta.Targeter, error) {
	return codeTargeter(baseURL+"/api/v1/urls/", codes, bypassSecret)
}

func codeTargeter(prefix string, codes []string, bypassSecret string) (vegeta.Targeter, error) {
	if len(codes) == 0 {
		return nil, ErrNoCodes
	}
	header := headers(bypassSecret)

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = prefix + codes[rand.IntN(len(codes))]
		t.Header = header
		return nil
	}, nil
}

func MixedTargeter(baseURL string, codes []string, createRatio float64, bypassSecret string) (vegeta.Targeter, error) {
	redirect, err := RedirectTargeter(baseURL, codes, bypassSecret)
	if err != nil {
		return nil, err
	}
	create := CreateTargeter(baseURL, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return create(t)
		}
		return redirect(t)
	}, nil
}

// Targeter picks the targeter for cfg.Mode.
func Targeter(cfg *Config, codes []string) (vegeta.Targeter, error) {
	switch cfg.Mode {
	case ModeCreate:
		return CreateTargeter(cfg.BaseURL, cfg.RateLimitBypass), nil
	case ModeRedirect:
		return RedirectTargeter(cfg.BaseURL, codes, cfg.RateLimitBypass)
	case ModeLookup:
		return LookupTargeter(cfg.BaseURL, codes, cfg.RateLimitBypass)
	case ModeMixed:
		return MixedTargeter(cfg.BaseURL, codes, cfg.CreateRatio, cfg.RateLimitBypass)
	default:
		return nil, fmt.Errorf("unknown bench type: %s", cfg.Mode)
	}
}
