package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hupe1980/wellcoach/core"
	"golang.org/x/time/rate"
)

const (
	serperEndpoint       = "https://google.serper.dev/search"
	defaultSearchTimeout = 10 * time.Second
)

// ErrMissingAPIKey is returned by Serper when no API key is configured.
var ErrMissingAPIKey = errors.New("serper API key not configured")

// SerperOptions configure the Serper provider.
type SerperOptions struct {
	Endpoint string
	// Timeout applies when HTTPClient is nil.
	Timeout    time.Duration
	HTTPClient *http.Client
	// RequestsPerSecond enables a client side rate limit when > 0.
	RequestsPerSecond float64
	Burst             int
}

// Serper calls the google.serper.dev search API.
type Serper struct {
	apiKey   string
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
}

// NewSerper constructs a Serper search provider.
func NewSerper(apiKey string, optFns ...func(o *SerperOptions)) *Serper {
	opts := SerperOptions{
		Endpoint: serperEndpoint,
		Timeout:  defaultSearchTimeout,
		Burst:    1,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	s := &Serper{apiKey: apiKey, endpoint: opts.Endpoint, client: client}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return s
}

// Name implements core.SearchProvider.
func (s *Serper) Name() string { return "serper" }

// Search implements core.SearchProvider.
func (s *Serper) Search(ctx context.Context, req core.SearchRequest) ([]core.SearchHit, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	body := map[string]any{"q": req.Query, "num": req.Count}
	if req.Country != "" {
		body["gl"] = req.Country
	}
	if req.Language != "" {
		body["hl"] = req.Language
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("X-API-KEY", s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("serper API returned %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var parsed struct {
		Organic []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"organic"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	hits := make([]core.SearchHit, 0, len(parsed.Organic))
	for _, r := range parsed.Organic {
		hits = append(hits, core.SearchHit{Title: r.Title, Link: r.Link, Snippet: r.Snippet})
	}
	return hits, nil
}

func truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes])
}
