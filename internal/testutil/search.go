package testutil

import (
	"context"
	"sync"

	"github.com/hupe1980/wellcoach/core"
)

var _ core.SearchProvider = (*FakeProvider)(nil)

// FakeProvider returns canned hits (or an error) and counts calls.
type FakeProvider struct {
	mu       sync.Mutex
	hits     []core.SearchHit
	err      error
	requests []core.SearchRequest
}

// NewFakeProvider returns a provider answering every request with hits.
func NewFakeProvider(hits ...core.SearchHit) *FakeProvider {
	return &FakeProvider{hits: hits}
}

// Hit is shorthand for a core.SearchHit.
func Hit(title, link, snippet string) core.SearchHit {
	return core.SearchHit{Title: title, Link: link, Snippet: snippet}
}

// SetError makes subsequent calls fail with err (nil restores success).
func (p *FakeProvider) SetError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

// Name implements core.SearchProvider.
func (p *FakeProvider) Name() string { return "fake" }

// Search implements core.SearchProvider.
func (p *FakeProvider) Search(_ context.Context, req core.SearchRequest) ([]core.SearchHit, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	return append([]core.SearchHit(nil), p.hits...), nil
}

// Calls returns how many requests reached the provider.
func (p *FakeProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}

// Requests returns the received requests.
func (p *FakeProvider) Requests() []core.SearchRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]core.SearchRequest(nil), p.requests...)
}
