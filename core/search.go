package core

import (
	"context"
	"time"
)

// Trust scores assigned by the result ranker.
const (
	TrustScoreDefault = 1
	TrustScoreTrusted = 5
)

// SearchResult is a ranked search hit. Source is the bare domain of URL.
type SearchResult struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Snippet    string `json:"snippet"`
	TrustScore int    `json:"trust_score"`
	Source     string `json:"source"`
}

// ResultSet is the ranked outcome of one search, as held in the cache.
type ResultSet struct {
	Query      string         `json:"query"`
	Results    []SearchResult `json:"results"`
	ProducedAt time.Time      `json:"timestamp"`
}

// Top returns at most n results from the head of the set.
func (rs *ResultSet) Top(n int) []SearchResult {
	if rs == nil {
		return nil
	}
	if n > len(rs.Results) {
		n = len(rs.Results)
	}
	return rs.Results[:n]
}

// SearchRequest is the provider level query (already enriched by the caller).
type SearchRequest struct {
	Query    string
	Count    int
	Country  string
	Language string
}

// SearchHit is a raw, unranked provider result.
type SearchHit struct {
	Title   string
	Link    string
	Snippet string
}

// SearchProvider abstracts a web search backend.
type SearchProvider interface {
	Search(ctx context.Context, req SearchRequest) ([]SearchHit, error)
	Name() string
}
