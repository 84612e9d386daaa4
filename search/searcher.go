package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/wellcoach/core"
	"github.com/hupe1980/wellcoach/logging"
)

// DefaultQuerySuffix is appended to every query to bias results toward health research.
const DefaultQuerySuffix = " health wellness research study"

// ErrNoProvider is returned when a Searcher has no provider configured.
var ErrNoProvider = errors.New("no search provider configured")

// Options configure a Searcher.
type Options struct {
	// Ranker scores raw hits; defaults to NewRanker().
	Ranker *Ranker
	// CacheSize bounds the number of cached keys.
	CacheSize int
	// CacheTTL is the freshness window of a cached result set.
	CacheTTL time.Duration
	// Now is the clock used for cache freshness and result timestamps.
	Now func() time.Time
	// QuerySuffix enriches the query sent to the provider.
	QuerySuffix string
	// Country and Language are locale hints forwarded to the provider.
	Country  string
	Language string
	// Logger records searches and failures.
	Logger logging.Logger
}

// Searcher serves ranked result sets, from cache when fresh.
type Searcher struct {
	provider core.SearchProvider
	ranker   *Ranker
	cache    *Cache
	opts     Options
}

// New constructs a Searcher over provider (which may be nil, in which case
// every search fails).
func New(provider core.SearchProvider, optFns ...func(o *Options)) *Searcher {
	opts := Options{
		CacheSize:   DefaultCacheSize,
		CacheTTL:    DefaultCacheTTL,
		Now:         time.Now,
		QuerySuffix: DefaultQuerySuffix,
		Country:     "us",
		Language:    "en",
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Ranker == nil {
		opts.Ranker = NewRanker()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	// Size is positive here, so construction cannot fail.
	cache, _ := NewCache(opts.CacheSize, opts.CacheTTL, opts.Now)
	return &Searcher{provider: provider, ranker: opts.Ranker, cache: cache, opts: opts}
}

// Search returns the ranked results for (query, count). Failures are
// reported as "search failed: <detail>" and are never cached.
func (s *Searcher) Search(ctx context.Context, query string, count int) (*core.ResultSet, error) {
	start := s.opts.Now()
	if rs, ok := s.cache.Get(query, count); ok {
		s.opts.Logger.Debug("Search cache hit", "query", query, "count", count, "result_count", len(rs.Results))
		return rs, nil
	}
	if s.provider == nil {
		return nil, fmt.Errorf("search failed: %w", ErrNoProvider)
	}

	hits, err := s.provider.Search(ctx, core.SearchRequest{
		Query:    query + s.opts.QuerySuffix,
		Count:    count,
		Country:  s.opts.Country,
		Language: s.opts.Language,
	})
	if err != nil {
		s.opts.Logger.Warn("Search failed", "provider", s.provider.Name(), "query", query, "error", err)
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if count >= 0 && len(hits) > count {
		hits = hits[:count]
	}

	rs := &core.ResultSet{
		Query:      query,
		Results:    s.ranker.Rank(hits),
		ProducedAt: s.opts.Now(),
	}
	s.cache.Put(query, count, rs)
	s.opts.Logger.Info("Search completed", "provider", s.provider.Name(), "query", query,
		"result_count", len(rs.Results), "duration", s.opts.Now().Sub(start))
	return rs, nil
}

// Cache exposes the underlying result cache.
func (s *Searcher) Cache() *Cache { return s.cache }
