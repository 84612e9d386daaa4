package search

import (
	"net/url"
	"sort"
	"strings"

	"github.com/hupe1980/wellcoach/core"
)

// DefaultTrustedSources lists domains and publisher names treated as reputable.
// Entries are matched as substrings of the lowercased URL or title.
var DefaultTrustedSources = []string{
	"nih.gov", "cdc.gov", "who.int", "mayo clinic", "harvard health",
	"webmd.com", "healthline.com", "medicalnewstoday.com",
	"pubmed.ncbi.nlm.nih.gov", "nhs.uk", "cleveland clinic",
}

// UnknownSource is reported for hits whose URL cannot be parsed or lacks a host.
const UnknownSource = "Unknown"

// Ranker scores hits by source trust and orders them.
type Ranker struct {
	trusted []string
}

// NewRanker builds a ranker. Without sources it uses DefaultTrustedSources.
func NewRanker(trusted ...string) *Ranker {
	if len(trusted) == 0 {
		trusted = DefaultTrustedSources
	}
	lowered := make([]string, len(trusted))
	for i, t := range trusted {
		lowered[i] = strings.ToLower(t)
	}
	return &Ranker{trusted: lowered}
}

// Rank converts hits to results sorted by descending trust score. The sort
// is stable, so provider order survives among equal scores.
func (r *Ranker) Rank(hits []core.SearchHit) []core.SearchResult {
	results := make([]core.SearchResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, core.SearchResult{
			Title:      h.Title,
			URL:        h.Link,
			Snippet:    h.Snippet,
			TrustScore: r.TrustScore(h.Link, h.Title),
			Source:     ExtractDomain(h.Link),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TrustScore > results[j].TrustScore
	})
	return results
}

// TrustScore returns core.TrustScoreTrusted when link or title mentions a
// trusted source, core.TrustScoreDefault otherwise.
func (r *Ranker) TrustScore(link, title string) int {
	link = strings.ToLower(link)
	title = strings.ToLower(title)
	for _, t := range r.trusted {
		if strings.Contains(link, t) || strings.Contains(title, t) {
			return core.TrustScoreTrusted
		}
	}
	return core.TrustScoreDefault
}

// ExtractDomain returns the host of rawURL without a leading "www.", or
// UnknownSource when the URL cannot be parsed or has no host.
func ExtractDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return UnknownSource
	}
	return strings.TrimPrefix(u.Host, "www.")
}
