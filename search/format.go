package search

import (
	"fmt"
	"strings"

	"github.com/hupe1980/wellcoach/core"
)

// FormatResults renders up to limit results as a numbered listing with a
// star per trust point, the source domain, a snippet preview and the URL.
func FormatResults(rs *core.ResultSet, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Search Results for '%s':\n\n", rs.Query)
	for i, r := range rs.Top(limit) {
		score := r.TrustScore
		if score <= 0 {
			score = core.TrustScoreDefault
		}
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, r.Title, strings.Repeat("⭐", score))
		fmt.Fprintf(&b, "   Source: %s\n", r.Source)
		fmt.Fprintf(&b, "   %s...\n", truncate(r.Snippet, 150))
		fmt.Fprintf(&b, "   URL: %s\n\n", r.URL)
	}
	return b.String()
}
