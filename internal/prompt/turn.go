package prompt

import (
	"text/template"

	"github.com/hupe1980/wellcoach/core"
	"github.com/hupe1980/wellcoach/session"
)

// SearchContext is the search augmentation section of a turn prompt.
type SearchContext struct {
	Query string
	// Count is the total number of ranked results.
	Count int
	// Top holds the results quoted in the prompt.
	Top []core.SearchResult
}

// Turn carries everything the coach model sees for one user message.
type Turn struct {
	Message  string
	Recent   []core.Exchange
	Profile  core.Profile
	Goals    []core.Goal
	Progress session.ProgressSummary
	Tracking core.DailyTracking
	Search   *SearchContext
}

var turnTemplate = template.Must(template.New("turn").Funcs(funcs).Parse(
	`User message: "{{.Message}}"

Recent conversation: {{json .Recent}}

User Profile: {{if .Profile}}{{json .Profile}}{{else}}Not yet established{{end}}

Current Wellness Goals: {{if .Goals}}{{json .Goals}}{{else}}None set{{end}}

Recent Progress: {{json .Progress}}

Daily Tracking Data (last 7 days): {{json .Tracking}}
{{- with .Search}}

CURRENT RESEARCH & INFORMATION (from search):
Query: {{.Query}}
Sources found: {{.Count}}

Search Results:
{{jsonIndent .Top}}

Please incorporate this current information into your response when relevant. Always cite sources when using search information.
{{- end}}

Please respond as Dr. Wellness, keeping in mind our previous conversations and the user's wellness journey. Be supportive, personalized, and actionable in your response. If you used search results, mention the sources and cite them appropriately.`))

// BuildTurn renders the composite context prompt for one turn.
func BuildTurn(t Turn) (string, error) {
	if t.Recent == nil {
		t.Recent = []core.Exchange{}
	}
	if t.Progress.RecentActivity == nil {
		t.Progress.RecentActivity = []string{}
	}
	return execute(turnTemplate, t)
}
