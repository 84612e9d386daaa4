package search

import "strings"

// DefaultTriggers is the phrase set that makes a message search-worthy.
var DefaultTriggers = []string{
	"latest", "recent", "current", "new study", "research shows",
	"what does science say", "studies on", "research on",
	"latest guidelines", "current recommendations", "recent findings",
	"what are the benefits of", "nutritional information",
	"calories in", "is it healthy", "side effects",
	"how to", "best way to", "most effective",
	"compare", "vs", "difference between",
	"local", "near me", "in my area",
}

// TriggerClassifier matches lowercased input against a fixed phrase set.
type TriggerClassifier struct {
	phrases []string
}

// NewTriggerClassifier builds a classifier. Without phrases it uses DefaultTriggers.
func NewTriggerClassifier(phrases ...string) *TriggerClassifier {
	if len(phrases) == 0 {
		phrases = DefaultTriggers
	}
	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}
	return &TriggerClassifier{phrases: lowered}
}

// ShouldSearch reports whether text contains at least one trigger phrase.
func (c *TriggerClassifier) ShouldSearch(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range c.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Phrases returns a copy of the configured phrases.
func (c *TriggerClassifier) Phrases() []string {
	out := make([]string, len(c.phrases))
	copy(out, c.phrases)
	return out
}

var defaultClassifier = NewTriggerClassifier()

// ShouldSearch classifies text with DefaultTriggers.
func ShouldSearch(text string) bool { return defaultClassifier.ShouldSearch(text) }
