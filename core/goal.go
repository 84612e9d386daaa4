package core

// DateLayout is the day granularity layout used for goal dates and tracking keys.
const DateLayout = "2006-01-02"

// GoalStatus is the lifecycle state of a wellness goal.
type GoalStatus string

const (
	// GoalActive marks a goal the user is still working on.
	GoalActive GoalStatus = "active"
	// GoalCompleted marks a finished goal.
	GoalCompleted GoalStatus = "completed"
)

// DefaultGoalCategory is assigned when a goal is added without a category.
const DefaultGoalCategory = "general"

// Goal is a user wellness goal. Goals are never deleted automatically; only
// their status and progress change after creation.
type Goal struct {
	Text        string     `json:"goal"`
	Category    string     `json:"category"`
	CreatedDate string     `json:"created_date"`
	TargetDate  *string    `json:"target_date"`
	Status      GoalStatus `json:"status"`
	Progress    float64    `json:"progress"`
}

// Profile is the open key/value user profile. Updates merge into it.
type Profile map[string]any

// Clone returns a shallow copy (never nil).
func (p Profile) Clone() Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge adds new keys and overwrites existing ones.
func (p Profile) Merge(partial map[string]any) {
	for k, v := range partial {
		p[k] = v
	}
}
