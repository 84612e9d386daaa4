package coach

// ProfileAnswers are the answers of the quick profile setup. Empty answers are skipped.
type ProfileAnswers struct {
	Age                string
	ActivityLevel      string
	PrimaryGoal        string
	DietaryPreferences string
	HealthNotes        string
}

// SetupProfile merges the non-empty answers into the profile. A primary goal
// is also added as a goal in the "primary" category. It returns the merged fields.
func (c *Coach) SetupProfile(a ProfileAnswers) map[string]any {
	fields := map[string]any{}
	add := func(key, val string) {
		if val != "" {
			fields[key] = val
		}
	}
	add("age", a.Age)
	add("activity_level", a.ActivityLevel)
	add("primary_goal", a.PrimaryGoal)
	add("dietary_preferences", a.DietaryPreferences)
	add("health_notes", a.HealthNotes)

	if a.PrimaryGoal != "" {
		c.state.AddGoal(a.PrimaryGoal, nil, "primary")
	}
	c.state.UpdateProfile(fields)
	return fields
}
