package domain

// DashboardGoal is a goal as the dashboard shows it
type DashboardGoal struct {
	ID        uint   `json:"id"`        // Goal ID
	Title     string `json:"title"`     // Goal task
	Completed bool   `json:"completed"` // Done flag
	Progress  int    `json:"progress"`  // 100 when completed, else 0
}

// Dashboard is the summary shown on the learner's home screen
type Dashboard struct {
	Username        string          `json:"username"`         // Display name
	Level           *string         `json:"level"`            // Journey level, nil without a journey
	JourneyProgress *int            `json:"journey_progress"` // Journey progress, nil without a journey
	Progress        int             `json:"progress"`         // Percentage of goals completed
	Goals           []DashboardGoal `json:"goals"`            // Goals, oldest first
}

// NewDashboard builds the dashboard view of a profile and its goals
func NewDashboard(profile *Profile, goals []Goal) *Dashboard {
	d := &Dashboard{
		Username:        profile.Username,
		Level:           profile.Level,
		JourneyProgress: profile.Progress,
		Goals:           make([]DashboardGoal, 0, len(goals)),
	}
	completed := 0
	for _, g := range goals {
		progress := 0
		if g.Completed {
			progress = 100
			completed++
		}
		d.Goals = append(d.Goals, DashboardGoal{ID: g.ID, Title: g.Task, Completed: g.Completed, Progress: progress})
	}
	if len(goals) > 0 {
		d.Progress = completed * 100 / len(goals) // Rounded down
	}
	return d
}
