package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDashboard(t *testing.T) {
	level, progress := "Beginner at Math", 0
	profile := &Profile{ID: DemoUserID, Username: "Maya", Level: &level, Progress: &progress}
	goals := []Goal{
		{ID: 1, Task: "Read", Completed: true},
		{ID: 2, Task: "Write"},
		{ID: 3, Task: "Practice"},
	}

	d := NewDashboard(profile, goals)

	assert.Equal(t, "Maya", d.Username)
	assert.Equal(t, "Beginner at Math", *d.Level)
	assert.Equal(t, 0, *d.JourneyProgress)
	assert.Equal(t, 33, d.Progress)
	assert.Equal(t, []DashboardGoal{
		{ID: 1, Title: "Read", Completed: true, Progress: 100},
		{ID: 2, Title: "Write", Progress: 0},
		{ID: 3, Title: "Practice", Progress: 0},
	}, d.Goals)
}

func TestNewDashboard_NoGoalsNoJourney(t *testing.T) {
	d := NewDashboard(&Profile{Username: "Maya"}, nil)

	assert.Equal(t, 0, d.Progress)
	assert.NotNil(t, d.Goals)
	assert.Empty(t, d.Goals)
	assert.Nil(t, d.Level)
	assert.Nil(t, d.JourneyProgress)
}
