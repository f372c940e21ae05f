package repository

import (
	"context"
	"errors"

	"emerge/internal/domain"
)

var (
	// ErrUserNotFound is returned when no user row has the requested id
	ErrUserNotFound = errors.New("user not found")
	// ErrGoalNotFound is returned when the goal does not exist or belongs to another user
	ErrGoalNotFound = errors.New("goal not found")
)

// Repository is the storage capability the service layer needs.
type Repository interface {
	// IsNew reports the user's is_new flag.
	IsNew(ctx context.Context, userID uint) (bool, error)
	// GetProfile returns the user left-joined with its journey.
	GetProfile(ctx context.Context, userID uint) (*domain.Profile, error)
	// UpdateSurvey overwrites the survey fields and clears is_new.
	UpdateSurvey(ctx context.Context, userID uint, survey domain.Survey) error
	// UpdateJourney overwrites level and progress of the user's journey rows.
	UpdateJourney(ctx context.Context, userID uint, level string, progress int) error
	// Atomic runs fn against a repository bound to a single transaction.
	Atomic(ctx context.Context, fn func(repo Repository) error) error

	ListGoals(ctx context.Context, userID uint) ([]domain.Goal, error)
	CreateGoal(ctx context.Context, goal *domain.Goal) error
	SetGoalCompleted(ctx context.Context, userID, goalID uint, completed bool) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID uint) error
}
