package service

import (
	"context" // Request-scoped cancellation
	"errors"  // Error inspection
	"sync"    // Per-user locks
	"time"    // Cache TTL

	"emerge/internal/domain"     // Importing domain models
	"emerge/internal/repository" // Storage capability
	"emerge/internal/utils"      // Cache helpers

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// ProgressService implements the survey, profile, goal and dashboard operations.
// Every method takes the acting user's id explicitly.
type ProgressService struct {
	repo     repository.Repository // Storage
	rdb      *redis.Client         // Profile cache, nil disables caching
	cacheTTL time.Duration         // Profile cache lifetime
	locks    userLocks             // Serializes writes and cache fills per user
}

// NewProgressService builds a service over repo. rdb may be nil.
func NewProgressService(repo repository.Repository, rdb *redis.Client, cacheTTL time.Duration) *ProgressService {
	return &ProgressService{repo: repo, rdb: rdb, cacheTTL: cacheTTL}
}

// CheckNew reports whether the user still has to take the survey.
// A missing user counts as new.
func (s *ProgressService) CheckNew(ctx context.Context, userID uint) (bool, error) {
	isNew, err := s.repo.IsNew(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return true, nil // Fail open
	}
	if err != nil {
		return false, err // Storage failure
	}
	return isNew, nil
}

// SaveSurvey overwrites the user's survey answers and marks them as surveyed.
// With at least one subject the journey restarts at "Beginner at <first subject>".
// Submissions for the same user are serialized within this process; across
// processes the last write wins.
func (s *ProgressService) SaveSurvey(ctx context.Context, userID uint, survey domain.Survey) error {
	unlock := s.locks.lock(userID) // One writer per user
	defer unlock()

	// Both writes commit or neither does
	err := s.repo.Atomic(ctx, func(tx repository.Repository) error {
		if err := tx.UpdateSurvey(ctx, userID, survey); err != nil {
			return err // Rolls back
		}
		if len(survey.Subjects) == 0 {
			return nil // Journey untouched without a subject
		}
		return tx.UpdateJourney(ctx, userID, domain.BeginnerLevel(survey.Subjects[0]), 0)
	})
	if err != nil {
		return err
	}
	// Invalidate while still holding the lock so no reader can refill with old data
	s.invalidateProfile(ctx, userID)
	return nil
}

// GetProfile returns the user's merged user and journey record
func (s *ProgressService) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	// Fast path: cached profile
	if profile, ok := s.cachedProfile(ctx, userID); ok {
		return profile, nil
	}

	// Fill the cache under the user's lock so a concurrent survey cannot
	// commit between our read and our write
	unlock := s.locks.lock(userID)
	defer unlock()
	if profile, ok := s.cachedProfile(ctx, userID); ok {
		return profile, nil // Filled while we waited
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err // Not found or storage failure
	}
	if err := utils.SetProfileCache(ctx, s.rdb, profile, s.cacheTTL); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,      // User ID
			"error":   err.Error(), // Error message
		}).Warn("Profile cache write failed")
	}
	return profile, nil
}

// Dashboard summarizes the user's journey and goals
func (s *ProgressService) Dashboard(ctx context.Context, userID uint) (*domain.Dashboard, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.ListGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.NewDashboard(profile, goals), nil
}

// ListGoals returns the user's goals, oldest first
func (s *ProgressService) ListGoals(ctx context.Context, userID uint) ([]domain.Goal, error) {
	return s.repo.ListGoals(ctx, userID)
}

// CreateGoal adds an open goal for the user
func (s *ProgressService) CreateGoal(ctx context.Context, userID uint, task string) (*domain.Goal, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	goal := &domain.Goal{UserID: userID, Task: task} // New goals start open
	if err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// SetGoalCompleted marks one of the user's goals done or not done
func (s *ProgressService) SetGoalCompleted(ctx context.Context, userID, goalID uint, completed bool) (*domain.Goal, error) {
	unlock := s.locks.lock(userID)
	defer unlock()
	return s.repo.SetGoalCompleted(ctx, userID, goalID, completed)
}

// DeleteGoal removes one of the user's goals
func (s *ProgressService) DeleteGoal(ctx context.Context, userID, goalID uint) error {
	unlock := s.locks.lock(userID)
	defer unlock()
	return s.repo.DeleteGoal(ctx, userID, goalID)
}

// cachedProfile returns the cached profile, treating cache errors as a miss
func (s *ProgressService) cachedProfile(ctx context.Context, userID uint) (*domain.Profile, bool) {
	profile, found, err := utils.GetProfileCache(ctx, s.rdb, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,      // User ID
			"error":   err.Error(), // Error message
		}).Warn("Profile cache read failed")
		return nil, false
	}
	return profile, found
}

func (s *ProgressService) invalidateProfile(ctx context.Context, userID uint) {
	if err := utils.DeleteProfileCache(ctx, s.rdb, userID); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,      // User ID
			"error":   err.Error(), // Error message
		}).Warn("Profile cache invalidation failed")
	}
}

// userLocks hands out one mutex per user id
type userLocks struct {
	mu    sync.Mutex           // Guards locks
	locks map[uint]*sync.Mutex // Lazily created per user
}

func (l *userLocks) lock(userID uint) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uint]*sync.Mutex)
	}
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
