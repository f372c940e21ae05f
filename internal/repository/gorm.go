package repository

import (
	"context" // Request-scoped cancellation
	"errors"  // Error inspection
	"fmt"     // Error wrapping

	"emerge/internal/domain" // Importing domain models

	"gorm.io/datatypes" // JSON text columns
	"gorm.io/gorm"      // GORM ORM library
)

// GormRepository implements Repository on top of a gorm connection pool
type GormRepository struct {
	db *gorm.DB // Pool, or a transaction inside Atomic
}

// NewGormRepository wraps db
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// IsNew reads only the is_new column of the user
func (r *GormRepository) IsNew(ctx context.Context, userID uint) (bool, error) {
	var user domain.User // Holds the selected column
	err := r.db.WithContext(ctx).Select("is_new").Where("id = ?", userID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("is_new for user %d: %w", userID, ErrUserNotFound) // No such user
	}
	if err != nil {
		return false, fmt.Errorf("is_new for user %d: %w", userID, err) // Storage failure
	}
	return user.IsNew, nil
}

// GetProfile left-joins the user with its journey. With several journey
// rows the oldest one wins.
func (r *GormRepository) GetProfile(ctx context.Context, userID uint) (*domain.Profile, error) {
	var profile domain.Profile // Merged row
	// Left join so a user without a journey still comes back with nil level/progress
	res := r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.*, j.level, j.progress").
		Joins("LEFT JOIN journey AS j ON u.id = j.user_id").
		Where("u.id = ?", userID).
		Order("j.id").
		Limit(1).
		Scan(&profile)
	if res.Error != nil {
		return nil, fmt.Errorf("profile for user %d: %w", userID, res.Error) // Storage failure
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("profile for user %d: %w", userID, ErrUserNotFound) // No such user
	}
	return &profile, nil
}

// UpdateSurvey replaces all survey columns and clears is_new. Absent
// subjects are stored as an empty list.
func (r *GormRepository) UpdateSurvey(ctx context.Context, userID uint, survey domain.Survey) error {
	subjects := survey.Subjects
	if subjects == nil {
		subjects = []string{} // Store "[]" rather than "null"
	}
	// A map so that empty strings and false are written too
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", userID).Updates(map[string]any{
		"is_new":         false,                           // Surveyed for good
		"subjects":       datatypes.NewJSONSlice(subjects), // JSON text
		"interests":      survey.Interests,
		"skills":         survey.Skills,
		"goal":           survey.Goal,
		"thinking_style": survey.ThinkingStyle,
		"extra_info":     survey.ExtraInfo,
	}).Error
	if err != nil {
		return fmt.Errorf("update survey for user %d: %w", userID, err)
	}
	return nil
}

// UpdateJourney sets level and progress on every journey row of the user
func (r *GormRepository) UpdateJourney(ctx context.Context, userID uint, level string, progress int) error {
	err := r.db.WithContext(ctx).Model(&domain.Journey{}).Where("user_id = ?", userID).Updates(map[string]any{
		"level":    level,    // New level label
		"progress": progress, // Written even when 0
	}).Error
	if err != nil {
		return fmt.Errorf("update journey for user %d: %w", userID, err)
	}
	return nil
}

// Atomic runs fn inside a transaction; an error from fn rolls it back
func (r *GormRepository) Atomic(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx}) // Same methods, bound to tx
	})
}

// ListGoals returns the user's goals ordered by id
func (r *GormRepository) ListGoals(ctx context.Context, userID uint) ([]domain.Goal, error) {
	goals := []domain.Goal{} // Encodes as [] when empty
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals for user %d: %w", userID, err)
	}
	return goals, nil
}

// CreateGoal inserts goal and fills in its id and creation time
func (r *GormRepository) CreateGoal(ctx context.Context, goal *domain.Goal) error {
	if err := r.db.WithContext(ctx).Create(goal).Error; err != nil {
		return fmt.Errorf("create goal for user %d: %w", goal.UserID, err)
	}
	return nil
}

// SetGoalCompleted updates the done flag of a goal the user owns
func (r *GormRepository) SetGoalCompleted(ctx context.Context, userID, goalID uint, completed bool) (*domain.Goal, error) {
	var goal domain.Goal // Updated goal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Scoping by owner makes someone else's goal look missing
		if err := tx.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
			return err
		}
		goal.Completed = completed
		return tx.Model(&goal).Update("completed", completed).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("goal %d: %w", goalID, ErrGoalNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update goal %d: %w", goalID, err)
	}
	return &goal, nil
}

// DeleteGoal removes a goal the user owns
func (r *GormRepository) DeleteGoal(ctx context.Context, userID, goalID uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", goalID, userID).Delete(&domain.Goal{})
	if res.Error != nil {
		return fmt.Errorf("delete goal %d: %w", goalID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("goal %d: %w", goalID, ErrGoalNotFound) // Missing or not owned
	}
	return nil
}
