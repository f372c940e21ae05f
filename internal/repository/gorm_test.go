package repository

import (
	"context"
	"path/filepath"
	"testing"

	"emerge/internal/config"
	"emerge/internal/db"
	"emerge/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(&config.Config{DBDriver: "sqlite", DBPath: filepath.Join(t.TempDir(), "emerge.db"), IsProd: true})
	require.NoError(t, err)
	require.NoError(t, db.Bootstrap(gdb))
	return gdb
}

func TestGormRepository_IsNew(t *testing.T) {
	repo := NewGormRepository(newSeededDB(t))
	ctx := context.Background()

	isNew, err := repo.IsNew(ctx, domain.DemoUserID)
	require.NoError(t, err)
	assert.True(t, isNew)

	_, err = repo.IsNew(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGormRepository_GetProfile_Seed(t *testing.T) {
	repo := NewGormRepository(newSeededDB(t))

	p, err := repo.GetProfile(context.Background(), domain.DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.DemoUserID, p.ID)
	assert.Equal(t, "Maya", p.Username)
	assert.True(t, p.IsNew)
	assert.Nil(t, p.Subjects)
	require.NotNil(t, p.Level)
	assert.Equal(t, "Newbie", *p.Level)
	require.NotNil(t, p.Progress)
	assert.Equal(t, 0, *p.Progress)
}

func TestGormRepository_GetProfile_NoJourney(t *testing.T) {
	gdb := newSeededDB(t)
	require.NoError(t, gdb.Where("user_id = ?", domain.DemoUserID).Delete(&domain.Journey{}).Error)
	repo := NewGormRepository(gdb)

	p, err := repo.GetProfile(context.Background(), domain.DemoUserID)
	require.NoError(t, err)
	assert.Nil(t, p.Level)
	assert.Nil(t, p.Progress)
}

func TestGormRepository_GetProfile_MissingUser(t *testing.T) {
	gdb := newSeededDB(t)
	require.NoError(t, gdb.Delete(&domain.User{}, domain.DemoUserID).Error)

	_, err := NewGormRepository(gdb).GetProfile(context.Background(), domain.DemoUserID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGormRepository_SurveyAndJourneyInOneTransaction(t *testing.T) {
	repo := NewGormRepository(newSeededDB(t))
	ctx := context.Background()
	survey := domain.Survey{Subjects: []string{"Math", "Ünïcode \"quoted\""}, Interests: "x", ThinkingStyle: "Plan"}

	err := repo.Atomic(ctx, func(tx Repository) error {
		if err := tx.UpdateSurvey(ctx, domain.DemoUserID, survey); err != nil {
			return err
		}
		return tx.UpdateJourney(ctx, domain.DemoUserID, domain.BeginnerLevel("Math"), 0)
	})
	require.NoError(t, err)

	p, err := repo.GetProfile(ctx, domain.DemoUserID)
	require.NoError(t, err)
	assert.False(t, p.IsNew)
	require.NotNil(t, p.Subjects)
	assert.Equal(t, survey.Subjects, []string(*p.Subjects))
	assert.Equal(t, "x", *p.Interests)
	assert.Equal(t, "", *p.Skills)
	assert.Equal(t, "Plan", *p.ThinkingStyle)
	assert.Equal(t, "Beginner at Math", *p.Level)
	assert.Equal(t, 0, *p.Progress)
}

func TestGormRepository_AtomicRollsBack(t *testing.T) {
	repo := NewGormRepository(newSeededDB(t))
	ctx := context.Background()

	err := repo.Atomic(ctx, func(tx Repository) error {
		if err := tx.UpdateSurvey(ctx, domain.DemoUserID, domain.Survey{Interests: "lost"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	isNew, err := repo.IsNew(ctx, domain.DemoUserID)
	require.NoError(t, err)
	assert.True(t, isNew)
}

func TestGormRepository_NilSubjectsStoredAsEmptyList(t *testing.T) {
	repo := NewGormRepository(newSeededDB(t))
	ctx := context.Background()

	require.NoError(t, repo.UpdateSurvey(ctx, domain.DemoUserID, domain.Survey{}))

	p, err := repo.GetProfile(ctx, domain.DemoUserID)
	require.NoError(t, err)
	require.NotNil(t, p.Subjects)
	assert.Empty(t, *p.Subjects)
}

func TestGormRepository_Goals(t *testing.T) {
	repo := NewGormRepository(newSeededDB(t))
	ctx := context.Background()

	goals, err := repo.ListGoals(ctx, domain.DemoUserID)
	require.NoError(t, err)
	assert.Empty(t, goals)

	first := &domain.Goal{UserID: domain.DemoUserID, Task: "Read a chapter"}
	second := &domain.Goal{UserID: domain.DemoUserID, Task: "Solve ten problems"}
	require.NoError(t, repo.CreateGoal(ctx, first))
	require.NoError(t, repo.CreateGoal(ctx, second))
	assert.NotZero(t, first.ID)

	updated, err := repo.SetGoalCompleted(ctx, domain.DemoUserID, first.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Read a chapter", updated.Task)

	_, err = repo.SetGoalCompleted(ctx, 99, first.ID, true)
	assert.ErrorIs(t, err, ErrGoalNotFound)

	goals, err = repo.ListGoals(ctx, domain.DemoUserID)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, first.ID, goals[0].ID)
	assert.True(t, goals[0].Completed)
	assert.False(t, goals[1].Completed)

	require.NoError(t, repo.DeleteGoal(ctx, domain.DemoUserID, first.ID))
	assert.ErrorIs(t, repo.DeleteGoal(ctx, domain.DemoUserID, first.ID), ErrGoalNotFound)
}
