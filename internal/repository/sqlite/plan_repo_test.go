package sqlite

import (
	"context"
	"testing"
	"time"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPlanExerciseRepository_GetByPlanIDKeepsSequence(t *testing.T) {
	db := openTestDB(t)
	plans := NewTrainingPlanRepository(db)
	exercises := NewPlanExerciseRepository(db)
	ctx := context.Background()

	planID, err := plans.Create(ctx, &domain.TrainingPlan{TrainerID: primitive.NewObjectID(), Name: "Upper/Lower", WeekCycle: 2})
	require.NoError(t, err)

	for i, name := range []string{"Squat", "Bench", "Row"} {
		_, err := exercises.Create(ctx, &domain.PlanExercise{PlanID: planID, Name: name, DayOfWeek: 1, Week: 1, Sequence: 2 - i, Sets: 3})
		require.NoError(t, err)
	}

	listed, err := exercises.GetByPlanID(ctx, planID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Row", listed[0].Name)
	assert.Equal(t, "Squat", listed[2].Name)

	plan, err := plans.GetByID(ctx, planID)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.WeekCycle)

	_, err = plans.GetByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientPlanRepository_ActiveOrderingAndDeactivation(t *testing.T) {
	repo := NewClientPlanRepository(openTestDB(t))
	ctx := context.Background()
	clientID := primitive.NewObjectID()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	older := &domain.ClientPlan{ClientID: clientID, PlanID: primitive.NewObjectID(), StartDate: start, IsActive: true, CreatedAt: start}
	newer := &domain.ClientPlan{ClientID: clientID, PlanID: primitive.NewObjectID(), StartDate: start.AddDate(0, 0, 7), IsActive: true, CreatedAt: start.Add(time.Hour)}
	_, err := repo.Create(ctx, older)
	require.NoError(t, err)
	_, err = repo.Create(ctx, newer)
	require.NoError(t, err)

	active, err := repo.GetActiveByClientID(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, newer.ID, active[0].ID)
	assert.Equal(t, start.AddDate(0, 0, 7), active[0].StartDate)

	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.DeactivateOthers(ctx, clientID, newer.ID, end))

	active, err = repo.GetActiveByClientID(ctx, clientID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, newer.ID, active[0].ID)

	history, err := repo.GetByClientAndPlan(ctx, clientID, older.PlanID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.False(t, history[0].IsActive)
	require.NotNil(t, history[0].EndDate)
	assert.Equal(t, end, *history[0].EndDate)
}

func TestExerciseRepository_GetByIDs(t *testing.T) {
	repo := NewExerciseRepository(openTestDB(t))
	ctx := context.Background()
	trainerID := primitive.NewObjectID()

	first, err := repo.Create(ctx, &domain.Exercise{TrainerID: trainerID, Name: "Deadlift"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &domain.Exercise{TrainerID: trainerID, Name: "Plank"})
	require.NoError(t, err)

	found, err := repo.GetByIDs(ctx, []primitive.ObjectID{first, second, primitive.NewObjectID()})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = repo.Create(ctx, &domain.Exercise{Name: "No trainer"})
	assert.Error(t, err)
}
