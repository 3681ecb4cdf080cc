package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"alcyxob/fitness-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestComputeStreak(t *testing.T) {
	today := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		days     []string
		expected int
	}{
		{name: "three in a row", days: []string{"2024-01-10", "2024-01-09", "2024-01-08"}, expected: 3},
		{name: "gap breaks chain", days: []string{"2024-01-10", "2024-01-07"}, expected: 1},
		{name: "no days", days: nil, expected: 0},
		{name: "today not trained yet", days: []string{"2024-01-09", "2024-01-08"}, expected: 2},
		{name: "last workout too old", days: []string{"2024-01-08", "2024-01-07"}, expected: 0},
		{name: "one rest day breaks chain", days: []string{"2024-01-10", "2024-01-08"}, expected: 1},
		{name: "future entry ignored", days: []string{"2024-01-12", "2024-01-10"}, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, computeStreak(tc.days, today))
		})
	}
}

func TestStatsService_GetStreak(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, exercises := f.seedPlan(t, 1, "2024-01-01", scheduledExercise{name: "Run", day: 1, week: 1, sets: 1})
	run := exercises[0]

	streak, err := f.stats.GetStreak(ctx, f.clientID)
	require.NoError(t, err)
	assert.Zero(t, streak.Days)
	assert.Empty(t, streak.LastWorkoutDay)

	for _, day := range []string{"2024-01-10", "2024-01-09", "2024-01-08", "2024-01-05"} {
		_, err := f.workouts.CompleteSet(ctx, f.clientID, run.ID, SetInput{SetNumber: 1, Date: day})
		require.NoError(t, err)
	}
	// A note alone does not extend the streak.
	_, err = f.workouts.SaveNotes(ctx, f.clientID, run.ID, "2024-01-07", "sick")
	require.NoError(t, err)

	streak, err = f.stats.GetStreak(ctx, f.clientID)
	require.NoError(t, err)
	assert.Equal(t, 3, streak.Days)
	assert.Equal(t, "2024-01-10", streak.LastWorkoutDay)
}

func TestStatsService_GetWeeklyStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, exercises := f.seedPlan(t, 2, "2024-01-01",
		scheduledExercise{name: "Tempo", day: 2, week: 1, sets: 1},
		scheduledExercise{name: "Squat", day: 1, week: 2, sets: 3},
		scheduledExercise{name: "Bench", day: 1, week: 2, sets: 3},
		scheduledExercise{name: "Row", day: 3, week: 2, sets: 3},
		scheduledExercise{name: "Press", day: 5, week: 2, sets: 3},
	)
	squat := exercises[1]

	for _, day := range []string{"2024-01-07", "2024-01-08", "2024-01-10"} {
		_, err := f.workouts.CompleteSet(ctx, f.clientID, squat.ID, SetInput{SetNumber: 1, Date: day})
		require.NoError(t, err)
	}
	_, err := f.workouts.CompleteSet(ctx, f.clientID, squat.ID, SetInput{SetNumber: 2, Date: "2024-01-10"})
	require.NoError(t, err)
	_, err = f.workouts.SaveNotes(ctx, f.clientID, squat.ID, "2024-01-09", "rest")
	require.NoError(t, err)

	stats, err := f.stats.GetWeeklyStats(ctx, f.clientID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-08", stats.WeekStart)
	assert.Equal(t, "2024-01-14", stats.WeekEnd)
	assert.Equal(t, 2, stats.CompletedDays)
	assert.Equal(t, []string{"2024-01-08", "2024-01-10"}, stats.WorkoutDays)
	assert.Equal(t, 3, stats.ExpectedDays)
	assert.Equal(t, 2, stats.WeekInCycle)
	assert.Equal(t, []int{1, 2, 3, 5}, stats.CycleWorkoutDays)

	// The following week is week 1 of the cycle again.
	f.now = time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)
	stats, err = f.stats.GetWeeklyStats(ctx, f.clientID)
	require.NoError(t, err)
	assert.Zero(t, stats.CompletedDays)
	assert.Equal(t, 1, stats.ExpectedDays)
	assert.Equal(t, 1, stats.WeekInCycle)
}

func TestStatsService_GetWeeklyStatsWithoutPlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stats, err := f.stats.GetWeeklyStats(ctx, f.clientID)
	require.NoError(t, err)
	assert.Zero(t, stats.ExpectedDays)
	assert.Zero(t, stats.CompletedDays)
	assert.Empty(t, stats.CycleWorkoutDays)

	// Plan starting next month has not started yet.
	f.seedPlan(t, 1, "2024-02-05", scheduledExercise{name: "Run", day: 3, week: 1, sets: 1})
	stats, err = f.stats.GetWeeklyStats(ctx, f.clientID)
	require.NoError(t, err)
	assert.Zero(t, stats.ExpectedDays)
}

func TestStatsService_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	workoutLogs := NewMockWorkoutLogRepository(ctrl)
	clientID := primitive.NewObjectID()

	workoutLogs.EXPECT().ListByDayRange(gomock.Any(), clientID, "2024-01-08", "2024-01-14").
		Return(nil, errors.New("timeout"))
	workoutLogs.EXPECT().ListCompletedDays(gomock.Any(), clientID).
		Return(nil, repository.ErrNotFound)

	svc := NewStatsService(Deps{WorkoutLogs: workoutLogs, Clock: func() time.Time { return testNow }})

	_, err := svc.GetWeeklyStats(context.Background(), clientID)
	assert.ErrorIs(t, err, ErrStorage)
	_, err = svc.GetStreak(context.Background(), clientID)
	assert.ErrorIs(t, err, ErrStorage)
}

func TestStatsService_Timezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skip("tzdata not available")
	}
	ctrl := gomock.NewController(t)
	workoutLogs := NewMockWorkoutLogRepository(ctrl)
	clientID := primitive.NewObjectID()

	// Sunday 16:00 UTC is already Monday in Tokyo.
	now := time.Date(2024, 1, 14, 16, 0, 0, 0, time.UTC)
	workoutLogs.EXPECT().ListCompletedDays(gomock.Any(), clientID).
		Return([]string{"2024-01-15", "2024-01-14"}, nil)

	svc := NewStatsService(Deps{WorkoutLogs: workoutLogs, Clock: func() time.Time { return now }, Location: tokyo})
	streak, err := svc.GetStreak(context.Background(), clientID)
	require.NoError(t, err)
	assert.Equal(t, 2, streak.Days)
}
