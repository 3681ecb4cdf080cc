package service

import (
	"alcyxob/fitness-tracker/internal/schedule"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// WeeklyStats compares the days trained in the current Monday-Sunday week with
// the days the plan schedules for the current week of its cycle.
type WeeklyStats struct {
	WeekStart     string   `json:"weekStart"`
	WeekEnd       string   `json:"weekEnd"`
	CompletedDays int      `json:"completedDays"`
	ExpectedDays  int      `json:"expectedDays"`
	WorkoutDays   []string `json:"workoutDays"` // Days with a completed set
	WeekInCycle   int      `json:"weekInCycle,omitempty"`

	// Days of week (1 = Monday) trained in any week of the cycle.
	CycleWorkoutDays []int `json:"cycleWorkoutDays"`
}

type Streak struct {
	Days           int    `json:"days"`
	LastWorkoutDay string `json:"lastWorkoutDay,omitempty"`
}

type StatsService interface {
	GetWeeklyStats(ctx context.Context, clientID primitive.ObjectID) (*WeeklyStats, error)
	GetStreak(ctx context.Context, clientID primitive.ObjectID) (*Streak, error)
}

type statsService struct {
	base
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(deps Deps) StatsService {
	return &statsService{base: newBase(deps)}
}

// GetWeeklyStats counts the distinct days of this week holding a completed set.
func (s *statsService) GetWeeklyStats(ctx context.Context, clientID primitive.ObjectID) (*WeeklyStats, error) {
	if clientID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: client ID is required", ErrInvalidInput)
	}
	now := s.now()
	monday, sunday := schedule.WeekBounds(now)
	stats := &WeeklyStats{
		WeekStart:   schedule.DayKey(monday),
		WeekEnd:     schedule.DayKey(sunday),
		WorkoutDays:      []string{},
		CycleWorkoutDays: []int{},
	}

	logs, err := s.WorkoutLogs.ListByDayRange(ctx, clientID, stats.WeekStart, stats.WeekEnd)
	if err != nil {
		return nil, s.storageFailure("list_workout_logs", err, zap.String("clientId", clientID.Hex()))
	}
	seen := make(map[string]bool)
	for _, entry := range logs {
		if !entry.Completed || seen[entry.Day] {
			continue
		}
		seen[entry.Day] = true
		stats.WorkoutDays = append(stats.WorkoutDays, entry.Day)
	}
	stats.CompletedDays = len(stats.WorkoutDays)

	if err := s.fillSchedule(ctx, clientID, now, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// fillSchedule sets the expected days: the distinct days of week scheduled in
// the week of the cycle that `now` falls in. A client without a plan, or whose
// plan has not started, expects nothing.
func (s *statsService) fillSchedule(ctx context.Context, clientID primitive.ObjectID, now time.Time, stats *WeeklyStats) error {
	assignment, plan, err := s.activePlan(ctx, clientID)
	if errors.Is(err, ErrNoActivePlan) || errors.Is(err, ErrTrainingPlanNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	slot, err := schedule.Resolve(assignment.StartDate, plan.Cycle(), now)
	if err != nil {
		return nil
	}
	exercises, err := s.PlanExercises.GetByPlanID(ctx, plan.ID)
	if err != nil {
		return s.storageFailure("get_plan_exercises", err, zap.String("planId", plan.ID.Hex()))
	}
	stats.ExpectedDays = len(schedule.WorkoutDays(exercises, slot.WeekInCycle))
	stats.WeekInCycle = slot.WeekInCycle
	stats.CycleWorkoutDays = schedule.CycleWorkoutDays(exercises)
	return nil
}

// GetStreak counts consecutive training days ending today, or yesterday when
// today has no completed set yet.
func (s *statsService) GetStreak(ctx context.Context, clientID primitive.ObjectID) (*Streak, error) {
	if clientID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: client ID is required", ErrInvalidInput)
	}
	days, err := s.WorkoutLogs.ListCompletedDays(ctx, clientID)
	if err != nil {
		return nil, s.storageFailure("list_completed_days", err, zap.String("clientId", clientID.Hex()))
	}

	streak := &Streak{Days: computeStreak(days, s.today())}
	if len(days) > 0 {
		streak.LastWorkoutDay = days[0]
	}
	return streak, nil
}

// computeStreak walks day keys sorted newest first. The chain starts at today
// or yesterday and breaks at the first gap of more than one day.
func computeStreak(days []string, today time.Time) int {
	streak := 0
	prev := today
	for _, key := range days {
		day, err := schedule.ParseDay(key, today.Location())
		if err != nil {
			continue
		}
		gap := schedule.DaysBetween(day, prev)
		if gap < 0 {
			// entries dated in the future
			continue
		}
		if gap > 1 {
			break
		}
		streak++
		prev = day
	}
	return streak
}
