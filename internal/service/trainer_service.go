package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/schedule"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ExerciseInput struct {
	Name             string
	Description      string
	MuscleGroup      string
	ExecutionTechnic string
	Difficulty       string
	VideoURL         string
}

type PlanInput struct {
	Name          string
	Description   string
	WeekCycle     int // 0 means DefaultWeekCycle
	DurationWeeks int
}

type PlanExerciseInput struct {
	ExerciseID primitive.ObjectID // optional library entry
	Name       string
	DayOfWeek  int
	Week       int
	Sets       int
	Reps       string
	Weight     string
	Duration   string
	RestTime   string
	Notes      string
}

type AssignPlanInput struct {
	StartDate string // YYYY-MM-DD, empty for today
	EndDate   string // optional
}

// --- Service Interface ---
type TrainerService interface {
	// Exercise library
	CreateExercise(ctx context.Context, trainerID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)

	// Plan authoring
	CreatePlan(ctx context.Context, trainerID primitive.ObjectID, input PlanInput) (*domain.TrainingPlan, error)
	AddPlanExercise(ctx context.Context, trainerID, planID primitive.ObjectID, input PlanExerciseInput) (*domain.PlanExercise, error)
	ListPlanExercises(ctx context.Context, trainerID, planID primitive.ObjectID) ([]domain.PlanExercise, error)

	// Assignment
	AssignPlan(ctx context.Context, trainerID, clientID, planID primitive.ObjectID, input AssignPlanInput) (*domain.ClientPlan, error)
}

// --- Service Implementation ---

// trainerService implements the TrainerService interface.
type trainerService struct {
	base
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(deps Deps) TrainerService {
	return &trainerService{base: newBase(deps)}
}

// === Exercise library ===

func (s *trainerService) CreateExercise(ctx context.Context, trainerID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if trainerID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: trainer ID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: exercise name is required", ErrInvalidInput)
	}

	exercise := &domain.Exercise{
		TrainerID:        trainerID,
		Name:             strings.TrimSpace(input.Name),
		Description:      input.Description,
		MuscleGroup:      input.MuscleGroup,
		ExecutionTechnic: input.ExecutionTechnic,
		Difficulty:       input.Difficulty,
		VideoURL:         input.VideoURL,
		// ID, CreatedAt, UpdatedAt set by repository
	}
	if _, err := s.Exercises.Create(ctx, exercise); err != nil {
		return nil, s.storageFailure("create_exercise", err, zap.String("trainerId", trainerID.Hex()))
	}
	return exercise, nil
}

// === Plan authoring ===

func (s *trainerService) CreatePlan(ctx context.Context, trainerID primitive.ObjectID, input PlanInput) (*domain.TrainingPlan, error) {
	if trainerID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: trainer ID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: plan name is required", ErrInvalidInput)
	}
	weekCycle := input.WeekCycle
	if weekCycle == 0 {
		weekCycle = domain.DefaultWeekCycle
	}
	if weekCycle < 1 {
		return nil, ErrInvalidWeekCycle
	}
	if input.DurationWeeks < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	plan := &domain.TrainingPlan{
		TrainerID:     trainerID,
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		WeekCycle:     weekCycle,
		DurationWeeks: input.DurationWeeks,
	}
	if _, err := s.Plans.Create(ctx, plan); err != nil {
		return nil, s.storageFailure("create_plan", err, zap.String("trainerId", trainerID.Hex()))
	}
	return plan, nil
}

// AddPlanExercise schedules an exercise on a (day of week, week in cycle)
// slot of the trainer's plan. Exercises keep the order they were added in.
func (s *trainerService) AddPlanExercise(ctx context.Context, trainerID, planID primitive.ObjectID, input PlanExerciseInput) (*domain.PlanExercise, error) {
	plan, err := s.ownedPlan(ctx, trainerID, planID)
	if err != nil {
		return nil, err
	}
	if input.DayOfWeek < 1 || input.DayOfWeek > 7 {
		return nil, ErrInvalidDayOfWeek
	}
	if input.Week < 1 || input.Week > plan.Cycle() {
		return nil, fmt.Errorf("%w: week %d of %d", ErrInvalidWeek, input.Week, plan.Cycle())
	}
	if input.Sets < 0 || input.Sets > MaxSetNumber {
		return nil, fmt.Errorf("%w: sets %d", ErrInvalidSetNumber, input.Sets)
	}

	name := strings.TrimSpace(input.Name)
	if input.ExerciseID != primitive.NilObjectID {
		exercise, err := s.Exercises.GetByID(ctx, input.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrExerciseNotFound
			}
			return nil, s.storageFailure("get_exercise", err, zap.String("exerciseId", input.ExerciseID.Hex()))
		}
		if exercise.TrainerID != trainerID {
			return nil, ErrExerciseNotFound
		}
		if name == "" {
			name = exercise.Name
		}
	}
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name or library exercise is required", ErrInvalidInput)
	}

	existing, err := s.PlanExercises.GetByPlanID(ctx, planID)
	if err != nil {
		return nil, s.storageFailure("get_plan_exercises", err, zap.String("planId", planID.Hex()))
	}

	pe := &domain.PlanExercise{
		PlanID:     planID,
		ExerciseID: input.ExerciseID,
		Name:       name,
		DayOfWeek:  input.DayOfWeek,
		Week:       input.Week,
		Sequence:   len(existing) + 1,
		Sets:       input.Sets,
		Reps:       input.Reps,
		Weight:     input.Weight,
		Duration:   input.Duration,
		RestTime:   input.RestTime,
		Notes:      input.Notes,
	}
	if _, err := s.PlanExercises.Create(ctx, pe); err != nil {
		return nil, s.storageFailure("create_plan_exercise", err, zap.String("planId", planID.Hex()))
	}
	return pe, nil
}

func (s *trainerService) ListPlanExercises(ctx context.Context, trainerID, planID primitive.ObjectID) ([]domain.PlanExercise, error) {
	if _, err := s.ownedPlan(ctx, trainerID, planID); err != nil {
		return nil, err
	}
	exercises, err := s.PlanExercises.GetByPlanID(ctx, planID)
	if err != nil {
		return nil, s.storageFailure("get_plan_exercises", err, zap.String("planId", planID.Hex()))
	}
	return exercises, nil
}

// === Assignment ===

// AssignPlan makes planID the client's active plan, anchored on StartDate.
// Any other active plan of the client is closed today.
func (s *trainerService) AssignPlan(ctx context.Context, trainerID, clientID, planID primitive.ObjectID, input AssignPlanInput) (*domain.ClientPlan, error) {
	if clientID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: client ID is required", ErrInvalidInput)
	}
	if _, err := s.ownedPlan(ctx, trainerID, planID); err != nil {
		return nil, err
	}
	start, err := s.day(input.StartDate)
	if err != nil {
		return nil, err
	}

	assignment := &domain.ClientPlan{
		ClientID:  clientID,
		PlanID:    planID,
		TrainerID: trainerID,
		StartDate: schedule.CalendarDate(start),
		IsActive:  true,
		CreatedAt: s.Clock().UTC(),
	}
	if input.EndDate != "" {
		end, err := s.day(input.EndDate)
		if err != nil {
			return nil, err
		}
		if schedule.DaysBetween(start, end) < 0 {
			return nil, fmt.Errorf("%w: end date precedes start date", ErrInvalidDateRange)
		}
		endDate := schedule.CalendarDate(end)
		assignment.EndDate = &endDate
	}

	if _, err := s.ClientPlans.Create(ctx, assignment); err != nil {
		return nil, s.storageFailure("create_client_plan", err, zap.String("clientId", clientID.Hex()))
	}
	if err := s.ClientPlans.DeactivateOthers(ctx, clientID, assignment.ID, schedule.CalendarDate(s.today())); err != nil {
		return nil, s.storageFailure("deactivate_client_plans", err, zap.String("clientId", clientID.Hex()))
	}

	s.Logger.Info("plan assigned",
		zap.String("trainerId", trainerID.Hex()),
		zap.String("clientId", clientID.Hex()),
		zap.String("planId", planID.Hex()),
		zap.String("startDate", schedule.DayKey(assignment.StartDate)))
	return assignment, nil
}

// ownedPlan loads a plan and checks that trainerID authored it.
func (s *trainerService) ownedPlan(ctx context.Context, trainerID, planID primitive.ObjectID) (*domain.TrainingPlan, error) {
	if trainerID == primitive.NilObjectID || planID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: trainer ID and plan ID are required", ErrInvalidInput)
	}
	plan, err := s.Plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainingPlanNotFound
		}
		return nil, s.storageFailure("get_training_plan", err, zap.String("planId", planID.Hex()))
	}
	if plan.TrainerID != trainerID {
		return nil, ErrPlanAccessDenied
	}
	return plan, nil
}
