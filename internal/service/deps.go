package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/schedule"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Deps wires the services to storage and to the ambient clock.
type Deps struct {
	Exercises     repository.ExerciseRepository
	Plans         repository.TrainingPlanRepository
	PlanExercises repository.PlanExerciseRepository
	ClientPlans   repository.ClientPlanRepository
	WorkoutLogs   repository.WorkoutLogRepository

	// Clock supplies "now"; defaults to time.Now.
	Clock func() time.Time
	// Location is where calendar days start and end; defaults to UTC.
	Location *time.Location
	Logger   *zap.Logger
	Metrics  *metrics.Ledger
}

type base struct {
	Deps
}

func newBase(deps Deps) base {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return base{Deps: deps}
}

// now returns the current instant in the configured location.
func (b *base) now() time.Time {
	return b.Clock().In(b.Location)
}

func (b *base) today() time.Time {
	return schedule.StartOfDay(b.now())
}

// day parses an optional YYYY-MM-DD value; empty means today.
func (b *base) day(value string) (time.Time, error) {
	if value == "" {
		return b.today(), nil
	}
	day, err := schedule.ParseDay(value, b.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return day, nil
}

func (b *base) storageFailure(operation string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.String("operation", operation), zap.Error(err))
	b.Logger.Error("storage operation failed", fields...)
	return fmt.Errorf("%w: %s", ErrStorage, operation)
}

// resolveActiveAssignment picks the client's current plan assignment: the most
// recently created active one, ties broken by the larger id.
func (b *base) resolveActiveAssignment(ctx context.Context, clientID primitive.ObjectID) (*domain.ClientPlan, error) {
	assignments, err := b.ClientPlans.GetActiveByClientID(ctx, clientID)
	if err != nil {
		return nil, b.storageFailure("get_active_client_plans", err, zap.String("clientId", clientID.Hex()))
	}

	var current *domain.ClientPlan
	for i := range assignments {
		candidate := &assignments[i]
		if !candidate.IsActive {
			continue
		}
		if current == nil || newerAssignment(candidate, current) {
			current = candidate
		}
	}
	if current == nil {
		return nil, ErrNoActivePlan
	}
	if len(assignments) > 1 {
		b.Logger.Warn("client has several active plans",
			zap.String("clientId", clientID.Hex()),
			zap.Int("count", len(assignments)),
			zap.String("selected", current.ID.Hex()))
	}
	return current, nil
}

func newerAssignment(a, b *domain.ClientPlan) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.Hex() > b.ID.Hex()
}

// activePlan resolves the active assignment together with its plan.
func (b *base) activePlan(ctx context.Context, clientID primitive.ObjectID) (*domain.ClientPlan, *domain.TrainingPlan, error) {
	assignment, err := b.resolveActiveAssignment(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}
	plan, err := b.Plans.GetByID(ctx, assignment.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrTrainingPlanNotFound
		}
		return nil, nil, b.storageFailure("get_training_plan", err, zap.String("planId", assignment.PlanID.Hex()))
	}
	return assignment, plan, nil
}
