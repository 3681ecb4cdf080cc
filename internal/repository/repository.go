package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=$GOFILE -destination=../service/mocks_test.go -package=service

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
	// ErrConflict is returned when a write would break a uniqueness constraint,
	// e.g. a second completion of the same set on the same day.
	ErrConflict = RepositoryError("conflict")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SetKey identifies one ledger slot.
type SetKey struct {
	ClientID       primitive.ObjectID
	PlanExerciseID primitive.ObjectID
	SetNumber      int
	Day            string // "2006-01-02"
}

// SetPerformance is the optional performance data recorded on completion.
type SetPerformance struct {
	Reps     *int
	Weight   *float64
	Duration *int
	Notes    *string // nil keeps existing notes when promoting a note-only entry
}

// ExerciseRepository defines the interface for interacting with exercise library data.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	// GetByIDs returns the exercises found; missing ids are skipped.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error)
}

// TrainingPlanRepository defines the interface for interacting with training plan data.
type TrainingPlanRepository interface {
	Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error)
}

// PlanExerciseRepository defines the interface for plan-exercise assignments.
type PlanExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.PlanExercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanExercise, error)
	// GetByPlanID returns the plan's exercises in insertion order.
	GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.PlanExercise, error)
}

// ClientPlanRepository defines the interface for plan assignments to clients.
type ClientPlanRepository interface {
	Create(ctx context.Context, assignment *domain.ClientPlan) (primitive.ObjectID, error)
	// GetActiveByClientID returns every active assignment of the client,
	// most recently created first.
	GetActiveByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientPlan, error)
	// GetByClientAndPlan returns the client's assignments of one plan, most recently created first.
	GetByClientAndPlan(ctx context.Context, clientID, planID primitive.ObjectID) ([]domain.ClientPlan, error)
	// DeactivateOthers marks every other active assignment of the client inactive.
	DeactivateOthers(ctx context.Context, clientID, keepID primitive.ObjectID, endDate time.Time) error
}

// WorkoutLogRepository owns the completion ledger. Every write is atomic with
// respect to the (client, plan exercise, set number, day) uniqueness rule.
type WorkoutLogRepository interface {
	// CompleteSet records a completed set. A note-only entry on the same slot is
	// promoted in place; an already completed entry yields ErrConflict.
	CompleteSet(ctx context.Context, key SetKey, perf SetPerformance, at time.Time) (*domain.WorkoutLog, error)
	// CompleteMissingSets completes every set 1..totalSets that is not yet
	// completed for the day, in one operation. It returns only the entries it
	// created or promoted.
	CompleteMissingSets(ctx context.Context, key SetKey, totalSets int, perf SetPerformance, at time.Time) ([]domain.WorkoutLog, error)
	// DeleteCompletedSet removes a completed entry; ErrNotFound when there is none.
	DeleteCompletedSet(ctx context.Context, key SetKey) error
	// UpsertNote sets the notes of the set-1 entry for the day, creating a
	// note-only entry if needed. Completion data is never modified.
	UpsertNote(ctx context.Context, key SetKey, notes string, at time.Time) (*domain.WorkoutLog, error)
	// ListByDayRange returns entries with fromDay <= day <= toDay, ordered by day then set.
	ListByDayRange(ctx context.Context, clientID primitive.ObjectID, fromDay, toDay string) ([]domain.WorkoutLog, error)
	// ListByPlanExercise returns every entry of one plan exercise, newest day first.
	ListByPlanExercise(ctx context.Context, clientID, planExerciseID primitive.ObjectID) ([]domain.WorkoutLog, error)
	// ListCompletedDays returns the distinct days holding at least one completed set, newest first.
	ListCompletedDays(ctx context.Context, clientID primitive.ObjectID) ([]string, error)
}
