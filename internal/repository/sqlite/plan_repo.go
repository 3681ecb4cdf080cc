package sqlite

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"alcyxob/fitness-tracker/internal/schedule"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

// --- Exercises ---

type exerciseRepository struct {
	db *gorm.DB
}

// NewExerciseRepository creates an ExerciseRepository backed by SQLite.
func NewExerciseRepository(db *gorm.DB) repository.ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error) {
	if exercise.Name == "" || exercise.TrainerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("exercise name and trainer ID are required")
	}
	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	row := exerciseRow{
		ID:               exercise.ID.Hex(),
		TrainerID:        exercise.TrainerID.Hex(),
		Name:             exercise.Name,
		Description:      exercise.Description,
		MuscleGroup:      exercise.MuscleGroup,
		ExecutionTechnic: exercise.ExecutionTechnic,
		Difficulty:       exercise.Difficulty,
		VideoURL:         exercise.VideoURL,
		CreatedAtMs:      millis(now),
		UpdatedAtMs:      millis(now),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return primitive.NilObjectID, err
	}
	return exercise.ID, nil
}

func (r *exerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var row exerciseRow
	if err := r.db.WithContext(ctx).Where("id = ?", id.Hex()).Take(&row).Error; err != nil {
		return nil, notFound(err)
	}
	exercise := row.toDomain()
	return &exercise, nil
}

func (r *exerciseRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}
	if len(ids) == 0 {
		return exercises, nil
	}
	hexes := make([]string, 0, len(ids))
	for _, id := range ids {
		hexes = append(hexes, id.Hex())
	}

	var rows []exerciseRow
	if err := r.db.WithContext(ctx).Where("id IN ?", hexes).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		exercises = append(exercises, row.toDomain())
	}
	return exercises, nil
}

// --- Training plans ---

type trainingPlanRepository struct {
	db *gorm.DB
}

// NewTrainingPlanRepository creates a TrainingPlanRepository backed by SQLite.
func NewTrainingPlanRepository(db *gorm.DB) repository.TrainingPlanRepository {
	return &trainingPlanRepository{db: db}
}

func (r *trainingPlanRepository) Create(ctx context.Context, plan *domain.TrainingPlan) (primitive.ObjectID, error) {
	if plan.TrainerID == primitive.NilObjectID || plan.Name == "" {
		return primitive.NilObjectID, errors.New("plan requires trainerId and name")
	}
	plan.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	row := trainingPlanRow{
		ID:            plan.ID.Hex(),
		TrainerID:     plan.TrainerID.Hex(),
		Name:          plan.Name,
		Description:   plan.Description,
		WeekCycle:     plan.WeekCycle,
		DurationWeeks: plan.DurationWeeks,
		CreatedAtMs:   millis(now),
		UpdatedAtMs:   millis(now),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return primitive.NilObjectID, err
	}
	return plan.ID, nil
}

func (r *trainingPlanRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingPlan, error) {
	var row trainingPlanRow
	if err := r.db.WithContext(ctx).Where("id = ?", id.Hex()).Take(&row).Error; err != nil {
		return nil, notFound(err)
	}
	plan := row.toDomain()
	return &plan, nil
}

// --- Plan exercises ---

type planExerciseRepository struct {
	db *gorm.DB
}

// NewPlanExerciseRepository creates a PlanExerciseRepository backed by SQLite.
func NewPlanExerciseRepository(db *gorm.DB) repository.PlanExerciseRepository {
	return &planExerciseRepository{db: db}
}

func (r *planExerciseRepository) Create(ctx context.Context, exercise *domain.PlanExercise) (primitive.ObjectID, error) {
	if exercise.PlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("plan exercise requires planId")
	}
	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	row := planExerciseRow{
		ID:          exercise.ID.Hex(),
		PlanID:      exercise.PlanID.Hex(),
		ExerciseID:  hexID(exercise.ExerciseID),
		Name:        exercise.Name,
		DayOfWeek:   exercise.DayOfWeek,
		Week:        exercise.Week,
		Sequence:    exercise.Sequence,
		Sets:        exercise.Sets,
		Reps:        exercise.Reps,
		Weight:      exercise.Weight,
		Duration:    exercise.Duration,
		RestTime:    exercise.RestTime,
		Notes:       exercise.Notes,
		CreatedAtMs: millis(now),
		UpdatedAtMs: millis(now),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return primitive.NilObjectID, err
	}
	return exercise.ID, nil
}

func (r *planExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanExercise, error) {
	var row planExerciseRow
	if err := r.db.WithContext(ctx).Where("id = ?", id.Hex()).Take(&row).Error; err != nil {
		return nil, notFound(err)
	}
	exercise := row.toDomain()
	return &exercise, nil
}

func (r *planExerciseRepository) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.PlanExercise, error) {
	var rows []planExerciseRow
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID.Hex()).
		Order("sequence ASC").Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	exercises := make([]domain.PlanExercise, 0, len(rows))
	for _, row := range rows {
		exercises = append(exercises, row.toDomain())
	}
	return exercises, nil
}

// --- Client plans ---

type clientPlanRepository struct {
	db *gorm.DB
}

// NewClientPlanRepository creates a ClientPlanRepository backed by SQLite.
func NewClientPlanRepository(db *gorm.DB) repository.ClientPlanRepository {
	return &clientPlanRepository{db: db}
}

func (r *clientPlanRepository) Create(ctx context.Context, assignment *domain.ClientPlan) (primitive.ObjectID, error) {
	if assignment.ClientID == primitive.NilObjectID || assignment.PlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("client plan requires clientId and planId")
	}
	assignment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = now
	}
	assignment.UpdatedAt = now

	row := clientPlanRow{
		ID:          assignment.ID.Hex(),
		ClientID:    assignment.ClientID.Hex(),
		PlanID:      assignment.PlanID.Hex(),
		TrainerID:   hexID(assignment.TrainerID),
		StartDay:    schedule.DayKey(assignment.StartDate),
		IsActive:    assignment.IsActive,
		CreatedAtMs: millis(assignment.CreatedAt),
		UpdatedAtMs: millis(now),
	}
	if assignment.EndDate != nil {
		end := schedule.DayKey(*assignment.EndDate)
		row.EndDay = &end
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return primitive.NilObjectID, err
	}
	return assignment.ID, nil
}

func (r *clientPlanRepository) GetActiveByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientPlan, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("client_id = ? AND is_active = ?", clientID.Hex(), true))
}

func (r *clientPlanRepository) GetByClientAndPlan(ctx context.Context, clientID, planID primitive.ObjectID) ([]domain.ClientPlan, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("client_id = ? AND plan_id = ?", clientID.Hex(), planID.Hex()))
}

func (r *clientPlanRepository) find(_ context.Context, query *gorm.DB) ([]domain.ClientPlan, error) {
	var rows []clientPlanRow
	if err := query.Order("created_at_ms DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	plans := make([]domain.ClientPlan, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, row.toDomain())
	}
	return plans, nil
}

func (r *clientPlanRepository) DeactivateOthers(ctx context.Context, clientID, keepID primitive.ObjectID, endDate time.Time) error {
	return r.db.WithContext(ctx).Model(&clientPlanRow{}).
		Where("client_id = ? AND is_active = ? AND id <> ?", clientID.Hex(), true, keepID.Hex()).
		Updates(map[string]interface{}{
			"is_active":     false,
			"end_day":       schedule.DayKey(endDate),
			"updated_at_ms": millis(time.Now()),
		}).Error
}
