package sqlite

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/schedule"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ids keep the ObjectID hex form so records move freely between stores.
// Timestamps are stored as unix milliseconds and calendar dates as day keys,
// which keeps ordering and comparisons independent of driver time formats.

type exerciseRow struct {
	ID               string `gorm:"column:id;primaryKey;size:24"`
	TrainerID        string `gorm:"column:trainer_id;size:24;not null;index"`
	Name             string `gorm:"column:name;not null"`
	Description      string `gorm:"column:description"`
	MuscleGroup      string `gorm:"column:muscle_group"`
	ExecutionTechnic string `gorm:"column:execution_technic"`
	Difficulty       string `gorm:"column:difficulty"`
	VideoURL         string `gorm:"column:video_url"`
	CreatedAtMs      int64  `gorm:"column:created_at_ms;not null"`
	UpdatedAtMs      int64  `gorm:"column:updated_at_ms;not null"`
}

func (exerciseRow) TableName() string { return "exercises" }

type trainingPlanRow struct {
	ID            string `gorm:"column:id;primaryKey;size:24"`
	TrainerID     string `gorm:"column:trainer_id;size:24;not null;index"`
	Name          string `gorm:"column:name;not null"`
	Description   string `gorm:"column:description"`
	WeekCycle     int    `gorm:"column:week_cycle;not null;default:1"`
	DurationWeeks int    `gorm:"column:duration_weeks;not null;default:0"`
	CreatedAtMs   int64  `gorm:"column:created_at_ms;not null"`
	UpdatedAtMs   int64  `gorm:"column:updated_at_ms;not null"`
}

func (trainingPlanRow) TableName() string { return "training_plans" }

type planExerciseRow struct {
	ID          string `gorm:"column:id;primaryKey;size:24"`
	PlanID      string `gorm:"column:plan_id;size:24;not null;index:idx_plan_sequence,priority:1"`
	ExerciseID  string `gorm:"column:exercise_id;size:24"`
	Name        string `gorm:"column:name"`
	DayOfWeek   int    `gorm:"column:day_of_week;not null"`
	Week        int    `gorm:"column:week;not null"`
	Sequence    int    `gorm:"column:sequence;not null;index:idx_plan_sequence,priority:2"`
	Sets        int    `gorm:"column:sets;not null"`
	Reps        string `gorm:"column:reps"`
	Weight      string `gorm:"column:weight"`
	Duration    string `gorm:"column:duration"`
	RestTime    string `gorm:"column:rest_time"`
	Notes       string `gorm:"column:notes"`
	CreatedAtMs int64  `gorm:"column:created_at_ms;not null"`
	UpdatedAtMs int64  `gorm:"column:updated_at_ms;not null"`
}

func (planExerciseRow) TableName() string { return "plan_exercises" }

type clientPlanRow struct {
	ID          string  `gorm:"column:id;primaryKey;size:24"`
	ClientID    string  `gorm:"column:client_id;size:24;not null;index:idx_client_active,priority:1"`
	PlanID      string  `gorm:"column:plan_id;size:24;not null;index"`
	TrainerID   string  `gorm:"column:trainer_id;size:24"`
	StartDay    string  `gorm:"column:start_day;size:10;not null"`
	EndDay      *string `gorm:"column:end_day;size:10"`
	IsActive    bool    `gorm:"column:is_active;not null;index:idx_client_active,priority:2"`
	CreatedAtMs int64   `gorm:"column:created_at_ms;not null"`
	UpdatedAtMs int64   `gorm:"column:updated_at_ms;not null"`
}

func (clientPlanRow) TableName() string { return "client_plans" }

type workoutLogRow struct {
	ID             string   `gorm:"column:id;primaryKey;size:24"`
	ClientID       string   `gorm:"column:client_id;size:24;not null;uniqueIndex:uniq_client_exercise_set_day,priority:1;index:idx_client_day,priority:1"`
	PlanExerciseID string   `gorm:"column:plan_exercise_id;size:24;not null;uniqueIndex:uniq_client_exercise_set_day,priority:2"`
	SetNumber      int      `gorm:"column:set_number;not null;uniqueIndex:uniq_client_exercise_set_day,priority:3"`
	Day            string   `gorm:"column:day;size:10;not null;uniqueIndex:uniq_client_exercise_set_day,priority:4;index:idx_client_day,priority:2"`
	Completed      bool     `gorm:"column:completed;not null"`
	CompletedReps  *int     `gorm:"column:completed_reps"`
	ActualWeight   *float64 `gorm:"column:actual_weight"`
	ActualDuration *int     `gorm:"column:actual_duration"`
	Notes          string   `gorm:"column:notes"`
	CompletedAtMs  int64    `gorm:"column:completed_at_ms;not null"`
	UpdatedAtMs    int64    `gorm:"column:updated_at_ms;not null"`
}

func (workoutLogRow) TableName() string { return "workout_logs" }

func hexID(id primitive.ObjectID) string {
	if id == primitive.NilObjectID {
		return ""
	}
	return id.Hex()
}

func objectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func fromDayKey(day string) time.Time {
	t, err := schedule.ParseDay(day, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r exerciseRow) toDomain() domain.Exercise {
	return domain.Exercise{
		ID:               objectID(r.ID),
		TrainerID:        objectID(r.TrainerID),
		Name:             r.Name,
		Description:      r.Description,
		MuscleGroup:      r.MuscleGroup,
		ExecutionTechnic: r.ExecutionTechnic,
		Difficulty:       r.Difficulty,
		VideoURL:         r.VideoURL,
		CreatedAt:        fromMillis(r.CreatedAtMs),
		UpdatedAt:        fromMillis(r.UpdatedAtMs),
	}
}

func (r trainingPlanRow) toDomain() domain.TrainingPlan {
	return domain.TrainingPlan{
		ID:            objectID(r.ID),
		TrainerID:     objectID(r.TrainerID),
		Name:          r.Name,
		Description:   r.Description,
		WeekCycle:     r.WeekCycle,
		DurationWeeks: r.DurationWeeks,
		CreatedAt:     fromMillis(r.CreatedAtMs),
		UpdatedAt:     fromMillis(r.UpdatedAtMs),
	}
}

func (r planExerciseRow) toDomain() domain.PlanExercise {
	return domain.PlanExercise{
		ID:         objectID(r.ID),
		PlanID:     objectID(r.PlanID),
		ExerciseID: objectID(r.ExerciseID),
		Name:       r.Name,
		DayOfWeek:  r.DayOfWeek,
		Week:       r.Week,
		Sequence:   r.Sequence,
		Sets:       r.Sets,
		Reps:       r.Reps,
		Weight:     r.Weight,
		Duration:   r.Duration,
		RestTime:   r.RestTime,
		Notes:      r.Notes,
		CreatedAt:  fromMillis(r.CreatedAtMs),
		UpdatedAt:  fromMillis(r.UpdatedAtMs),
	}
}

func (r clientPlanRow) toDomain() domain.ClientPlan {
	plan := domain.ClientPlan{
		ID:        objectID(r.ID),
		ClientID:  objectID(r.ClientID),
		PlanID:    objectID(r.PlanID),
		TrainerID: objectID(r.TrainerID),
		StartDate: fromDayKey(r.StartDay),
		IsActive:  r.IsActive,
		CreatedAt: fromMillis(r.CreatedAtMs),
		UpdatedAt: fromMillis(r.UpdatedAtMs),
	}
	if r.EndDay != nil {
		end := fromDayKey(*r.EndDay)
		plan.EndDate = &end
	}
	return plan
}

func (r workoutLogRow) toDomain() domain.WorkoutLog {
	return domain.WorkoutLog{
		ID:             objectID(r.ID),
		ClientID:       objectID(r.ClientID),
		PlanExerciseID: objectID(r.PlanExerciseID),
		SetNumber:      r.SetNumber,
		Completed:      r.Completed,
		CompletedReps:  r.CompletedReps,
		ActualWeight:   r.ActualWeight,
		ActualDuration: r.ActualDuration,
		Notes:          r.Notes,
		Day:            r.Day,
		CompletedAt:    fromMillis(r.CompletedAtMs),
		UpdatedAt:      fromMillis(r.UpdatedAtMs),
	}
}

func workoutLogsToDomain(rows []workoutLogRow) []domain.WorkoutLog {
	entries := make([]domain.WorkoutLog, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toDomain())
	}
	return entries
}
