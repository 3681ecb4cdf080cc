package sqlite

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// workoutLogRepository implements repository.WorkoutLogRepository. Each write
// runs in one transaction and the unique index on (client_id,
// plan_exercise_id, set_number, day) backs it up at the storage level.
type workoutLogRepository struct {
	db *gorm.DB
}

// NewWorkoutLogRepository creates a WorkoutLogRepository backed by SQLite.
func NewWorkoutLogRepository(db *gorm.DB) repository.WorkoutLogRepository {
	return &workoutLogRepository{db: db}
}

func whereKey(tx *gorm.DB, key repository.SetKey) *gorm.DB {
	return tx.Where(
		"client_id = ? AND plan_exercise_id = ? AND set_number = ? AND day = ?",
		key.ClientID.Hex(), key.PlanExerciseID.Hex(), key.SetNumber, key.Day,
	)
}

func completionColumns(perf repository.SetPerformance, now time.Time) map[string]interface{} {
	columns := map[string]interface{}{
		"completed":       true,
		"completed_at_ms": millis(now),
		"updated_at_ms":   millis(now),
	}
	if perf.Reps != nil {
		columns["completed_reps"] = *perf.Reps
	}
	if perf.Weight != nil {
		columns["actual_weight"] = *perf.Weight
	}
	if perf.Duration != nil {
		columns["actual_duration"] = *perf.Duration
	}
	if perf.Notes != nil {
		columns["notes"] = *perf.Notes
	}
	return columns
}

func newCompletedRow(key repository.SetKey, perf repository.SetPerformance, now time.Time) workoutLogRow {
	row := workoutLogRow{
		ID:             primitive.NewObjectID().Hex(),
		ClientID:       key.ClientID.Hex(),
		PlanExerciseID: key.PlanExerciseID.Hex(),
		SetNumber:      key.SetNumber,
		Day:            key.Day,
		Completed:      true,
		CompletedReps:  perf.Reps,
		ActualWeight:   perf.Weight,
		ActualDuration: perf.Duration,
		CompletedAtMs:  millis(now),
		UpdatedAtMs:    millis(now),
	}
	if perf.Notes != nil {
		row.Notes = *perf.Notes
	}
	return row
}

// promote completes a note-only row on key inside tx. ok is false when no
// note-only row was there.
func promote(tx *gorm.DB, key repository.SetKey, perf repository.SetPerformance, now time.Time) (row workoutLogRow, ok bool, err error) {
	result := whereKey(tx.Model(&workoutLogRow{}), key).
		Where("completed = ?", false).
		Updates(completionColumns(perf, now))
	if result.Error != nil {
		return row, false, result.Error
	}
	if result.RowsAffected == 0 {
		return row, false, nil
	}
	if err := whereKey(tx, key).Take(&row).Error; err != nil {
		return row, false, err
	}
	return row, true, nil
}

func (r *workoutLogRepository) CompleteSet(ctx context.Context, key repository.SetKey, perf repository.SetPerformance, at time.Time) (*domain.WorkoutLog, error) {
	var saved workoutLogRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row, promoted, err := promote(tx, key, perf, at)
		if err != nil {
			return err
		}
		if promoted {
			saved = row
			return nil
		}

		row = newCompletedRow(key, perf, at)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return repository.ErrConflict
			}
			return err
		}
		saved = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	entry := saved.toDomain()
	return &entry, nil
}

func (r *workoutLogRepository) CompleteMissingSets(ctx context.Context, key repository.SetKey, totalSets int, perf repository.SetPerformance, at time.Time) ([]domain.WorkoutLog, error) {
	var created []workoutLogRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created = nil

		var existing []workoutLogRow
		err := tx.Where("client_id = ? AND plan_exercise_id = ? AND day = ?", key.ClientID.Hex(), key.PlanExerciseID.Hex(), key.Day).
			Where("set_number BETWEEN ? AND ?", 1, totalSets).
			Find(&existing).Error
		if err != nil {
			return err
		}

		present := make(map[int]bool, len(existing))
		for _, row := range existing {
			present[row.SetNumber] = true
			if row.Completed {
				continue
			}
			setKey := key
			setKey.SetNumber = row.SetNumber
			promotedRow, ok, err := promote(tx, setKey, perf, at)
			if err != nil {
				return err
			}
			if ok {
				created = append(created, promotedRow)
			}
		}

		for set := 1; set <= totalSets; set++ {
			if present[set] {
				continue
			}
			setKey := key
			setKey.SetNumber = set
			row := newCompletedRow(setKey, perf, at)
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 1 {
				created = append(created, row)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := workoutLogsToDomain(created)
	sort.Slice(entries, func(i, j int) bool { return entries[i].SetNumber < entries[j].SetNumber })
	return entries, nil
}

func (r *workoutLogRepository) DeleteCompletedSet(ctx context.Context, key repository.SetKey) error {
	result := whereKey(r.db.WithContext(ctx), key).
		Where("completed = ?", true).
		Delete(&workoutLogRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *workoutLogRepository) UpsertNote(ctx context.Context, key repository.SetKey, notes string, at time.Time) (*domain.WorkoutLog, error) {
	key.SetNumber = domain.NoteSetNumber

	var saved workoutLogRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := whereKey(tx.Model(&workoutLogRow{}), key).Updates(map[string]interface{}{
			"notes":         notes,
			"updated_at_ms": millis(at),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			row := workoutLogRow{
				ID:             primitive.NewObjectID().Hex(),
				ClientID:       key.ClientID.Hex(),
				PlanExerciseID: key.PlanExerciseID.Hex(),
				SetNumber:      key.SetNumber,
				Day:            key.Day,
				Completed:      false,
				Notes:          notes,
				CompletedAtMs:  millis(at),
				UpdatedAtMs:    millis(at),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return whereKey(tx, key).Take(&saved).Error
	})
	if err != nil {
		return nil, err
	}
	entry := saved.toDomain()
	return &entry, nil
}

func (r *workoutLogRepository) ListByDayRange(ctx context.Context, clientID primitive.ObjectID, fromDay, toDay string) ([]domain.WorkoutLog, error) {
	var rows []workoutLogRow
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND day >= ? AND day <= ?", clientID.Hex(), fromDay, toDay).
		Order("day ASC").Order("plan_exercise_id ASC").Order("set_number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return workoutLogsToDomain(rows), nil
}

func (r *workoutLogRepository) ListByPlanExercise(ctx context.Context, clientID, planExerciseID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	var rows []workoutLogRow
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND plan_exercise_id = ?", clientID.Hex(), planExerciseID.Hex()).
		Order("day DESC").Order("set_number ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return workoutLogsToDomain(rows), nil
}

func (r *workoutLogRepository) ListCompletedDays(ctx context.Context, clientID primitive.ObjectID) ([]string, error) {
	days := []string{}
	err := r.db.WithContext(ctx).Model(&workoutLogRow{}).
		Where("client_id = ? AND completed = ?", clientID.Hex(), true).
		Distinct().
		Order("day DESC").
		Pluck("day", &days).Error
	if err != nil {
		return nil, err
	}
	return days, nil
}
