// internal/repository/mongo/workout_log_repo.go
package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutLogCollectionName = "workout_logs"

// mongoWorkoutLogRepository implements repository.WorkoutLogRepository.
// Requires the unique index from EnsureWorkoutLogIndexes: an insert either
// takes the slot or fails with a duplicate key error.
type mongoWorkoutLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutLogRepository creates a new WorkoutLog repository.
func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		collection: db.Collection(workoutLogCollectionName),
	}
}

func keyFilter(key repository.SetKey) bson.M {
	return bson.M{
		"clientId":       key.ClientID,
		"planExerciseId": key.PlanExerciseID,
		"setNumber":      key.SetNumber,
		"day":            key.Day,
	}
}

func completionFields(perf repository.SetPerformance, now time.Time) bson.M {
	set := bson.M{
		"completed":   true,
		"completedAt": now,
		"updatedAt":   now,
	}
	if perf.Reps != nil {
		set["completedReps"] = *perf.Reps
	}
	if perf.Weight != nil {
		set["actualWeight"] = *perf.Weight
	}
	if perf.Duration != nil {
		set["actualDuration"] = *perf.Duration
	}
	if perf.Notes != nil {
		set["notes"] = *perf.Notes
	}
	return set
}

func newCompletedEntry(key repository.SetKey, perf repository.SetPerformance, now time.Time) domain.WorkoutLog {
	entry := domain.WorkoutLog{
		ID:             primitive.NewObjectID(),
		ClientID:       key.ClientID,
		PlanExerciseID: key.PlanExerciseID,
		SetNumber:      key.SetNumber,
		Completed:      true,
		CompletedReps:  perf.Reps,
		ActualWeight:   perf.Weight,
		ActualDuration: perf.Duration,
		Day:            key.Day,
		CompletedAt:    now,
		UpdatedAt:      now,
	}
	if perf.Notes != nil {
		entry.Notes = *perf.Notes
	}
	return entry
}

// promote turns a note-only entry on key into a completed one. It returns
// nil, nil when there is no note-only entry to promote.
func (r *mongoWorkoutLogRepository) promote(ctx context.Context, key repository.SetKey, perf repository.SetPerformance, now time.Time) (*domain.WorkoutLog, error) {
	filter := keyFilter(key)
	filter["completed"] = false

	var entry domain.WorkoutLog
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": completionFields(perf, now)}, opts).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// CompleteSet records a completed set, promoting a note-only entry in place.
func (r *mongoWorkoutLogRepository) CompleteSet(ctx context.Context, key repository.SetKey, perf repository.SetPerformance, at time.Time) (*domain.WorkoutLog, error) {
	now := at.UTC()

	promoted, err := r.promote(ctx, key, perf, now)
	if err != nil {
		return nil, err
	}
	if promoted != nil {
		return promoted, nil
	}

	entry := newCompletedEntry(key, perf, now)
	_, err = r.collection.InsertOne(ctx, entry)
	if err == nil {
		return &entry, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return nil, err
	}

	// The slot may hold a note-only entry written after the first promote.
	promoted, err = r.promote(ctx, key, perf, now)
	if err != nil {
		return nil, err
	}
	if promoted != nil {
		return promoted, nil
	}
	return nil, repository.ErrConflict
}

// completeMissingAttempts bounds the restarts of CompleteMissingSets after a
// concurrent writer took one of its slots.
const completeMissingAttempts = 3

var errSlotTaken = errors.New("set slot taken concurrently")

// CompleteMissingSets fills every set 1..totalSets not yet completed that day.
// The read, the promotions and the inserts commit in one transaction. A
// duplicate key aborts it and the whole computation restarts.
func (r *mongoWorkoutLogRepository) CompleteMissingSets(ctx context.Context, key repository.SetKey, totalSets int, perf repository.SetPerformance, at time.Time) ([]domain.WorkoutLog, error) {
	now := at.UTC()
	for attempt := 1; ; attempt++ {
		var created []domain.WorkoutLog
		err := r.inTransaction(ctx, func(txCtx context.Context) error {
			var err error
			created, err = r.completeMissing(txCtx, key, totalSets, perf, now)
			return err
		})
		if errors.Is(err, errSlotTaken) && attempt < completeMissingAttempts {
			continue
		}
		if err != nil {
			return nil, err
		}
		return created, nil
	}
}

func (r *mongoWorkoutLogRepository) completeMissing(ctx context.Context, key repository.SetKey, totalSets int, perf repository.SetPerformance, now time.Time) ([]domain.WorkoutLog, error) {
	created := []domain.WorkoutLog{}

	filter := bson.M{
		"clientId":       key.ClientID,
		"planExerciseId": key.PlanExerciseID,
		"day":            key.Day,
		"setNumber":      bson.M{"$gte": 1, "$lte": totalSets},
	}
	var existing []domain.WorkoutLog
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &existing); err != nil {
		return nil, err
	}

	present := make(map[int]bool, len(existing))
	for _, entry := range existing {
		present[entry.SetNumber] = true
		if entry.IsNoteOnly() {
			setKey := key
			setKey.SetNumber = entry.SetNumber
			promoted, err := r.promote(ctx, setKey, perf, now)
			if err != nil {
				return nil, err
			}
			if promoted != nil {
				created = append(created, *promoted)
			}
		}
	}

	var docs []interface{}
	for set := 1; set <= totalSets; set++ {
		if present[set] {
			continue
		}
		setKey := key
		setKey.SetNumber = set
		entry := newCompletedEntry(setKey, perf, now)
		docs = append(docs, entry)
		created = append(created, entry)
	}
	if len(docs) > 0 {
		if _, err := r.collection.InsertMany(ctx, docs); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, fmt.Errorf("%w: %v", errSlotTaken, err)
			}
			return nil, err
		}
	}

	sort.Slice(created, func(i, j int) bool { return created[i].SetNumber < created[j].SetNumber })
	return created, nil
}

// inTransaction runs fn inside a multi-document transaction. Every operation
// fn performs must use the context it is given.
func (r *mongoWorkoutLogRepository) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.collection.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// DeleteCompletedSet removes a completed entry.
func (r *mongoWorkoutLogRepository) DeleteCompletedSet(ctx context.Context, key repository.SetKey) error {
	filter := keyFilter(key)
	filter["completed"] = true

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpsertNote writes notes on the set-1 entry of the day.
func (r *mongoWorkoutLogRepository) UpsertNote(ctx context.Context, key repository.SetKey, notes string, at time.Time) (*domain.WorkoutLog, error) {
	now := at.UTC()
	key.SetNumber = domain.NoteSetNumber

	update := bson.M{
		"$set": bson.M{"notes": notes, "updatedAt": now},
		"$setOnInsert": bson.M{
			"_id":         primitive.NewObjectID(),
			"completed":   false,
			"completedAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var entry domain.WorkoutLog
	err := r.collection.FindOneAndUpdate(ctx, keyFilter(key), update, opts).Decode(&entry)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		// Lost the insert race: the entry exists now, so a plain update applies.
		err = r.collection.FindOneAndUpdate(ctx, keyFilter(key), bson.M{"$set": update["$set"]}, opts.SetUpsert(false)).Decode(&entry)
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByDayRange returns the client's entries between two day keys, inclusive.
func (r *mongoWorkoutLogRepository) ListByDayRange(ctx context.Context, clientID primitive.ObjectID, fromDay, toDay string) ([]domain.WorkoutLog, error) {
	filter := bson.M{
		"clientId": clientID,
		"day":      bson.M{"$gte": fromDay, "$lte": toDay},
	}
	sortOpts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}, {Key: "planExerciseId", Value: 1}, {Key: "setNumber", Value: 1}})
	return r.find(ctx, filter, sortOpts)
}

// ListByPlanExercise returns all entries of one plan exercise, newest day first.
func (r *mongoWorkoutLogRepository) ListByPlanExercise(ctx context.Context, clientID, planExerciseID primitive.ObjectID) ([]domain.WorkoutLog, error) {
	filter := bson.M{"clientId": clientID, "planExerciseId": planExerciseID}
	sortOpts := options.Find().SetSort(bson.D{{Key: "day", Value: -1}, {Key: "setNumber", Value: 1}})
	return r.find(ctx, filter, sortOpts)
}

func (r *mongoWorkoutLogRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.WorkoutLog, error) {
	entries := []domain.WorkoutLog{}
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListCompletedDays returns distinct completed days, newest first.
func (r *mongoWorkoutLogRepository) ListCompletedDays(ctx context.Context, clientID primitive.ObjectID) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "day", bson.M{"clientId": clientID, "completed": true})
	if err != nil {
		return nil, err
	}

	days := make([]string, 0, len(values))
	for _, v := range values {
		if day, ok := v.(string); ok {
			days = append(days, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	return days, nil
}

// EnsureWorkoutLogIndexes creates the ledger indexes.
func EnsureWorkoutLogIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "clientId", Value: 1},
				{Key: "planExerciseId", Value: 1},
				{Key: "setNumber", Value: 1},
				{Key: "day", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_client_exercise_set_day"),
		},
		{
			// Range queries for daily workouts, weekly stats and streaks
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
