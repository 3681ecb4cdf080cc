package mongo

import (
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var mockNow = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

func mockKey(set int) repository.SetKey {
	return repository.SetKey{
		ClientID:       primitive.NewObjectID(),
		PlanExerciseID: primitive.NewObjectID(),
		SetNumber:      set,
		Day:            "2024-01-10",
	}
}

// noMatch is the findAndModify reply when the filter matched nothing.
func noMatch() bson.D {
	return mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil})
}

func duplicateKey(index int) bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   index,
		Code:    11000,
		Message: "E11000 duplicate key error",
	})
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func completedDoc(key repository.SetKey, set int) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "clientId", Value: key.ClientID},
		{Key: "planExerciseId", Value: key.PlanExerciseID},
		{Key: "setNumber", Value: set},
		{Key: "completed", Value: true},
		{Key: "day", Value: key.Day},
	}
}

func noteOnlyDoc(key repository.SetKey) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "clientId", Value: key.ClientID},
		{Key: "planExerciseId", Value: key.PlanExerciseID},
		{Key: "setNumber", Value: 1},
		{Key: "completed", Value: false},
		{Key: "notes", Value: "warm up longer"},
		{Key: "day", Value: key.Day},
	}
}

func commandNames(mt *mtest.T) []string {
	var names []string
	for _, evt := range mt.GetAllStartedEvents() {
		names = append(names, evt.CommandName)
	}
	return names
}

// assertInTransaction checks that every data command ran with autocommit off
// and that the first one opened the transaction.
func assertInTransaction(mt *mtest.T) {
	mt.Helper()
	events := mt.GetAllStartedEvents()
	require.NotEmpty(mt, events)
	started, ok := events[0].Command.Lookup("startTransaction").BooleanOK()
	assert.True(mt, ok && started, "first command must start the transaction")
	for _, evt := range events {
		autocommit, ok := evt.Command.Lookup("autocommit").BooleanOK()
		assert.True(mt, ok && !autocommit, evt.CommandName)
	}
}

func TestWorkoutLogRepository_Mock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("complete set inserts a new entry", func(mt *mtest.T) {
		repo := &mongoWorkoutLogRepository{collection: mt.Coll}
		reps := 8
		mt.AddMockResponses(noMatch(), mtest.CreateSuccessResponse())

		entry, err := repo.CompleteSet(context.Background(), mockKey(2), repository.SetPerformance{Reps: &reps}, mockNow)
		require.NoError(mt, err)
		assert.True(mt, entry.Completed)
		assert.Equal(mt, 2, entry.SetNumber)
		assert.Equal(mt, 8, *entry.CompletedReps)
		assert.Equal(mt, mockNow, entry.CompletedAt)
	})

	mt.Run("complete set maps duplicate key to conflict", func(mt *mtest.T) {
		repo := &mongoWorkoutLogRepository{collection: mt.Coll}
		mt.AddMockResponses(noMatch(), duplicateKey(0), noMatch())

		_, err := repo.CompleteSet(context.Background(), mockKey(1), repository.SetPerformance{}, mockNow)
		assert.ErrorIs(mt, err, repository.ErrConflict)
		assert.Equal(mt, []string{"findAndModify", "insert", "findAndModify"}, commandNames(mt))
	})

	mt.Run("complete set promotes a note written after the first lookup", func(mt *mtest.T) {
		repo := &mongoWorkoutLogRepository{collection: mt.Coll}
		key := mockKey(1)
		mt.AddMockResponses(noMatch(), duplicateKey(0), mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "clientId", Value: key.ClientID},
			{Key: "planExerciseId", Value: key.PlanExerciseID},
			{Key: "setNumber", Value: 1},
			{Key: "completed", Value: true},
			{Key: "notes", Value: "late note"},
			{Key: "day", Value: key.Day},
		}}))

		entry, err := repo.CompleteSet(context.Background(), key, repository.SetPerformance{}, mockNow)
		require.NoError(mt, err)
		assert.True(mt, entry.Completed)
		assert.Equal(mt, "late note", entry.Notes)
	})

	mt.Run("complete set promotes a note-only entry", func(mt *mtest.T) {
		repo := &mongoWorkoutLogRepository{collection: mt.Coll}
		key := mockKey(1)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "clientId", Value: key.ClientID},
			{Key: "planExerciseId", Value: key.PlanExerciseID},
			{Key: "setNumber", Value: 1},
			{Key: "completed", Value: true},
			{Key: "notes", Value: "knee ok"},
			{Key: "day", Value: key.Day},
		}}))

		entry, err := repo.CompleteSet(context.Background(), key, repository.SetPerformance{}, mockNow)
		require.NoError(mt, err)
		assert.True(mt, entry.Completed)
		assert.Equal(mt, "knee ok", entry.Notes)
	})

	mt.Run("complete missing sets commits in one transaction", func(mt *mtest.T) {
		repo := &mongoWorkoutLogRepository{collection: mt.Coll}
		key := mockKey(0)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		created, err := repo.CompleteMissingSets(context.Background(), key, 3, repository.SetPerformance{}, mockNow)
		require.NoError(mt, err)
		require.Len(mt, created, 3)
		assert.Equal(mt, []string{"find", "insert", "commitTransaction"}, commandNames(mt))
		assertInTransaction(mt)
	})

	mt.Run("complete missing sets rolls back on a write error", func(mt *mtest.T) {
		repo := &mongoWorkoutLogRepository{collection: mt.Coll}
		key := mockKey(0)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, noteOnlyDoc(key)),
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: completedDoc(key, 1)}),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 1, Code: 2, Message: "BadValue"}),
			mtest.CreateSuccessResponse(),
		)

		created, err := repo.CompleteMissingSets(context.Background(), key, 3, repository.SetPerformance{}, mockNow)
		require.Error(mt, err)
		assert.Nil(mt, created)

		names := commandNames(mt)
		assert.Equal(mt, []string{"find", "findAndModify", "insert", "abortTransaction"}, names)
		assert.NotContains(mt, names, "commitTransaction")
		assertInTransaction(mt)
	})

	mt.Run("complete missing sets restarts after losing a slot", func(mt *mtest.T) {
		repo := &mongoWorkoutLogRepository{collection: mt.Coll}
		key := mockKey(0)
		mt.AddMockResponses(
			// first attempt: set 2 is inserted concurrently
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			duplicateKey(1),
			mtest.CreateSuccessResponse(),
			// second attempt sees it
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, completedDoc(key, 2)),
			mtest.CreateSuccessResponse(),
			mtest.CreateSuccessResponse(),
		)

		created, err := repo.CompleteMissingSets(context.Background(), key, 3, repository.SetPerformance{}, mockNow)
		require.NoError(mt, err)
		require.Len(mt, created, 2)
		assert.Equal(mt, 1, created[0].SetNumber)
		assert.Equal(mt, 3, created[1].SetNumber)
		assert.Equal(mt, []string{
			"find", "insert", "abortTransaction",
			"find", "insert", "commitTransaction",
		}, commandNames(mt))
	})

	mt.Run("delete without a completed entry is not found", func(mt *mtest.T) {
		repo := &mongoWorkoutLogRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.DeleteCompletedSet(context.Background(), mockKey(1))
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("completed days newest first", func(mt *mtest.T) {
		repo := &mongoWorkoutLogRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key:   "values",
			Value: bson.A{"2024-01-03", "2024-01-10", "2024-01-08"},
		}))

		days, err := repo.ListCompletedDays(context.Background(), primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, []string{"2024-01-10", "2024-01-08", "2024-01-03"}, days)
	})
}
