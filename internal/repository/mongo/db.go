package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

// ConnectDB establishes a connection to MongoDB using the provided URI and
// verifies it with a ping against the primary.
func ConnectDB(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// The initial connection might succeed while the server is unresponsive.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err = client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes of every collection. The workout log
// unique index is mandatory: the ledger relies on it for atomic completion,
// so its failure is returned while the others are only logged.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := EnsureWorkoutLogIndexes(ctx, db.Collection(workoutLogCollectionName)); err != nil {
		return err
	}

	optional := map[string]func(context.Context, *mongo.Collection) error{
		exerciseCollectionName:     EnsureExerciseIndexes,
		trainingPlanCollectionName: EnsureTrainingPlanIndexes,
		planExerciseCollectionName: EnsurePlanExerciseIndexes,
		clientPlanCollectionName:   EnsureClientPlanIndexes,
	}
	for name, ensure := range optional {
		if err := ensure(ctx, db.Collection(name)); err != nil {
			logger.Warn("failed to create indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	return nil
}
