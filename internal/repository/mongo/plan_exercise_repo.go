package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const planExerciseCollectionName = "plan_exercises"

// mongoPlanExerciseRepository implements repository.PlanExerciseRepository
type mongoPlanExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanExerciseRepository creates a new PlanExercise repository backed by MongoDB.
func NewMongoPlanExerciseRepository(db *mongo.Database) repository.PlanExerciseRepository {
	return &mongoPlanExerciseRepository{
		collection: db.Collection(planExerciseCollectionName),
	}
}

// Create inserts a new plan exercise. Sequence is set by the service.
func (r *mongoPlanExerciseRepository) Create(ctx context.Context, exercise *domain.PlanExercise) (primitive.ObjectID, error) {
	if exercise.PlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("plan exercise requires planId")
	}

	exercise.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, exercise); err != nil {
		return primitive.NilObjectID, err
	}
	return exercise.ID, nil
}

// GetByID retrieves a plan exercise by its ID.
func (r *mongoPlanExerciseRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PlanExercise, error) {
	var exercise domain.PlanExercise
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &exercise, nil
}

// GetByPlanID retrieves all exercises of a plan in insertion order.
func (r *mongoPlanExerciseRepository) GetByPlanID(ctx context.Context, planID primitive.ObjectID) ([]domain.PlanExercise, error) {
	exercises := []domain.PlanExercise{}
	// ObjectIDs grow monotonically, so _id breaks sequence ties by insertion.
	findOptions := options.Find().SetSort(bson.D{{Key: "sequence", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"planId": planID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// EnsurePlanExerciseIndexes creates necessary indexes for the plan_exercises collection.
func EnsurePlanExerciseIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "planId", Value: 1}, {Key: "sequence", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "planId", Value: 1}, {Key: "week", Value: 1}, {Key: "dayOfWeek", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
