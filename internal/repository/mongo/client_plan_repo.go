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

const clientPlanCollectionName = "client_plans"

// mongoClientPlanRepository implements repository.ClientPlanRepository
type mongoClientPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoClientPlanRepository creates a new ClientPlan repository backed by MongoDB.
func NewMongoClientPlanRepository(db *mongo.Database) repository.ClientPlanRepository {
	return &mongoClientPlanRepository{
		collection: db.Collection(clientPlanCollectionName),
	}
}

// Create inserts a new plan assignment. CreatedAt is kept when already set
// so that imported assignments retain their history.
func (r *mongoClientPlanRepository) Create(ctx context.Context, assignment *domain.ClientPlan) (primitive.ObjectID, error) {
	if assignment.ClientID == primitive.NilObjectID || assignment.PlanID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("client plan requires clientId and planId")
	}

	assignment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = now
	}
	assignment.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, assignment); err != nil {
		return primitive.NilObjectID, err
	}
	return assignment.ID, nil
}

// GetActiveByClientID returns the client's active assignments, newest first.
func (r *mongoClientPlanRepository) GetActiveByClientID(ctx context.Context, clientID primitive.ObjectID) ([]domain.ClientPlan, error) {
	return r.find(ctx, bson.M{"clientId": clientID, "isActive": true})
}

// GetByClientAndPlan returns the client's assignments of one plan, newest first.
func (r *mongoClientPlanRepository) GetByClientAndPlan(ctx context.Context, clientID, planID primitive.ObjectID) ([]domain.ClientPlan, error) {
	return r.find(ctx, bson.M{"clientId": clientID, "planId": planID})
}

func (r *mongoClientPlanRepository) find(ctx context.Context, filter bson.M) ([]domain.ClientPlan, error) {
	assignments := []domain.ClientPlan{}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// DeactivateOthers ends every other active assignment of the client.
func (r *mongoClientPlanRepository) DeactivateOthers(ctx context.Context, clientID, keepID primitive.ObjectID, endDate time.Time) error {
	filter := bson.M{
		"clientId": clientID,
		"isActive": true,
		"_id":      bson.M{"$ne": keepID},
	}
	update := bson.M{"$set": bson.M{
		"isActive":  false,
		"endDate":   endDate,
		"updatedAt": time.Now().UTC(),
	}}
	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}

// EnsureClientPlanIndexes creates necessary indexes for the client_plans collection.
func EnsureClientPlanIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Resolving the active plan of a client
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "planId", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
