package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientPlan records that a plan was assigned to a client. StartDate is the
// scheduling anchor: week-in-cycle is counted from it. Only IsActive and
// EndDate change after creation.
type ClientPlan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID  primitive.ObjectID `bson:"clientId" json:"clientId"`
	PlanID    primitive.ObjectID `bson:"planId" json:"planId"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"` // Denormalized for easier queries/auth
	StartDate time.Time          `bson:"startDate" json:"startDate"` // Calendar date, time-of-day ignored
	EndDate   *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
