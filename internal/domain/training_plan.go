// internal/domain/training_plan.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultWeekCycle is used for plans created without an explicit cycle length.
const DefaultWeekCycle = 1

// TrainingPlan is a trainer-authored plan whose 7-day pattern repeats every WeekCycle weeks.
type TrainingPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID     primitive.ObjectID `bson:"trainerId" json:"trainerId"` // Who created the plan
	Name          string             `bson:"name" json:"name"`           // e.g., "Phase 1: Hypertrophy"
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	WeekCycle     int                `bson:"weekCycle" json:"weekCycle"`         // Weeks before the pattern repeats
	DurationWeeks int                `bson:"durationWeeks" json:"durationWeeks"` // 0 means "until goal met"
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Cycle returns the effective week-cycle length. Plans stored before the
// field existed carry zero and behave as single-week plans.
func (p *TrainingPlan) Cycle() int {
	if p.WeekCycle < 1 {
		return DefaultWeekCycle
	}
	return p.WeekCycle
}
