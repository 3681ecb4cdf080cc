package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanExercise assigns one exercise prescription to a (day-of-week, week-in-cycle)
// slot of a TrainingPlan. Several PlanExercises may share a slot; each one has
// its own ID, which is what the workout ledger refers to.
type PlanExercise struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PlanID     primitive.ObjectID `bson:"planId" json:"planId"`         // Link back to the plan
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"` // Library entry, may be NilObjectID for ad-hoc exercises
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	DayOfWeek  int                `bson:"dayOfWeek" json:"dayOfWeek"` // 1 (Mon) - 7 (Sun)
	Week       int                `bson:"week" json:"week"`           // 1..plan.WeekCycle
	Sequence   int                `bson:"sequence" json:"sequence"`   // Insertion order, used for display numbering

	// Prescription
	Sets     int    `bson:"sets" json:"sets"`
	Reps     string `bson:"reps,omitempty" json:"reps,omitempty"`         // e.g., "8-12"
	Weight   string `bson:"weight,omitempty" json:"weight,omitempty"`     // e.g., "60kg", "bodyweight"
	Duration string `bson:"duration,omitempty" json:"duration,omitempty"` // e.g., "30s"
	RestTime string `bson:"restTime,omitempty" json:"restTime,omitempty"` // e.g., "90s"
	Notes    string `bson:"notes,omitempty" json:"notes,omitempty"`       // Trainer notes

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
