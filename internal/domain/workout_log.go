package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoteSetNumber is the set slot that carries exercise notes for a day.
const NoteSetNumber = 1

// WorkoutLog is one entry of the completion ledger: a single set of a plan
// exercise performed by a client on a calendar day.
//
// At most one entry exists per (ClientID, PlanExerciseID, SetNumber, Day).
// An entry with Completed == false is note-only: it sits on set 1, carries
// Notes and no performance data.
type WorkoutLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID       primitive.ObjectID `bson:"clientId" json:"clientId"`
	PlanExerciseID primitive.ObjectID `bson:"planExerciseId" json:"planExerciseId"`
	SetNumber      int                `bson:"setNumber" json:"setNumber"`
	Completed      bool               `bson:"completed" json:"completed"`
	CompletedReps  *int               `bson:"completedReps,omitempty" json:"completedReps,omitempty"`
	ActualWeight   *float64           `bson:"actualWeight,omitempty" json:"actualWeight,omitempty"`
	ActualDuration *int               `bson:"actualDuration,omitempty" json:"actualDuration,omitempty"` // Seconds
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Day            string             `bson:"day" json:"day"` // Local calendar date, "2006-01-02"
	CompletedAt    time.Time          `bson:"completedAt" json:"completedAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsNoteOnly reports whether the entry only carries notes.
func (l *WorkoutLog) IsNoteOnly() bool {
	return !l.Completed
}
