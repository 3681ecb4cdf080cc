// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise represents a single exercise definition in the trainer's library.
type Exercise struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID        primitive.ObjectID `bson:"trainerId" json:"trainerId"` // Trainer who created/owns this exercise
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	MuscleGroup      string             `bson:"muscleGroup,omitempty" json:"muscleGroup,omitempty"`           // e.g., "Chest", "Legs", "Back"
	ExecutionTechnic string             `bson:"executionTechnic,omitempty" json:"executionTechnic,omitempty"` // Detailed instructions
	Difficulty       string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`             // e.g., "Novice", "Medium", "Advanced"
	VideoURL         string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
