package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuizQuestion is a value type owned by exactly one quiz; it has no
// independent identity. CorrectAnswer is a zero-based index into Options.
type QuizQuestion struct {
	Title         string   `json:"title" bson:"title"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer int      `json:"correctAnswer" bson:"correctAnswer"`
}

// Quiz represents a quiz document in the portal database.
type Quiz struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Questions   []QuizQuestion     `json:"questions" bson:"questions"`
	CreatedBy   string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// QuizPatch carries the fields of a partial quiz update.
type QuizPatch struct {
	Title       *string         `bson:"title,omitempty"`
	Description *string         `bson:"description,omitempty"`
	Questions   *[]QuizQuestion `bson:"questions,omitempty"`
	CreatedBy   *string         `bson:"createdBy,omitempty"`
}
