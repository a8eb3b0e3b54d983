package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement represents an announcement document in the portal database.
type Announcement struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	PostedAt  time.Time          `json:"postedAt" bson:"postedAt"`
	CreatedBy string             `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AnnouncementPatch carries the fields of a partial announcement update.
// Nil fields are left untouched by the store.
type AnnouncementPatch struct {
	Title     *string    `bson:"title,omitempty"`
	Content   *string    `bson:"content,omitempty"`
	PostedAt  *time.Time `bson:"postedAt,omitempty"`
	CreatedBy *string    `bson:"createdBy,omitempty"`
}
