package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"schoolportal/internal/errors"
	"schoolportal/internal/model"
)

// AnnouncementRepository defines announcement persistence operations.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) (*model.Announcement, error)
	FindAll(ctx context.Context) ([]model.Announcement, error)
	FindByID(ctx context.Context, id string) (*model.Announcement, error)
	Update(ctx context.Context, id string, patch *model.AnnouncementPatch) (*model.Announcement, error)
	Delete(ctx context.Context, id string) (*model.Announcement, error)
}

type announcementRepository struct {
	coll *mongo.Collection
}

// NewAnnouncementRepository creates a mongo-backed announcement repository.
func NewAnnouncementRepository(db *mongo.Database) AnnouncementRepository {
	return &announcementRepository{coll: db.Collection("announcements")}
}

// Create inserts a new announcement with server-assigned id and timestamps.
func (r *announcementRepository) Create(ctx context.Context, a *model.Announcement) (*model.Announcement, error) {
	ts := now()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = ts
	a.UpdatedAt = ts
	if a.PostedAt.IsZero() {
		a.PostedAt = ts
	}
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// FindAll returns every announcement sorted by postedAt descending.
func (r *announcementRepository) FindAll(ctx context.Context) ([]model.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "postedAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	announcements := []model.Announcement{}
	if err := cur.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// FindByID returns a single announcement by its hex id.
func (r *announcementRepository) FindByID(ctx context.Context, id string) (*model.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound("Announcement not found.")
	}
	var a model.Announcement
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Announcement not found.")
		}
		return nil, err
	}
	return &a, nil
}

// Update applies a partial patch atomically and returns the post-update document.
func (r *announcementRepository) Update(ctx context.Context, id string, patch *model.AnnouncementPatch) (*model.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound(fmt.Sprintf("Announcement with ID %s not found.", id))
	}
	set, err := setDocument(patch)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Announcement
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound(fmt.Sprintf("Announcement with ID %s not found.", id))
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes an announcement atomically and returns its last state.
func (r *announcementRepository) Delete(ctx context.Context, id string) (*model.Announcement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound(fmt.Sprintf("Announcement with ID %s not found.", id))
	}
	var deleted model.Announcement
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound(fmt.Sprintf("Announcement with ID %s not found.", id))
		}
		return nil, err
	}
	return &deleted, nil
}
