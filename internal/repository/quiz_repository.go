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

// QuizRepository defines quiz persistence operations.
type QuizRepository interface {
	Create(ctx context.Context, q *model.Quiz) (*model.Quiz, error)
	FindAll(ctx context.Context) ([]model.Quiz, error)
	FindByID(ctx context.Context, id string) (*model.Quiz, error)
	Update(ctx context.Context, id string, patch *model.QuizPatch) (*model.Quiz, error)
	Delete(ctx context.Context, id string) (*model.Quiz, error)
}

type quizRepository struct {
	coll *mongo.Collection
}

// NewQuizRepository creates a mongo-backed quiz repository.
func NewQuizRepository(db *mongo.Database) QuizRepository {
	return &quizRepository{coll: db.Collection("quizzes")}
}

// Create inserts a new quiz with server-assigned id and timestamps.
func (r *quizRepository) Create(ctx context.Context, q *model.Quiz) (*model.Quiz, error) {
	ts := now()
	q.ID = primitive.NewObjectID()
	q.CreatedAt = ts
	q.UpdatedAt = ts
	if _, err := r.coll.InsertOne(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// FindAll returns every quiz sorted by createdAt descending.
func (r *quizRepository) FindAll(ctx context.Context) ([]model.Quiz, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	quizzes := []model.Quiz{}
	if err := cur.All(ctx, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

// FindByID returns a single quiz by its hex id.
func (r *quizRepository) FindByID(ctx context.Context, id string) (*model.Quiz, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound("Quiz not found.")
	}
	var q model.Quiz
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&q); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("Quiz not found.")
		}
		return nil, err
	}
	return &q, nil
}

// Update applies a partial patch atomically and returns the post-update document.
func (r *quizRepository) Update(ctx context.Context, id string, patch *model.QuizPatch) (*model.Quiz, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound(fmt.Sprintf("Quiz with ID %s not found.", id))
	}
	set, err := setDocument(patch)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated model.Quiz
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound(fmt.Sprintf("Quiz with ID %s not found.", id))
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a quiz atomically and returns its last state.
func (r *quizRepository) Delete(ctx context.Context, id string) (*model.Quiz, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound(fmt.Sprintf("Quiz with ID %s not found.", id))
	}
	var deleted model.Quiz
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound(fmt.Sprintf("Quiz with ID %s not found.", id))
		}
		return nil, err
	}
	return &deleted, nil
}
