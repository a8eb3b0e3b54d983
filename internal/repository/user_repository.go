package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"schoolportal/internal/errors"
	"schoolportal/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a mongo-backed user repository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection("users")}
}

// Create inserts a new user with server-assigned id and timestamps.
func (r *userRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	ts := now()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = ts
	u.UpdatedAt = ts
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// FindAll returns every user.
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID returns a single user by its hex id.
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.NotFound("User not found")
	}
	var u model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("User not found")
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail returns a single user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound("User not found")
		}
		return nil, err
	}
	return &u, nil
}
