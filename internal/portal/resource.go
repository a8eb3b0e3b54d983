package portal

import (
	"context"
	"net/http"
)

// Resource is generic five-operation access to one collection path. Every
// portal resource (announcements, quizzes, users) is an instance of it.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource binds a client to a collection path such as "/announcements".
func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{client: c, path: path}
}

// List fetches the whole collection; ordering is server-determined.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single entity by id.
func (r *Resource[T]) Get(ctx context.Context, id string) (T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodGet, r.path+"/"+id, nil, &item); err != nil {
		return item, err
	}
	return item, nil
}

// Create posts an input (the entity minus server-assigned fields) and
// returns the created entity.
func (r *Resource[T]) Create(ctx context.Context, input interface{}) (T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPost, r.path, input, &item); err != nil {
		return item, err
	}
	return item, nil
}

// Update sends a partial field set and returns the updated entity.
func (r *Resource[T]) Update(ctx context.Context, id string, patch interface{}) (T, error) {
	var item T
	if err := r.client.do(ctx, http.MethodPut, r.path+"/"+id, patch, &item); err != nil {
		return item, err
	}
	return item, nil
}

// Delete removes an entity by id.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil)
}
