package portal

import (
	"context"
	"sync"

	"schoolportal/internal/model"
)

// FeedState is a snapshot of a feed: the fetched collection, whether the
// single fetch is still in flight, and the error message if it failed.
type FeedState[T any] struct {
	Data    []T
	Loading bool
	Err     string
}

// Feed performs one list fetch on first Load and holds the result. There is
// no retry and no refetch; a failed feed keeps whatever data it had (the
// empty collection on first load) plus the error message.
type Feed[T any] struct {
	fetch func(context.Context) ([]T, error)
	once  sync.Once

	mu      sync.Mutex
	data    []T
	loading bool
	err     string
}

// NewFeed builds a feed over a list function. The feed starts loading with
// an empty collection and no error.
func NewFeed[T any](fetch func(context.Context) ([]T, error)) *Feed[T] {
	return &Feed[T]{fetch: fetch, data: []T{}, loading: true}
}

// Load runs the fetch exactly once; later calls are no-ops.
func (f *Feed[T]) Load(ctx context.Context) {
	f.once.Do(func() {
		data, err := f.fetch(ctx)

		f.mu.Lock()
		defer f.mu.Unlock()
		if err != nil {
			f.err = err.Error()
		} else {
			f.data = data
			f.err = ""
		}
		f.loading = false
	})
}

// State returns the current feed snapshot.
func (f *Feed[T]) State() FeedState[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FeedState[T]{Data: f.data, Loading: f.loading, Err: f.err}
}

// NewAnnouncementFeed is the announcements read hook.
func NewAnnouncementFeed(c *Client) *Feed[model.Announcement] {
	return NewFeed(c.Announcements().List)
}

// NewQuizFeed is the quizzes read hook.
func NewQuizFeed(c *Client) *Feed[model.Quiz] {
	return NewFeed(c.Quizzes().List)
}
