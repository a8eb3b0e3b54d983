// Package session holds the client's logged-in flag and mirrors it to
// durable storage. The in-memory flag is authoritative for the process
// lifetime; storage failures are logged, never propagated.
package session

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// storageKey is the durable key the auth state lives under.
const storageKey = "authState"

type authState struct {
	IsLoggedIn bool `json:"isLoggedIn"`
}

// Session is the client-side login flag with a documented lifecycle: seeded
// from storage at construction, persisted on login, removed on logout.
type Session struct {
	store  Storage
	logger *slog.Logger

	mu       sync.Mutex
	loggedIn bool
}

// New builds a Session seeded from the stored auth state. A missing,
// malformed, or wrong-shaped stored value falls back to logged out.
func New(store Storage, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{store: store, logger: logger}
	s.loggedIn = s.load()
	return s
}

func (s *Session) load() bool {
	raw, ok, err := s.store.GetItem(storageKey)
	if err != nil {
		s.logger.Error("loading auth state from storage", "error", err)
		return false
	}
	if !ok {
		return false
	}
	var state authState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.logger.Error("parsing stored auth state", "error", err)
		return false
	}
	return state.IsLoggedIn
}

// IsLoggedIn reports the current flag.
func (s *Session) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Login sets the flag and persists {"isLoggedIn":true}.
func (s *Session) Login() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true

	raw, _ := json.Marshal(authState{IsLoggedIn: true})
	if err := s.store.SetItem(storageKey, string(raw)); err != nil {
		s.logger.Error("saving auth state to storage", "error", err)
	}
}

// Logout clears the flag and removes the persisted key.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = false

	if err := s.store.RemoveItem(storageKey); err != nil {
		s.logger.Error("removing auth state from storage", "error", err)
	}
}
