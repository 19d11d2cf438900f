package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trift/moneycheck/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownField    = errors.New("unknown input field")
)

// Repository is an in-memory session store. Nothing outlives the process.
type Repository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	now      func() time.Time
}

// NewRepository initializes an empty repository
func NewRepository() *Repository {
	return &Repository{
		sessions: make(map[string]*models.Session),
		now:      time.Now,
	}
}

// CreateSession starts a new, empty session and returns its ID
func (r *Repository) CreateSession() string {
	now := r.now()
	s := &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		LastSeen:  now,
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s.ID
}

// Touch marks a session as active. It reports false for unknown sessions.
func (r *Repository) Touch(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	s.LastSeen = r.now()
	return true
}

// FindSession returns a copy of the session
func (r *Repository) FindSession(id string) (models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return *s, nil
}

// GetData returns the stored record, or the all-zero record when none exists
func (r *Repository) GetData(id string) models.InputRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.sessions[id]; ok {
		return s.Data
	}
	return models.InputRecord{}
}

// SaveData writes one field of the session's record
func (r *Repository) SaveData(id, field string, value float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if !s.Data.Set(field, value) {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// ReplaceData overwrites the session's whole record
func (r *Repository) ReplaceData(id string, data models.InputRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.Data = data
	return nil
}

// ClearData resets the session's record to all zeros
func (r *Repository) ClearData(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.Data = models.InputRecord{}
	}
}

// SavePremiumAccess grants the premium flag
func (r *Repository) SavePremiumAccess(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.PremiumAccess = true
	return nil
}

// HasPremiumAccess reports whether the session holds the premium flag
func (r *Repository) HasPremiumAccess(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	return ok && s.PremiumAccess
}

// ClearPremiumAccess revokes the premium flag
func (r *Repository) ClearPremiumAccess(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.PremiumAccess = false
	}
}

// DeleteSession discards a session
func (r *Repository) DeleteSession(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Sweep removes sessions idle for longer than ttl and returns how many were removed
func (r *Repository) Sweep(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.LastSeen.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of live sessions
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
