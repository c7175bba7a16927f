// Package session persists one in-progress project per browser
// session. Sessions are addressed by an opaque id carried in a
// cookie; they expire after a configurable TTL.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/estevam5s/docgen/internal/models"
)

// ErrNotFound is returned when no session exists for the given id
var ErrNotFound = errors.New("session not found")

// Session holds the editing state tied to one browser session
type Session struct {
	ID        string          `json:"id"`
	Project   *models.Project `json:"project,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// New creates an empty session with a fresh id
func New() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification timestamp
func (s *Session) Touch() {
	s.UpdatedAt = time.Now().UTC()
}

// Store defines the interface for session persistence
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}
