package models

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and timestamp fields shared by all entities.
// ID is a UUID string, generated once and immutable afterwards.
type Base struct {
	ID        string    `json:"id"         bson:"id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewBase assigns a fresh UUID and stamps both timestamps with the same
// UTC instant. CreatedAt never changes after this point.
func NewBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch advances UpdatedAt. Every mutation goes through here so the
// timestamp is monotonic with respect to writes.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}
