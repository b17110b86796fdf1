package shared

import (
	"time"

	"github.com/google/uuid"
)

// Node is the identity capability shared by every catalog entity.
// Identifiers are opaque strings compared byte-for-byte.
type Node interface {
	NodeID() string
}

// Entity is the base interface for all domain entities
type Entity interface {
	Node
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NodeID returns the entity identifier
func (e *BaseEntity) NodeID() string {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// Touch updates the modification timestamp
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}

// NewBaseEntity creates a new base entity with the given identifier.
// An empty identifier is replaced with a generated one.
func NewBaseEntity(id string) BaseEntity {
	if id == "" {
		id = NewID()
	}
	now := time.Now()
	return BaseEntity{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewID allocates a fresh opaque identifier
func NewID() string {
	return uuid.NewString()
}
