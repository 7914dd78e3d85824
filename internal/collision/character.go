package collision

import "github.com/google/uuid"

// Character is a scene entity that owns exactly one collider and reacts to
// confirmed, layer-compatible overlaps with other characters.
type Character interface {
	ID() uuid.UUID
	Collider() Collider
	OnCollisionAction(other Character)
}
