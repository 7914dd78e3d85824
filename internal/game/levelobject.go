package game

import "collide3d/internal/collision"

// LevelObject is a static obstacle.
type LevelObject struct {
	characterBase
	contacts int
}

var _ collision.Character = (*LevelObject)(nil)

func NewLevelObject() *LevelObject {
	return &LevelObject{characterBase: newCharacterBase()}
}

func (l *LevelObject) Start() { l.register(l) }

func (l *LevelObject) OnDestroy() { l.release(l) }

func (l *LevelObject) OnCollisionAction(collision.Character) { l.contacts++ }

// Contacts counts character-level overlaps with anything.
func (l *LevelObject) Contacts() int { return l.contacts }
