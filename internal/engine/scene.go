package engine

import "slices"

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess

	uidMap         map[uint64]*GameObject
	pendingDestroy []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject drops g and its children from the scene without running
// any destroy hooks.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	if i := slices.Index(s.GameObjects, g); i >= 0 {
		s.GameObjects = slices.Delete(s.GameObjects, i, i+1)
	}
	delete(s.uidMap, g.UID)
	g.Scene = nil
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update runs every object present when the call begins. Objects spawned
// during the update are picked up next frame.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range slices.Clone(s.GameObjects) {
		g.Update(deltaTime)
	}
}

// Destroy marks g and its children for removal at the next FlushDestroyed.
// The objects stop updating immediately.
func (s *Scene) Destroy(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	g.destroyed = true
	s.pendingDestroy = append(s.pendingDestroy, g)
	for _, child := range g.Children {
		s.Destroy(child)
	}
}

// FlushDestroyed runs OnDestroy on every component of the queued objects,
// then removes them. Hooks may queue further objects; they are flushed in
// the same call. Returns the number of objects removed.
func (s *Scene) FlushDestroyed() int {
	n := 0
	for len(s.pendingDestroy) > 0 {
		g := s.pendingDestroy[0]
		s.pendingDestroy = s.pendingDestroy[1:]

		for _, c := range g.components {
			if d, ok := c.(Destroyer); ok {
				d.OnDestroy()
			}
		}
		if g.Parent != nil {
			g.Parent.RemoveChild(g)
		}
		if i := slices.Index(s.GameObjects, g); i >= 0 {
			s.GameObjects = slices.Delete(s.GameObjects, i, i+1)
		}
		delete(s.uidMap, g.UID)
		g.Scene = nil
		n++
	}
	s.pendingDestroy = nil
	return n
}

// PendingDestroy returns how many objects wait for the next flush.
func (s *Scene) PendingDestroy() int {
	return len(s.pendingDestroy)
}

// Clear drops every object. Destroy hooks are not run; callers release
// external registrations first.
func (s *Scene) Clear() {
	for _, g := range s.GameObjects {
		g.Scene = nil
	}
	s.GameObjects = s.GameObjects[:0]
	s.pendingDestroy = nil
	clear(s.uidMap)
}
