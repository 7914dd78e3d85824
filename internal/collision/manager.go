package collision

import (
	"fmt"
	"slices"

	"collide3d/internal/physics"

	"go.uber.org/zap"
)

// Handle is a weak reference to one registration of a collider. It goes
// stale when that registration is removed or the registry is cleared, and
// stays stale if the same collider is registered again.
type Handle struct {
	collider   Collider
	generation uint64
	stamp      uint64
}

func (h Handle) IsZero() bool { return h.collider == nil }

// Stats counts what the last sweep did.
type Stats struct {
	PairTests int // narrow-phase tests run
	Filtered  int // pairs excluded by layer rules
	Skipped   int // pairs with a side not yet updated or removed mid-sweep
	Overlaps  int
}

type Option func(*Manager)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithLayerRules(rules *LayerRules) Option {
	return func(m *Manager) {
		if rules != nil {
			m.rules = rules
		}
	}
}

type opKind uint8

const (
	opAddCollider opKind = iota
	opRemoveCollider
	opClearColliders
	opAddCharacter
	opRemoveCharacter
	opClearCharacters
)

type pendingOp struct {
	kind      opKind
	collider  Collider
	character Character
}

// Manager is the per-scene collision registry. It never owns the colliders
// or characters it stores: callers unregister them before destroying them.
//
// A sweep iterates the registry as it was when the sweep started.
// Registrations, unregistrations and clears issued from reaction callbacks
// are queued and applied when the sweep returns; colliders and characters
// removed this way are skipped by every later pair of the running sweep. A
// collider registered more than once counts as removed only when its last
// registration goes; duplicate characters have no such count and are all
// skipped once one is unregistered.
// Colliders and characters must be pointer types.
type Manager struct {
	logger *zap.Logger
	rules  *LayerRules

	colliders  []Collider
	characters []Character

	// live holds the registration stamps per collider, oldest first, as seen
	// by handle resolution. It is updated immediately even while a sweep
	// defers the slice mutation.
	live       map[Collider][]uint64
	generation uint64
	stamps     uint64

	sweeping       bool
	pending        []pendingOp
	deadColliders  map[Collider]struct{}
	deadCharacters map[Character]struct{}

	stats          Stats
	characterStats Stats
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		logger:         zap.NewNop(),
		rules:          DefaultLayerRules(),
		live:           make(map[Collider][]uint64),
		deadColliders:  make(map[Collider]struct{}),
		deadCharacters: make(map[Character]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// LayerRules returns the ignore table used by both sweeps.
func (m *Manager) LayerRules() *LayerRules { return m.rules }

// RegisterCollider appends c to the registry. Duplicates are not detected.
func (m *Manager) RegisterCollider(c Collider) Handle {
	if c == nil {
		return Handle{}
	}
	m.stamps++
	m.live[c] = append(m.live[c], m.stamps)
	if m.sweeping {
		m.pending = append(m.pending, pendingOp{kind: opAddCollider, collider: c})
	} else {
		m.colliders = append(m.colliders, c)
	}
	m.logger.Debug("collider registered",
		zap.Stringer("shape", c.Shape()),
		zap.Stringer("layer", c.GetCollisionLayerID()),
		zap.Bool("deferred", m.sweeping),
	)
	return Handle{collider: c, generation: m.generation, stamp: m.stamps}
}

// UnregisterCollider removes the first registration of c.
func (m *Manager) UnregisterCollider(c Collider) {
	stamps := m.live[c]
	if c == nil || len(stamps) == 0 {
		return
	}
	last := len(stamps) == 1
	if last {
		delete(m.live, c)
	} else {
		m.live[c] = stamps[1:]
	}
	if m.sweeping {
		if last {
			m.deadColliders[c] = struct{}{}
		}
		m.pending = append(m.pending, pendingOp{kind: opRemoveCollider, collider: c})
		return
	}
	m.removeCollider(c)
}

// ClearCollider empties the collider registry and invalidates every
// outstanding handle.
func (m *Manager) ClearCollider() {
	m.generation++
	clear(m.live)
	if m.sweeping {
		for _, c := range m.colliders {
			m.deadColliders[c] = struct{}{}
		}
		m.pending = append(m.pending, pendingOp{kind: opClearColliders})
		return
	}
	m.logger.Debug("collider registry cleared", zap.Int("count", len(m.colliders)))
	m.colliders = m.colliders[:0]
}

// Resolve turns a handle back into its collider.
func (m *Manager) Resolve(h Handle) (Collider, error) {
	if h.collider == nil {
		return nil, ErrNilHandle
	}
	if h.generation != m.generation {
		return nil, fmt.Errorf("%w: registry cleared since registration", ErrStaleHandle)
	}
	if !slices.Contains(m.live[h.collider], h.stamp) {
		return nil, fmt.Errorf("%w: collider unregistered", ErrStaleHandle)
	}
	return h.collider, nil
}

// Colliders returns a copy of the registry in registration order.
func (m *Manager) Colliders() []Collider {
	return slices.Clone(m.colliders)
}

func (m *Manager) RegisterGameCharacter(ch Character) {
	if ch == nil {
		return
	}
	if m.sweeping {
		m.pending = append(m.pending, pendingOp{kind: opAddCharacter, character: ch})
		return
	}
	m.characters = append(m.characters, ch)
	m.logger.Debug("character registered", zap.Stringer("id", ch.ID()))
}

func (m *Manager) UnregisterGameCharacter(ch Character) {
	if ch == nil {
		return
	}
	if m.sweeping {
		m.deadCharacters[ch] = struct{}{}
		m.pending = append(m.pending, pendingOp{kind: opRemoveCharacter, character: ch})
		return
	}
	m.removeCharacter(ch)
}

func (m *Manager) ClearGameCharacter() {
	if m.sweeping {
		for _, ch := range m.characters {
			m.deadCharacters[ch] = struct{}{}
		}
		m.pending = append(m.pending, pendingOp{kind: opClearCharacters})
		return
	}
	m.logger.Debug("character registry cleared", zap.Int("count", len(m.characters)))
	m.characters = m.characters[:0]
}

// Characters returns a copy of the character registry in registration order.
func (m *Manager) Characters() []Character {
	return slices.Clone(m.characters)
}

// CharacterFor maps a collider back to the first registered character that owns it.
func (m *Manager) CharacterFor(c Collider) (Character, bool) {
	if c == nil {
		return nil, false
	}
	for _, ch := range m.characters {
		if _, dead := m.deadCharacters[ch]; dead {
			continue
		}
		if ch.Collider() == c {
			return ch, true
		}
	}
	return nil, false
}

// Stats returns the counters of the last CheckAllCollisions.
func (m *Manager) Stats() Stats { return m.stats }

// CharacterStats returns the counters of the last CheckAllCollisionsForGameCharacter.
func (m *Manager) CharacterStats() Stats { return m.characterStats }

// CheckAllCollisions tests every unordered pair of registered colliders.
func (m *Manager) CheckAllCollisions() {
	if !m.beginSweep() {
		return
	}
	defer m.endSweep()

	m.stats = Stats{}
	for i := 0; i < len(m.colliders); i++ {
		for j := i + 1; j < len(m.colliders); j++ {
			m.CheckCollisionPair(m.colliders[i], m.colliders[j])
		}
	}
}

// CheckCollisionPair runs the narrow phase for one pair and, on overlap,
// fires the reaction of both sides. Both reactions fire even if the first
// one removes its own collider.
func (m *Manager) CheckCollisionPair(a, b Collider) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if m.colliderDead(a) || m.colliderDead(b) || !a.Updated() || !b.Updated() {
		m.stats.Skipped++
		return false
	}
	if m.rules.Ignored(a.GetCollisionLayerID(), b.GetCollisionLayerID()) {
		m.stats.Filtered++
		return false
	}

	m.stats.PairTests++
	if !a.CheckCollision(b) {
		return false
	}
	m.stats.Overlaps++

	a.OnCollision(b)
	b.OnCollision(a)
	return true
}

// CheckAllCollisionsForGameCharacter repeats the pair sweep at character granularity.
func (m *Manager) CheckAllCollisionsForGameCharacter() {
	if !m.beginSweep() {
		return
	}
	defer m.endSweep()

	m.characterStats = Stats{}
	for i := 0; i < len(m.characters); i++ {
		for j := i + 1; j < len(m.characters); j++ {
			m.CheckCollisionPairForGameCharacter(m.characters[i], m.characters[j])
		}
	}
}

func (m *Manager) CheckCollisionPairForGameCharacter(a, b Character) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if m.characterDead(a) || m.characterDead(b) {
		m.characterStats.Skipped++
		return false
	}
	ca, cb := a.Collider(), b.Collider()
	if ca == nil || cb == nil || !ca.Updated() || !cb.Updated() {
		m.characterStats.Skipped++
		return false
	}
	if m.rules.Ignored(ca.GetCollisionLayerID(), cb.GetCollisionLayerID()) {
		m.characterStats.Filtered++
		return false
	}

	m.characterStats.PairTests++
	if !ca.CheckCollision(cb) {
		return false
	}
	m.characterStats.Overlaps++

	a.OnCollisionAction(b)
	b.OnCollisionAction(a)
	return true
}

// RayCast returns the nearest hit among colliders whose layer matches
// layerMask. On equal distances the collider registered first wins.
func (m *Manager) RayCast(ray physics.Ray, layerMask Layer) (RayCastHit, bool) {
	if !ray.Valid() {
		return RayCastHit{}, false
	}
	var closest RayCastHit
	for _, c := range m.colliders {
		if m.colliderDead(c) || !c.Updated() || !c.GetCollisionLayerID().Matches(layerMask) {
			continue
		}
		hit, ok := c.Intersects(ray)
		if !ok {
			continue
		}
		if !closest.IsHit || hit.Distance < closest.Distance {
			closest = hit
		}
	}
	return closest, closest.IsHit
}

func (m *Manager) beginSweep() bool {
	if m.sweeping {
		m.logger.Warn("nested collision sweep ignored")
		return false
	}
	m.sweeping = true
	return true
}

func (m *Manager) endSweep() {
	m.sweeping = false
	clear(m.deadColliders)
	clear(m.deadCharacters)
	if len(m.pending) == 0 {
		return
	}

	ops := m.pending
	m.pending = nil
	for _, op := range ops {
		switch op.kind {
		case opAddCollider:
			m.colliders = append(m.colliders, op.collider)
		case opRemoveCollider:
			m.removeCollider(op.collider)
		case opClearColliders:
			m.colliders = m.colliders[:0]
		case opAddCharacter:
			m.characters = append(m.characters, op.character)
		case opRemoveCharacter:
			m.removeCharacter(op.character)
		case opClearCharacters:
			m.characters = m.characters[:0]
		}
	}
	m.logger.Debug("applied deferred registry changes",
		zap.Int("ops", len(ops)),
		zap.Int("colliders", len(m.colliders)),
		zap.Int("characters", len(m.characters)),
	)
}

func (m *Manager) removeCollider(c Collider) {
	if i := slices.Index(m.colliders, c); i >= 0 {
		m.colliders = slices.Delete(m.colliders, i, i+1)
	}
}

func (m *Manager) removeCharacter(ch Character) {
	if i := slices.Index(m.characters, ch); i >= 0 {
		m.characters = slices.Delete(m.characters, i, i+1)
	}
}

func (m *Manager) colliderDead(c Collider) bool {
	_, dead := m.deadColliders[c]
	return dead
}

func (m *Manager) characterDead(ch Character) bool {
	_, dead := m.deadCharacters[ch]
	return dead
}
