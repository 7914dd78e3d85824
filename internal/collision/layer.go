package collision

import (
	"fmt"
	"strings"
)

// Layer is a collider category bitmask.
type Layer uint32

const (
	LayerNone   Layer = 0
	LayerPlayer Layer = 1 << (iota - 1)
	LayerEnemy
	LayerBullet
	LayerLevelObject

	LayerAll = LayerPlayer | LayerEnemy | LayerBullet | LayerLevelObject
)

var layerNames = []struct {
	layer Layer
	name  string
}{
	{LayerPlayer, "player"},
	{LayerEnemy, "enemy"},
	{LayerBullet, "bullet"},
	{LayerLevelObject, "levelobject"},
}

// Matches reports whether l shares at least one bit with mask.
func (l Layer) Matches(mask Layer) bool {
	return l&mask != 0
}

func (l Layer) String() string {
	if l == LayerNone {
		return "none"
	}
	var parts []string
	rest := l
	for _, n := range layerNames {
		if l&n.layer != 0 {
			parts = append(parts, n.name)
			rest &^= n.layer
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseLayer parses a layer name or a "|" separated list of names.
func ParseLayer(s string) (Layer, error) {
	var l Layer
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "none":
			continue
		case "all":
			l |= LayerAll
			continue
		}
		found := false
		for _, n := range layerNames {
			if n.name == part {
				l |= n.layer
				found = true
				break
			}
		}
		if !found {
			return LayerNone, fmt.Errorf("%w: %q", ErrUnknownLayer, part)
		}
	}
	return l, nil
}

type layerPair struct {
	a, b Layer
}

// LayerRules is the table of layer combinations that never interact, even
// when their volumes overlap.
type LayerRules struct {
	pairs []layerPair
}

func NewLayerRules() *LayerRules {
	return &LayerRules{}
}

// DefaultLayerRules ignores player/bullet (own shots), bullet/bullet and
// levelobject/levelobject pairs.
func DefaultLayerRules() *LayerRules {
	r := NewLayerRules()
	r.Ignore(LayerPlayer, LayerBullet)
	r.Ignore(LayerBullet, LayerBullet)
	r.Ignore(LayerLevelObject, LayerLevelObject)
	return r
}

// Ignore excludes every collider on a from interacting with every collider on b.
func (r *LayerRules) Ignore(a, b Layer) {
	r.pairs = append(r.pairs, layerPair{a, b})
}

// Ignored reports whether the two layers are mutually excluded. The check is
// symmetric in its arguments.
func (r *LayerRules) Ignored(a, b Layer) bool {
	if r == nil {
		return false
	}
	for _, p := range r.pairs {
		if (a&p.a != 0 && b&p.b != 0) || (a&p.b != 0 && b&p.a != 0) {
			return true
		}
	}
	return false
}

// Pairs returns the configured ignore pairs.
func (r *LayerRules) Pairs() [][2]Layer {
	out := make([][2]Layer, len(r.pairs))
	for i, p := range r.pairs {
		out[i] = [2]Layer{p.a, p.b}
	}
	return out
}
