package collision

import (
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// fakeEntity takes raylib rotation matrices as is. Through
// rl.Vector3Transform a positive angle turns +X towards -Y about Z and
// towards +Z about Y.
type fakeEntity struct {
	pos   rl.Vector3
	rot   rl.Matrix
	scale rl.Vector3
}

func entityAt(x, y, z float32) *fakeEntity {
	return &fakeEntity{
		pos:   rl.Vector3{X: x, Y: y, Z: z},
		rot:   rl.MatrixIdentity(),
		scale: rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

func (e *fakeEntity) GetPosition() rl.Vector3 { return e.pos }
func (e *fakeEntity) GetRotation() rl.Matrix  { return e.rot }
func (e *fakeEntity) GetScale() rl.Vector3    { return e.scale }

func sphereAt(x, y, z, r float32, layer Layer) *SphereCollider {
	c := NewSphereCollider(r, layer)
	e := entityAt(x, y, z)
	c.Initialize(nil, e)
	c.Update(e)
	return c
}

func boxAt(x, y, z, half float32, layer Layer) *BoxCollider {
	c := NewBoxCollider(rl.Vector3{X: half, Y: half, Z: half}, layer)
	e := entityAt(x, y, z)
	c.Initialize(nil, e)
	c.Update(e)
	return c
}

type recordingRenderer struct {
	boxes   []physics.OBB
	spheres []physics.Sphere
}

func (r *recordingRenderer) DrawBox(obb physics.OBB, _ rl.Color) {
	r.boxes = append(r.boxes, obb)
}

func (r *recordingRenderer) DrawSphere(s physics.Sphere, _ rl.Color) {
	r.spheres = append(r.spheres, s)
}

type fakeCharacter struct {
	id       uuid.UUID
	collider Collider
	hits     []Character
	onHit    func(other Character)
}

func newFakeCharacter(c Collider) *fakeCharacter {
	return &fakeCharacter{id: uuid.New(), collider: c}
}

func (f *fakeCharacter) ID() uuid.UUID      { return f.id }
func (f *fakeCharacter) Collider() Collider { return f.collider }

func (f *fakeCharacter) OnCollisionAction(other Character) {
	f.hits = append(f.hits, other)
	if f.onHit != nil {
		f.onHit(other)
	}
}

type hitLog struct {
	pairs [][2]Collider
}

func (h *hitLog) record(self, other Collider) {
	h.pairs = append(h.pairs, [2]Collider{self, other})
}
