package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	// Test O(1) lookup
	found := scene.FindByUID(obj.UID)
	if found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	// Test non-existent UID
	notFound := scene.FindByUID(99999)
	if notFound != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Enemy")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	// Verify UID map was updated
	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}

	if scene.FindByUID(obj2.UID) != obj2 {
		t.Error("Remaining GameObject not in UID map")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("UniquePlayer")

	scene.AddGameObject(obj)

	found := scene.FindByName("UniquePlayer")
	if found != obj {
		t.Error("FindByName failed")
	}

	notFound := scene.FindByName("DoesNotExist")
	if notFound != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Enemy1")
	obj2 := NewGameObject("Enemy2")
	obj3 := NewGameObject("Player")

	obj1.Tags = []string{"enemy", "ai"}
	obj2.Tags = []string{"enemy"}
	obj3.Tags = []string{"player"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	enemies := scene.FindByTag("enemy")
	if len(enemies) != 2 {
		t.Errorf("Expected 2 enemies, got %d", len(enemies))
	}

	players := scene.FindByTag("player")
	if len(players) != 1 {
		t.Errorf("Expected 1 player, got %d", len(players))
	}

	notFound := scene.FindByTag("nonexistent")
	if len(notFound) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	// Both parent and child should be removed
	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}

	// Verify UID map cleaned up
	if scene.FindByUID(parent.UID) != nil {
		t.Error("Parent still in UID map after removal")
	}
	if scene.FindByUID(child.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := NewScene("Test")

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized in NewScene")
	}

	// Test adding to uninitialized map (defensive programming check)
	scene.uidMap = nil
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // Should not panic

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}

func TestSceneDestroyIsDeferred(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Bullet")
	comp := &countingComponent{}
	obj.AddComponent(comp)
	scene.AddGameObject(obj)

	scene.Destroy(obj)
	scene.Destroy(obj)

	if !obj.IsDestroyed() {
		t.Error("Destroyed object should report IsDestroyed")
	}
	if scene.FindByUID(obj.UID) != obj {
		t.Error("Object should stay in the scene until FlushDestroyed")
	}
	if scene.PendingDestroy() != 1 {
		t.Errorf("Expected 1 pending object, got %d", scene.PendingDestroy())
	}

	scene.Update(0.016)
	if comp.updates != 0 {
		t.Error("Destroyed object should not update")
	}

	if n := scene.FlushDestroyed(); n != 1 {
		t.Errorf("Expected 1 object flushed, got %d", n)
	}
	if comp.destroyed != 1 {
		t.Errorf("Expected OnDestroy once, got %d", comp.destroyed)
	}
	if len(scene.GameObjects) != 0 || scene.FindByUID(obj.UID) != nil {
		t.Error("Object should be gone after FlushDestroyed")
	}
	if obj.Scene != nil {
		t.Error("Flushed object should be detached from the scene")
	}
}

func TestSceneDestroyChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	childComp := &countingComponent{}
	child.AddComponent(childComp)
	parent.AddChild(child)
	scene.AddGameObject(parent)
	scene.AddGameObject(child)

	scene.Destroy(parent)
	if n := scene.FlushDestroyed(); n != 2 {
		t.Errorf("Expected 2 objects flushed, got %d", n)
	}
	if childComp.destroyed != 1 {
		t.Error("Child components should receive OnDestroy")
	}
	if len(parent.Children) != 0 {
		t.Error("Child should be detached from its parent")
	}
}

type chainDestroyer struct {
	BaseComponent
	next *GameObject
}

func (c *chainDestroyer) OnDestroy() {
	c.GetGameObject().Scene.Destroy(c.next)
}

func TestSceneFlushRunsHooksQueuedByHooks(t *testing.T) {
	scene := NewScene("Test")
	first := NewGameObject("First")
	second := NewGameObject("Second")
	first.AddComponent(&chainDestroyer{next: second})
	scene.AddGameObject(first)
	scene.AddGameObject(second)

	scene.Destroy(first)
	if n := scene.FlushDestroyed(); n != 2 {
		t.Errorf("Expected 2 objects flushed, got %d", n)
	}
	if scene.PendingDestroy() != 0 {
		t.Error("Nothing should remain pending")
	}
}

func TestSceneUpdateSkipsSpawnedThisFrame(t *testing.T) {
	scene := NewScene("Test")
	spawned := &countingComponent{}
	spawner := NewGameObject("Spawner")
	spawner.AddComponent(&spawnComponent{spawn: func() {
		obj := NewGameObject("Spawned")
		obj.AddComponent(spawned)
		scene.AddGameObject(obj)
	}})
	scene.AddGameObject(spawner)

	scene.Update(0.016)
	if spawned.updates != 0 {
		t.Error("Object spawned during Update should wait for the next frame")
	}
	if len(scene.GameObjects) != 2 {
		t.Errorf("Expected 2 GameObjects, got %d", len(scene.GameObjects))
	}
}

type spawnComponent struct {
	BaseComponent
	spawn func()
}

func (s *spawnComponent) Update(_ float32) {
	if s.spawn != nil {
		s.spawn()
		s.spawn = nil
	}
}

func TestSceneClear(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")
	comp := &countingComponent{}
	obj.AddComponent(comp)
	scene.AddGameObject(obj)
	scene.Destroy(obj)

	scene.Clear()

	if len(scene.GameObjects) != 0 || scene.PendingDestroy() != 0 {
		t.Error("Clear should drop objects and pending destruction")
	}
	if comp.destroyed != 0 {
		t.Error("Clear should not run destroy hooks")
	}
	if scene.FindByUID(obj.UID) != nil {
		t.Error("Clear should empty the UID map")
	}
}
