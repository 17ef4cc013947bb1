package sim

import (
	"strings"
	"testing"

	"github.com/arcadeworks/tui-breakout/internal/core"
)

func TestWorldSpawnRejectsDegenerateSize(t *testing.T) {
	w := NewWorld()

	for _, size := range []core.Vec3{
		{X: 0, Y: 1},
		{X: 1, Y: 0},
		{X: -1, Y: 1},
		{X: 1, Y: -1},
	} {
		if _, err := w.Spawn(Entity{Kind: KindBrick, Size: size}); err == nil {
			t.Errorf("Spawn() accepted size %v", size)
		} else if !strings.Contains(err.Error(), "size must be positive") {
			t.Errorf("Spawn() error = %q, want size complaint", err)
		}
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d after rejected spawns, want 0", w.Len())
	}
}

func TestWorldDespawnAndHandles(t *testing.T) {
	w := NewWorld()
	id := mustSpawn(t, w, Entity{Kind: KindBrick, Caps: CapCollider, Size: core.Vec3{X: 1, Y: 1}})

	if w.Get(id) == nil {
		t.Fatal("Get() lost a freshly spawned entity")
	}
	if !w.Despawn(id) {
		t.Fatal("Despawn() of an alive entity returned false")
	}
	if w.Despawn(id) {
		t.Error("Despawn() of a dead entity returned true")
	}
	if w.Get(id) != nil {
		t.Error("Get() returned a despawned entity")
	}
	if w.Despawn(EntityID(99)) {
		t.Error("Despawn() of an unknown handle returned true")
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d, want 0", w.Len())
	}
}

func TestWorldIterationOrder(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := 0; i < 5; i++ {
		want = append(want, mustSpawn(t, w, Entity{Kind: KindBrick, Size: core.Vec3{X: 1, Y: 1}}))
	}
	w.Despawn(want[2])

	var got []EntityID
	w.ForEach(func(e *Entity) {
		got = append(got, e.ID)
	})

	if len(got) != 4 {
		t.Fatalf("visited %d entities, want 4", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("iteration out of insertion order: %v", got)
		}
	}
}

func TestWorldForEachWithFiltersByCaps(t *testing.T) {
	w := NewWorld()
	mustSpawn(t, w, Entity{Kind: KindWall, Caps: CapCollider, Size: core.Vec3{X: 1, Y: 1}})
	moving := mustSpawn(t, w, Entity{Kind: KindBall, Caps: CapVelocity, Size: core.Vec3{X: 1, Y: 1}})
	both := mustSpawn(t, w, Entity{Kind: KindBrick, Caps: CapCollider | CapVelocity, Size: core.Vec3{X: 1, Y: 1}})

	var got []EntityID
	w.ForEachWith(CapVelocity, func(e *Entity) {
		got = append(got, e.ID)
	})

	if len(got) != 2 || got[0] != moving || got[1] != both {
		t.Errorf("ForEachWith(CapVelocity) visited %v, want [%v %v]", got, moving, both)
	}
}

func TestWorldDespawnDuringIteration(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 3; i++ {
		mustSpawn(t, w, Entity{Kind: KindBrick, Caps: CapCollider, Size: core.Vec3{X: 1, Y: 1}})
	}

	visited := 0
	w.ForEachWith(CapCollider, func(e *Entity) {
		visited++
		w.Despawn(e.ID)
	})

	if visited != 3 {
		t.Errorf("visited = %d, want 3", visited)
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d after despawning all, want 0", w.Len())
	}
}
