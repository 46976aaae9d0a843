package systems

import (
	"testing"

	"github.com/automoto/lunium/components"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

func TestSortByDepth(t *testing.T) {
	items := []DrawItem{
		{Entity: 5, Z: 3.2},
		{Entity: 4, Z: 1.5},
		{Entity: 2, Z: 1.5},
		{Entity: 1, Z: 2.9},
		{Entity: 3, Z: 0},
	}
	SortByDepth(items)

	want := []donburi.Entity{3, 2, 4, 1, 5}
	for i, e := range want {
		if items[i].Entity != e {
			t.Fatalf("position %d: expected entity %v, got %v (%+v)", i, e, items[i].Entity, items)
		}
	}
}

func TestCollectDrawItems(t *testing.T) {
	w := donburi.NewWorld()
	layered := spawnDrawable(w, 2, dmath.NewVec2(0, 0))
	components.Depth.Get(layered).Z = 2.25

	background := w.Entry(w.Create(transform.Transform, components.Sprite))
	// Not a sprite, never collected.
	w.Create(transform.Transform, components.DrawLayer, components.Depth)

	items := CollectDrawItems(w, nil)
	if len(items) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(items))
	}

	SortByDepth(items)
	if items[0].Entity != background.Entity() || items[0].Z != 0 {
		t.Errorf("sprite without depth should sort first at 0, got %+v", items[0])
	}
	if items[1].Entity != layered.Entity() || items[1].Z != 2.25 {
		t.Errorf("expected layered sprite last at 2.25, got %+v", items[1])
	}
}
