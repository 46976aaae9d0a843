package factory

import (
	"testing"

	"github.com/automoto/lunium/assets"
	"github.com/automoto/lunium/components"
	cfg "github.com/automoto/lunium/config"
	"github.com/automoto/lunium/depth"
	"github.com/automoto/lunium/fonts"
	"github.com/automoto/lunium/systems"
	"github.com/automoto/lunium/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

func newScene(t *testing.T) *ecs.ECS {
	t.Helper()
	if err := fonts.LoadDefaults(); err != nil {
		t.Fatalf("load fonts: %v", err)
	}
	scene, prefabs := assets.MustLoadScene(cfg.Scene.MapPath, cfg.Scene.PrefabsDir)

	e := ecs.NewECS(donburi.NewWorld())
	CreateScene(e, scene, prefabs)
	return e
}

func TestCreateScene(t *testing.T) {
	e := newScene(t)

	player, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatalf("scene has no player")
	}
	if got := components.DrawLayer.Get(player).Layer; got != cfg.LayerActors {
		t.Errorf("player layer: expected %d, got %d", cfg.LayerActors, got)
	}
	if obj := components.Object.Get(player); obj.Object == nil || obj.Space == nil {
		t.Errorf("player collider should be registered with the space")
	}

	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		t.Fatalf("scene has no camera")
	}
	if cam := components.Camera.Get(camEntry); cam.Position != transform.WorldPosition(player) {
		t.Errorf("camera should start on the player, got %v", cam.Position)
	}

	if n := donburi.NewQuery(filter.Contains(tags.Wanderer)).Count(e.World); n != 1 {
		t.Errorf("expected 1 wanderer, got %d", n)
	}

	amounts := map[components.OreType]int{}
	tags.OreVein.Each(e.World, func(v *donburi.Entry) {
		ore := components.OreVein.Get(v)
		amounts[ore.Type] = ore.Amount
		if components.DrawLayer.Get(v).Layer != cfg.LayerGround {
			t.Errorf("%v vein should be on the ground layer", ore.Type)
		}
	})
	want := map[components.OreType]int{
		components.OreCoal:   150,
		components.OreCopper: 90,
		components.OreIron:   120,
		components.OreLunium: 25,
	}
	for typ, amount := range want {
		if amounts[typ] != amount {
			t.Errorf("%v: expected amount %d, got %d", typ, amount, amounts[typ])
		}
	}
}

func TestPlayerLabelFollowsPlayer(t *testing.T) {
	e := newScene(t)

	player, _ := tags.Player.First(e.World)
	label, ok := tags.Label.First(e.World)
	if !ok {
		t.Fatalf("player has no label")
	}
	if parent, ok := transform.GetParent(label); !ok || parent.Entity() != player.Entity() {
		t.Fatalf("label should be parented to the player")
	}

	before := transform.WorldPosition(label)
	transform.Transform.Get(player).LocalPosition.X += 50
	after := transform.WorldPosition(label)
	if after.X-before.X != 50 || after.Y != before.Y {
		t.Fatalf("label should move with the player: %v -> %v", before, after)
	}
}

func TestSceneDepthOrder(t *testing.T) {
	e := newScene(t)

	report, err := systems.NormalizeDepths(e.World, systems.ScreenViewport(), depth.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Updated != 7 || len(report.Skipped) != 0 {
		t.Fatalf("expected 7 drawables updated, got %+v", report)
	}

	player, _ := tags.Player.First(e.World)
	label, _ := tags.Label.First(e.World)
	playerZ := components.Depth.Get(player).Z
	labelZ := components.Depth.Get(label).Z

	tags.OreVein.Each(e.World, func(v *donburi.Entry) {
		if z := components.Depth.Get(v).Z; !(z < playerZ) {
			t.Errorf("ore vein at %v should sort below the player at %v", z, playerZ)
		}
	})
	if !(playerZ < labelZ) {
		t.Errorf("label at %v should sort above the player at %v", labelZ, playerZ)
	}
}
