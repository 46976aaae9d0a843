package assets

import (
	"image/color"
	"strings"
	"testing"
	"testing/fstest"

	"gopkg.in/yaml.v3"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="32" tileheight="32" infinite="0" nextlayerid="2" nextobjectid="3">
 <objectgroup id="1" name="Entities">
  <object id="2" name="vein" x="40" y="60">
   <properties>
    <property name="prefab" value="ore_vein"/>
    <property name="ore_type" value="iron"/>
    <property name="amount" type="int" value="12"/>
   </properties>
  </object>
  <object id="1" name="hero" x="10" y="20">
   <properties>
    <property name="prefab" value="player"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Notes">
  <object id="9" name="ignored" x="0" y="0"/>
 </objectgroup>
</map>
`

func TestLoadScene(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testMap)}}

	scene, err := LoadScene(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if scene.Width != 320 || scene.Height != 160 {
		t.Fatalf("expected 320x160 scene, got %dx%d", scene.Width, scene.Height)
	}
	if len(scene.Placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(scene.Placements))
	}

	hero, vein := scene.Placements[0], scene.Placements[1]
	if hero.Prefab != "player" || hero.X != 10 || hero.Y != 20 {
		t.Fatalf("unexpected first placement %+v", hero)
	}
	if vein.OreType != "iron" || vein.Amount != 12 {
		t.Fatalf("unexpected ore placement %+v", vein)
	}
}

func TestLoadSceneRequiresPrefab(t *testing.T) {
	broken := strings.Replace(testMap, `<property name="prefab" value="player"/>`, ``, 1)
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(broken)}}

	if _, err := LoadScene(fsys, "levels/test.tmx"); err == nil {
		t.Fatalf("expected an error for an object without a prefab")
	}
}

func TestLoadPrefabs(t *testing.T) {
	fsys := fstest.MapFS{
		"prefabs/player.yaml": {Data: []byte(`
name: player
layer: 2
speed: 150
sprite: {width: 10, height: 20, color: "#ff000080", origin_x: 5, origin_y: 20}
collider: {width: 8, height: 4, offset_x: -4, offset_y: -4}
label: {text: Hi, offset_y: -30}
`)},
		"prefabs/rock.yaml": {Data: []byte(`
layer: 1
sprite: {width: 4, height: 4}
`)},
	}

	prefabs, err := LoadPrefabs(fsys, "prefabs")
	if err != nil {
		t.Fatalf("LoadPrefabs: %v", err)
	}

	p := prefabs["player"]
	if p == nil || p.Layer != 2 || p.Speed != 150 || p.Collider == nil || p.Label == nil || p.Label.Text != "Hi" {
		t.Fatalf("unexpected player prefab %+v", p)
	}
	if got := color.NRGBAModel.Convert(p.Sprite.Color).(color.NRGBA); got != (color.NRGBA{R: 255, A: 128}) {
		t.Fatalf("unexpected sprite color %v", got)
	}

	rock := prefabs["rock"]
	if rock == nil {
		t.Fatalf("prefab name should default to the file name")
	}
	if rock.Sprite.Color.Color != color.White {
		t.Fatalf("missing color should default to white")
	}
}

func TestLoadPrefabRejectsEmptySprite(t *testing.T) {
	fsys := fstest.MapFS{"prefabs/bad.yaml": {Data: []byte("layer: 1\n")}}
	if _, err := LoadPrefab(fsys, "prefabs/bad.yaml"); err == nil {
		t.Fatalf("expected an error for a sprite without a size")
	}
}

func TestYAMLColorErrors(t *testing.T) {
	for _, in := range []string{`"#12"`, `"#zzzzzz"`, `[1, 2]`} {
		var c YAMLColor
		if err := yaml.Unmarshal([]byte(in), &c); err == nil {
			t.Errorf("%s: expected an error", in)
		}
	}
}

func TestEmbeddedSceneIsConsistent(t *testing.T) {
	scene, prefabs := MustLoadScene("levels/outpost.tmx", "prefabs")

	players := 0
	for _, p := range scene.Placements {
		if p.Prefab == "player" {
			players++
		}
	}
	if players != 1 {
		t.Fatalf("expected exactly one player placement, got %d", players)
	}
	for _, name := range []string{"player", "wanderer", "ore_vein"} {
		if prefabs[name] == nil {
			t.Fatalf("missing prefab %s", name)
		}
	}
}
