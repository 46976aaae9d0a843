package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed levels/*.tmx prefabs/*.yaml
	dataFS embed.FS
)

// FS returns the embedded scene and prefab data.
func FS() fs.FS {
	return dataFS
}

// Placement is one object from the scene map.
type Placement struct {
	ID      uint32
	Name    string
	Prefab  string
	X, Y    float64
	OreType string
	Amount  int
}

type Scene struct {
	Name       string
	Width      int
	Height     int
	Placements []Placement
}

const entitiesGroup = "Entities"

// LoadScene parses a TMX map and returns the objects of its Entities group in id order.
func LoadScene(fsys fs.FS, tmxPath string) (*Scene, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	scene := &Scene{
		Name:   tmxPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != entitiesGroup {
			continue
		}
		for _, o := range og.Objects {
			prefab := o.Properties.GetString("prefab")
			if prefab == "" {
				return nil, fmt.Errorf("load TMX %s: object %d (%s) has no prefab property", tmxPath, o.ID, o.Name)
			}
			scene.Placements = append(scene.Placements, Placement{
				ID:      o.ID,
				Name:    o.Name,
				Prefab:  prefab,
				X:       o.X,
				Y:       o.Y,
				OreType: o.Properties.GetString("ore_type"),
				Amount:  o.Properties.GetInt("amount"),
			})
		}
	}

	sort.Slice(scene.Placements, func(i, j int) bool {
		return scene.Placements[i].ID < scene.Placements[j].ID
	})

	return scene, nil
}

// MustLoadScene loads the embedded scene and its prefabs and panics on broken data.
func MustLoadScene(tmxPath, prefabsDir string) (*Scene, map[string]*Prefab) {
	scene, err := LoadScene(dataFS, tmxPath)
	if err != nil {
		panic(err)
	}
	prefabs, err := LoadPrefabs(dataFS, prefabsDir)
	if err != nil {
		panic(err)
	}
	for _, p := range scene.Placements {
		if _, ok := prefabs[p.Prefab]; !ok {
			panic(fmt.Sprintf("scene %s: object %q uses unknown prefab %q", tmxPath, p.Name, p.Prefab))
		}
	}
	return scene, prefabs
}
