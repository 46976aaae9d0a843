package assets

import (
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prefab describes how to build one kind of scene entity.
type Prefab struct {
	Name      string               `yaml:"name"`
	Layer     uint16               `yaml:"layer"`
	Speed     float64              `yaml:"speed"`
	Sprite    SpriteSpec           `yaml:"sprite"`
	Collider  *ColliderSpec        `yaml:"collider"`
	Label     *LabelSpec           `yaml:"label"`
	OreColors map[string]YAMLColor `yaml:"ore_colors"`
}

// SpriteSpec describes a generated placeholder sprite.
type SpriteSpec struct {
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Color   YAMLColor `yaml:"color"`
	OriginX float64   `yaml:"origin_x"`
	OriginY float64   `yaml:"origin_y"`
}

// ColliderSpec is a box relative to the entity position.
type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type LabelSpec struct {
	Text    string  `yaml:"text"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// LoadPrefab parses a single prefab file from fsys.
func LoadPrefab(fsys fs.FS, name string) (*Prefab, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}

	var p Prefab
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if p.Sprite.Width <= 0 || p.Sprite.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: sprite needs a positive size", name)
	}
	if p.Sprite.Color.Color == nil {
		p.Sprite.Color.Color = color.White
	}
	return &p, nil
}

// LoadPrefabs parses every .yaml file in dir and keys them by prefab name.
func LoadPrefabs(fsys fs.FS, dir string) (map[string]*Prefab, error) {
	pattern := dir + "/*.yaml"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("prefabs: glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("prefabs: no .yaml files found in %s", dir)
	}

	prefabs := make(map[string]*Prefab, len(matches))
	for _, m := range matches {
		p, err := LoadPrefab(fsys, m)
		if err != nil {
			return nil, err
		}
		if _, dup := prefabs[p.Name]; dup {
			return nil, fmt.Errorf("prefabs: duplicate prefab %q in %s", p.Name, m)
		}
		prefabs[p.Name] = p
	}
	return prefabs, nil
}
