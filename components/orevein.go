package components

import "github.com/yohamta/donburi"

type OreType int

const (
	OreCoal OreType = iota
	OreCopper
	OreIron
	OreLunium
)

var oreNames = [...]string{"coal", "copper", "iron", "lunium"}

func (o OreType) String() string {
	if o < 0 || int(o) >= len(oreNames) {
		return "unknown"
	}
	return oreNames[o]
}

// ParseOreType maps a scene property value to an OreType.
func ParseOreType(s string) (OreType, bool) {
	for i, n := range oreNames {
		if n == s {
			return OreType(i), true
		}
	}
	return 0, false
}

type OreVeinData struct {
	Type   OreType
	Amount int
}

var OreVein = donburi.NewComponentType[OreVeinData]()

// DefaultOreAmount is used when a placement does not set an amount.
const DefaultOreAmount = 150
