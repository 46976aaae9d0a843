package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Wanderer = donburi.NewTag().SetName("Wanderer")
	OreVein  = donburi.NewTag().SetName("OreVein")
	Label    = donburi.NewTag().SetName("Label")
)

// Resolv tags for movement collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
