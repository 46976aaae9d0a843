package components

import "github.com/yohamta/donburi"

type LabelData struct {
	Text string
}

var Label = donburi.NewComponentType[LabelData]()
