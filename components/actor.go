package components

import "github.com/yohamta/donburi"

// ActorData is the tile-aligned movement state shared by every mobile entity.
// When Moving is false, (X, Y) equals (TargetX, TargetY) and sits on a cell center.
type ActorData struct {
	X, Y             float64
	TargetX, TargetY float64
	Moving           bool
	Speed            float64 // px per second
}

var Actor = donburi.NewComponentType[ActorData]()
