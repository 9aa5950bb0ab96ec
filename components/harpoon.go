package components

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HarpoonState int

const (
	HarpoonIdle HarpoonState = iota
	HarpoonExtending
	HarpoonAttached
)

func (s HarpoonState) String() string {
	switch s {
	case HarpoonExtending:
		return "extending"
	case HarpoonAttached:
		return "attached"
	}
	return "idle"
}

type HarpoonData struct {
	State      HarpoonState
	DirX, DirY int
	Length     float64
	HitWall    bool
	Growth     *gween.Tween   // length over time while extending
	Probe      *resolv.Object // swept box, resized every extending frame

	// Target is the captured enemy, donburi.Null when none. It is a handle,
	// so a purged enemy shows up as !World.Valid(Target).
	Target donburi.Entity
}

var Harpoon = donburi.NewComponentType[HarpoonData]()

// HasTarget reports whether a capture link is recorded.
func (h *HarpoonData) HasTarget() bool {
	return h.Target != donburi.Null
}
