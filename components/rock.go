package components

import (
	"github.com/automoto/digdug/shared/tilegrid"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type RockState int

const (
	RockResting RockState = iota
	RockShaking
	RockFalling
	RockSettled
	RockDestroying
	RockRemovable
)

func (s RockState) String() string {
	return [...]string{"resting", "shaking", "falling", "settled", "destroying", "removable"}[s]
}

type RockData struct {
	State       RockState
	ShakeTimer  float64
	ShakeOffset float64 // cosmetic
	Alpha       float64 // 1 opaque, fades to 0 while destroying
	Fade        *gween.Tween
	Crushed     int // victims

	// TextureSource is the dirt variant the rock is drawn from.
	TextureSource tilegrid.Code
}

var Rock = donburi.NewComponentType[RockData]()
