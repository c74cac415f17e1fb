package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"arenasurvivor/sim"
)

// keyBindings lists the keys that hold each movement direction.
var keyBindings = map[sim.Direction][]ebiten.Key{
	sim.DirUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	sim.DirDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	sim.DirLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	sim.DirRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// ReadInput samples the keyboard and mouse for one tick. Attack is true only
// on the frame the left button or space went down.
func ReadInput() sim.Input {
	attack := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return sim.Input{
		Up:     anyPressed(keyBindings[sim.DirUp]),
		Down:   anyPressed(keyBindings[sim.DirDown]),
		Left:   anyPressed(keyBindings[sim.DirLeft]),
		Right:  anyPressed(keyBindings[sim.DirRight]),
		Attack: attack,
	}
}

// Controls are the presentation keys edge-triggered this frame.
type Controls struct {
	TogglePause    bool
	ToggleCoords   bool
	ToggleHitboxes bool
	ToggleFPS      bool
	Restart        bool
}

// ReadControls samples the presentation keys.
func ReadControls() Controls {
	return Controls{
		TogglePause:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ToggleCoords:   inpututil.IsKeyJustPressed(ebiten.KeyF3),
		ToggleHitboxes: inpututil.IsKeyJustPressed(ebiten.KeyF5),
		ToggleFPS:      inpututil.IsKeyJustPressed(ebiten.KeyF6),
		Restart:        inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}
