package render

import (
	cfg "github.com/automoto/brownian/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var keyNames = map[cfg.Key]ebiten.Key{
	"W":          ebiten.KeyW,
	"A":          ebiten.KeyA,
	"S":          ebiten.KeyS,
	"D":          ebiten.KeyD,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
}

// KeyboardInput reads the configured key bindings and the mouse wheel from ebiten.
type KeyboardInput struct {
	bindings map[cfg.ActionID][]ebiten.Key
	scroll   []float64
}

func NewKeyboardInput() *KeyboardInput {
	k := &KeyboardInput{
		bindings: make(map[cfg.ActionID][]ebiten.Key),
	}
	for action, binding := range cfg.Input.Bindings {
		for _, name := range binding.Keys {
			if key, ok := keyNames[name]; ok {
				k.bindings[action] = append(k.bindings[action], key)
			}
		}
	}
	return k
}

// Poll records this tick's wheel movement. Call once per ebiten Update.
func (k *KeyboardInput) Poll() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		k.scroll = append(k.scroll, dy)
	}
}

func (k *KeyboardInput) Pressed(action cfg.ActionID) bool {
	for _, key := range k.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (k *KeyboardInput) DrainScroll() []float64 {
	s := k.scroll
	k.scroll = nil
	return s
}
