package systems

import (
	"reflect"
	"testing"

	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/systems/factory"
	"github.com/yohamta/donburi"
)

func TestUpdateInputCapturesActionsAndScroll(t *testing.T) {
	w := donburi.NewWorld()
	inputEntry := factory.CreateInput(w)

	src := &fakeInput{
		pressed: map[cfg.ActionID]bool{cfg.ActionMoveUp: true, cfg.ActionMoveLeft: true},
		scroll:  []float64{1.0, -0.5, 2.0},
	}
	f := newFrame(w, 1.0/60)
	f.Input = src

	UpdateInput(f)

	in := components.Input.Get(inputEntry)
	if !in.Pressed(cfg.ActionMoveUp) || !in.Pressed(cfg.ActionMoveLeft) {
		t.Error("held actions were not captured")
	}
	if in.Pressed(cfg.ActionMoveDown) || in.Pressed(cfg.ActionMoveRight) {
		t.Error("released actions reported as held")
	}

	var ys []float64
	for _, e := range components.ScrollQueue.Get(inputEntry).Events {
		ys = append(ys, e.Y)
	}
	if want := []float64{1.0, -0.5, 2.0}; !reflect.DeepEqual(ys, want) {
		t.Errorf("queued %v, want %v", ys, want)
	}

	src.pressed = map[cfg.ActionID]bool{cfg.ActionMoveDown: true}
	UpdateInput(f)
	if in.Pressed(cfg.ActionMoveUp) || !in.Pressed(cfg.ActionMoveDown) {
		t.Error("second frame should reflect only the keys held now")
	}
	if n := len(components.ScrollQueue.Get(inputEntry).Events); n != 3 {
		t.Errorf("queue has %d events; input must not drain it", n)
	}
}

func TestUpdateInputWithoutSource(t *testing.T) {
	w := donburi.NewWorld()
	inputEntry := factory.CreateInput(w)
	components.Input.Get(inputEntry).Current[cfg.ActionMoveUp] = true

	UpdateInput(newFrame(w, 1.0/60))

	if components.Input.Get(inputEntry).Pressed(cfg.ActionMoveUp) {
		t.Error("state should reset when there is no input source")
	}
}
