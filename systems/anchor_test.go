package systems

import (
	"math"
	"testing"

	"github.com/automoto/brownian/components"
	cfg "github.com/automoto/brownian/config"
	"github.com/automoto/brownian/systems/factory"
	"github.com/yohamta/donburi"
)

func inputWith(up, down, left, right bool) *components.InputData {
	var in components.InputData
	in.Current[cfg.ActionMoveUp] = up
	in.Current[cfg.ActionMoveDown] = down
	in.Current[cfg.ActionMoveLeft] = left
	in.Current[cfg.ActionMoveRight] = right
	return &in
}

func TestAnchorDirectionIsUnitOrZero(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		up, down, left, right := mask&1 != 0, mask&2 != 0, mask&4 != 0, mask&8 != 0
		x, y := AnchorDirection(inputWith(up, down, left, right))
		length := math.Hypot(x, y)

		cancels := up == down && left == right
		if cancels {
			if length != 0 {
				t.Errorf("up=%v down=%v left=%v right=%v: length %v, want 0", up, down, left, right, length)
			}
			continue
		}
		if math.Abs(length-1) > 1e-12 {
			t.Errorf("up=%v down=%v left=%v right=%v: length %v, want 1", up, down, left, right, length)
		}
	}
}

func newAnchorWorld(pressed map[cfg.ActionID]bool) (donburi.World, *donburi.Entry) {
	w := donburi.NewWorld()
	input := factory.CreateInput(w)
	in := components.Input.Get(input)
	for action, down := range pressed {
		in.Current[action] = down
	}
	return w, factory.CreateAnchor(w)
}

func TestUpdateAnchorMovesAtSpeed(t *testing.T) {
	tests := []struct {
		name         string
		pressed      map[cfg.ActionID]bool
		wantX, wantY float64
	}{
		{"right", map[cfg.ActionID]bool{cfg.ActionMoveRight: true}, 50, 0},
		{"up", map[cfg.ActionID]bool{cfg.ActionMoveUp: true}, 0, 50},
		{"down left", map[cfg.ActionID]bool{cfg.ActionMoveDown: true, cfg.ActionMoveLeft: true}, -50 / math.Sqrt2, -50 / math.Sqrt2},
		{"left and right cancel", map[cfg.ActionID]bool{cfg.ActionMoveLeft: true, cfg.ActionMoveRight: true}, 0, 0},
		{"nothing", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, anchorEntry := newAnchorWorld(tt.pressed)
			UpdateAnchor(newFrame(w, 0.1))

			pos := components.Anchor.Get(anchorEntry).Position
			if math.Abs(pos.X-tt.wantX) > 1e-9 || math.Abs(pos.Y-tt.wantY) > 1e-9 {
				t.Errorf("position = (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
			if pos.Z != 0 {
				t.Errorf("depth moved to %v", pos.Z)
			}
		})
	}
}

func TestUpdateAnchorIsFrameRateIndependent(t *testing.T) {
	for _, steps := range []int{1, 30, 240} {
		w, anchorEntry := newAnchorWorld(map[cfg.ActionID]bool{
			cfg.ActionMoveUp:    true,
			cfg.ActionMoveRight: true,
		})
		f := newFrame(w, 1.0/float64(steps))
		for i := 0; i < steps; i++ {
			UpdateAnchor(f)
		}

		pos := components.Anchor.Get(anchorEntry).Position
		if dist := math.Hypot(pos.X, pos.Y); math.Abs(dist-cfg.Anchor.Speed) > 1e-6 {
			t.Errorf("%d steps: travelled %v in one second, want %v", steps, dist, cfg.Anchor.Speed)
		}
	}
}

func TestUpdateAnchorWithoutInputEntity(t *testing.T) {
	w := donburi.NewWorld()
	anchorEntry := factory.CreateAnchor(w)
	UpdateAnchor(newFrame(w, 0.1))
	if pos := components.Anchor.Get(anchorEntry).Position; pos != (components.Vec3{}) {
		t.Errorf("anchor moved without input: %+v", pos)
	}
}

func TestUpdateAnchorSkipsAmbiguousAnchor(t *testing.T) {
	w, first := newAnchorWorld(map[cfg.ActionID]bool{cfg.ActionMoveRight: true})
	second := factory.CreateAnchor(w)

	UpdateAnchor(newFrame(w, 0.1))

	for _, e := range []*donburi.Entry{first, second} {
		if pos := components.Anchor.Get(e).Position; pos != (components.Vec3{}) {
			t.Errorf("ambiguous anchor moved: %+v", pos)
		}
	}
}
