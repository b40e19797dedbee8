package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionCount // Must be last - used for array sizing
)

// Key names a keyboard key independently of the windowing backend.
type Key string

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func (a ActionID) String() string {
	switch a {
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	default:
		return "None"
	}
}

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp:    {Keys: []Key{"W", "ArrowUp"}},
			ActionMoveDown:  {Keys: []Key{"S", "ArrowDown"}},
			ActionMoveLeft:  {Keys: []Key{"A", "ArrowLeft"}},
			ActionMoveRight: {Keys: []Key{"D", "ArrowRight"}},
		},
	}
}
