package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is something the user can trigger from the keyboard
type Action int

const (
	ActionNone Action = iota
	ActionToggleTheme
	ActionToggleDebug
	ActionProfile
)

// KeyBindings maps keys to actions
type KeyBindings map[ebiten.Key]Action

// DefaultKeyBindings returns the standard bindings: T, F1 and F2
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ebiten.KeyT:  ActionToggleTheme,
		ebiten.KeyF1: ActionToggleDebug,
		ebiten.KeyF2: ActionProfile,
	}
}

// Input polls the keyboard and the cursor once per update
type Input struct {
	bindings KeyBindings
	keys     []ebiten.Key
}

// NewInput creates an input poller with the given bindings
func NewInput(bindings KeyBindings) *Input {
	return &Input{
		bindings: bindings,
		keys:     make([]ebiten.Key, 0, 8),
	}
}

// Actions returns the actions whose keys were pressed this update
func (in *Input) Actions() []Action {
	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	return in.resolve(in.keys)
}

func (in *Input) resolve(keys []ebiten.Key) []Action {
	var actions []Action
	for _, k := range keys {
		if a, ok := in.bindings[k]; ok && a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

// Cursor returns the cursor position in window coordinates
func (in *Input) Cursor() (int, int) {
	return ebiten.CursorPosition()
}
