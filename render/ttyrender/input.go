package ttyrender

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/oxide/game"
)

// HoldFrames is how many updates a key stays down after its last key event.
// Terminals report repeats but never releases.
const HoldFrames = 6

// Input turns tcell key events into game input.
type Input struct {
	held    map[game.Key]int
	pressed map[game.Key]bool
}

func NewInput() *Input {
	return &Input{
		held:    make(map[game.Key]int),
		pressed: make(map[game.Key]bool),
	}
}

// Handle records a key event. It returns true when the event asks to quit.
func (in *Input) Handle(ev *tcell.EventKey) bool {
	var key game.Key
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		key = game.KeyUp
	case tcell.KeyDown:
		key = game.KeyDown
	case tcell.KeyLeft:
		key = game.KeyLeft
	case tcell.KeyRight:
		key = game.KeyRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'w':
			key = game.KeyUp
		case 's':
			key = game.KeyDown
		case 'a':
			key = game.KeyLeft
		case 'd':
			key = game.KeyRight
		case ',', '<':
			key = game.KeyPrevLevel
		case '.', '>':
			key = game.KeyNextLevel
		default:
			return false
		}
	default:
		return false
	}

	if in.held[key] == 0 {
		in.pressed[key] = true
	}
	in.held[key] = HoldFrames
	return false
}

func (in *Input) Down(k game.Key) bool {
	return in.held[k] > 0
}

func (in *Input) Pressed(k game.Key) bool {
	return in.pressed[k]
}

// EndFrame ages held keys and clears pressed ones. Call it after every
// update.
func (in *Input) EndFrame() {
	for k, n := range in.held {
		if n <= 1 {
			delete(in.held, k)
		} else {
			in.held[k] = n - 1
		}
	}
	clear(in.pressed)
}
