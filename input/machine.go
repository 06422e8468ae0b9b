package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vault-crawler/vmath"
)

// Machine accumulates tcell key events between ticks and drains them
// into one Intent per tick. Terminals deliver key presses only, no
// releases, so movement is impulse-based: each press contributes a
// heading for the tick it arrives in and the movement lerp supplies
// the smoothing.
type Machine struct {
	pending Intent
}

func NewMachine() *Machine {
	return &Machine{}
}

// HandleEvent folds one tcell event into the pending intent. Returns
// true when the event was consumed.
func (m *Machine) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyUp:
		m.move(0, -1)
	case tcell.KeyDown:
		m.move(0, 1)
	case tcell.KeyLeft:
		m.move(-1, 0)
	case tcell.KeyRight:
		m.move(1, 0)
	case tcell.KeyEnter:
		m.pending.Confirm = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		m.pending.Quit = true
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w', 'k':
			m.move(0, -1)
		case 's', 'j':
			m.move(0, 1)
		case 'a', 'h':
			m.move(-1, 0)
		case 'd', 'l':
			m.move(1, 0)
		case ' ', 'f':
			m.pending.Shoot = true
		case 'e':
			m.pending.UseItem = true
		case '+':
			m.pending.VolumeDelta++
		case '-':
			m.pending.VolumeDelta--
		case 'q':
			m.pending.Quit = true
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (m *Machine) move(x, y float64) {
	m.pending.Move = m.pending.Move.Add(vmath.V(x, y))
}

// Drain returns the intent accumulated since the last call and resets
// the machine for the next tick.
func (m *Machine) Drain() Intent {
	out := m.pending
	m.pending = Intent{}
	if !out.Move.IsZero() {
		out.Move = out.Move.Normalize()
	}
	return out
}
