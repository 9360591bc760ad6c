package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong-patrol/engine"
)

// Machine turns tcell events into intents and tracks the normalized pointer
// Process and Pointer are called from the frame loop goroutine only
type Machine struct {
	cols, rows int
	pointer    engine.Pointer
	buttons    tcell.ButtonMask
}

// NewMachine creates a machine for a cols x rows terminal
func NewMachine(cols, rows int) *Machine {
	m := &Machine{}
	m.Resize(cols, rows)
	return m
}

// Resize updates the terminal size used for pointer normalization
func (m *Machine) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	m.cols, m.rows = cols, rows
}

// Pointer returns the last pointer position in [-1, 1], Y up, origin at the center
func (m *Machine) Pointer() engine.Pointer {
	return m.pointer
}

// Normalize maps a cell to pointer space using the cell center
func (m *Machine) Normalize(col, row int) engine.Pointer {
	x := (float64(col)+0.5)/float64(m.cols)*2 - 1
	y := 1 - (float64(row)+0.5)/float64(m.rows)*2
	return engine.Pointer{X: clampUnit(x), Y: clampUnit(y)}
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event carries nothing the game reacts to
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		m.Resize(ev.Size())
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyEnter:
		return &Intent{Type: IntentStart}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return &Intent{Type: IntentQuit}
		case ' ':
			return &Intent{Type: IntentStart}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	col, row := ev.Position()
	m.pointer = m.Normalize(col, row)

	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.buttons&tcell.Button1 == 0
	m.buttons = buttons

	if pressed {
		return &Intent{Type: IntentStart}
	}
	return &Intent{Type: IntentPointer}
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
