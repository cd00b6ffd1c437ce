package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorplan/input"
)

// wheelStep is the DeltaY reported for one wheel notch
const wheelStep = 10.0

// panStep is the cell offset for one plain wheel notch
const panStep = 3

// Sink receives translated events, normally *input.Manager
type Sink interface {
	HandlePointer(ev input.PointerEvent)
	HandleWheel(ev input.WheelEvent)
	HandleKey(ev input.KeyEvent)
}

// keyNames maps non-rune tcell keys to input key names
var keyNames = map[tcell.Key]string{
	tcell.KeyEscape:     "Escape",
	tcell.KeyEnter:      "Enter",
	tcell.KeyDelete:     "Delete",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyTab:        "Tab",
	tcell.KeyUp:         "ArrowUp",
	tcell.KeyDown:       "ArrowDown",
	tcell.KeyLeft:       "ArrowLeft",
	tcell.KeyRight:      "ArrowRight",
}

// Adapter converts tcell events into input events
// tcell reports button state rather than transitions, so the adapter diffs
// consecutive masks to recover down, move and up
type Adapter struct {
	sink     Sink
	viewport *Viewport

	buttons tcell.ButtonMask
	button  input.Button // button that opened the current press

	panning bool
	panX    int
	panY    int
}

// NewAdapter creates an adapter feeding sink through viewport
func NewAdapter(sink Sink, viewport *Viewport) *Adapter {
	return &Adapter{sink: sink, viewport: viewport}
}

// HandleEvent translates one tcell event
// Returns true when the view needs a redraw
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		a.mouse(ev)
		return true
	case *tcell.EventKey:
		a.key(ev)
		return true
	case *tcell.EventResize:
		return true
	}
	return false
}

func (a *Adapter) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	mod := modifiers(ev.Modifiers())
	when := ev.When()
	mask := ev.Buttons()

	if mask&(tcell.WheelUp|tcell.WheelDown) != 0 {
		a.wheel(x, y, mask, mod, when)
		return
	}

	pressed := mask & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	defer func() { a.buttons = pressed }()

	if a.panning {
		if pressed&tcell.Button3 == 0 {
			a.panning = false
			return
		}
		a.viewport.Pan(a.panX-x, a.panY-y)
		a.panX, a.panY = x, y
		return
	}

	p := a.viewport.ToPlan(x, y)
	base := input.PointerEvent{ClientX: p.X, ClientY: p.Y, Mod: mod, Time: when}

	switch {
	case a.buttons == 0 && pressed != 0:
		if pressed&tcell.Button3 != 0 {
			a.panning = true
			a.panX, a.panY = x, y
			return
		}
		a.button = button(pressed)
		base.Action = input.PointerDown
		base.Button = a.button
	case a.buttons != 0 && pressed == 0:
		base.Action = input.PointerUp
		base.Button = a.button
	default:
		base.Action = input.PointerMove
		base.Button = a.button
	}
	a.sink.HandlePointer(base)
}

func (a *Adapter) wheel(x, y int, mask tcell.ButtonMask, mod input.Modifiers, when time.Time) {
	dir := 1
	if mask&tcell.WheelUp != 0 {
		dir = -1
	}
	if !mod.Ctrl {
		a.viewport.Pan(0, dir*panStep)
		return
	}
	p := a.viewport.ToPlan(x, y)
	a.sink.HandleWheel(input.WheelEvent{
		ClientX: p.X,
		ClientY: p.Y,
		DeltaY:  float64(dir) * wheelStep,
		Mod:     mod,
		Time:    when,
	})
}

func (a *Adapter) key(ev *tcell.EventKey) {
	name, ok := keyNames[ev.Key()]
	if ev.Key() == tcell.KeyRune {
		name, ok = string(ev.Rune()), true
	}
	if !ok {
		return
	}
	a.sink.HandleKey(input.KeyEvent{Action: input.KeyDown, Key: name, Mod: modifiers(ev.Modifiers())})
}

// button picks the lowest pressed button; tcell numbers left, right, middle as 1, 2, 3
func button(mask tcell.ButtonMask) input.Button {
	switch {
	case mask&tcell.Button1 != 0:
		return input.ButtonPrimary
	case mask&tcell.Button2 != 0:
		return input.ButtonSecondary
	default:
		return input.ButtonMiddle
	}
}

func modifiers(m tcell.ModMask) input.Modifiers {
	return input.Modifiers{
		Shift: m&tcell.ModShift != 0,
		Ctrl:  m&tcell.ModCtrl != 0,
		Alt:   m&tcell.ModAlt != 0,
		Meta:  m&tcell.ModMeta != 0,
	}
}
