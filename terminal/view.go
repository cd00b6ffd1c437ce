package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/parameter"
	"github.com/lixenwraith/floorplan/render"
)

// Cell glyphs
const (
	glyphWall      = '#'
	glyphVertex    = 'o'
	glyphSelVertex = '@'
	glyphDoor      = '='
	glyphPreview   = '.'
	glyphDoorGhost = '~'
)

var (
	styleRoom     = styleOf(render.ColorRoomStroke)
	styleSelected = styleOf(render.ColorSelected)
	styleHover    = styleOf(render.ColorHover)
	styleDoor     = styleOf(render.ColorDoor)
	stylePreview  = styleOf(render.ColorPreview)
	styleLabel    = styleOf(render.ColorLabel)
	styleStatus   = tcell.StyleDefault.Reverse(true)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var modeText = map[core.Mode]string{
	core.ModeSelect: parameter.ModeTextSelect,
	core.ModeDraw:   parameter.ModeTextDraw,
	core.ModeDoor:   parameter.ModeTextDoor,
}

// View draws the plan on a tcell screen
// It is a render.Consumer through the embedded snapshot
type View struct {
	*render.Snapshot

	screen   tcell.Screen
	viewport *Viewport

	mode      core.Mode
	lastError string

	unsubscribe []func()
}

// NewView creates a view over screen
func NewView(screen tcell.Screen, viewport *Viewport) *View {
	return &View{
		Snapshot: render.NewSnapshot(),
		screen:   screen,
		viewport: viewport,
	}
}

// Attach follows mode changes and validation errors for the status line
func (v *View) Attach(bus *event.Bus) {
	clearError := func(event.Event) { v.lastError = "" }
	v.unsubscribe = append(v.unsubscribe,
		event.On(bus, event.EventModeChanged, func(p event.ModeChangedPayload) {
			v.mode = p.Current
			v.lastError = ""
		}),
		event.On(bus, event.EventValidationError, func(p event.ValidationErrorPayload) {
			v.lastError = p.Message
		}),
		bus.Subscribe(event.EventRoomAdded, clearError),
		bus.Subscribe(event.EventDoorAdded, clearError),
	)
}

// Detach drops the bus subscriptions
func (v *View) Detach() {
	for _, fn := range v.unsubscribe {
		fn()
	}
	v.unsubscribe = nil
}

// LastError returns the message shown in the status line, empty when none
func (v *View) LastError() string {
	return v.lastError
}

// Draw renders the whole frame and shows it
func (v *View) Draw() {
	v.screen.Clear()

	selRoom, selPoint, selDoor := v.Selection()
	hovRoom, hovDoor := v.Hover()

	for _, r := range v.Rooms() {
		style := styleRoom
		switch r {
		case selRoom:
			style = styleSelected
		case hovRoom:
			style = styleHover
		}
		for _, e := range r.Edges() {
			v.line(e.A, e.B, glyphWall, style)
		}
		for _, p := range r.Points {
			v.plot(p, glyphVertex, style)
		}
		v.label(r.Center(), r.Name)
	}

	for _, d := range v.Doors() {
		style := styleDoor
		switch d {
		case selDoor:
			style = styleSelected
		case hovDoor:
			style = styleHover
		}
		a, b := d.Endpoints()
		v.line(a, b, glyphDoor, style)
	}

	preview, ghost := v.Preview()
	for i := 1; i < len(preview); i++ {
		v.line(preview[i-1], preview[i], glyphPreview, stylePreview)
	}
	for _, p := range preview {
		v.plot(p, glyphVertex, stylePreview)
	}
	if ghost != nil {
		a, b := ghost.Endpoints()
		v.line(a, b, glyphDoorGhost, styleDoor)
	}

	if selPoint != nil {
		v.plot(*selPoint, glyphSelVertex, styleSelected)
	}

	v.status(selRoom, selDoor)
	v.screen.Show()
}

// canvas returns the drawable size above the status line
func (v *View) canvas() (int, int) {
	w, h := v.screen.Size()
	return w, h - parameter.StatusLines
}

func (v *View) set(x, y int, r rune, style tcell.Style) {
	w, h := v.canvas()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *View) plot(p core.Point, r rune, style tcell.Style) {
	x, y := v.viewport.ToCell(p)
	v.set(x, y, r, style)
}

// line walks the cells between a and b with Bresenham's algorithm
func (v *View) line(a, b core.Point, r rune, style tcell.Style) {
	x0, y0 := v.viewport.ToCell(a)
	x1, y1 := v.viewport.ToCell(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	errAcc := dx + dy
	for {
		v.set(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

// label writes text centered on p
func (v *View) label(p core.Point, text string) {
	if text == "" {
		return
	}
	x, y := v.viewport.ToCell(p)
	x -= runewidth.StringWidth(text) / 2
	v.text(x, y, text, styleLabel)
}

func (v *View) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		v.set(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (v *View) status(room *entity.Room, door *entity.Door) {
	w, h := v.screen.Size()
	y := h - 1
	if y < 0 {
		return
	}

	info := fmt.Sprintf(" rooms %d  doors %d", len(v.Rooms()), len(v.Doors()))
	switch {
	case door != nil:
		info += fmt.Sprintf("  | door %gx%g %s %g°", door.Width, door.Height, door.SwingDirection, door.Angle())
	case room != nil:
		info += fmt.Sprintf("  | %s area %.0f", room.Name, room.Area())
	}

	x := 0
	for _, r := range modeText[v.mode] {
		v.screen.SetContent(x, y, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
	line := runewidth.Truncate(info, max(w-x, 0), "…")
	for _, r := range line {
		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x += runewidth.RuneWidth(r)
	}
	if v.lastError != "" && x < w {
		msg := runewidth.Truncate("  ! "+v.lastError, w-x, "…")
		for _, r := range msg {
			v.screen.SetContent(x, y, r, nil, styleError)
			x += runewidth.RuneWidth(r)
		}
	}
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
