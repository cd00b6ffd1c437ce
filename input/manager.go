// Package input normalizes pointer, touch, wheel and keyboard input into gestures
// and broadcasts them to every registered handler
package input

import (
	"log"
	"time"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/event"
)

// Manager is the interaction state machine
// Not safe for concurrent use; feed it from one goroutine
type Manager struct {
	bus     *event.Bus
	cfg     config.Input
	surface Surface

	handlers  []Handler
	modeAware []ModeAware

	state State
	last  core.Point // previous pointer position within a sequence

	// Touch tracking
	touchStart    time.Time
	touchMoved    bool
	touchBlocked  bool // set after a pinch until every contact lifts
	lastTapEnd    time.Time
	taps          int
	pinchDist     float64
	pinchAngle    float64
	pinchScale    float64
	pinchRotation float64

	unsubscribe []func()
}

// NewManager creates a manager in select mode that mirrors selection from bus
func NewManager(bus *event.Bus, cfg config.Input) *Manager {
	m := &Manager{
		bus:   bus,
		cfg:   cfg,
		state: State{Mode: core.ModeSelect},
	}
	m.unsubscribe = []func(){
		event.On(bus, event.EventRoomSelectionChanged, func(p event.RoomFocusPayload) {
			m.state.SelectedRoom = p.Room
			m.state.SelectedPoint = p.Point
		}),
		event.On(bus, event.EventRoomHoverChanged, func(p event.RoomFocusPayload) {
			m.state.HoveredRoom = p.Room
		}),
		event.On(bus, event.EventDoorSelectionChanged, func(p event.DoorFocusPayload) {
			m.state.SelectedDoor = p.Door
		}),
		event.On(bus, event.EventDoorHoverChanged, func(p event.DoorFocusPayload) {
			m.state.HoveredDoor = p.Door
		}),
	}
	return m
}

// Close detaches the manager from the bus
func (m *Manager) Close() {
	for _, fn := range m.unsubscribe {
		fn()
	}
	m.unsubscribe = nil
}

// SetSurface sets the coordinate origin used for client to local mapping
func (m *Manager) SetSurface(s Surface) {
	m.surface = s
}

// Register appends h to the dispatch list
// Handlers receive events in registration order, all of them, without short-circuit
func (m *Manager) Register(h Handler) {
	m.handlers = append(m.handlers, h)
	if ma, ok := h.(ModeAware); ok {
		m.modeAware = append(m.modeAware, ma)
		ma.SetMode(m.state.Mode)
	}
}

// State returns a copy of the interaction state
func (m *Manager) State() State {
	return m.state
}

// Mode returns the current mode
func (m *Manager) Mode() core.Mode {
	return m.state.Mode
}

// SetMode switches mode, abandoning any active sequence
func (m *Manager) SetMode(mode core.Mode) {
	prev := m.state.Mode
	if prev == mode {
		return
	}
	m.resetSequence()
	m.state.Mode = mode
	for _, ma := range m.modeAware {
		ma.SetMode(mode)
	}
	log.Printf("[INPUT] mode %s -> %s", prev, mode)
	m.bus.Emit(event.EventModeChanged, event.ModeChangedPayload{Previous: prev, Current: mode})
}

// === Pointer ===

// HandlePointer processes one mouse-style event
func (m *Manager) HandlePointer(ev PointerEvent) {
	p := m.local(ev.ClientX, ev.ClientY)
	switch ev.Action {
	case PointerDown:
		m.pointerDown(ev.Button, p, ev.Mod)
	case PointerMove:
		m.pointerMove(p, ev.Mod)
	case PointerUp:
		m.pointerUp(p, ev.Mod)
	}
}

func (m *Manager) pointerDown(btn Button, p core.Point, mod Modifiers) {
	// A second press cannot start while a sequence is active
	if m.state.Activity != ActivityIdle {
		return
	}
	switch btn {
	case ButtonPrimary:
		switch {
		case m.state.Mode == core.ModeDraw:
			m.begin(ActivityDrawing, p)
			m.dispatch(Gesture{Type: GestureSelect, Point: p, Taps: 1, Mod: mod})
		case m.state.Mode == core.ModeSelect && mod.Shift:
			m.begin(ActivityResizing, p)
			m.dispatch(m.track(GestureResizeStart, p, mod))
		default:
			m.begin(ActivityDragging, p)
			m.dispatch(m.track(GestureDragStart, p, mod))
		}
	case ButtonSecondary:
		if m.state.Mode == core.ModeSelect {
			m.begin(ActivityRotating, p)
			m.dispatch(m.track(GestureRotateStart, p, mod))
		}
	}
}

func (m *Manager) pointerMove(p core.Point, mod Modifiers) {
	switch m.state.Activity {
	case ActivityDragging:
		m.dispatch(m.track(GestureDrag, p, mod))
	case ActivityResizing:
		m.dispatch(m.track(GestureResize, p, mod))
	case ActivityRotating:
		m.dispatch(m.track(GestureRotate, p, mod))
	case ActivityIdle, ActivityDrawing:
		m.dispatch(Gesture{Type: GestureHover, Point: p, Mod: mod})
	}
}

func (m *Manager) pointerUp(p core.Point, mod Modifiers) {
	var end GestureType
	switch m.state.Activity {
	case ActivityDragging:
		end = GestureDragEnd
	case ActivityResizing:
		end = GestureResizeEnd
	case ActivityRotating:
		end = GestureRotateEnd
	case ActivityDrawing:
		m.resetSequence()
		return
	default:
		return
	}
	g := m.track(end, p, mod)
	m.resetSequence()
	m.dispatch(g)
}

// === Wheel ===

// HandleWheel turns ctrl+wheel into a pinch; plain scrolling is ignored
func (m *Manager) HandleWheel(ev WheelEvent) {
	if !ev.Mod.Ctrl {
		return
	}
	scale := 1 - ev.DeltaY*m.cfg.WheelPinchFactor
	if scale <= 0 {
		return
	}
	p := m.local(ev.ClientX, ev.ClientY)
	m.dispatch(Gesture{
		Type:       GesturePinch,
		Point:      p,
		Center:     p,
		Scale:      scale,
		ScaleDelta: scale,
		Mod:        ev.Mod,
	})
}

// === Touch ===

// HandleTouch processes one touch event
func (m *Manager) HandleTouch(ev TouchEvent) {
	switch ev.Action {
	case TouchStart:
		m.touchStartEvent(ev)
	case TouchMove:
		m.touchMoveEvent(ev)
	case TouchEnd, TouchCancel:
		m.touchEndEvent(ev)
	}
}

func (m *Manager) touchStartEvent(ev TouchEvent) {
	switch len(ev.Touches) {
	case 1:
		if m.state.Activity != ActivityIdle || m.touchBlocked {
			return
		}
		p := m.local(ev.Touches[0].ClientX, ev.Touches[0].ClientY)
		m.touchStart = ev.Time
		m.touchMoved = false
		m.setPoints(p, p)
		m.last = p
	case 2:
		// End any single-touch drag before the pinch takes over
		if m.state.Activity == ActivityDragging && m.state.CurrentPoint != nil {
			g := m.track(GestureDragEnd, *m.state.CurrentPoint, Modifiers{})
			m.resetSequence()
			m.dispatch(g)
		}
		m.resetSequence()
		a, b := m.touchPair(ev.Touches)
		m.pinchDist = a.Distance(b)
		m.pinchAngle = b.Sub(a).Angle()
		m.pinchScale, m.pinchRotation = 1, 0
		m.state.Activity = ActivityPinching
		m.touchBlocked = true
	}
}

func (m *Manager) touchMoveEvent(ev TouchEvent) {
	if m.state.Activity == ActivityPinching {
		if len(ev.Touches) >= 2 {
			m.pinchMove(ev.Touches)
		}
		return
	}
	if len(ev.Touches) != 1 || m.touchBlocked || m.state.StartPoint == nil {
		return
	}
	p := m.local(ev.Touches[0].ClientX, ev.Touches[0].ClientY)
	if !m.touchMoved {
		if p == *m.state.StartPoint {
			return
		}
		// First movement promotes the touch to a drag starting where the finger landed
		m.touchMoved = true
		if m.state.Mode == core.ModeDraw {
			m.state.Activity = ActivityDrawing
		} else {
			m.state.Activity = ActivityDragging
			m.dispatch(m.track(GestureDragStart, *m.state.StartPoint, Modifiers{}))
		}
	}
	m.pointerMove(p, Modifiers{})
}

func (m *Manager) touchEndEvent(ev TouchEvent) {
	if len(ev.Touches) > 0 {
		if m.state.Activity == ActivityPinching && len(ev.Touches) < 2 {
			m.resetSequence()
		}
		return
	}
	if m.touchBlocked {
		m.touchBlocked = false
		m.resetSequence()
		return
	}
	if m.state.StartPoint == nil {
		return
	}
	p := *m.state.CurrentPoint
	if m.touchMoved {
		m.pointerUp(p, Modifiers{})
		return
	}
	m.resetSequence()
	if ev.Time.Sub(m.touchStart) >= m.cfg.TapMax() || ev.Action == TouchCancel {
		return
	}
	// Double tap shares the select path; Taps is informational
	if !m.lastTapEnd.IsZero() && m.touchStart.Sub(m.lastTapEnd) <= m.cfg.DoubleTap() {
		m.taps++
	} else {
		m.taps = 1
	}
	m.lastTapEnd = ev.Time
	m.dispatch(Gesture{Type: GestureSelect, Point: p, Taps: m.taps})
}

func (m *Manager) pinchMove(touches []Touch) {
	a, b := m.touchPair(touches)
	if m.pinchDist == 0 {
		return
	}
	scale := a.Distance(b) / m.pinchDist
	rotation := core.ShortestDelta(m.pinchAngle, b.Sub(a).Angle())
	g := Gesture{
		Type:          GesturePinch,
		Center:        a.Midpoint(b),
		Scale:         scale,
		ScaleDelta:    1,
		Rotation:      rotation,
		RotationDelta: rotation - m.pinchRotation,
	}
	g.Point = g.Center
	if m.pinchScale != 0 {
		g.ScaleDelta = scale / m.pinchScale
	}
	m.pinchScale, m.pinchRotation = scale, rotation
	m.dispatch(g)
}

func (m *Manager) touchPair(touches []Touch) (core.Point, core.Point) {
	return m.local(touches[0].ClientX, touches[0].ClientY), m.local(touches[1].ClientX, touches[1].ClientY)
}

// === Keyboard ===

// HandleKey broadcasts ev to every handler regardless of mode
func (m *Manager) HandleKey(ev KeyEvent) {
	for _, h := range m.handlers {
		h.HandleKey(ev)
	}
}

// === Internals ===

func (m *Manager) local(x, y float64) core.Point {
	p := core.Pt(x, y)
	if m.surface != nil {
		p = p.Sub(m.surface.Origin())
	}
	return p
}

func (m *Manager) begin(a Activity, p core.Point) {
	m.state.Activity = a
	m.setPoints(p, p)
	m.last = p
}

func (m *Manager) setPoints(start, current core.Point) {
	m.state.StartPoint = &start
	m.state.CurrentPoint = &current
}

// track builds a sequence gesture at p and advances the current point
func (m *Manager) track(t GestureType, p core.Point, mod Modifiers) Gesture {
	start := p
	if m.state.StartPoint != nil {
		start = *m.state.StartPoint
	}
	total := p.Sub(start)
	g := Gesture{
		Type:  t,
		Point: p,
		Start: start,
		Delta: p.Sub(m.last),
		Total: total,
		Mod:   mod,
	}
	if total != (core.Point{}) {
		g.Angle = core.NormalizeDegrees(total.Angle())
	}
	m.last = p
	cur := p
	m.state.CurrentPoint = &cur
	return g
}

func (m *Manager) resetSequence() {
	m.state.Activity = ActivityIdle
	m.state.StartPoint = nil
	m.state.CurrentPoint = nil
	m.last = core.Point{}
	m.touchMoved = false
}

func (m *Manager) dispatch(g Gesture) {
	for _, h := range m.handlers {
		h.HandleGesture(g)
	}
}
