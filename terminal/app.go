package terminal

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorplan/editor"
	"github.com/lixenwraith/floorplan/render"
)

// frameInterval caps redraws at ~60 FPS
const frameInterval = 16 * time.Millisecond

// App runs an editor session on a tcell screen
type App struct {
	screen   tcell.Screen
	editor   *editor.Editor
	viewport *Viewport
	view     *View
	adapter  *Adapter
	bridge   *render.Bridge

	planPath string
	dirty    bool
}

// NewApp wires the view and adapter to ed; screen must already be initialized
// planPath, when set, is the file written by ctrl+s
func NewApp(screen tcell.Screen, ed *editor.Editor, planPath string) *App {
	vp := NewViewport()
	a := &App{
		screen:   screen,
		editor:   ed,
		viewport: &vp,
		planPath: planPath,
		dirty:    true,
	}
	a.view = NewView(screen, a.viewport)
	a.view.Attach(ed.Bus)
	a.bridge = render.NewBridge(ed.Bus, ed.Rooms, ed.Doors, a.view)
	a.adapter = NewAdapter(ed.Input, a.viewport)
	screen.EnableMouse()
	SetCrashScreen(screen)
	return a
}

// View returns the plan view
func (a *App) View() *View {
	return a.view
}

// HandleEvent processes one terminal event
// Returns false when the user asked to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	if k, ok := ev.(*tcell.EventKey); ok {
		switch k.Key() {
		case tcell.KeyCtrlC, tcell.KeyCtrlQ:
			return false
		case tcell.KeyCtrlS:
			if err := a.save(); err != nil {
				log.Printf("[TERM] save failed: %v", err)
			}
			return true
		}
	}
	if _, ok := ev.(*tcell.EventResize); ok {
		a.screen.Sync()
	}
	if a.adapter.HandleEvent(ev) {
		a.dirty = true
	}
	return true
}

// Run polls events until quit
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	Go(func() { a.screen.ChannelEvents(events, quit) })
	defer close(quit)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			if a.dirty {
				a.view.Draw()
				a.dirty = false
			}
		}
	}
}

// Close detaches from the editor and restores the terminal
func (a *App) Close() {
	a.bridge.Close()
	a.view.Detach()
	SetCrashScreen(nil)
	a.screen.Fini()
}

func (a *App) save() error {
	if a.planPath == "" {
		return fmt.Errorf("no plan file")
	}
	f, err := os.Create(a.planPath)
	if err != nil {
		return err
	}
	if err := a.editor.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	log.Printf("[TERM] saved %s", a.planPath)
	return f.Close()
}
