package terminal

import (
	"math"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/parameter"
)

// Viewport maps between terminal cells and plan coordinates
type Viewport struct {
	Origin core.Point // plan position of cell (0,0)
	Units  float64    // plan units per column
	Aspect float64    // row height in columns
}

// NewViewport returns the default mapping anchored at the plan origin
func NewViewport() Viewport {
	return Viewport{Units: parameter.TerminalCellUnits, Aspect: parameter.TerminalAspect}
}

// ToPlan returns the plan position of cell (x, y)
func (v Viewport) ToPlan(x, y int) core.Point {
	return core.Pt(
		v.Origin.X+float64(x)*v.Units,
		v.Origin.Y+float64(y)*v.Units*v.Aspect,
	)
}

// ToCell returns the nearest cell to plan position p
func (v Viewport) ToCell(p core.Point) (int, int) {
	x := (p.X - v.Origin.X) / v.Units
	y := (p.Y - v.Origin.Y) / (v.Units * v.Aspect)
	return int(math.Floor(x + 0.5)), int(math.Floor(y + 0.5))
}

// Pan shifts the viewport by a cell offset
func (v *Viewport) Pan(dx, dy int) {
	v.Origin = v.Origin.Add(core.Pt(float64(dx)*v.Units, float64(dy)*v.Units*v.Aspect))
}
