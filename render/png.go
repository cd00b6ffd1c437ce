package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/parameter"
)

// Image rasterizes the plan, scaled down so the longest side fits SnapshotMaxSide
func (s *Snapshot) Image() *image.RGBA {
	f := s.frame(parameter.SnapshotMaxSide)
	w, h := pixels(f.width), pixels(f.height)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(ColorBackground), image.Point{}, draw.Src)

	r := vector.NewRasterizer(w, h)
	fill := func(pts []core.Point, c color.RGBA) {
		if len(pts) < 3 {
			return
		}
		r.Reset(w, h)
		addPolygon(r, f, pts)
		r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	}
	stroke := func(pts []core.Point, closed bool, width float64, c color.RGBA) {
		if len(pts) < 2 {
			return
		}
		r.Reset(w, h)
		n := len(pts)
		if !closed {
			n--
		}
		for i := 0; i < n; i++ {
			addSegment(r, f.apply(pts[i]), f.apply(pts[(i+1)%len(pts)]), width)
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	}

	for _, room := range s.rooms {
		fill(room.Points, ColorRoomFill)
		c := ColorRoomStroke
		switch s.roomStroke(room) {
		case roleSelected:
			c = ColorSelected
		case roleHover:
			c = ColorHover
		}
		stroke(room.Points, true, 2, c)
	}
	for _, d := range s.doors {
		fill(d.Corners(), ColorDoor)
		switch s.doorStroke(d) {
		case roleSelected:
			stroke(d.Corners(), true, 1, ColorSelected)
		case roleHover:
			stroke(d.Corners(), true, 1, ColorHover)
		}
	}
	if s.previewDoor != nil {
		fill(s.previewDoor.Corners(), ColorDoorPreview)
	}
	stroke(s.preview, false, 1, ColorPreview)
	return dst
}

// PNG encodes Image to w
func (s *Snapshot) PNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

func addPolygon(r *vector.Rasterizer, f frame, pts []core.Point) {
	p0 := f.apply(pts[0])
	r.MoveTo(float32(p0.X), float32(p0.Y))
	for _, p := range pts[1:] {
		q := f.apply(p)
		r.LineTo(float32(q.X), float32(q.Y))
	}
	r.ClosePath()
}

// addSegment adds the segment ab as a quad of the given width
func addSegment(r *vector.Rasterizer, a, b core.Point, width float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	n := core.Pt(-d.Y/l, d.X/l).Scale(width / 2)
	c := []core.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	r.MoveTo(float32(c[0].X), float32(c[0].Y))
	for _, p := range c[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()
}

// pixels rounds a frame extent up to whole pixels, ignoring float noise
func pixels(v float64) int {
	return int(math.Ceil(v - 1e-6))
}
