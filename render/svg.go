package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/lixenwraith/floorplan/core"
)

// SVG renders the plan at one unit per pixel
func (s *Snapshot) SVG() string {
	f := s.frame(0)

	var elements []string
	for _, r := range s.rooms {
		elements = append(elements, svgRoom(f, r.ID, r.Name, r.Points, s.roomStroke(r)))
	}
	for _, d := range s.doors {
		stroke := ColorDoor
		switch s.doorStroke(d) {
		case roleSelected:
			stroke = ColorSelected
		case roleHover:
			stroke = ColorHover
		}
		elements = append(elements, fmt.Sprintf(`<polygon id="door-%s" class="door %s" points="%s" fill="%s" stroke="%s" stroke-width="1"/>`,
			html.EscapeString(d.ID), d.SwingDirection, svgPoints(f, d.Corners()), hex(ColorDoor), hex(stroke)))
	}
	if s.previewDoor != nil {
		elements = append(elements, fmt.Sprintf(`<polygon class="door-preview" points="%s" fill="%s" fill-opacity="%s"/>`,
			svgPoints(f, s.previewDoor.Corners()), hex(ColorDoorPreview), opacity(ColorDoorPreview)))
	}
	if len(s.preview) > 0 {
		elements = append(elements, fmt.Sprintf(`<polyline class="preview" points="%s" fill="none" stroke="%s" stroke-dasharray="4 4"/>`,
			svgPoints(f, s.preview), hex(ColorPreview)))
	}
	if s.selectedRoom != nil && s.selectedPoint != nil {
		p := f.apply(*s.selectedPoint)
		elements = append(elements, fmt.Sprintf(`<circle class="vertex" cx="%s" cy="%s" r="4" fill="%s"/>`,
			formatFloat(p.X), formatFloat(p.Y), hex(ColorSelected)))
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatFloat(f.width), formatFloat(f.height), formatFloat(f.width), formatFloat(f.height)))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf(`  <rect width="100%%" height="100%%" fill="%s"/>`, hex(ColorBackground)))
	builder.WriteString("\n")
	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}
	builder.WriteString(`</svg>`)
	return builder.String()
}

func svgRoom(f frame, id, name string, pts []core.Point, role colorRole) string {
	stroke, class := ColorRoomStroke, "room"
	switch role {
	case roleSelected:
		stroke, class = ColorSelected, "room selected"
	case roleHover:
		stroke, class = ColorHover, "room hovered"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf(`<polygon id="room-%s" class="%s" points="%s" fill="%s" fill-opacity="%s" stroke="%s" stroke-width="2"/>`,
		html.EscapeString(id), class, svgPoints(f, pts), hex(ColorRoomFill), opacity(ColorRoomFill), hex(stroke)))
	if name != "" && len(pts) > 0 {
		c := f.apply(centerOf(pts))
		b.WriteString(fmt.Sprintf(`<text x="%s" y="%s" fill="%s" font-size="12" text-anchor="middle">%s</text>`,
			formatFloat(c.X), formatFloat(c.Y), hex(ColorLabel), html.EscapeString(name)))
	}
	return b.String()
}

func svgPoints(f frame, pts []core.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		q := f.apply(p)
		parts[i] = formatFloat(q.X) + "," + formatFloat(q.Y)
	}
	return strings.Join(parts, " ")
}

func centerOf(pts []core.Point) core.Point {
	var c core.Point
	for _, p := range pts {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(pts)))
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
