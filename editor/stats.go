package editor

// Stats are the plan totals shown in a calculations panel
type Stats struct {
	Rooms          int     `json:"rooms"`
	Doors          int     `json:"doors"`
	TotalArea      float64 `json:"totalArea"`
	TotalPerimeter float64 `json:"totalPerimeter"`
}

// Stats sums area and perimeter over all rooms
func (e *Editor) Stats() Stats {
	s := Stats{Rooms: e.Rooms.Len(), Doors: e.Doors.Len()}
	for _, r := range e.Rooms.Rooms() {
		s.TotalArea += r.Area()
		s.TotalPerimeter += r.Perimeter()
	}
	return s
}
