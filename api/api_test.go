package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/editor"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/validation"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	ed := editor.New(nil)
	t.Cleanup(ed.Close)
	return New(ed, config.Default().API)
}

func do(t *testing.T, s *Server, method, path string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func decodeBody[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return v
}

func square(x, y, side float64) []core.Point {
	return []core.Point{core.Pt(x, y), core.Pt(x+side, y), core.Pt(x+side, y+side), core.Pt(x, y+side)}
}

func createRoom(t *testing.T, s *Server, name string, pts []core.Point) roomResponse {
	t.Helper()
	status, body := do(t, s, http.MethodPost, "/rooms", createRoomRequest{Name: name, Points: pts})
	if status != http.StatusCreated {
		t.Fatalf("create room status %d: %s", status, body)
	}
	return decodeBody[roomResponse](t, body)
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	status, body := do(t, s, http.MethodGet, "/health/live", nil)
	if status != http.StatusOK || !strings.Contains(string(body), "alive") {
		t.Errorf("health = %d %s", status, body)
	}
}

func TestRoomLifecycle(t *testing.T) {
	s := newServer(t)
	room := createRoom(t, s, "Hall", square(0, 0, 200))
	if room.ID == "" || room.Area != 40000 || room.Perimeter != 800 {
		t.Fatalf("created room = %+v", room)
	}

	status, body := do(t, s, http.MethodGet, "/rooms", nil)
	if list := decodeBody[[]roomResponse](t, body); status != http.StatusOK || len(list) != 1 {
		t.Fatalf("list = %d %s", status, body)
	}

	status, body = do(t, s, http.MethodPost, "/rooms/"+room.ID+"/move", moveRequest{DX: 50, DY: 10})
	if status != http.StatusOK {
		t.Fatalf("move status %d: %s", status, body)
	}
	if moved := decodeBody[roomResponse](t, body); moved.Points[0] != core.Pt(50, 10) {
		t.Errorf("moved first point = %v, want (50,10)", moved.Points[0])
	}

	status, body = do(t, s, http.MethodPost, "/rooms/"+room.ID+"/scale", scaleRequest{Factor: 0.5})
	if scaled := decodeBody[roomResponse](t, body); status != http.StatusOK || scaled.Area != 10000 {
		t.Errorf("scale = %d area %g", status, scaled.Area)
	}

	status, body = do(t, s, http.MethodPost, "/rooms/"+room.ID+"/rotate", rotateRoomRequest{Degrees: 90})
	if rotated := decodeBody[roomResponse](t, body); status != http.StatusOK || rotated.Area < 9999.99 || rotated.Area > 10000.01 {
		t.Errorf("rotate = %d area %g", status, rotated.Area)
	}

	if status, _ := do(t, s, http.MethodDelete, "/rooms/"+room.ID, nil); status != http.StatusNoContent {
		t.Errorf("delete status = %d", status)
	}
	if status, _ := do(t, s, http.MethodGet, "/rooms/"+room.ID, nil); status != http.StatusNotFound {
		t.Errorf("get deleted status = %d", status)
	}
}

func TestRoomErrors(t *testing.T) {
	s := newServer(t)
	room := createRoom(t, s, "Hall", square(0, 0, 200))

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   validation.Code
	}{
		{"too small", http.MethodPost, "/rooms", createRoomRequest{Points: square(0, 0, 5)}, http.StatusUnprocessableEntity, validation.CodeRoomMinArea},
		{"too few points", http.MethodPost, "/rooms", createRoomRequest{Points: []core.Point{core.Pt(0, 0), core.Pt(10, 0)}}, http.StatusUnprocessableEntity, validation.CodeRoomMinPoints},
		{"scale to sliver", http.MethodPost, "/rooms/" + room.ID + "/scale", scaleRequest{Factor: 0.01}, http.StatusUnprocessableEntity, validation.CodeRoomMinArea},
		{"zero scale", http.MethodPost, "/rooms/" + room.ID + "/scale", scaleRequest{Factor: 0}, http.StatusBadRequest, ""},
		{"unknown room", http.MethodPost, "/rooms/nope/move", moveRequest{DX: 1}, http.StatusNotFound, ""},
		{"bad json", http.MethodPost, "/rooms", "{", http.StatusBadRequest, ""},
		{"no body", http.MethodPost, "/rooms/" + room.ID + "/move", nil, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, s, tt.method, tt.path, tt.body)
			if status != tt.status {
				t.Fatalf("status = %d, want %d: %s", status, tt.status, body)
			}
			if tt.code == "" {
				return
			}
			rej := decodeBody[rejection](t, body)
			found := false
			for _, e := range rej.Errors {
				found = found || e.Code == tt.code
			}
			if !found {
				t.Errorf("errors %+v missing %s", rej.Errors, tt.code)
			}
		})
	}

	// Rejected edits leave the room untouched
	_, body := do(t, s, http.MethodGet, "/rooms/"+room.ID, nil)
	if got := decodeBody[roomResponse](t, body); got.Area != 40000 {
		t.Errorf("area after rejected scale = %g", got.Area)
	}
}

func TestDoorLifecycle(t *testing.T) {
	s := newServer(t)
	room := createRoom(t, s, "Hall", square(0, 0, 200))

	status, body := do(t, s, http.MethodPost, "/doors", createDoorRequest{Position: core.Pt(100, 0)})
	if status != http.StatusCreated {
		t.Fatalf("create door status %d: %s", status, body)
	}
	door := decodeBody[entity.DoorRecord](t, body)
	if door.Width != 80 || door.SwingDirection != "left" {
		t.Errorf("door defaults = %+v", door)
	}

	steps := []struct {
		name   string
		path   string
		body   any
		status int
		check  func(entity.DoorRecord) bool
	}{
		{"rotate 45", "/rotate", rotateDoorRequest{Angle: 45}, http.StatusUnprocessableEntity, nil},
		{"rotate 90", "/rotate", rotateDoorRequest{Angle: 90}, http.StatusOK, func(d entity.DoorRecord) bool { return d.Angle == 90 }},
		{"resize", "/resize", resizeRequest{Width: 100, Height: 10}, http.StatusOK, func(d entity.DoorRecord) bool { return d.Width == 100 }},
		{"resize too wide", "/resize", resizeRequest{Width: 300, Height: 10}, http.StatusUnprocessableEntity, nil},
		{"move", "/move", moveRequest{DX: 10}, http.StatusOK, func(d entity.DoorRecord) bool { return d.Position == core.Pt(110, 0) }},
		{"swing", "/swing", nil, http.StatusOK, func(d entity.DoorRecord) bool { return d.SwingDirection == "right" }},
	}
	for _, st := range steps {
		status, body := do(t, s, http.MethodPost, "/doors/"+door.ID+st.path, st.body)
		if status != st.status {
			t.Fatalf("%s: status %d, want %d: %s", st.name, status, st.status, body)
		}
		if st.check != nil && !st.check(decodeBody[entity.DoorRecord](t, body)) {
			t.Errorf("%s: unexpected door %s", st.name, body)
		}
	}

	// Explicit host, off the wall
	status, body = do(t, s, http.MethodPost, "/doors", createDoorRequest{RoomID: room.ID, Position: core.Pt(100, 100)})
	if status != http.StatusUnprocessableEntity || !strings.Contains(string(body), string(validation.CodeDoorNotOnWall)) {
		t.Errorf("interior door = %d %s", status, body)
	}
	if status, _ := do(t, s, http.MethodPost, "/doors", createDoorRequest{RoomID: "nope", Position: core.Pt(100, 0)}); status != http.StatusNotFound {
		t.Errorf("unknown host status = %d", status)
	}

	if status, _ := do(t, s, http.MethodDelete, "/doors/"+door.ID, nil); status != http.StatusNoContent {
		t.Errorf("delete status = %d", status)
	}
	if status, _ := do(t, s, http.MethodGet, "/doors/"+door.ID, nil); status != http.StatusNotFound {
		t.Errorf("get deleted status = %d", status)
	}
}

func TestDoorWithoutRooms(t *testing.T) {
	s := newServer(t)
	status, _ := do(t, s, http.MethodPost, "/doors", createDoorRequest{Position: core.Pt(0, 0)})
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestPlanDocument(t *testing.T) {
	s := newServer(t)
	createRoom(t, s, "Hall", square(0, 0, 200))
	do(t, s, http.MethodPost, "/doors", createDoorRequest{Position: core.Pt(100, 0)})

	status, body := do(t, s, http.MethodGet, "/plan", nil)
	if status != http.StatusOK {
		t.Fatalf("get plan status %d", status)
	}
	doc := decodeBody[editor.Document](t, body)
	if len(doc.Rooms) != 1 || len(doc.Doors) != 1 {
		t.Fatalf("plan = %s", body)
	}

	if status, _ := do(t, s, http.MethodDelete, "/plan", nil); status != http.StatusNoContent {
		t.Fatalf("clear status %d", status)
	}
	status, body = do(t, s, http.MethodPut, "/plan", doc)
	if status != http.StatusOK {
		t.Fatalf("put plan status %d: %s", status, body)
	}
	if stats := decodeBody[editor.Stats](t, body); stats.Rooms != 1 || stats.Doors != 1 || stats.TotalArea != 40000 {
		t.Errorf("stats after import = %+v", stats)
	}

	bowtie := []core.Point{core.Pt(0, 0), core.Pt(100, 100), core.Pt(100, 0), core.Pt(0, 100)}
	bad := editor.Document{Rooms: []entity.RoomRecord{{ID: "bowtie", Points: bowtie}}}
	if status, _ := do(t, s, http.MethodPut, "/plan", bad); status != http.StatusUnprocessableEntity {
		t.Errorf("bad plan status = %d", status)
	}
	tilted := doc.Doors[0]
	tilted.Angle = 45
	if status, _ := do(t, s, http.MethodPut, "/plan", editor.Document{Rooms: doc.Rooms, Doors: []entity.DoorRecord{tilted}}); status != http.StatusUnprocessableEntity {
		t.Errorf("tilted door status = %d", status)
	}
	dup := editor.Document{Rooms: []entity.RoomRecord{doc.Rooms[0], doc.Rooms[0]}}
	if status, _ := do(t, s, http.MethodPut, "/plan", dup); status != http.StatusConflict {
		t.Errorf("duplicate id status = %d", status)
	}

	_, body = do(t, s, http.MethodGet, "/plan/stats", nil)
	if stats := decodeBody[editor.Stats](t, body); stats.Rooms != 1 || stats.TotalPerimeter != 800 {
		t.Errorf("stats after rejected imports = %+v", stats)
	}
}

func TestPlanImages(t *testing.T) {
	s := newServer(t)
	createRoom(t, s, "Hall", square(0, 0, 200))

	req := httptest.NewRequest(http.MethodGet, "/plan.svg", nil)
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("svg: %v", err)
	}
	svg, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("svg content type = %q", ct)
	}
	if !strings.Contains(string(svg), "<svg") || !strings.Contains(string(svg), "Hall") {
		t.Errorf("svg body = %s", svg)
	}

	status, png := do(t, s, http.MethodGet, "/plan.png", nil)
	if status != http.StatusOK || !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("png = %d, %d bytes", status, len(png))
	}
}

func TestStatusCounters(t *testing.T) {
	s := newServer(t)
	createRoom(t, s, "Hall", square(0, 0, 200))
	do(t, s, http.MethodPost, "/rooms", createRoomRequest{Points: square(0, 0, 5)})

	status, body := do(t, s, http.MethodGet, "/status", nil)
	if status != http.StatusOK {
		t.Fatalf("status endpoint = %d", status)
	}
	metrics := decodeBody[map[string]float64](t, body)
	want := map[string]float64{
		"event.roomAdded":          1,
		"validation.ROOM_MIN_AREA": 1,
		"plan.rooms":               1,
		"plan.area":                40000,
	}
	for k, v := range want {
		if metrics[k] != v {
			t.Errorf("%s = %g, want %g", k, metrics[k], v)
		}
	}
}
