package manager

import (
	"errors"
	"testing"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/entity"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/validation"
)

func TestCreateDoor(t *testing.T) {
	tests := []struct {
		name  string
		pos   core.Point
		angle float64
		codes []validation.Code
	}{
		{"on bottom wall", core.Pt(50, 0), 0, nil},
		{"near right wall", core.Pt(105, 50), 90, nil},
		{"room interior", core.Pt(50, 50), 0, []validation.Code{validation.CodeDoorNotOnWall}},
		{"diagonal", core.Pt(50, 0), 45, []validation.Code{validation.CodeDoorInvalidRotation}},
		{"both", core.Pt(50, 50), 30, []validation.Code{validation.CodeDoorNotOnWall, validation.CodeDoorInvalidRotation}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			room, _ := f.rooms.CreateRoom("a", square(0, 0, 100))
			f.rec.reset()

			door, err := f.doors.CreateDoor(room, tt.pos, tt.angle)
			if tt.codes == nil {
				if err != nil {
					t.Fatalf("CreateDoor: %v", err)
				}
				if door.Width != 80 || door.Height != 10 || door.SwingDirection != entity.SwingLeft {
					t.Errorf("defaults not applied: %+v", door)
				}
				if f.rec.count(event.EventDoorAdded) != 1 {
					t.Errorf("doorAdded emitted %d times", f.rec.count(event.EventDoorAdded))
				}
				return
			}
			if door != nil {
				t.Errorf("rejected create returned a door")
			}
			res, ok := ValidationResult(err)
			if !ok {
				t.Fatalf("err = %v, want RejectedError", err)
			}
			got := res.Codes()
			if len(got) != len(tt.codes) {
				t.Fatalf("codes = %v, want %v", got, tt.codes)
			}
			for i := range got {
				if got[i] != tt.codes[i] {
					t.Errorf("code[%d] = %s, want %s", i, got[i], tt.codes[i])
				}
			}
			if f.doors.Len() != 0 {
				t.Errorf("rejected door stored")
			}
			if n := f.rec.count(event.EventValidationError); n != len(tt.codes) {
				t.Errorf("validationError emitted %d times, want %d", n, len(tt.codes))
			}
		})
	}
}

func TestCreateDoorNilRoom(t *testing.T) {
	f := newFixture()
	if _, err := f.doors.CreateDoor(nil, core.Pt(0, 0), 0); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("err = %v, want ErrRoomNotFound", err)
	}
}

func newDoorFixture(t *testing.T) (*fixture, *entity.Room, *entity.Door) {
	t.Helper()
	f := newFixture()
	room, err := f.rooms.CreateRoom("a", square(0, 0, 100))
	if err != nil {
		t.Fatal(err)
	}
	door, err := f.doors.CreateDoor(room, core.Pt(50, 0), 0)
	if err != nil {
		t.Fatal(err)
	}
	f.rec.reset()
	return f, room, door
}

func TestMoveDoorSkipsWallCheck(t *testing.T) {
	f, _, door := newDoorFixture(t)

	if err := f.doors.MoveDoor(door, core.Pt(10, 0)); err != nil {
		t.Fatalf("MoveDoor: %v", err)
	}
	if door.Position != core.Pt(60, 0) {
		t.Errorf("position = %v, want (60,0)", door.Position)
	}
	// Off the wall is allowed for raw moves
	if err := f.doors.MoveDoor(door, core.Pt(0, 50)); err != nil {
		t.Fatalf("MoveDoor off wall: %v", err)
	}
	if f.rec.count(event.EventDoorUpdated) != 2 {
		t.Errorf("doorUpdated emitted %d times, want 2", f.rec.count(event.EventDoorUpdated))
	}
	if f.rec.count(event.EventValidationError) != 0 {
		t.Errorf("move emitted validation errors")
	}
}

func TestAddDoorSkipsWallCheck(t *testing.T) {
	f := newFixture()
	off := entity.NewDoor(core.Pt(500, 500), 0, 80, 10, 90, entity.SwingLeft)
	if err := f.doors.AddDoor(off); err != nil {
		t.Fatalf("off-wall door refused: %v", err)
	}
	if err := f.doors.AddDoor(off); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("err = %v, want ErrDuplicateID", err)
	}
	tilted := entity.NewDoor(core.Pt(0, 0), 30, 80, 10, 90, entity.SwingLeft)
	err := f.doors.AddDoor(tilted)
	if res, ok := ValidationResult(err); !ok || !res.Has(validation.CodeDoorInvalidRotation) {
		t.Errorf("err = %v, want DOOR_INVALID_ROTATION", err)
	}
	if f.doors.Len() != 1 {
		t.Errorf("Len = %d, want 1", f.doors.Len())
	}
}

func TestRotateDoor(t *testing.T) {
	tests := []struct {
		angle   float64
		want    float64
		wantErr bool
	}{
		{90, 90, false},
		{-90, 270, false},
		{450, 90, false},
		{180.05, 180, false},
		{45, 0, true},
		{91, 0, true},
	}
	for _, tt := range tests {
		f, _, door := newDoorFixture(t)
		err := f.doors.RotateDoor(door, tt.angle)
		if tt.wantErr {
			if !errors.Is(err, ErrRejected) {
				t.Errorf("RotateDoor(%g) err = %v, want ErrRejected", tt.angle, err)
			}
			if door.Angle() != 0 {
				t.Errorf("RotateDoor(%g) changed angle to %g", tt.angle, door.Angle())
			}
			continue
		}
		if err != nil {
			t.Errorf("RotateDoor(%g): %v", tt.angle, err)
			continue
		}
		if !near(door.Angle(), tt.want) {
			t.Errorf("RotateDoor(%g) angle = %g, want %g", tt.angle, door.Angle(), tt.want)
		}
	}
}

func TestResizeDoor(t *testing.T) {
	f, _, door := newDoorFixture(t)

	if err := f.doors.ResizeDoor(door, 120, 20); err != nil {
		t.Fatalf("ResizeDoor: %v", err)
	}
	if door.Width != 120 || door.Height != 20 {
		t.Errorf("size = %gx%g, want 120x20", door.Width, door.Height)
	}

	err := f.doors.ResizeDoor(door, 10, 100)
	res, ok := ValidationResult(err)
	if !ok || !res.Has(validation.CodeDoorInvalidWidth) || !res.Has(validation.CodeDoorInvalidHeight) {
		t.Fatalf("err = %v, want width and height errors", err)
	}
	if door.Width != 120 || door.Height != 20 {
		t.Errorf("rejected resize changed size to %gx%g", door.Width, door.Height)
	}
}

func TestToggleSwing(t *testing.T) {
	f, _, door := newDoorFixture(t)
	if err := f.doors.ToggleSwing(door); err != nil {
		t.Fatal(err)
	}
	if door.SwingDirection != entity.SwingRight {
		t.Errorf("swing = %s, want right", door.SwingDirection)
	}
	_ = f.doors.ToggleSwing(door)
	if door.SwingDirection != entity.SwingLeft {
		t.Errorf("swing = %s, want left", door.SwingDirection)
	}
}

func TestUpdateDoor(t *testing.T) {
	f, room, door := newDoorFixture(t)

	moved := door.Clone()
	moved.Position = core.Pt(50, 50)
	if err := f.doors.UpdateDoor(moved, room); !errors.Is(err, ErrRejected) {
		t.Fatalf("off-wall update err = %v, want ErrRejected", err)
	}
	if got, _ := f.doors.Door(door.ID); got != door {
		t.Errorf("rejected update replaced the door")
	}

	moved.Position = core.Pt(0, 50)
	moved.SetAngle(90)
	if err := f.doors.UpdateDoor(moved, room); err != nil {
		t.Fatalf("UpdateDoor: %v", err)
	}
	if got, _ := f.doors.Door(door.ID); got != moved {
		t.Errorf("door not replaced")
	}

	stranger := entity.NewDoor(core.Pt(50, 0), 0, 80, 10, 90, entity.SwingLeft)
	if err := f.doors.UpdateDoor(stranger, room); !errors.Is(err, ErrDoorNotFound) {
		t.Errorf("err = %v, want ErrDoorNotFound", err)
	}
}

func TestDeleteDoor(t *testing.T) {
	f, _, door := newDoorFixture(t)
	f.doors.SelectDoor(door)
	f.doors.SelectDoor(door)
	if n := f.rec.count(event.EventDoorSelectionChanged); n != 1 {
		t.Errorf("selectionChanged emitted %d times, want 1", n)
	}
	f.doors.SetHover(door)

	if err := f.doors.DeleteDoor(door); err != nil {
		t.Fatal(err)
	}
	if f.doors.Selected() != nil || f.doors.Hovered() != nil {
		t.Errorf("selection or hover survived delete")
	}
	if f.doors.Len() != 0 || len(f.doors.Doors()) != 0 {
		t.Errorf("door still listed")
	}
	if err := f.doors.MoveDoor(door, core.Pt(1, 0)); !errors.Is(err, ErrDoorNotFound) {
		t.Errorf("move after delete err = %v", err)
	}
}

func TestFindDoorAtPoint(t *testing.T) {
	f, room, door := newDoorFixture(t)
	vertical, err := f.doors.CreateDoor(room, core.Pt(100, 50), 90)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		p    core.Point
		want *entity.Door
	}{
		{core.Pt(50, 0), door},
		{core.Pt(89, 4), door},
		{core.Pt(50, 6), nil},
		{core.Pt(100, 89), vertical},
		{core.Pt(130, 50), nil},
	}
	for _, tt := range tests {
		if got := f.doors.FindDoorAtPoint(tt.p); got != tt.want {
			t.Errorf("FindDoorAtPoint(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestDoorPreview(t *testing.T) {
	f := newFixture()
	f.doors.ClearPreview()
	candidate := f.doors.NewCandidate(core.Pt(0, 0), 0)
	f.doors.SetPreview(candidate)
	if f.doors.Preview() != candidate {
		t.Errorf("preview not stored")
	}
	f.doors.ClearPreview()
	if f.rec.count(event.EventDoorPreviewChanged) != 1 || f.rec.count(event.EventDoorPreviewCleared) != 1 {
		t.Errorf("preview events = %d/%d, want 1/1",
			f.rec.count(event.EventDoorPreviewChanged), f.rec.count(event.EventDoorPreviewCleared))
	}
}
