// Package validation evaluates geometric rules for rooms and doors
// Every check returns a fresh Result and reports each failure on the event bus
package validation

import (
	"strings"

	"github.com/lixenwraith/floorplan/event"
)

// Code identifies a failed rule
type Code string

const (
	CodeRoomMinPoints         Code = "ROOM_MIN_POINTS"
	CodeRoomMinArea           Code = "ROOM_MIN_AREA"
	CodeRoomIntersectingEdges Code = "ROOM_INTERSECTING_EDGES"
	CodePointNotFound         Code = "POINT_NOT_FOUND"
	CodePointMoveIntersection Code = "POINT_MOVE_INTERSECTION"
	CodeDoorNotOnWall         Code = "DOOR_NOT_ON_WALL"
	CodeDoorInvalidRotation   Code = "DOOR_INVALID_ROTATION"
	CodeDoorInvalidWidth      Code = "DOOR_INVALID_WIDTH"
	CodeDoorInvalidHeight     Code = "DOOR_INVALID_HEIGHT"
)

// Severity grades an error for display
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Error is one failed rule
type Error struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
}

// Error implements the error interface
func (e Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Result is the outcome of one check
type Result struct {
	IsValid bool    `json:"isValid"`
	Errors  []Error `json:"errors"`
}

// Valid returns a passing result
func Valid() Result {
	return Result{IsValid: true, Errors: []Error{}}
}

func (r *Result) add(field string, code Code, msg string) {
	r.IsValid = false
	r.Errors = append(r.Errors, Error{Field: field, Message: msg, Code: code, Severity: SeverityError})
}

// Has reports whether the result contains code
func (r Result) Has(code Code) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Codes returns the error codes in order
func (r Result) Codes() []Code {
	out := make([]Code, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Code
	}
	return out
}

// String joins all messages
func (r Result) String() string {
	if r.IsValid {
		return "valid"
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// payload converts an Error into its bus form
func (e Error) payload() event.ValidationErrorPayload {
	return event.ValidationErrorPayload{
		Field:    e.Field,
		Message:  e.Message,
		Code:     string(e.Code),
		Severity: string(e.Severity),
	}
}
