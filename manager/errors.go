// Package manager owns the authoritative room and door collections
// Every geometric mutation is computed on a temporary copy, validated, then committed
package manager

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/floorplan/validation"
)

var (
	// ErrRejected is wrapped by every RejectedError
	ErrRejected = errors.New("rejected by validation")

	// ErrRoomNotFound means the room id is not in the collection
	// Treated as a programming error by callers
	ErrRoomNotFound = errors.New("room not found")

	// ErrDoorNotFound means the door id is not in the collection
	ErrDoorNotFound = errors.New("door not found")

	// ErrDuplicateID means an insert reused an existing id
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidArgument flags arguments no geometry can satisfy
	ErrInvalidArgument = errors.New("invalid argument")
)

// RejectedError reports a mutation that failed validation and left state unchanged
// The validator has already emitted one validationError event per entry in Result
type RejectedError struct {
	Op     string
	Result validation.Result
}

// Error implements the error interface
func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Op, e.Result)
}

// Unwrap lets errors.Is match ErrRejected
func (e *RejectedError) Unwrap() error {
	return ErrRejected
}

func rejected(op string, res validation.Result) error {
	return &RejectedError{Op: op, Result: res}
}

// ValidationResult extracts the rejection result from err, if any
func ValidationResult(err error) (validation.Result, bool) {
	var re *RejectedError
	if errors.As(err, &re) {
		return re.Result, true
	}
	return validation.Result{}, false
}
