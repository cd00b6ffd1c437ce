package api

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/lixenwraith/floorplan/manager"
	"github.com/lixenwraith/floorplan/validation"
)

var errBodyRequired = errors.New("body required")

// fail maps a domain error to a status and JSON body
// Rejections carry the validation errors so clients can show them per field
func fail(c fiber.Ctx, op string, err error) error {
	if res, ok := manager.ValidationResult(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(rejection{Error: err.Error(), Errors: res.Errors})
	}

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, manager.ErrRoomNotFound), errors.Is(err, manager.ErrDoorNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, manager.ErrDuplicateID):
		status = fiber.StatusConflict
	case errors.Is(err, manager.ErrInvalidArgument), errors.Is(err, errBodyRequired):
		status = fiber.StatusBadRequest
	default:
		log.Printf("[API] %s: %v", op, err)
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// decode unmarshals the request body into v
func decode(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return errBodyRequired
	}
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return errors.Join(manager.ErrInvalidArgument, err)
	}
	return nil
}

// rejection is the 422 body
type rejection struct {
	Error  string             `json:"error"`
	Errors []validation.Error `json:"errors"`
}
