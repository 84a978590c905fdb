package commons

import (
	"errors"
	"fmt"

	"github.com/burntcarrot/treapad/editor"
)

// Operation represents an editor operation sent by a driver.
type Operation struct {
	// Type represents the operation type, for example, type, backspace, undo.
	Type OperationType `json:"type"`

	// Value represents the content of the operation. Only used by type operations.
	Value string `json:"value,omitempty"`
}

// OperationType represents the kind of editor operation.
type OperationType string

const (
	OpType       OperationType = "type"
	OpShiftLeft  OperationType = "shiftLeft"
	OpShiftRight OperationType = "shiftRight"
	OpBackspace  OperationType = "backspace"
	OpUndo       OperationType = "undo"
	OpRedo       OperationType = "redo"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrEmptyValue       = errors.New("type operation has no value")
)

// Apply performs op on e. A type operation inserts each rune of its value as
// a separate version, so each one can be undone on its own.
func Apply(e *editor.Editor, op Operation) error {
	switch op.Type {
	case OpType:
		if op.Value == "" {
			return ErrEmptyValue
		}
		for _, r := range op.Value {
			e.Type(r)
		}
	case OpShiftLeft:
		e.ShiftLeft()
	case OpShiftRight:
		e.ShiftRight()
	case OpBackspace:
		e.Backspace()
	case OpUndo:
		e.Undo()
	case OpRedo:
		e.Redo()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, op.Type)
	}

	return nil
}
