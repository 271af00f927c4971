package sweet

import (
	"errors"
	"fmt"
)

// ErrSetupActive is returned when Setup is called for a target that already
// has a definition block running. Nested setups on distinct targets are
// allowed; re-entering the same target is not.
var ErrSetupActive = errors.New("setup already active for target")

// ErrDefinitionClosed is returned when a Definition is used after its Setup
// call has returned.
var ErrDefinitionClosed = errors.New("definition used outside its setup block")

// UnknownOperationError reports a definition-block call that could not be
// resolved against the target's own methods or any loaded component.
type UnknownOperationError struct {
	Op     string // attempted operation, unqualified
	Target string // model name of the target
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q on %s", e.Op, e.Target)
}
