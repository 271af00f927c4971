package sweet

import (
	"errors"
	"fmt"
	"sync"
)

// Active bindings, keyed by target. Keeping the key per-target rather than
// in a single slot makes concurrent Setup calls on distinct targets
// independent of each other.
var (
	activeMu sync.Mutex
	active   = map[Target]*Definition{}
)

// Setup applies defaults to target and runs block against it.
//
// Before the block runs, the baseline components are loaded (idempotently)
// and the table name defaults to the final segment of the model name,
// lower-cased; the block may override both. The block receives a Definition
// bound to target; calls issued through it resolve against the target's own
// methods first, then the loaded components in order.
//
// The binding is removed on every exit path, including a panicking block, so
// a failed Setup never affects later Setup calls. The first error raised
// inside the block — an *UnknownOperationError or an error from a resolved
// operation — is returned.
func Setup(target Target, block func(*Definition)) error {
	if target == nil {
		return errors.New("setup: nil target")
	}
	if block == nil {
		return errors.New("setup: nil definition block")
	}

	if err := target.LoadComponents(BaselineComponents...); err != nil {
		return err
	}
	target.SetTable(DefaultTableName(target.ModelName()))

	d := &Definition{
		target: target,
		table:  buildDispatch(target),
		state:  stateInstalled,
	}

	activeMu.Lock()
	if _, busy := active[target]; busy {
		activeMu.Unlock()
		return fmt.Errorf("%w: %s", ErrSetupActive, target.ModelName())
	}
	active[target] = d
	activeMu.Unlock()

	defer func() {
		d.state = stateRemoved
		activeMu.Lock()
		delete(active, target)
		activeMu.Unlock()
	}()

	d.state = stateExecuting
	block(d)
	return d.err
}
