package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dn2sim/internal/arena"
	"github.com/vovakirdan/dn2sim/internal/levels"
)

// The two fatal error kinds. Everything else the game treats as a silent
// no-op stays silent.
var (
	// ErrResourceExhausted covers arena byte or chunk exhaustion and actor
	// lists that do not fit the actor table. Its message is "exceeded memory
	// limits".
	ErrResourceExhausted = arena.ErrResourceExhausted

	// ErrCorruptLevelData is returned for level files whose actor list
	// overflows the header bounds.
	ErrCorruptLevelData = levels.ErrCorruptLevelData
)

// ErrNoLevel is returned by UpdateFrame before a level has been loaded.
var ErrNoLevel = errors.New("sim: no level loaded")

// fail records the first fatal error of the session. Once set, every later
// UpdateFrame returns it.
func (c *Context) fail(err error) {
	if c.fatal != nil {
		return
	}
	c.fatal = err
	c.log.Error("fatal simulation error", "frame", c.frameNum, "err", err)
}

// Err returns the fatal error that poisoned the context, if any.
func (c *Context) Err() error {
	return c.fatal
}

func errorf(format string, args ...any) error {
	return fmt.Errorf("sim: "+format, args...)
}
