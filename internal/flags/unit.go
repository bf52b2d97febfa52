package flags

import (
	"fmt"

	"github.com/bytesize/sizectl/internal/msg"
	"github.com/bytesize/sizectl/internal/size"
)

// Unit represents a byte unit flag, accepted by symbol or by name.
type Unit struct {
	Unit    size.Unit
	Changed bool
}

// String returns the symbol of the unit.
func (u Unit) String() string {
	if !u.Changed {
		return ""
	}
	return u.Unit.String()
}

// Set parses s into a unit from the catalog.
// This method is called by cobra when CLI flags are parsed.
func (u *Unit) Set(s string) error {
	parsed := size.UnitFromString(s)
	if parsed == size.None {
		return fmt.Errorf(msg.InvalidUnit, s)
	}

	u.Unit = parsed
	u.Changed = true
	return nil
}

// Type returns the value type.
func (u Unit) Type() string {
	return "unit"
}
