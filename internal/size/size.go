// Package size converts raw byte counts into human-readable strings, using
// either decimal (kB, MB, ...) or binary (KiB, MiB, ...) units.
package size

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeValue is returned when constructing a Size from a negative count.
var ErrNegativeValue = errors.New("byte count cannot be negative")

// Size represents an amount of bytes. Being a plain unsigned integer, it
// compares, orders and serializes as one.
type Size uint64

// New wraps the given byte count in a Size.
func New(count uint64) Size {
	return Size(count)
}

// FromUnit returns the Size of amount times the unit's byte factor.
// The multiplication uses native unsigned arithmetic and wraps on overflow.
func FromUnit(amount uint64, unit Unit) Size {
	return Size(amount * unit.Bytes())
}

// FromInt64 wraps the given byte count in a Size.
// Returns ErrNegativeValue if the count is negative.
func FromInt64(count int64) (Size, error) {
	if count < 0 {
		return 0, ErrNegativeValue
	}

	return Size(count), nil
}

// Bytes returns the raw byte count. It is the inverse of New and doubles as
// the integer interchange form of a Size.
func (s Size) Bytes() uint64 {
	return uint64(s)
}

// DecimalUnit returns the largest decimal unit that can represent s without
// all significant digits moving into the fraction: counts below 1000 stay B,
// counts below 1000^2 become KB, and so on. Counts of a petabyte and beyond
// stay PB; there is no larger unit.
func (s Size) DecimalUnit() Unit {
	return largestFit(uint64(s), DecimalUnits)
}

// BinaryUnit returns the largest binary unit that can represent s without
// all significant digits moving into the fraction, stepping at powers of
// 1024 and terminating at PiB.
func (s Size) BinaryUnit() Unit {
	return largestFit(uint64(s), BinaryUnits)
}

// largestFit picks the largest unit of the family whose factor does not
// exceed n. The family must be ordered from smallest to largest.
func largestFit(n uint64, family []Unit) Unit {
	unit := family[0]
	for _, u := range family[1:] {
		if n < u.Bytes() {
			break
		}
		unit = u
	}

	return unit
}

// Format renders s in the given unit with exactly one fractional digit,
// e.g. "21.4 KiB" or "22000.0 B". The byte count is divided by the unit's
// factor in floating point and the fraction is truncated, not rounded.
// The unit must be one of the catalog units.
func (s Size) Format(unit Unit) string {
	v := float64(s) / float64(unit.Bytes())
	return fmt.Sprintf("%.1f %s", math.Trunc(v*10)/10, unit)
}

// DecimalString renders s in its auto-selected decimal unit, e.g. "54.2 kB".
func (s Size) DecimalString() string {
	return s.Format(s.DecimalUnit())
}

// BinaryString renders s in its auto-selected binary unit, e.g. "2.2 KiB".
func (s Size) BinaryString() string {
	return s.Format(s.BinaryUnit())
}

// String renders s in its auto-selected decimal unit.
func (s Size) String() string {
	return s.DecimalString()
}
