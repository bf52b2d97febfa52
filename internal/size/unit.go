package size

import "strings"

// Scale factors per family. Every step is a true power of its base: 1000 for
// the decimal family, 1024 for the binary family.
const (
	kb uint64 = 1000
	mb        = 1000 * kb
	gb        = 1000 * mb
	tb        = 1000 * gb
	pb        = 1000 * tb

	kib uint64 = 1024
	mib        = 1024 * kib
	gib        = 1024 * mib
	tib        = 1024 * gib
	pib        = 1024 * tib
)

// Unit represents a byte measurement unit.
type Unit uint

const (
	// None is an undefined unit.
	None Unit = iota
	// B is the base unit, a single byte.
	B
	// KB is a kilobyte, 1000 bytes.
	KB
	// KiB is a kibibyte, 1024 bytes.
	KiB
	// MB is a megabyte, 1000^2 bytes.
	MB
	// MiB is a mebibyte, 1024^2 bytes.
	MiB
	// GB is a gigabyte, 1000^3 bytes.
	GB
	// GiB is a gibibyte, 1024^3 bytes.
	GiB
	// TB is a terabyte, 1000^4 bytes.
	TB
	// TiB is a tebibyte, 1024^4 bytes.
	TiB
	// PB is a petabyte, 1000^5 bytes.
	PB
	// PiB is a pebibyte, 1024^5 bytes.
	PiB
)

var meta = []struct {
	Name   string
	Symbol string
	Bytes  uint64
}{
	// None
	{
		"",
		"",
		0,
	},
	// B
	{
		"byte",
		"B",
		1,
	},
	// KB
	{
		"kilobyte",
		"kB",
		kb,
	},
	// KiB
	{
		"kibibyte",
		"KiB",
		kib,
	},
	// MB
	{
		"megabyte",
		"MB",
		mb,
	},
	// MiB
	{
		"mebibyte",
		"MiB",
		mib,
	},
	// GB
	{
		"gigabyte",
		"GB",
		gb,
	},
	// GiB
	{
		"gibibyte",
		"GiB",
		gib,
	},
	// TB
	{
		"terabyte",
		"TB",
		tb,
	},
	// TiB
	{
		"tebibyte",
		"TiB",
		tib,
	},
	// PB
	{
		"petabyte",
		"PB",
		pb,
	},
	// PiB
	{
		"pebibyte",
		"PiB",
		pib,
	},
}

// DecimalUnits and BinaryUnits list each unit family from smallest to
// largest. B opens both, as the shared tier zero.
var (
	DecimalUnits = []Unit{B, KB, MB, GB, TB, PB}
	BinaryUnits  = []Unit{B, KiB, MiB, GiB, TiB, PiB}
)

// AllUnits is the closed unit catalog, ordered by scale factor.
var AllUnits = []Unit{B, KB, KiB, MB, MiB, GB, GiB, TB, TiB, PB, PiB}

// String returns the canonical unit symbol, e.g. "kB" or "KiB".
func (u Unit) String() string {
	return meta[u].Symbol
}

// Name returns the lowercase unit name, e.g. "kilobyte".
func (u Unit) Name() string {
	return meta[u].Name
}

// Bytes returns the number of bytes one of this unit represents,
// e.g. KiB.Bytes() == 1024.
func (u Unit) Bytes() uint64 {
	return meta[u].Bytes
}

// UnitFromString converts the given string to the corresponding Unit.
// Symbols and names match case-insensitively, so "kb", "kB" and "kilobyte"
// all yield KB. Returns None if the string did not match any Unit.
func UnitFromString(s string) Unit {
	for i, m := range meta {
		if strings.EqualFold(m.Symbol, s) || strings.EqualFold(m.Name, s) {
			return Unit(i)
		}
	}

	return None
}
