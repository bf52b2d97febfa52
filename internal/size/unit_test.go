package size

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestUnitFromString(t *testing.T) {
	type args struct {
		s string
	}
	tests := []struct {
		name string
		args args
		want Unit
	}{
		{
			name: "symbol",
			args: args{"KiB"},
			want: KiB,
		},
		{
			name: "symbol ignores case",
			args: args{"kb"},
			want: KB,
		},
		{
			name: "name",
			args: args{"mebibyte"},
			want: MiB,
		},
		{
			name: "name ignores case",
			args: args{"Petabyte"},
			want: PB,
		},
		{
			name: "base unit",
			args: args{"B"},
			want: B,
		},
		{
			name: "wonderland",
			args: args{"wonderland"},
			want: None,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitFromString(tt.args.s); got != tt.want {
				t.Errorf("UnitFromString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnitString(t *testing.T) {
	u := UnitFromString("kibibyte")
	assert.Equal(t, "KiB", u.String())
}

func TestUnitBytes(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want uint64
	}{
		{
			name: "byte",
			unit: B,
			want: 1,
		},
		{
			name: "kilobyte",
			unit: KB,
			want: 1000,
		},
		{
			name: "megabyte",
			unit: MB,
			want: 1000000,
		},
		{
			name: "gigabyte",
			unit: GB,
			want: 1000000000,
		},
		{
			name: "terabyte",
			unit: TB,
			want: 1000000000000,
		},
		{
			name: "petabyte",
			unit: PB,
			want: 1000000000000000,
		},
		{
			name: "kibibyte",
			unit: KiB,
			want: 1024,
		},
		{
			name: "mebibyte",
			unit: MiB,
			want: 1048576,
		},
		{
			name: "gibibyte",
			unit: GiB,
			want: 1073741824,
		},
		{
			name: "tebibyte",
			unit: TiB,
			want: 1099511627776,
		},
		{
			name: "pebibyte",
			unit: PiB,
			want: 1125899906842624,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.unit.Bytes(); got != tt.want {
				t.Errorf("Bytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestUnitBytesIncrease guards the scale factors against a careless
// exponentiation: every tier must be strictly larger than the one below it.
func TestUnitBytesIncrease(t *testing.T) {
	families := map[string][]Unit{
		"decimal": DecimalUnits,
		"binary":  BinaryUnits,
		"catalog": AllUnits,
	}
	for name, family := range families {
		t.Run(name, func(t *testing.T) {
			for i := 1; i < len(family); i++ {
				prev, cur := family[i-1], family[i]
				if cur.Bytes() <= prev.Bytes() {
					t.Errorf("%s.Bytes() = %d, want greater than %s.Bytes() = %d",
						cur, cur.Bytes(), prev, prev.Bytes())
				}
			}
		})
	}
}
