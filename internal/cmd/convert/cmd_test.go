package convert

import (
	"errors"
	"testing"

	"github.com/bytesize/sizectl/internal/flags"
	"github.com/bytesize/sizectl/internal/prefs"
	"github.com/bytesize/sizectl/internal/size"
)

func Test_parseCount(t *testing.T) {
	type args struct {
		arg  string
		from flags.Unit
	}
	tests := []struct {
		name    string
		args    args
		want    size.Size
		wantErr bool
	}{
		{
			name: "plain bytes",
			args: args{arg: "54222"},
			want: size.New(54222),
		},
		{
			name: "zero",
			args: args{arg: "0"},
			want: size.New(0),
		},
		{
			name: "amount of a unit",
			args: args{arg: "3", from: flags.Unit{Unit: size.GB, Changed: true}},
			want: size.FromUnit(3, size.GB),
		},
		{
			name:    "negative",
			args:    args{arg: "-1"},
			wantErr: true,
		},
		{
			name:    "gibberish",
			args:    args{arg: "many"},
			wantErr: true,
		},
		{
			name:    "empty",
			args:    args{arg: ""},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCount(tt.args.arg, tt.args.from)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseCount() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseCount() = %d, want %d", got.Bytes(), tt.want.Bytes())
			}
		})
	}
}

func Test_parseCount_negativeSentinel(t *testing.T) {
	_, err := parseCount("-1", flags.Unit{})
	if !errors.Is(err, size.ErrNegativeValue) {
		t.Errorf("parseCount() error = %v, want %v", err, size.ErrNegativeValue)
	}
}

func Test_unitPicker(t *testing.T) {
	type args struct {
		explicit flags.Unit
		binary   bool
		p        prefs.Prefs
	}
	tests := []struct {
		name    string
		args    args
		count   uint64
		want    size.Unit
		wantErr bool
	}{
		{
			name: "explicit unit wins",
			args: args{
				explicit: flags.Unit{Unit: size.KiB, Changed: true},
				p:        prefs.Prefs{Family: prefs.FamilyDecimal},
			},
			count: 22000,
			want:  size.KiB,
		},
		{
			name:  "binary flag",
			args:  args{binary: true},
			count: 2300,
			want:  size.KiB,
		},
		{
			name:  "preferred unit",
			args:  args{p: prefs.Prefs{Unit: "MiB"}},
			count: 10,
			want:  size.MiB,
		},
		{
			name:  "preferred family",
			args:  args{p: prefs.Prefs{Family: prefs.FamilyBinary}},
			count: 2300,
			want:  size.KiB,
		},
		{
			name:  "default is decimal",
			args:  args{},
			count: 2300,
			want:  size.KB,
		},
		{
			name:    "bogus preferred family",
			args:    args{p: prefs.Prefs{Family: "hexadecimal"}},
			wantErr: true,
		},
		{
			name:    "bogus preferred unit",
			args:    args{p: prefs.Prefs{Unit: "XiB"}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pick, err := unitPicker(tt.args.explicit, tt.args.binary, tt.args.p)
			if (err != nil) != tt.wantErr {
				t.Errorf("unitPicker() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got := pick(size.New(tt.count)); got != tt.want {
				t.Errorf("unitPicker() picked %v, want %v", got, tt.want)
			}
		})
	}
}
