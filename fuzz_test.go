package fixed

import (
	"testing"

	"github.com/shopspring/decimal"
)

// corpus is shared by fuzz targets and property tests.
var corpus = []string{
	"0",
	"1",
	"-1",
	"0.1",
	"-0.1",
	"0.5",
	"3",
	"1.005",
	"-1.005",
	"12.12",
	"123.123",
	"999",
	"1000",
	"-999999.999999",
	"0.000000000000000001",
	"-0.000000000000000001",
	"0.999999999999999999",
	"9999999999999999999",
	"123456789012345678901234567890.123456789012345678",
	"-98765432109876543210.987654321098765432",
}

// oracle parses s with the reference implementation.
func oracle(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Skip()
	}
	return d
}

func FuzzParse(f *testing.F) {
	for _, s := range corpus {
		f.Add(s)
	}
	f.Add("00012.3400")
	f.Add(".5")
	f.Add("5.")
	f.Add("1e8")
	f.Add("+1")

	f.Fuzz(
		func(t *testing.T, s string) {
			d, err := Parse(s)
			if err != nil {
				t.Skip()
				return
			}
			e, err := Parse(d.String())
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", d.String(), err)
				return
			}
			if !e.Equal(d) {
				t.Errorf("Parse(%q.String()) = %q, want %q", d, e, d)
			}
			want := oracle(t, s).String()
			if got := d.String(); got != want {
				t.Errorf("Parse(%q).String() = %q, want %q", s, got, want)
			}
		},
	)
}

func FuzzDecimal_Add(f *testing.F) {
	for _, d := range corpus {
		for _, e := range corpus {
			f.Add(d, e)
		}
	}

	f.Fuzz(
		func(t *testing.T, s, r string) {
			d, err := Parse(s)
			if err != nil {
				t.Skip()
				return
			}
			e, err := Parse(r)
			if err != nil {
				t.Skip()
				return
			}
			got := d.Add(e).String()
			want := oracle(t, s).Add(oracle(t, r)).String()
			if got != want {
				t.Errorf("%q.Add(%q) = %q, want %q", d, e, got, want)
			}
			got = d.Sub(e).String()
			want = oracle(t, s).Sub(oracle(t, r)).String()
			if got != want {
				t.Errorf("%q.Sub(%q) = %q, want %q", d, e, got, want)
			}
		},
	)
}

func FuzzDecimal_Mul(f *testing.F) {
	for _, d := range corpus {
		for _, e := range corpus {
			f.Add(d, e)
		}
	}

	f.Fuzz(
		func(t *testing.T, s, r string) {
			d, err := Parse(s)
			if err != nil {
				t.Skip()
				return
			}
			e, err := Parse(r)
			if err != nil {
				t.Skip()
				return
			}
			got := d.Mul(e).String()
			want := oracle(t, s).Mul(oracle(t, r)).Truncate(Precision).String()
			if got != want {
				t.Errorf("%q.Mul(%q) = %q, want %q", d, e, got, want)
			}
		},
	)
}

func FuzzDecimal_Quo(f *testing.F) {
	for _, d := range corpus {
		for _, e := range corpus {
			f.Add(d, e)
		}
	}

	f.Fuzz(
		func(t *testing.T, s, r string) {
			d, err := Parse(s)
			if err != nil {
				t.Skip()
				return
			}
			e, err := Parse(r)
			if err != nil || e.IsZero() {
				t.Skip()
				return
			}
			q, err := d.Quo(e)
			if err != nil {
				t.Errorf("%q.Quo(%q) failed: %v", d, e, err)
				return
			}
			wantq, _ := oracle(t, s).QuoRem(oracle(t, r), Precision)
			if got, want := q.String(), wantq.String(); got != want {
				t.Errorf("%q.Quo(%q) = %q, want %q", d, e, got, want)
			}
		},
	)
}

func FuzzDecimal_Cmp(f *testing.F) {
	for _, d := range corpus {
		for _, e := range corpus {
			f.Add(d, e)
		}
	}

	f.Fuzz(
		func(t *testing.T, s, r string) {
			d, err := Parse(s)
			if err != nil {
				t.Skip()
				return
			}
			e, err := Parse(r)
			if err != nil {
				t.Skip()
				return
			}
			got := d.Cmp(e)
			want := oracle(t, s).Cmp(oracle(t, r))
			if got != want {
				t.Errorf("%q.Cmp(%q) = %v, want %v", d, e, got, want)
			}
		},
	)
}

func FuzzDecimal_TruncString(f *testing.F) {
	for _, d := range corpus {
		for s := 0; s <= Precision+2; s++ {
			f.Add(d, s)
		}
	}

	f.Fuzz(
		func(t *testing.T, s string, scale int) {
			if scale < 0 || scale > 2*Precision {
				t.Skip()
				return
			}
			d, err := Parse(s)
			if err != nil {
				t.Skip()
				return
			}
			got := d.TruncString(scale)
			want := oracle(t, s).Truncate(int32(scale)).StringFixed(int32(scale))
			if got != want {
				t.Errorf("%q.TruncString(%v) = %q, want %q", d, scale, got, want)
			}
		},
	)
}

func FuzzDecimal_BigInt(f *testing.F) {
	for _, d := range corpus {
		for p := 0; p <= Precision+2; p++ {
			f.Add(d, p)
		}
	}

	f.Fuzz(
		func(t *testing.T, s string, prec int) {
			if prec < 0 || prec > 4*Precision {
				t.Skip()
				return
			}
			d, err := Parse(s)
			if err != nil {
				t.Skip()
				return
			}
			got := NewFromBigInt(d.BigInt(prec), prec)
			want := d.Trunc(prec)
			if !got.Equal(want) {
				t.Errorf("NewFromBigInt(%q.BigInt(%v), %v) = %q, want %q", d, prec, prec, got, want)
			}
		},
	)
}
