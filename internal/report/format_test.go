package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"400", "R$ 400,00"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-99.9", "-R$ 99,90"},
		{"-1000", "-R$ 1.000,00"},
		{"0.05", "R$ 0,05"},
	}
	for _, tc := range cases {
		if got := FormatBRL(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Errorf("FormatBRL(%s): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
