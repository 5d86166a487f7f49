package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		symbol string
		v      float64
		want   string
	}{
		{"RM", 0, "RM 0.00"},
		{"RM", 45, "RM 45.00"},
		{"RM", 30000, "RM 30,000.00"},
		{"RM", 1234567.891, "RM 1,234,567.89"},
		{"RM", -10, "-RM 10.00"},
		{"USD", 2039.995, "USD 2,040.00"},
	}

	for _, c := range cases {
		if got := FormatMoney(c.symbol, c.v); got != c.want {
			t.Errorf("FormatMoney(%q, %v) = %q, want %q", c.symbol, c.v, got, c.want)
		}
	}
}

func TestFormatMoneyCompact(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{950, "RM 950"},
		{2040, "RM 2.0k"},
		{30000, "RM 30k"},
		{2_500_000, "RM 2.5M"},
		{-2040, "-RM 2.0k"},
	}

	for _, c := range cases {
		if got := FormatMoneyCompact("RM", c.v); got != c.want {
			t.Errorf("FormatMoneyCompact(RM, %v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{780, "780"},
		{7800, "7,800"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, c := range cases {
		if got := FormatNumber(c.n); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.45); got != "45.0%" {
		t.Errorf("FormatPercent(0.45) = %q", got)
	}
	if got := FormatPercent(1); got != "100.0%" {
		t.Errorf("FormatPercent(1) = %q", got)
	}
}
