package cldr

import (
	"errors"
	"math"
	"testing"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestNumberFormatterSkeletons(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name  string
		opts  NumberFormatOptions
		value float64
		want  string
	}{
		{name: "default decimal", opts: NumberFormatOptions{}, value: 1234567.891, want: "1,234,567.891"},
		{name: "decimal trims zeros", opts: NumberFormatOptions{Skeleton: "N"}, value: 1.5, want: "1.5"},
		{name: "decimal integer", opts: NumberFormatOptions{Skeleton: "N"}, value: 1500, want: "1,500"},
		{name: "N2 pads", opts: NumberFormatOptions{Skeleton: "N2"}, value: 1234567.5, want: "1,234,567.50"},
		{name: "N0 rounds", opts: NumberFormatOptions{Skeleton: "N0"}, value: 1234.56, want: "1,235"},
		{name: "currency default", opts: NumberFormatOptions{Skeleton: "C"}, value: 1234.5, want: "$1,234.50"},
		{name: "currency euro", opts: NumberFormatOptions{Skeleton: "C", Currency: "EUR"}, value: 1234.5, want: "€1,234.50"},
		{name: "currency alt symbol", opts: NumberFormatOptions{Skeleton: "C", AltSymbol: "US$"}, value: 1, want: "US$1.00"},
		{name: "currency suppressed", opts: NumberFormatOptions{Skeleton: "C", IgnoreCurrency: true}, value: 1234.5, want: "1,234.50"},
		{name: "currency negative", opts: NumberFormatOptions{Skeleton: "C"}, value: -1234.5, want: "-$1,234.50"},
		{name: "accounting negative", opts: NumberFormatOptions{Skeleton: "A"}, value: -1234.5, want: "($1,234.50)"},
		{name: "accounting positive", opts: NumberFormatOptions{Skeleton: "A"}, value: 1234.5, want: "$1,234.50"},
		{name: "percent", opts: NumberFormatOptions{Skeleton: "P0"}, value: 0.42, want: "42%"},
		{name: "percent fraction", opts: NumberFormatOptions{Skeleton: "P1"}, value: 0.4256, want: "42.6%"},
		{name: "scientific", opts: NumberFormatOptions{Skeleton: "E"}, value: 150000, want: "1.5E5"},
		{name: "scientific negative exponent", opts: NumberFormatOptions{Skeleton: "E"}, value: 0.0015, want: "1.5E-3"},
		{name: "negative decimal", opts: NumberFormatOptions{Skeleton: "N"}, value: -1234.5, want: "-1,234.5"},
	}

	for _, tc := range tests {
		format, err := engine.NumberFormatter("en", tc.opts)
		if err != nil {
			t.Fatalf("%s: NumberFormatter: %v", tc.name, err)
		}
		if got := format(tc.value); got != tc.want {
			t.Fatalf("%s: format(%v) = %q, want %q", tc.name, tc.value, got, tc.want)
		}
	}
}

func TestNumberFormatterCustomPatterns(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name    string
		pattern string
		value   float64
		want    string
	}{
		{name: "grouped two places", pattern: "#,##0.00", value: 1234.5, want: "1,234.50"},
		{name: "ungrouped", pattern: "0.###", value: 1234.5, want: "1234.5"},
		{name: "indian grouping", pattern: "#,##,##0", value: 12345678, want: "1,23,45,678"},
		{name: "explicit negative branch", pattern: "0.0;(0.0)", value: -2.5, want: "(2.5)"},
		{name: "zero branch", pattern: "0.0;-0.0;'zero '0.0", value: 0, want: "zero 0.0"},
		{name: "percent pattern", pattern: "0'%'", value: 42, want: "42%"},
		{name: "currency pattern", pattern: "¤0.00", value: 3, want: "$3.00"},
	}

	for _, tc := range tests {
		format, err := engine.NumberFormatter("en", NumberFormatOptions{Format: tc.pattern})
		if err != nil {
			t.Fatalf("%s: NumberFormatter: %v", tc.name, err)
		}
		if got := format(tc.value); got != tc.want {
			t.Fatalf("%s: format(%v) = %q, want %q", tc.name, tc.value, got, tc.want)
		}
	}
}

func TestNumberFormatterPivotPattern(t *testing.T) {
	engine := newTestEngine(t)
	format, err := engine.NumberFormatter("en", NumberFormatOptions{Format: "#,###,,;(#,###,,)"})
	if err != nil {
		t.Fatalf("NumberFormatter: %v", err)
	}

	tests := []struct {
		value float64
		want  string
	}{
		{value: 1_600_000, want: "2"},
		{value: 2_400_000, want: "2"},
		{value: 500_000, want: "1"},
		{value: 499_999, want: ""},
		{value: 0, want: ""},
		{value: -1_600_000, want: "(2)"},
	}

	for _, tc := range tests {
		if got := format(tc.value); got != tc.want {
			t.Fatalf("pivot format(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestNumberFormatterDigitOptions(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name  string
		opts  NumberFormatOptions
		value float64
		want  string
	}{
		{name: "min fraction pads", opts: NumberFormatOptions{Skeleton: "N", MinimumFractionDigits: intPtr(2)}, value: 1.5, want: "1.50"},
		{name: "max fraction rounds", opts: NumberFormatOptions{Skeleton: "N", MaximumFractionDigits: intPtr(1)}, value: 1.26, want: "1.3"},
		{name: "min integer pads", opts: NumberFormatOptions{Skeleton: "N", MinimumIntegerDigits: intPtr(5)}, value: 42, want: "00,042"},
		{name: "grouping off", opts: NumberFormatOptions{Skeleton: "N", UseGrouping: boolPtr(false)}, value: 1234567, want: "1234567"},
		{name: "significant rounds", opts: NumberFormatOptions{Skeleton: "N", MinimumSignificantDigits: intPtr(1), MaximumSignificantDigits: intPtr(3)}, value: 1234.5, want: "1,230"},
		{name: "significant pads", opts: NumberFormatOptions{Skeleton: "N", MinimumSignificantDigits: intPtr(4), MaximumSignificantDigits: intPtr(4)}, value: 2.5, want: "2.500"},
	}

	for _, tc := range tests {
		format, err := engine.NumberFormatter("en", tc.opts)
		if err != nil {
			t.Fatalf("%s: NumberFormatter: %v", tc.name, err)
		}
		if got := format(tc.value); got != tc.want {
			t.Fatalf("%s: format(%v) = %q, want %q", tc.name, tc.value, got, tc.want)
		}
	}
}

func TestNumberFormatterValidation(t *testing.T) {
	engine := newTestEngine(t)

	bad := []NumberFormatOptions{
		{MinimumFractionDigits: intPtr(-1)},
		{MaximumFractionDigits: intPtr(21)},
		{MinimumFractionDigits: intPtr(3), MaximumFractionDigits: intPtr(1)},
		{MinimumSignificantDigits: intPtr(5), MaximumSignificantDigits: intPtr(3)},
		{MinimumSignificantDigits: intPtr(2)},
		{MaximumSignificantDigits: intPtr(2)},
		{MinimumSignificantDigits: intPtr(0), MaximumSignificantDigits: intPtr(3)},
		{MinimumIntegerDigits: intPtr(0)},
	}

	for _, opts := range bad {
		if _, err := engine.NumberFormatter("en", opts); !errors.Is(err, ErrValidation) {
			t.Fatalf("options %+v: expected ErrValidation, got %v", opts, err)
		}
	}
}

func TestNumberFormatterUnknownSkeleton(t *testing.T) {
	engine := newTestEngine(t)
	if _, err := engine.NumberFormatter("en", NumberFormatOptions{Skeleton: "X"}); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestNumberFormatterSpecialValues(t *testing.T) {
	engine := newTestEngine(t)
	format, err := engine.NumberFormatter("en", NumberFormatOptions{})
	if err != nil {
		t.Fatalf("NumberFormatter: %v", err)
	}

	if got := format(math.NaN()); got != "NaN" {
		t.Fatalf("NaN = %q", got)
	}
	if got := format(math.Inf(1)); got != "∞" {
		t.Fatalf("+Inf = %q", got)
	}
	if got := format(math.Inf(-1)); got != "-∞" {
		t.Fatalf("-Inf = %q", got)
	}
	if got := format(0); got != "0" {
		t.Fatalf("zero = %q", got)
	}
}

func TestNumberFormatterLocalized(t *testing.T) {
	engine := newTestEngine(t, WithLocaleData(map[string]*Locale{
		"ar": arabicLocale(),
		"de": germanLocale(),
	}))

	arabic, err := engine.NumberFormatter("ar", NumberFormatOptions{})
	if err != nil {
		t.Fatalf("NumberFormatter(ar): %v", err)
	}
	if got := arabic(1234.5); got != "١٬٢٣٤٫٥" {
		t.Fatalf("ar format = %q", got)
	}

	german, err := engine.NumberFormatter("de", NumberFormatOptions{Skeleton: "N2"})
	if err != nil {
		t.Fatalf("NumberFormatter(de): %v", err)
	}
	if got := german(1234.5); got != "1.234,50" {
		t.Fatalf("de format = %q", got)
	}
}
