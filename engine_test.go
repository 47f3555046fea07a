package cldr

import (
	"math"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := engine.DefaultCulture(); got != "en" {
		t.Fatalf("DefaultCulture = %q", got)
	}
	if locale := engine.locale(""); locale.Culture != "en" {
		t.Fatalf("default locale = %q", locale.Culture)
	}
}

func TestNewWithOptions(t *testing.T) {
	engine, err := New(
		WithDefaultCulture("de-AT"),
		WithLocaleData(map[string]*Locale{
			"de": {
				Culture: "de",
				Calendars: Calendars{Gregorian: &Calendar{
					DateFormats: FormatLengths{Short: "dd.MM.yy"},
				}},
			},
		}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := engine.DefaultCulture(); got != "de-AT" {
		t.Fatalf("DefaultCulture = %q", got)
	}
	// de-AT has no entry; the parent chain lands on de.
	if locale := engine.locale(""); locale.Culture != "de" {
		t.Fatalf("resolved locale = %q", locale.Culture)
	}

	format, err := engine.DateFormatter("", DateFormatOptions{})
	if err != nil {
		t.Fatalf("DateFormatter: %v", err)
	}
	when := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	if got := format(when); got != "11.03.24" {
		t.Fatalf("format = %q", got)
	}
}

func TestNewWithLoader(t *testing.T) {
	loader := LoaderFunc(func() (map[string]*Locale, error) {
		return map[string]*Locale{"fr": {Culture: "fr"}}, nil
	})

	engine, err := New(WithLoader(loader))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cultures := engine.Cultures()
	if len(cultures) != 1 || cultures[0] != "fr" {
		t.Fatalf("Cultures = %v", cultures)
	}
}

func TestNewLocaleDataOverridesLoader(t *testing.T) {
	loader := LoaderFunc(func() (map[string]*Locale, error) {
		return map[string]*Locale{
			"de": {
				Culture: "de",
				Calendars: Calendars{Gregorian: &Calendar{
					DateFormats: FormatLengths{Short: "dd.MM.yy", Medium: "dd.MM.y"},
				}},
			},
		}, nil
	})

	engine, err := New(
		WithLoader(loader),
		WithLocaleData(map[string]*Locale{
			"de": {Calendars: Calendars{Gregorian: &Calendar{
				DateFormats: FormatLengths{Short: "d.M.yy"},
			}}},
		}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cal := engine.locale("de").Calendars.Gregorian
	if cal.DateFormats.Short != "d.M.yy" {
		t.Fatalf("overlay short = %q", cal.DateFormats.Short)
	}
	if cal.DateFormats.Medium != "dd.MM.y" {
		t.Fatalf("loader medium lost: %q", cal.DateFormats.Medium)
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	when := time.Date(2024, 3, 11, 14, 5, 0, 0, time.UTC)

	if got := FormatDate("en", when, DateFormatOptions{Skeleton: "medium"}); got != "Mar 11, 2024" {
		t.Fatalf("FormatDate = %q", got)
	}

	parsed, ok := ParseDate("en", "3/11/24", DateFormatOptions{})
	if !ok || parsed.Month() != 3 || parsed.Day() != 11 {
		t.Fatalf("ParseDate = %v, %v", parsed, ok)
	}

	if got := FormatNumber("en", 1234.5, NumberFormatOptions{Skeleton: "N2"}); got != "1,234.50" {
		t.Fatalf("FormatNumber = %q", got)
	}

	if got := ParseNumber("en", "1,234.50", NumberFormatOptions{}); math.Abs(got-1234.5) > 1e-9 {
		t.Fatalf("ParseNumber = %v", got)
	}

	// Errors surface as the soft failure values.
	if got := FormatDate("en", when, DateFormatOptions{Skeleton: "nosuch"}); got != "" {
		t.Fatalf("FormatDate error case = %q", got)
	}
	if got := ParseNumber("en", "abc", NumberFormatOptions{}); !math.IsNaN(got) {
		t.Fatalf("ParseNumber error case = %v", got)
	}
}
