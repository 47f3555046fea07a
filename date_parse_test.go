package cldr

import (
	"testing"
	"time"
)

func TestDateParserShortDate(t *testing.T) {
	engine := newTestEngine(t)
	parse, err := engine.DateParser("en", DateFormatOptions{})
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}

	century := time.Now().Year() / 100 * 100

	tests := []struct {
		input string
		want  time.Time
		ok    bool
	}{
		{input: "3/11/24", want: time.Date(century+24, 3, 11, 0, 0, 0, 0, time.Local), ok: true},
		{input: "1/2/25", want: time.Date(century+25, 1, 2, 0, 0, 0, 0, time.Local), ok: true},
		{input: "12/31/99", want: time.Date(century+99, 12, 31, 0, 0, 0, 0, time.Local), ok: true},
		{input: "13/2/25", ok: false},
		{input: "0/2/25", ok: false},
		{input: "2/30/25", ok: false},
		{input: "2/0/25", ok: false},
		{input: "notadate", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range tests {
		got, ok := parse(tc.input)
		if ok != tc.ok {
			t.Fatalf("parse(%q) ok = %v, want %v", tc.input, ok, tc.ok)
		}
		if ok && !got.Equal(tc.want) {
			t.Fatalf("parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestDateParserMonthNames(t *testing.T) {
	engine := newTestEngine(t)
	parse, err := engine.DateParser("en", DateFormatOptions{Skeleton: "medium"})
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}

	want := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	for _, input := range []string{"Mar 11, 2024", "mar 11, 2024", "MAR 11, 2024"} {
		got, ok := parse(input)
		if !ok || !got.Equal(want) {
			t.Fatalf("parse(%q) = %v, %v", input, got, ok)
		}
	}

	if _, ok := parse("Xyz 11, 2024"); ok {
		t.Fatal("unknown month name parsed")
	}
}

func TestDateParserTime(t *testing.T) {
	engine := newTestEngine(t)
	parse, err := engine.DateParser("en", DateFormatOptions{Skeleton: "short", Type: TypeTime})
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}

	tests := []struct {
		input      string
		hour, min  int
		ok         bool
	}{
		{input: "2:05 PM", hour: 14, min: 5, ok: true},
		{input: "2:05 am", hour: 2, min: 5, ok: true},
		{input: "12:00 AM", hour: 0, min: 0, ok: true},
		{input: "12:30 PM", hour: 12, min: 30, ok: true},
		{input: "25:00 PM", ok: false},
	}

	for _, tc := range tests {
		got, ok := parse(tc.input)
		if ok != tc.ok {
			t.Fatalf("parse(%q) ok = %v, want %v", tc.input, ok, tc.ok)
		}
		if ok && (got.Hour() != tc.hour || got.Minute() != tc.min) {
			t.Fatalf("parse(%q) = %02d:%02d, want %02d:%02d", tc.input, got.Hour(), got.Minute(), tc.hour, tc.min)
		}
	}
}

func TestDateParserRoundTrip(t *testing.T) {
	engine := newTestEngine(t)
	when := time.Date(2024, 3, 11, 14, 5, 9, 0, time.Local)

	opts := []DateFormatOptions{
		{Skeleton: "short"},
		{Skeleton: "medium"},
		{Skeleton: "long"},
		{Skeleton: "full"},
		{Format: "yyyy-MM-dd HH:mm:ss"},
	}

	for _, opt := range opts {
		format, err := engine.DateFormatter("en", opt)
		if err != nil {
			t.Fatalf("DateFormatter(%+v): %v", opt, err)
		}
		parse, err := engine.DateParser("en", opt)
		if err != nil {
			t.Fatalf("DateParser(%+v): %v", opt, err)
		}

		rendered := format(when)
		got, ok := parse(rendered)
		if !ok {
			t.Fatalf("%+v: could not parse own output %q", opt, rendered)
		}
		if got.Year() != 2024 || got.Month() != 3 || got.Day() != 11 {
			t.Fatalf("%+v: %q parsed to %v", opt, rendered, got)
		}
	}
}

func TestDateParserZoneOffset(t *testing.T) {
	engine := newTestEngine(t)
	parse, err := engine.DateParser("en", DateFormatOptions{Format: "M/d/y z"})
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}

	got, ok := parse("3/11/2024 GMT+05:30")
	if !ok {
		t.Fatal("offset input did not parse")
	}
	if _, offset := got.Zone(); offset != 5*3600+30*60 {
		t.Fatalf("offset = %d", offset)
	}

	got, ok = parse("3/11/2024 GMT")
	if !ok {
		t.Fatal("bare GMT did not parse")
	}
	if _, offset := got.Zone(); offset != 0 {
		t.Fatalf("zero offset = %d", offset)
	}
}

func TestDateParserIslamic(t *testing.T) {
	engine := newTestEngine(t)
	opts := DateFormatOptions{Skeleton: "yMd", Calendar: CalendarIslamic}

	parse, err := engine.DateParser("en", opts)
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}

	got, ok := parse("9/1/1445 AH")
	if !ok {
		t.Fatal("hijri input did not parse")
	}
	if got.Year() != 2024 || got.Month() != 3 || got.Day() != 11 {
		t.Fatalf("hijri 1445-09-01 parsed to %v", got)
	}

	// Formatter output feeds straight back into the parser.
	format, err := engine.DateFormatter("en", opts)
	if err != nil {
		t.Fatalf("DateFormatter: %v", err)
	}
	when := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
	back, ok := parse(format(when))
	if !ok || back.Year() != 2024 || back.Month() != 3 || back.Day() != 11 {
		t.Fatalf("round trip gave %v, %v", back, ok)
	}
}

func TestDateParserLenient(t *testing.T) {
	engine := newTestEngine(t)

	strict, err := engine.DateParser("en", DateFormatOptions{})
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}
	if _, ok := strict("March 11, 2024"); ok {
		t.Fatal("strict parser accepted long-form input")
	}

	lenient, err := engine.DateParser("en", DateFormatOptions{Lenient: true})
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}
	got, ok := lenient("March 11, 2024")
	if !ok {
		t.Fatal("lenient parser rejected long-form input")
	}
	if got.Year() != 2024 || got.Month() != 3 || got.Day() != 11 {
		t.Fatalf("lenient parse = %v", got)
	}
}

func TestDateParserZeroMonthNumeral(t *testing.T) {
	engine := newTestEngine(t)
	parse, err := engine.DateParser("en", DateFormatOptions{Skeleton: "yMd"})
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}

	if got, ok := parse("0/15/2024"); ok {
		t.Fatalf("month zero parsed to %v", got)
	}
}

func TestDateParserLocalizedDayPeriods(t *testing.T) {
	engine := newTestEngine(t, WithLocaleData(map[string]*Locale{
		"de": {
			Culture: "de",
			Calendars: Calendars{Gregorian: &Calendar{
				DayPeriods:  FieldWidths{Abbreviated: []string{"vorm.", "nachm."}},
				TimeFormats: FormatLengths{Short: "h:mm a"},
			}},
		},
	}))

	opts := DateFormatOptions{Skeleton: "short", Type: TypeTime}
	format, err := engine.DateFormatter("de", opts)
	if err != nil {
		t.Fatalf("DateFormatter: %v", err)
	}
	parse, err := engine.DateParser("de", opts)
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}

	afternoon := time.Date(2024, 3, 11, 14, 5, 0, 0, time.Local)
	rendered := format(afternoon)
	if rendered != "2:05 nachm." {
		t.Fatalf("format = %q", rendered)
	}
	got, ok := parse(rendered)
	if !ok || got.Hour() != 14 || got.Minute() != 5 {
		t.Fatalf("parse(%q) = %v, %v, want hour 14", rendered, got, ok)
	}

	morning := time.Date(2024, 3, 11, 9, 30, 0, 0, time.Local)
	got, ok = parse(format(morning))
	if !ok || got.Hour() != 9 || got.Minute() != 30 {
		t.Fatalf("parse(%q) = %v, %v, want hour 9", format(morning), got, ok)
	}
}

func TestDateParserNameCaseFolding(t *testing.T) {
	engine := newTestEngine(t, WithLocaleData(map[string]*Locale{
		"de": {
			Culture: "de",
			Calendars: Calendars{Gregorian: &Calendar{
				Months: FieldContexts{Format: FieldWidths{
					Wide: []string{"Januar", "Februar", "März", "April", "Mai", "Juni",
						"Juli", "August", "September", "Oktober", "November", "Dezember"},
				}},
				DateFormats: FormatLengths{Medium: "d. MMMM y"},
			}},
		},
	}))

	parse, err := engine.DateParser("de", DateFormatOptions{Skeleton: "medium"})
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}

	for _, input := range []string{"11. März 2024", "11. märz 2024"} {
		got, ok := parse(input)
		if !ok || got.Month() != 3 || got.Day() != 11 {
			t.Fatalf("parse(%q) = %v, %v", input, got, ok)
		}
	}
}

func TestDateParserLocalizedDigits(t *testing.T) {
	engine := newTestEngine(t, WithLocaleData(map[string]*Locale{"ar": arabicLocale()}))
	parse, err := engine.DateParser("ar", DateFormatOptions{Format: "M/d/y"})
	if err != nil {
		t.Fatalf("DateParser: %v", err)
	}

	got, ok := parse("٣/١١/٢٠٢٤")
	if !ok {
		t.Fatal("localized digits did not parse")
	}
	if got.Year() != 2024 || got.Month() != 3 || got.Day() != 11 {
		t.Fatalf("parse = %v", got)
	}
}
