package cldr

import "time"

// FieldWidths holds the localized names of one calendar field at each CLDR
// width. Months are indexed 0-11, weekdays 0-6 starting at Sunday.
type FieldWidths struct {
	Abbreviated []string `json:"abbreviated,omitempty" yaml:"abbreviated,omitempty"`
	Narrow      []string `json:"narrow,omitempty" yaml:"narrow,omitempty"`
	Wide        []string `json:"wide,omitempty" yaml:"wide,omitempty"`
	Short       []string `json:"short,omitempty" yaml:"short,omitempty"`
}

// Names returns the name table for a width, falling back across widths so a
// sparsely populated locale still renders.
func (w FieldWidths) Names(width string) []string {
	switch width {
	case "narrow":
		if len(w.Narrow) > 0 {
			return w.Narrow
		}
	case "wide":
		if len(w.Wide) > 0 {
			return w.Wide
		}
	case "short":
		if len(w.Short) > 0 {
			return w.Short
		}
	}
	if len(w.Abbreviated) > 0 {
		return w.Abbreviated
	}
	if len(w.Wide) > 0 {
		return w.Wide
	}
	return w.Narrow
}

// FieldContexts separates format (in-sentence) and stand-alone name tables.
type FieldContexts struct {
	Format     FieldWidths `json:"format,omitempty" yaml:"format,omitempty"`
	StandAlone FieldWidths `json:"stand-alone,omitempty" yaml:"stand-alone,omitempty"`
}

// Context returns the format or stand-alone table, falling back to the other
// when the requested one is empty.
func (c FieldContexts) Context(standAlone bool) FieldWidths {
	primary, other := c.Format, c.StandAlone
	if standAlone {
		primary, other = c.StandAlone, c.Format
	}
	if len(primary.Abbreviated) == 0 && len(primary.Wide) == 0 && len(primary.Narrow) == 0 {
		return other
	}
	return primary
}

// FormatLengths holds the four standard CLDR pattern lengths.
type FormatLengths struct {
	Short  string `json:"short,omitempty" yaml:"short,omitempty"`
	Medium string `json:"medium,omitempty" yaml:"medium,omitempty"`
	Long   string `json:"long,omitempty" yaml:"long,omitempty"`
	Full   string `json:"full,omitempty" yaml:"full,omitempty"`
}

// Length returns the pattern for a named length, or "" if unknown.
func (f FormatLengths) Length(name string) string {
	switch name {
	case "short":
		return f.Short
	case "medium":
		return f.Medium
	case "long":
		return f.Long
	case "full":
		return f.Full
	}
	return ""
}

// TimeZoneNames carries the offset rendering templates for a calendar.
type TimeZoneNames struct {
	// HourFormat is the "+HH:mm;-HH:mm" positive/negative template pair.
	HourFormat string `json:"hourFormat,omitempty" yaml:"hourFormat,omitempty"`
	// GMTFormat wraps a rendered offset, e.g. "GMT{0}".
	GMTFormat string `json:"gmtFormat,omitempty" yaml:"gmtFormat,omitempty"`
	// GMTZeroFormat is emitted verbatim for a zero offset.
	GMTZeroFormat string `json:"gmtZeroFormat,omitempty" yaml:"gmtZeroFormat,omitempty"`
}

// Calendar is the per-calendar slice of a locale's date data.
type Calendar struct {
	Months           FieldContexts     `json:"months,omitempty" yaml:"months,omitempty"`
	Days             FieldContexts     `json:"days,omitempty" yaml:"days,omitempty"`
	Eras             FieldWidths       `json:"eras,omitempty" yaml:"eras,omitempty"`
	DayPeriods       FieldWidths       `json:"dayPeriods,omitempty" yaml:"dayPeriods,omitempty"`
	DateFormats      FormatLengths     `json:"dateFormats,omitempty" yaml:"dateFormats,omitempty"`
	TimeFormats      FormatLengths     `json:"timeFormats,omitempty" yaml:"timeFormats,omitempty"`
	DateTimeFormats  FormatLengths     `json:"dateTimeFormats,omitempty" yaml:"dateTimeFormats,omitempty"`
	AvailableFormats map[string]string `json:"availableFormats,omitempty" yaml:"availableFormats,omitempty"`
	TimeZoneNames    TimeZoneNames     `json:"timeZoneNames,omitempty" yaml:"timeZoneNames,omitempty"`
}

// Calendars groups the calendars this engine understands.
type Calendars struct {
	Gregorian *Calendar `json:"gregorian,omitempty" yaml:"gregorian,omitempty"`
	Islamic   *Calendar `json:"islamic,omitempty" yaml:"islamic,omitempty"`
}

// Symbols is the per-numbering-system symbol table.
type Symbols struct {
	Decimal       string `json:"decimal,omitempty" yaml:"decimal,omitempty"`
	Group         string `json:"group,omitempty" yaml:"group,omitempty"`
	Percent       string `json:"percentSign,omitempty" yaml:"percentSign,omitempty"`
	PlusSign      string `json:"plusSign,omitempty" yaml:"plusSign,omitempty"`
	MinusSign     string `json:"minusSign,omitempty" yaml:"minusSign,omitempty"`
	Exponential   string `json:"exponential,omitempty" yaml:"exponential,omitempty"`
	Infinity      string `json:"infinity,omitempty" yaml:"infinity,omitempty"`
	NaN           string `json:"nan,omitempty" yaml:"nan,omitempty"`
	TimeSeparator string `json:"timeSeparator,omitempty" yaml:"timeSeparator,omitempty"`
}

// PatternSet pairs the standard and accounting variants of a numeric format.
type PatternSet struct {
	Standard   string `json:"standard,omitempty" yaml:"standard,omitempty"`
	Accounting string `json:"accounting,omitempty" yaml:"accounting,omitempty"`
}

// CurrencyDisplay is the display data for one ISO-4217 code.
type CurrencyDisplay struct {
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Symbol      string `json:"symbol,omitempty" yaml:"symbol,omitempty"`
}

// Numbers is the numeric slice of a locale.
type Numbers struct {
	DefaultSystem     string                     `json:"defaultNumberingSystem,omitempty" yaml:"defaultNumberingSystem,omitempty"`
	Symbols           map[string]Symbols         `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	DecimalFormats    PatternSet                 `json:"decimalFormats,omitempty" yaml:"decimalFormats,omitempty"`
	PercentFormats    PatternSet                 `json:"percentFormats,omitempty" yaml:"percentFormats,omitempty"`
	CurrencyFormats   PatternSet                 `json:"currencyFormats,omitempty" yaml:"currencyFormats,omitempty"`
	ScientificFormats PatternSet                 `json:"scientificFormats,omitempty" yaml:"scientificFormats,omitempty"`
	Currencies        map[string]CurrencyDisplay `json:"currencies,omitempty" yaml:"currencies,omitempty"`
}

// Locale is one culture's data tree.
type Locale struct {
	Culture   string    `json:"culture,omitempty" yaml:"culture,omitempty"`
	Calendars Calendars `json:"calendars,omitempty" yaml:"calendars,omitempty"`
	Numbers   Numbers   `json:"numbers,omitempty" yaml:"numbers,omitempty"`
}

// Calendar returns the named calendar, defaulting to Gregorian. A nil result
// is possible only for a locale with no calendar data at all.
func (l *Locale) Calendar(name string) *Calendar {
	if l == nil {
		return nil
	}
	if name == CalendarIslamic && l.Calendars.Islamic != nil {
		return l.Calendars.Islamic
	}
	return l.Calendars.Gregorian
}

// Clone deep-copies the locale so store snapshots cannot alias caller data.
func (l *Locale) Clone() *Locale {
	if l == nil {
		return nil
	}
	out := &Locale{Culture: l.Culture}
	out.Calendars.Gregorian = l.Calendars.Gregorian.clone()
	out.Calendars.Islamic = l.Calendars.Islamic.clone()
	out.Numbers = l.Numbers.clone()
	return out
}

func (c *Calendar) clone() *Calendar {
	if c == nil {
		return nil
	}
	out := *c
	out.Months.Format = out.Months.Format.clone()
	out.Months.StandAlone = out.Months.StandAlone.clone()
	out.Days.Format = out.Days.Format.clone()
	out.Days.StandAlone = out.Days.StandAlone.clone()
	out.Eras = out.Eras.clone()
	out.DayPeriods = out.DayPeriods.clone()
	if len(c.AvailableFormats) > 0 {
		out.AvailableFormats = make(map[string]string, len(c.AvailableFormats))
		for k, v := range c.AvailableFormats {
			out.AvailableFormats[k] = v
		}
	}
	return &out
}

func (w FieldWidths) clone() FieldWidths {
	return FieldWidths{
		Abbreviated: append([]string(nil), w.Abbreviated...),
		Narrow:      append([]string(nil), w.Narrow...),
		Wide:        append([]string(nil), w.Wide...),
		Short:       append([]string(nil), w.Short...),
	}
}

func (n Numbers) clone() Numbers {
	out := n
	if len(n.Symbols) > 0 {
		out.Symbols = make(map[string]Symbols, len(n.Symbols))
		for k, v := range n.Symbols {
			out.Symbols[k] = v
		}
	}
	if len(n.Currencies) > 0 {
		out.Currencies = make(map[string]CurrencyDisplay, len(n.Currencies))
		for k, v := range n.Currencies {
			out.Currencies[k] = v
		}
	}
	return out
}

// Calendar identifiers accepted by DateFormatOptions.Calendar.
const (
	CalendarGregorian = "gregorian"
	CalendarIslamic   = "islamic"
)

// Format types accepted by DateFormatOptions.Type.
const (
	TypeDate     = "date"
	TypeTime     = "time"
	TypeDateTime = "dateTime"
)

// DateFormatOptions selects a date pattern and calendar.
type DateFormatOptions struct {
	// Skeleton is a symbolic request: a built-in length (short, medium,
	// long, full) or an availableFormats key such as "yMd". Defaults to
	// "short".
	Skeleton string
	// Type selects date, time or dateTime resolution. Defaults to "date".
	Type string
	// Format, when set, is used verbatim and skips skeleton resolution.
	Format string
	// Calendar picks the calendar system; "islamic" enables Hijri
	// conversion, anything else means Gregorian.
	Calendar string
	// Lenient lets the parser fall back to free-form parsing when the
	// compiled pattern rejects the input. Formatting ignores it.
	Lenient bool
	// IsServerRendered is a caller hint carried through for parity with the
	// options surface; the engine does not act on it.
	IsServerRendered bool
}

// NumberFormatOptions selects a numeric pattern and digit behavior. Digit
// counts are pointers so an unset option is distinguishable from zero.
type NumberFormatOptions struct {
	// Skeleton is a numeric skeleton such as "N2", "C", "P0", "A", "E".
	Skeleton string
	// Format is either a skeleton or a custom pattern like "#,##0.00" or
	// "¤#,##0.00;(¤#,##0.00)". It takes precedence over Skeleton.
	Format string
	// Currency is the ISO-4217 code used by currency formats.
	Currency string
	// AltSymbol overrides the locale's currency symbol.
	AltSymbol string
	// IgnoreCurrency suppresses the currency symbol entirely.
	IgnoreCurrency bool
	// UseGrouping toggles digit grouping; nil means pattern-defined.
	UseGrouping *bool

	MinimumFractionDigits    *int
	MaximumFractionDigits    *int
	MinimumSignificantDigits *int
	MaximumSignificantDigits *int
	MinimumIntegerDigits     *int
}

// DateFormatFunc renders a time to a localized string. The zero time yields "".
type DateFormatFunc func(time.Time) string

// DateParseFunc parses a localized string; ok is false when the input does
// not match the compiled pattern or assembles to an impossible date.
type DateParseFunc func(string) (t time.Time, ok bool)

// NumberFormatFunc renders a float to a localized string.
type NumberFormatFunc func(float64) string

// NumberParseFunc parses a localized numeric string, returning NaN on failure.
type NumberParseFunc func(string) float64
