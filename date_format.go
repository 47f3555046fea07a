package cldr

import (
	"strconv"
	"strings"
	"time"
)

// fieldKind is the closed set of pattern fields the engine understands.
type fieldKind int

const (
	fieldLiteral fieldKind = iota
	fieldMonth
	fieldMonthStandAlone
	fieldDay
	fieldWeekday
	fieldWeekdayStandAlone
	fieldYear
	fieldMinute
	fieldHour12
	fieldHour24
	fieldSecond
	fieldFraction
	fieldDesignator
	fieldEra
	fieldZone
	fieldWeekOfYear
)

var fieldKindByLetter = map[rune]fieldKind{
	'M': fieldMonth,
	'L': fieldMonthStandAlone,
	'd': fieldDay,
	'E': fieldWeekday,
	'c': fieldWeekdayStandAlone,
	'y': fieldYear,
	'm': fieldMinute,
	'h': fieldHour12,
	'K': fieldHour12,
	'H': fieldHour24,
	's': fieldSecond,
	'f': fieldFraction,
	'S': fieldFraction,
	'a': fieldDesignator,
	'G': fieldEra,
	'z': fieldZone,
	'W': fieldWeekOfYear,
}

type patternToken struct {
	kind    fieldKind
	count   int
	literal string
}

// tokenizePattern splits a CLDR pattern into field runs and literal text.
// Single-quoted spans are literal, with '' escaping a quote.
func tokenizePattern(pattern string) []patternToken {
	var tokens []patternToken
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, patternToken{kind: fieldLiteral, literal: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		if kind, ok := fieldKindByLetter[r]; ok {
			flush()
			count := 1
			for i+count < len(runes) && runes[i+count] == r {
				count++
			}
			tokens = append(tokens, patternToken{kind: kind, count: count})
			i += count
			continue
		}

		if r == '\'' {
			i++
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						literal.WriteRune('\'')
						i += 2
						continue
					}
					i++
					break
				}
				literal.WriteRune(runes[i])
				i++
			}
			continue
		}

		literal.WriteRune(r)
		i++
	}

	flush()
	return tokens
}

// widthForCount maps a letter repeat count to a CLDR field width.
// One or two letters mean numeric rendering for month-like fields.
func widthForCount(count int) string {
	switch {
	case count >= 5:
		return "narrow"
	case count == 4:
		return "wide"
	default:
		return "abbreviated"
	}
}

// boundField is a pattern token with its locale lookup table attached.
type boundField struct {
	patternToken
	names []string
	zone  TimeZoneNames
}

// bindDateFields attaches the width-appropriate name tables so the returned
// closure never touches the locale tree at render time.
func bindDateFields(tokens []patternToken, cal *Calendar) []boundField {
	bound := make([]boundField, 0, len(tokens))
	for _, tok := range tokens {
		field := boundField{patternToken: tok}
		width := widthForCount(tok.count)
		switch tok.kind {
		case fieldMonth:
			if tok.count >= 3 {
				field.names = cal.Months.Context(false).Names(width)
			}
		case fieldMonthStandAlone:
			if tok.count >= 3 {
				field.names = cal.Months.Context(true).Names(width)
			}
		case fieldWeekday:
			field.names = cal.Days.Context(false).Names(width)
		case fieldWeekdayStandAlone:
			field.names = cal.Days.Context(true).Names(width)
		case fieldDesignator:
			field.names = cal.DayPeriods.Names(width)
		case fieldEra:
			field.names = cal.Eras.Names(width)
		case fieldZone:
			field.zone = cal.TimeZoneNames
		}
		bound = append(bound, field)
	}
	return bound
}

// DateFormatter compiles a date rendering closure for the culture and
// options. The closure is pure and safe for concurrent use; the zero time
// renders as "".
func (e *Engine) DateFormatter(culture string, opts DateFormatOptions) (DateFormatFunc, error) {
	locale := e.locale(culture)
	cal := locale.Calendar(opts.Calendar)

	pattern, err := resolveDatePattern(cal, opts)
	if err != nil {
		return nil, err
	}
	if cal == nil {
		cal = &Calendar{}
	}

	fields := bindDateFields(tokenizePattern(pattern), cal)
	mapper := newNumberMapper(locale)
	islamic := opts.Calendar == CalendarIslamic

	return func(t time.Time) string {
		if t.IsZero() {
			return ""
		}

		year, month, day := t.Date()
		if islamic {
			h := ToHijri(t)
			year, month, day = h.Year, time.Month(h.Month), h.Day
		}
		hour, minute, second := t.Clock()

		var b strings.Builder
		for _, f := range fields {
			switch f.kind {
			case fieldLiteral:
				b.WriteString(f.literal)
			case fieldMonth, fieldMonthStandAlone:
				if f.count >= 3 {
					b.WriteString(nameAt(f.names, int(month)-1))
				} else {
					b.WriteString(padNumber(int(month), f.count))
				}
			case fieldDay:
				b.WriteString(padNumber(day, f.count))
			case fieldWeekday, fieldWeekdayStandAlone:
				b.WriteString(nameAt(f.names, int(t.Weekday())))
			case fieldYear:
				if f.count == 2 {
					b.WriteString(padNumber(year%100, 2))
				} else {
					b.WriteString(padNumber(year, f.count))
				}
			case fieldHour12:
				h12 := hour % 12
				if h12 == 0 {
					h12 = 12
				}
				b.WriteString(padNumber(h12, f.count))
			case fieldHour24:
				b.WriteString(padNumber(hour, f.count))
			case fieldMinute:
				b.WriteString(padNumber(minute, f.count))
			case fieldSecond:
				b.WriteString(padNumber(second, f.count))
			case fieldFraction:
				b.WriteString(fractionDigits(t.Nanosecond(), f.count))
			case fieldDesignator:
				idx := 0
				if hour >= 12 {
					idx = 1
				}
				b.WriteString(nameAt(f.names, idx))
			case fieldEra:
				b.WriteString(eraName(f.names, year, islamic))
			case fieldZone:
				_, offset := t.Zone()
				b.WriteString(formatZoneOffset(f.zone, offset/60, f.count >= 4))
			case fieldWeekOfYear:
				b.WriteString(strconv.Itoa(weekOfYear(t)))
			}
		}

		return mapper.mapTime(b.String())
	}, nil
}

func padNumber(value, width int) string {
	s := strconv.Itoa(value)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func nameAt(names []string, idx int) string {
	if idx < 0 || idx >= len(names) {
		return ""
	}
	return names[idx]
}

// fractionDigits renders up to the first three sub-second digits, padded or
// truncated to the requested count.
func fractionDigits(nanoseconds, count int) string {
	if count > 3 {
		count = 3
	}
	millis := padNumber(nanoseconds/1e6, 3)
	return millis[:count]
}

func eraName(names []string, year int, islamic bool) string {
	if islamic || len(names) == 1 {
		return nameAt(names, 0)
	}
	if year > 0 {
		return nameAt(names, 1)
	}
	return nameAt(names, 0)
}

// formatZoneOffset renders an offset in minutes east of UTC through the
// locale's hour-format templates. A zero offset emits the bare GMT literal.
func formatZoneOffset(names TimeZoneNames, offsetMinutes int, full bool) string {
	zero := names.GMTZeroFormat
	if zero == "" {
		zero = "GMT"
	}
	if offsetMinutes == 0 {
		return zero
	}

	hourFormat := names.HourFormat
	if hourFormat == "" {
		hourFormat = "+HH:mm;-HH:mm"
	}
	positive, negative := hourFormat, hourFormat
	if idx := strings.IndexByte(hourFormat, ';'); idx >= 0 {
		positive, negative = hourFormat[:idx], hourFormat[idx+1:]
	}

	template := positive
	if offsetMinutes < 0 {
		template = negative
		offsetMinutes = -offsetMinutes
	}
	hours, minutes := offsetMinutes/60, offsetMinutes%60

	var rendered string
	if full {
		rendered = renderHourTemplate(template, hours, minutes)
	} else {
		sign := template
		if idx := strings.IndexAny(template, "Hh"); idx >= 0 {
			sign = template[:idx]
		}
		rendered = sign + strconv.Itoa(hours)
		if minutes != 0 {
			rendered += ":" + padNumber(minutes, 2)
		}
	}

	gmt := names.GMTFormat
	if gmt == "" {
		gmt = "GMT{0}"
	}
	return strings.ReplaceAll(gmt, "{0}", rendered)
}

// renderHourTemplate substitutes H/HH and m/mm runs in an hour-format
// template, keeping every other character.
func renderHourTemplate(template string, hours, minutes int) string {
	var b strings.Builder
	runes := []rune(template)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r != 'H' && r != 'h' && r != 'm' {
			b.WriteRune(r)
			i++
			continue
		}
		count := 1
		for i+count < len(runes) && runes[i+count] == r {
			count++
		}
		if r == 'm' {
			b.WriteString(padNumber(minutes, count))
		} else {
			b.WriteString(padNumber(hours, count))
		}
		i += count
	}
	return b.String()
}

// weekOfYear computes the week number: week 1 is the week containing
// January 1 when that day falls Monday through Thursday, otherwise week 1
// starts the following Monday. Days past the final week boundary wrap to 1.
func weekOfYear(t time.Time) int {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	start := weekOneStart(t.Year())
	if day.Before(start) {
		start = weekOneStart(t.Year() - 1)
		return int(day.Sub(start).Hours()/24)/7 + 1
	}

	if !day.Before(weekOneStart(t.Year() + 1)) {
		return 1
	}
	return int(day.Sub(start).Hours()/24)/7 + 1
}

// weekOneStart returns the first day of week 1 for the year, in UTC.
func weekOneStart(year int) time.Time {
	jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	weekday := (int(jan1.Weekday()) + 6) % 7 // Monday == 0
	if weekday <= 3 {
		return jan1.AddDate(0, 0, -weekday)
	}
	return jan1.AddDate(0, 0, 7-weekday)
}
