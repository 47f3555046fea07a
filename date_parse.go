package cldr

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// parseField records, per pattern field, which capture group holds it and
// how the matched text resolves to a value.
type parseField struct {
	kind    fieldKind
	count   int
	group   int
	numeric bool
	names   []string
	// Zone fields span fixed offsets into subsequent capture groups.
	signGroup   int
	hourGroup   int
	minuteGroup int
}

// dateParts is the transient value bag assembled mid-parse. The designator
// is the day-period table index (0 = AM, 1 = PM), -1 when absent.
type dateParts struct {
	year, month, day         int
	hour, minute, second, ms int
	yearDigits               int
	designator               int
	tzMinutes                int
	hasTZ                    bool
}

func newDateParts() dateParts {
	return dateParts{year: -1, month: -1, day: -1, hour: -1, minute: -1, second: -1, ms: -1, designator: -1}
}

// DateParser compiles a parsing closure for the culture and options: the
// resolved pattern becomes an anchored case-insensitive regexp plus a field
// position map. Unmatched or impossible input reports ok=false, never an
// error.
func (e *Engine) DateParser(culture string, opts DateFormatOptions) (DateParseFunc, error) {
	locale := e.locale(culture)
	cal := locale.Calendar(opts.Calendar)

	pattern, err := resolveDatePattern(cal, opts)
	if err != nil {
		return nil, err
	}
	if cal == nil {
		cal = &Calendar{}
	}

	reverse := newNumberReverseMapper(locale, false)
	rx, fields, err := compileParsePattern(pattern, cal, reverse.digitClass)
	if err != nil {
		return nil, err
	}

	islamic := opts.Calendar == CalendarIslamic
	english := isEnglishFamily(culture)
	lenient := opts.Lenient

	return func(input string) (time.Time, bool) {
		match := rx.FindStringSubmatch(input)
		if match == nil {
			if lenient {
				if t, err := dateparse.ParseAny(input); err == nil {
					return t, true
				}
			}
			return time.Time{}, false
		}

		parts := newDateParts()
		for _, f := range fields {
			text := match[f.group]
			if text == "" {
				continue
			}
			if !extractField(&parts, f, match, text, reverse, english) {
				return time.Time{}, false
			}
		}

		if islamic {
			resolveHijriParts(&parts)
		}

		return assembleDate(parts, time.Now())
	}, nil
}

// compileParsePattern walks the pattern emitting one capture group per
// field and tracking its index.
func compileParsePattern(pattern string, cal *Calendar, digitClass string) (*regexp.Regexp, []parseField, error) {
	var rx strings.Builder
	rx.WriteString(`(?i)^`)

	var fields []parseField
	group := 0

	digits := func(min, max int) string {
		return "([" + digitClass + "]{" + strconv.Itoa(min) + "," + strconv.Itoa(max) + "})"
	}

	for _, tok := range tokenizePattern(pattern) {
		width := widthForCount(tok.count)
		field := parseField{kind: tok.kind, count: tok.count}

		switch tok.kind {
		case fieldLiteral:
			writeLiteralPattern(&rx, tok.literal)
			continue

		case fieldYear:
			group++
			field.group, field.numeric = group, true
			if tok.count == 2 {
				rx.WriteString(digits(1, 2))
			} else {
				rx.WriteString(digits(1, 4))
			}

		case fieldMonth, fieldMonthStandAlone:
			group++
			field.group = group
			if tok.count >= 3 {
				field.names = cal.Months.Context(tok.kind == fieldMonthStandAlone).Names(width)
				rx.WriteString(nameAlternation(field.names))
			} else {
				field.numeric = true
				rx.WriteString(digits(1, 2))
			}

		case fieldWeekday, fieldWeekdayStandAlone:
			group++
			field.group = group
			field.names = cal.Days.Context(tok.kind == fieldWeekdayStandAlone).Names(width)
			rx.WriteString(nameAlternation(field.names))

		case fieldDesignator:
			group++
			field.group = group
			field.names = cal.DayPeriods.Names(width)
			rx.WriteString(nameAlternation(field.names))

		case fieldEra:
			group++
			field.group = group
			field.names = cal.Eras.Names(width)
			rx.WriteString(nameAlternation(field.names))

		case fieldZone:
			inner := zonePattern(cal.TimeZoneNames, digitClass)
			group++
			field.group = group
			field.signGroup = group + 1
			field.hourGroup = group + 2
			field.minuteGroup = group + 3
			group += 3
			rx.WriteString(inner)

		case fieldFraction:
			group++
			field.group, field.numeric = group, true
			max := tok.count
			if max > 3 {
				max = 3
			}
			rx.WriteString(digits(1, max))

		default: // day, hours, minute, second, week of year
			group++
			field.group, field.numeric = group, true
			max := tok.count
			if max < 2 {
				max = 2
			}
			rx.WriteString(digits(1, max))
		}

		fields = append(fields, field)
	}

	rx.WriteString(`$`)
	compiled, err := regexp.Compile(rx.String())
	if err != nil {
		return nil, nil, err
	}
	return compiled, fields, nil
}

// writeLiteralPattern emits letter runs as optional literal matches and any
// other character as an optional non-digit placeholder.
func writeLiteralPattern(rx *strings.Builder, literal string) {
	runes := []rune(literal)
	for i := 0; i < len(runes); {
		if unicode.IsLetter(runes[i]) {
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			rx.WriteString(`(?:` + regexp.QuoteMeta(string(runes[i:j])) + `)?`)
			i = j
			continue
		}
		rx.WriteString(`\D?`)
		i++
	}
}

// nameAlternation builds a capture group matching any known localized name,
// longest first so prefixes cannot shadow full names.
func nameAlternation(names []string) string {
	sorted := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			sorted = append(sorted, name)
		}
	}
	// Insertion sort by descending length; tables hold at most a dozen names.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && len(sorted[j]) > len(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	quoted := make([]string, len(sorted))
	for i, name := range sorted {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return "(" + strings.Join(quoted, "|") + ")"
}

// zonePattern builds the optional compound offset group from the locale's
// hour-format templates: sign, hours and optional minutes as sub-groups,
// with the bare GMT literal as an alternate.
func zonePattern(zone TimeZoneNames, digitClass string) string {
	gmt := zone.GMTFormat
	if gmt == "" {
		gmt = "GMT{0}"
	}
	zero := zone.GMTZeroFormat
	if zero == "" {
		zero = "GMT"
	}

	prefix, suffix := gmt, ""
	if idx := strings.Index(gmt, "{0}"); idx >= 0 {
		prefix, suffix = gmt[:idx], gmt[idx+3:]
	}

	digit := "[" + digitClass + "]"
	inner := regexp.QuoteMeta(prefix) +
		`([+\-])(` + digit + `{1,2})(?::?(` + digit + `{2}))?` +
		regexp.QuoteMeta(suffix)

	return "(" + inner + "|" + regexp.QuoteMeta(zero) + ")?"
}

// extractField resolves one matched capture into the parts bag.
func extractField(parts *dateParts, f parseField, match []string, text string, reverse *numberReverseMapper, english bool) bool {
	if f.numeric {
		value, err := strconv.Atoi(reverse.normalizeDigits(text))
		if err != nil {
			return false
		}
		switch f.kind {
		case fieldYear:
			parts.year = value
			parts.yearDigits = len([]rune(text))
		case fieldMonth, fieldMonthStandAlone:
			if value < 1 {
				return false
			}
			parts.month = value - 1
		case fieldDay:
			parts.day = value
		case fieldHour12, fieldHour24:
			parts.hour = value
		case fieldMinute:
			parts.minute = value
		case fieldSecond:
			parts.second = value
		case fieldFraction:
			padded := reverse.normalizeDigits(text)
			for len(padded) < 3 {
				padded += "0"
			}
			ms, err := strconv.Atoi(padded[:3])
			if err != nil {
				return false
			}
			parts.ms = ms
		}
		return true
	}

	switch f.kind {
	case fieldMonth, fieldMonthStandAlone:
		idx := lookupName(f.names, text, english)
		if idx < 0 {
			return false
		}
		parts.month = idx
	case fieldWeekday, fieldWeekdayStandAlone:
		if lookupName(f.names, text, english) < 0 {
			return false
		}
	case fieldDesignator:
		// Resolve to the day-period table index so non-English names
		// adjust the hour the same way AM/PM do.
		idx := lookupName(f.names, text, english)
		if idx < 0 {
			return false
		}
		parts.designator = idx
	case fieldEra:
		// Matched for pattern fidelity; era does not alter assembly.
	case fieldZone:
		sign := match[f.signGroup]
		if sign == "" {
			parts.tzMinutes = 0
			parts.hasTZ = true
			return true
		}
		hours, _ := strconv.Atoi(reverse.normalizeDigits(match[f.hourGroup]))
		minutes := 0
		if match[f.minuteGroup] != "" {
			minutes, _ = strconv.Atoi(reverse.normalizeDigits(match[f.minuteGroup]))
		}
		offset := hours*60 + minutes
		if sign == "-" {
			offset = -offset
		}
		parts.tzMinutes = offset
		parts.hasTZ = true
	}
	return true
}

func lookupName(names []string, text string, english bool) int {
	for i, name := range names {
		if name == text {
			return i
		}
		if english && strings.EqualFold(name, text) {
			return i
		}
	}
	// The regexp matched case-insensitively; accept a fold match as the
	// last resort for any culture so a successful match cannot dead-end.
	for i, name := range names {
		if strings.EqualFold(name, text) {
			return i
		}
	}
	return -1
}

// resolveHijriParts anchors missing pieces on today's Hijri date and
// rewrites the bag with the Gregorian equivalents.
func resolveHijriParts(parts *dateParts) {
	today := ToHijri(time.Now())

	year, month, day := parts.year, parts.month, parts.day
	if year < 0 || parts.yearDigits != 4 {
		year = today.Year
	}
	if month < 0 {
		month = today.Month - 1
	}
	if day < 0 {
		day = today.Day
	}

	g := HijriDate{Year: year, Month: month + 1, Day: day}.Gregorian()
	parts.year = g.Year()
	parts.yearDigits = 4
	parts.month = int(g.Month()) - 1
	parts.day = g.Day()
}

// assembleDate builds the final time from parsed parts: current-century
// inference for two-digit years, month and day range checks, AM/PM
// adjustment and timezone correction.
func assembleDate(parts dateParts, now time.Time) (time.Time, bool) {
	year := parts.year
	if year < 0 {
		year = now.Year()
	} else if parts.yearDigits <= 2 {
		year += now.Year() / 100 * 100
	}

	month := parts.month
	if month < 0 {
		month = int(now.Month()) - 1
	}
	if month < 0 || month > 11 {
		return time.Time{}, false
	}

	day := parts.day
	if day < 0 {
		if parts.month >= 0 {
			day = 1
		} else {
			day = now.Day()
		}
	}
	if day < 1 || day > daysInGregorianMonth(year, time.Month(month+1)) {
		return time.Time{}, false
	}

	hour := parts.hour
	if hour < 0 {
		hour = 0
	}
	switch parts.designator {
	case 1:
		if hour < 12 {
			hour += 12
		}
	case 0:
		hour = hour % 12
	}
	if hour > 23 {
		return time.Time{}, false
	}

	minute, second, ms := parts.minute, parts.second, parts.ms
	if minute < 0 {
		minute = 0
	}
	if second < 0 {
		second = 0
	}
	if ms < 0 {
		ms = 0
	}
	if minute > 59 || second > 59 {
		return time.Time{}, false
	}

	loc := time.Local
	if parts.hasTZ {
		loc = time.FixedZone("", parts.tzMinutes*60)
	}

	return time.Date(year, time.Month(month+1), day, hour, minute, second, ms*1e6, loc), true
}

func daysInGregorianMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
