package cldr

import (
	"fmt"
	"regexp"
	"strings"
)

// resolveDatePattern turns a skeleton/type request into a concrete pattern.
// Built-in lengths (short, medium, long, full) read the calendar's format
// tables; dateTime splices date and time patterns into the {1}/{0} template.
// Anything else is an availableFormats lookup, with "M/d/y" backing the yMd
// skeleton so a minimal locale still formats dates.
func resolveDatePattern(cal *Calendar, opts DateFormatOptions) (string, error) {
	if opts.Format != "" {
		return opts.Format, nil
	}
	if cal == nil {
		return "", fmt.Errorf("%w: no calendar data", ErrConfiguration)
	}

	skeleton := opts.Skeleton
	if skeleton == "" {
		skeleton = "short"
	}
	typ := opts.Type
	if typ == "" {
		typ = TypeDate
	}

	switch skeleton {
	case "short", "medium", "long", "full":
		switch typ {
		case TypeDate:
			if p := cal.DateFormats.Length(skeleton); p != "" {
				return p, nil
			}
		case TypeTime:
			if p := cal.TimeFormats.Length(skeleton); p != "" {
				return p, nil
			}
		case TypeDateTime:
			template := cal.DateTimeFormats.Length(skeleton)
			datePart := cal.DateFormats.Length(skeleton)
			timePart := cal.TimeFormats.Length(skeleton)
			if template != "" && datePart != "" && timePart != "" {
				spliced := strings.ReplaceAll(template, "{1}", datePart)
				return strings.ReplaceAll(spliced, "{0}", timePart), nil
			}
		}
	default:
		if p, ok := cal.AvailableFormats[skeleton]; ok && p != "" {
			return p, nil
		}
		if skeleton == "yMd" {
			return "M/d/y", nil
		}
	}

	return "", fmt.Errorf("%w: no pattern for skeleton %q with type %q", ErrConfiguration, skeleton, typ)
}

// Numeric format kinds produced by skeleton resolution.
type numericType int

const (
	numUnresolved numericType = iota
	numDecimal
	numCurrency
	numPercent
	numAccounting
	numScientific
)

var numericSkeletonRx = regexp.MustCompile(`^([a-zA-Z])(\d{0,2})$`)

type numericSkeleton struct {
	kind numericType
	// fractionDigits is the fixed fraction digit count, -1 when the
	// skeleton carries none.
	fractionDigits int
}

// resolveNumericSkeleton parses skeletons of the form [NCPAE]{digits}?.
// Unknown leading letters yield an unresolved kind; non-matching input
// means the code is a custom pattern, reported via ok=false.
func resolveNumericSkeleton(code string) (numericSkeleton, bool) {
	match := numericSkeletonRx.FindStringSubmatch(code)
	if match == nil {
		return numericSkeleton{}, false
	}

	out := numericSkeleton{fractionDigits: -1}
	switch match[1] {
	case "N", "n":
		out.kind = numDecimal
	case "C", "c":
		out.kind = numCurrency
	case "P", "p":
		out.kind = numPercent
	case "A", "a":
		out.kind = numAccounting
	case "E", "e":
		out.kind = numScientific
	default:
		out.kind = numUnresolved
	}

	if match[2] != "" {
		digits := 0
		for _, r := range match[2] {
			digits = digits*10 + int(r-'0')
		}
		out.fractionDigits = digits
	}
	return out, true
}

// patternBranch is one semicolon-delimited branch of a numeric pattern,
// reduced to the metadata the formatter needs.
type patternBranch struct {
	lead, trail    string
	grouping       bool
	primaryGroup   int
	secondaryGroup int
	minInteger     int
	minFraction    int
	maxFraction    int
	isCurrency     bool
	isPercent      bool
	isScientific   bool
	minExponent    int
}

// parseCustomNumericPattern reduces one branch of a numeric pattern, e.g.
// "#,##0.00" or "(¤#,##0.00)", to its literals and digit metadata. Currency
// and percent markers count only outside quoted spans.
func parseCustomNumericPattern(segment string) patternBranch {
	var branch patternBranch

	firstDigit, lastDigit := -1, -1
	inQuote := false
	runes := []rune(segment)
	for i, r := range runes {
		if r == '\'' {
			inQuote = !inQuote
			continue
		}
		if inQuote {
			continue
		}
		switch r {
		case '#', '0':
			if firstDigit < 0 {
				firstDigit = i
			}
			lastDigit = i
		case ',', '.', 'E':
			if firstDigit >= 0 {
				lastDigit = i
			}
		case '¤', '$':
			branch.isCurrency = true
		case '%':
			branch.isPercent = true
		}
	}

	if firstDigit < 0 {
		branch.lead = unquoteLiteral(segment)
		return branch
	}

	branch.lead = unquoteLiteral(string(runes[:firstDigit]))
	branch.trail = unquoteLiteral(string(runes[lastDigit+1:]))
	body := string(runes[firstDigit : lastDigit+1])

	if idx := strings.IndexByte(body, 'E'); idx >= 0 {
		branch.isScientific = true
		for _, r := range body[idx+1:] {
			if r == '0' {
				branch.minExponent++
			}
		}
		body = body[:idx]
	}

	integer := body
	if idx := strings.IndexByte(body, '.'); idx >= 0 {
		integer = body[:idx]
		for _, r := range body[idx+1:] {
			switch r {
			case '0':
				branch.minFraction++
				branch.maxFraction++
			case '#':
				branch.maxFraction++
			}
		}
	}

	branch.minInteger = strings.Count(integer, "0")

	groups := strings.Split(integer, ",")
	if len(groups) > 1 {
		branch.grouping = true
		branch.primaryGroup = len(groups[len(groups)-1])
		branch.secondaryGroup = branch.primaryGroup
		if len(groups) > 2 {
			branch.secondaryGroup = len(groups[len(groups)-2])
		}
	}

	return branch
}

// unquoteLiteral strips single-quote escaping from a pattern literal,
// turning '' into a literal quote.
func unquoteLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\'' {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			b.WriteRune('\'')
			i++
		}
	}
	return b.String()
}

// numericPattern is a full positive;negative;zero pattern.
type numericPattern struct {
	positive patternBranch
	negative patternBranch
	zero     patternBranch
	hasZero  bool
	custom   bool
}

// parseNumericPattern splits a pattern into branches. A missing negative
// branch defaults to the positive branch prefixed with the locale minus sign.
func parseNumericPattern(pattern, minusSign string, custom bool) numericPattern {
	segments := splitPatternBranches(pattern)

	out := numericPattern{custom: custom}
	out.positive = parseCustomNumericPattern(segments[0])

	if len(segments) > 1 && segments[1] != "" {
		out.negative = parseCustomNumericPattern(segments[1])
	} else {
		out.negative = out.positive
		out.negative.lead = minusSign + out.positive.lead
	}

	if len(segments) > 2 && segments[2] != "" {
		out.zero = parseCustomNumericPattern(segments[2])
		out.hasZero = true
	} else {
		out.zero = out.positive
	}

	return out
}

// splitPatternBranches splits on ';' outside quoted spans.
func splitPatternBranches(pattern string) []string {
	var segments []string
	var current strings.Builder
	inQuote := false
	for _, r := range pattern {
		if r == '\'' {
			inQuote = !inQuote
		}
		if r == ';' && !inQuote {
			segments = append(segments, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	segments = append(segments, current.String())
	return segments
}

// Synthetic pattern builders used when digit-count options are given without
// an explicit custom format.

func buildMinimumIntegerPattern(minimum int) string {
	if minimum < 1 {
		minimum = 1
	}
	return strings.Repeat("0", minimum)
}

func buildGroupingPattern(integerPattern string) string {
	padded := integerPattern
	for len(padded) < 4 {
		padded = "#" + padded
	}
	var b strings.Builder
	for i, r := range padded {
		rest := len(padded) - i
		if i > 0 && rest%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func buildFractionPattern(minimum, maximum int) string {
	if maximum < minimum {
		maximum = minimum
	}
	if maximum == 0 {
		return ""
	}
	return "." + strings.Repeat("0", minimum) + strings.Repeat("#", maximum-minimum)
}
