package cldr

import "strings"

// Digit tables for the numbering systems the engine ships. A locale selects
// one via numbers.defaultNumberingSystem; anything unknown falls back to latn.
var numberingDigits = map[string]string{
	"latn":    "0123456789",
	"arab":    "٠١٢٣٤٥٦٧٨٩",
	"arabext": "۰۱۲۳۴۵۶۷۸۹",
	"beng":    "০১২৩৪৫৬৭৮৯",
	"deva":    "०१२३४५६७८९",
	"mymr":    "၀၁၂၃၄၅၆၇၈၉",
	"thai":    "๐๑๒๓๔๕๖๗๘๙",
}

var latnSymbols = Symbols{
	Decimal:       ".",
	Group:         ",",
	Percent:       "%",
	PlusSign:      "+",
	MinusSign:     "-",
	Exponential:   "E",
	Infinity:      "∞",
	NaN:           "NaN",
	TimeSeparator: ":",
}

// numberingSystem returns the active system name and its digit glyphs.
func numberingSystem(locale *Locale) (string, []rune) {
	system := "latn"
	if locale != nil && locale.Numbers.DefaultSystem != "" {
		system = locale.Numbers.DefaultSystem
	}
	digits, ok := numberingDigits[system]
	if !ok {
		system, digits = "latn", numberingDigits["latn"]
	}
	return system, []rune(digits)
}

// localeSymbols returns the symbol table for the locale's active numbering
// system, with latn defaults filling any blanks.
func localeSymbols(locale *Locale) Symbols {
	out := latnSymbols
	if locale == nil {
		return out
	}
	system, _ := numberingSystem(locale)
	symbols, ok := locale.Numbers.Symbols[system]
	if !ok {
		symbols, ok = locale.Numbers.Symbols["latn"]
	}
	if !ok {
		return out
	}
	apply := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	apply(&out.Decimal, symbols.Decimal)
	apply(&out.Group, symbols.Group)
	apply(&out.Percent, symbols.Percent)
	apply(&out.PlusSign, symbols.PlusSign)
	apply(&out.MinusSign, symbols.MinusSign)
	apply(&out.Exponential, symbols.Exponential)
	apply(&out.Infinity, symbols.Infinity)
	apply(&out.NaN, symbols.NaN)
	apply(&out.TimeSeparator, symbols.TimeSeparator)
	return out
}

// numberMapper maps ASCII digits and the time separator into the locale's
// numbering system. Formatting applies it as the final rendering step.
type numberMapper struct {
	digits        []rune
	latin         bool
	timeSeparator string
}

func newNumberMapper(locale *Locale) *numberMapper {
	system, digits := numberingSystem(locale)
	return &numberMapper{
		digits:        digits,
		latin:         system == "latn",
		timeSeparator: localeSymbols(locale).TimeSeparator,
	}
}

// mapDigits substitutes every ASCII digit with its localized glyph.
func (m *numberMapper) mapDigits(s string) string {
	if m.latin {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(m.digits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// mapTime localizes digits and the ':' time separator.
func (m *numberMapper) mapTime(s string) string {
	s = m.mapDigits(s)
	if m.timeSeparator != ":" {
		s = strings.ReplaceAll(s, ":", m.timeSeparator)
	}
	return s
}

// numberReverseMapper turns localized numeric text back into ASCII: a digit
// map for parsing, a digit character class for compiled regexps, and an
// optional symbol table mapping localized symbols to canonical equivalents.
type numberReverseMapper struct {
	digitMap   map[rune]rune
	digitClass string
	symbols    []symbolPair
	infinity   string
	nan        string
}

type symbolPair struct {
	from, to string
}

func newNumberReverseMapper(locale *Locale, needSymbols bool) *numberReverseMapper {
	_, digits := numberingSystem(locale)

	m := &numberReverseMapper{digitMap: make(map[rune]rune, 20)}
	var class strings.Builder
	class.WriteString(`0-9`)
	for i, r := range digits {
		m.digitMap[r] = rune('0' + i)
		m.digitMap[rune('0'+i)] = rune('0' + i)
		if r != rune('0'+i) {
			class.WriteRune(r)
		}
	}
	m.digitClass = class.String()

	symbols := localeSymbols(locale)
	m.infinity = symbols.Infinity
	m.nan = symbols.NaN

	if needSymbols {
		// Longer symbols first so multi-rune separators are not shadowed.
		m.symbols = []symbolPair{
			{symbols.Exponential, "e"},
			{symbols.Group, ","},
			{symbols.Decimal, "."},
			{symbols.Percent, "%"},
			{symbols.PlusSign, "+"},
			{symbols.MinusSign, "-"},
		}
	}
	return m
}

// normalizeDigits rewrites localized digits to ASCII.
func (m *numberReverseMapper) normalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if ascii, ok := m.digitMap[r]; ok {
			b.WriteRune(ascii)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeSymbols rewrites localized numeric symbols to their canonical
// ASCII forms. Digits are normalized first so symbol replacement never
// touches digit glyphs. Substitution goes through private-use markers so
// swapped separator pairs (e.g. German "." and ",") cannot collide.
func (m *numberReverseMapper) normalizeSymbols(s string) string {
	s = m.normalizeDigits(s)
	const marker = '\uE000'
	for i, pair := range m.symbols {
		if pair.from == "" || pair.from == pair.to {
			continue
		}
		s = strings.ReplaceAll(s, pair.from, string(marker+rune(i)))
	}
	for i, pair := range m.symbols {
		if pair.from == "" || pair.from == pair.to {
			continue
		}
		s = strings.ReplaceAll(s, string(marker+rune(i)), pair.to)
	}
	return s
}
