package cldr

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericShape matches normalized numeric text: optional lead literal,
// grouped digits, optional fraction, optional exponent, optional trail
// literal. Everything is ASCII by the time it runs.
var numericShape = regexp.MustCompile(`^([^0-9]*)([0-9][0-9,]*)(?:\.([0-9]*))?(?:e([+-]?[0-9]+))?([^0-9]*)$`)

// NumberParser compiles the inverse of NumberFormatter for the culture and
// options: localized symbols and digits are normalized to ASCII, the generic
// numeric shape is matched, and the branch literals infer the sign.
// Unparseable input yields NaN.
func (e *Engine) NumberParser(culture string, opts NumberFormatOptions) (NumberParseFunc, error) {
	locale := e.locale(culture)
	symbols := localeSymbols(locale)

	spec, err := buildNumericSpec(locale, opts, symbols)
	if err != nil {
		return nil, err
	}

	currencySymbol := ""
	if spec.kind == numCurrency || spec.kind == numAccounting {
		currencySymbol = resolveCurrencySymbol(locale, opts)
	}

	reverse := newNumberReverseMapper(locale, true)
	negative := finalizeBranch(spec.pattern.negative, symbols, currencySymbol)
	negLead := strings.TrimSpace(reverse.normalizeSymbols(negative.lead))
	negTrail := strings.TrimSpace(reverse.normalizeSymbols(negative.trail))

	percent := spec.kind == numPercent
	scientific := spec.kind == numScientific
	maxFraction := spec.maxFraction

	return func(input string) float64 {
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			return math.NaN()
		}

		if symbols.Infinity != "" && strings.Contains(trimmed, symbols.Infinity) {
			if strings.Contains(reverse.normalizeSymbols(trimmed), "-") {
				return math.Inf(-1)
			}
			return math.Inf(1)
		}
		if trimmed == symbols.NaN {
			return math.NaN()
		}

		s := reverse.normalizeSymbols(trimmed)
		switch {
		case strings.HasPrefix(s, "."):
			s = "0" + s
		case strings.HasPrefix(s, "-."):
			s = "-0" + s[1:]
		}

		match := numericShape.FindStringSubmatch(s)
		if match == nil {
			return math.NaN()
		}
		lead, integer, fraction, exponent, trail := match[1], match[2], match[3], match[4], match[5]

		body := strings.ReplaceAll(integer, ",", "")
		if fraction != "" {
			body += "." + fraction
		}
		value, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return math.NaN()
		}

		if exponent != "" {
			exp, err := strconv.Atoi(exponent)
			if err != nil {
				return math.NaN()
			}
			value *= math.Pow(10, float64(exp))
		}

		if !scientific && maxFraction < 15 {
			scale := math.Pow(10, float64(maxFraction))
			value = math.Round(value*scale) / scale
		}

		isNegative := strings.Contains(lead, "-") || strings.Contains(trail, "-")
		if !isNegative && negLead != "" && strings.Contains(lead, negLead) &&
			(negTrail == "" || strings.Contains(trail, negTrail)) {
			isNegative = true
		}
		if isNegative {
			value = -value
		}

		if percent || strings.Contains(lead, "%") || strings.Contains(trail, "%") {
			value /= 100
		}

		return value
	}, nil
}
