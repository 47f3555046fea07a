package cldr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

// pivotNumericPattern is the short-form "millions" pattern: values of at
// least half a million render as the rounded million count, anything
// smaller as the empty string.
const pivotNumericPattern = "#,###,,;(#,###,,)"

// numericSpec is the fully resolved formatting recipe a compiled closure
// captures.
type numericSpec struct {
	kind    numericType
	pattern numericPattern
	custom  bool
	pivot   bool

	minFraction    int
	maxFraction    int
	useSignificant bool
	minSignificant int
	maxSignificant int
	minInteger     int

	grouping       bool
	primaryGroup   int
	secondaryGroup int
}

// buildNumericSpec resolves options against the locale into a numericSpec,
// applying the digit-count validation rules.
func buildNumericSpec(locale *Locale, opts NumberFormatOptions, symbols Symbols) (*numericSpec, error) {
	code := opts.Format
	if code == "" {
		code = opts.Skeleton
	}
	if code == "" {
		code = "N"
	}

	spec := &numericSpec{minFraction: 0, maxFraction: 0, minInteger: 1}

	skeleton, isSkeleton := resolveNumericSkeleton(code)
	if isSkeleton {
		if skeleton.kind == numUnresolved {
			return nil, fmt.Errorf("%w: unknown numeric skeleton %q", ErrConfiguration, code)
		}
		spec.kind = skeleton.kind

		base := standardPattern(locale, skeleton.kind)
		spec.pattern = parseNumericPattern(base, symbols.MinusSign, false)
		applyBranchDigits(spec, spec.pattern.positive)

		if skeleton.fractionDigits >= 0 {
			spec.minFraction = skeleton.fractionDigits
			spec.maxFraction = skeleton.fractionDigits
		}
	} else {
		spec.custom = true
		spec.pivot = code == pivotNumericPattern
		spec.pattern = parseNumericPattern(code, symbols.MinusSign, true)

		positive := spec.pattern.positive
		switch {
		case positive.isCurrency:
			spec.kind = numCurrency
		case positive.isPercent:
			spec.kind = numPercent
		case positive.isScientific:
			spec.kind = numScientific
		default:
			spec.kind = numDecimal
		}
		applyBranchDigits(spec, positive)
	}

	if err := applyDigitOptions(spec, opts); err != nil {
		return nil, err
	}

	if opts.UseGrouping != nil {
		spec.grouping = *opts.UseGrouping
		if spec.grouping && spec.primaryGroup == 0 {
			spec.primaryGroup, spec.secondaryGroup = 3, 3
		}
	}

	return spec, nil
}

func standardPattern(locale *Locale, kind numericType) string {
	numbers := builtinLocale().Numbers
	if locale != nil {
		numbers = locale.Numbers
	}
	pick := func(p PatternSet, fallback string) string {
		if p.Standard != "" {
			return p.Standard
		}
		return fallback
	}
	switch kind {
	case numPercent:
		return pick(numbers.PercentFormats, "#,##0%")
	case numCurrency:
		return pick(numbers.CurrencyFormats, "¤#,##0.00")
	case numAccounting:
		if numbers.CurrencyFormats.Accounting != "" {
			return numbers.CurrencyFormats.Accounting
		}
		return pick(numbers.CurrencyFormats, "¤#,##0.00;(¤#,##0.00)")
	case numScientific:
		return pick(numbers.ScientificFormats, "#E0")
	default:
		return pick(numbers.DecimalFormats, "#,##0.###")
	}
}

func applyBranchDigits(spec *numericSpec, branch patternBranch) {
	spec.minFraction = branch.minFraction
	spec.maxFraction = branch.maxFraction
	if branch.minInteger > 0 {
		spec.minInteger = branch.minInteger
	}
	spec.grouping = branch.grouping
	spec.primaryGroup = branch.primaryGroup
	spec.secondaryGroup = branch.secondaryGroup
}

// applyDigitOptions validates and applies the fraction, significant and
// integer digit options.
func applyDigitOptions(spec *numericSpec, opts NumberFormatOptions) error {
	inRange := func(v, lo, hi int) bool { return v >= lo && v <= hi }

	minFrac, maxFrac := opts.MinimumFractionDigits, opts.MaximumFractionDigits
	if minFrac != nil && !inRange(*minFrac, 0, 20) {
		return fmt.Errorf("%w: minimumFractionDigits %d out of range [0,20]", ErrValidation, *minFrac)
	}
	if maxFrac != nil && !inRange(*maxFrac, 0, 20) {
		return fmt.Errorf("%w: maximumFractionDigits %d out of range [0,20]", ErrValidation, *maxFrac)
	}
	if minFrac != nil && maxFrac != nil && *minFrac > *maxFrac {
		return fmt.Errorf("%w: minimumFractionDigits %d exceeds maximumFractionDigits %d", ErrValidation, *minFrac, *maxFrac)
	}
	if minFrac != nil {
		spec.minFraction = *minFrac
		if spec.maxFraction < spec.minFraction {
			spec.maxFraction = spec.minFraction
		}
	}
	if maxFrac != nil {
		spec.maxFraction = *maxFrac
		if spec.minFraction > spec.maxFraction {
			spec.minFraction = spec.maxFraction
		}
	}

	minSig, maxSig := opts.MinimumSignificantDigits, opts.MaximumSignificantDigits
	if (minSig == nil) != (maxSig == nil) {
		return fmt.Errorf("%w: minimum and maximum significant digits must be given together", ErrValidation)
	}
	if minSig != nil {
		if !inRange(*minSig, 1, 21) {
			return fmt.Errorf("%w: minimumSignificantDigits %d out of range [1,21]", ErrValidation, *minSig)
		}
		if !inRange(*maxSig, 1, 21) {
			return fmt.Errorf("%w: maximumSignificantDigits %d out of range [1,21]", ErrValidation, *maxSig)
		}
		if *minSig > *maxSig {
			return fmt.Errorf("%w: minimumSignificantDigits %d exceeds maximumSignificantDigits %d", ErrValidation, *minSig, *maxSig)
		}
		spec.useSignificant = true
		spec.minSignificant = *minSig
		spec.maxSignificant = *maxSig
	}

	if opts.MinimumIntegerDigits != nil {
		if !inRange(*opts.MinimumIntegerDigits, 1, 21) {
			return fmt.Errorf("%w: minimumIntegerDigits %d out of range [1,21]", ErrValidation, *opts.MinimumIntegerDigits)
		}
		spec.minInteger = *opts.MinimumIntegerDigits
	}

	// Digit options without a custom pattern rebuild the digit body from
	// the synthetic pattern builders so metadata stays in one shape.
	if !spec.custom && (minFrac != nil || maxFrac != nil || opts.MinimumIntegerDigits != nil) {
		integer := buildMinimumIntegerPattern(spec.minInteger)
		if spec.grouping {
			integer = buildGroupingPattern(integer)
		}
		body := integer + buildFractionPattern(spec.minFraction, spec.maxFraction)
		branch := parseCustomNumericPattern(body)
		spec.minInteger = branch.minInteger
		spec.grouping = branch.grouping
		if branch.grouping {
			spec.primaryGroup = branch.primaryGroup
			spec.secondaryGroup = branch.secondaryGroup
		}
	}

	return nil
}

// resolveCurrencySymbol picks the symbol rendered for '¤': explicit
// alternate first, then the locale table, then the validated ISO code.
func resolveCurrencySymbol(locale *Locale, opts NumberFormatOptions) string {
	if opts.IgnoreCurrency {
		return ""
	}
	if opts.AltSymbol != "" {
		return opts.AltSymbol
	}
	code := strings.ToUpper(strings.TrimSpace(opts.Currency))
	if code == "" {
		code = "USD"
	}
	if locale != nil {
		if display, ok := locale.Numbers.Currencies[code]; ok && display.Symbol != "" {
			return display.Symbol
		}
	}
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String()
	}
	return code
}

// finalizeBranch substitutes the symbol placeholders in a branch's literals.
func finalizeBranch(branch patternBranch, symbols Symbols, currencySymbol string) patternBranch {
	replace := func(s string) string {
		s = strings.ReplaceAll(s, "¤", currencySymbol)
		s = strings.ReplaceAll(s, "%", symbols.Percent)
		s = strings.ReplaceAll(s, "-", symbols.MinusSign)
		return s
	}
	branch.lead = replace(branch.lead)
	branch.trail = replace(branch.trail)
	return branch
}

// NumberFormatter compiles a numeric rendering closure for the culture and
// options. The closure is pure and safe for concurrent use.
func (e *Engine) NumberFormatter(culture string, opts NumberFormatOptions) (NumberFormatFunc, error) {
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

	positive := finalizeBranch(spec.pattern.positive, symbols, currencySymbol)
	negative := finalizeBranch(spec.pattern.negative, symbols, currencySymbol)
	zero := finalizeBranch(spec.pattern.zero, symbols, currencySymbol)
	hasZero := spec.pattern.hasZero
	mapper := newNumberMapper(locale)

	return func(value float64) string {
		if math.IsNaN(value) {
			return symbols.NaN
		}

		branch := positive
		switch {
		case value < 0 || math.Signbit(value):
			branch = negative
		case value == 0 && hasZero:
			branch = zero
		}

		if math.IsInf(value, 0) {
			return branch.lead + symbols.Infinity + branch.trail
		}

		magnitude := math.Abs(value)
		if spec.kind == numPercent {
			magnitude *= 100
		}

		if spec.pivot {
			if magnitude < 500000 {
				return ""
			}
			millions := strconv.FormatFloat(math.Round(magnitude/1e6), 'f', 0, 64)
			body := groupDigits(millions, spec.primaryGroup, spec.secondaryGroup, symbols.Group)
			return branch.lead + mapper.mapDigits(body) + branch.trail
		}

		var body string
		switch {
		case spec.useSignificant:
			body = formatSignificant(magnitude, spec.minSignificant, spec.maxSignificant)
		case spec.kind == numScientific:
			body = formatScientific(magnitude, spec.minFraction, spec.maxFraction, symbols.Exponential)
		default:
			body = strconv.FormatFloat(magnitude, 'f', spec.maxFraction, 64)
			if spec.maxFraction > spec.minFraction {
				body = trimFraction(body, spec.minFraction)
			}
		}

		if spec.kind != numScientific {
			integer, fraction, _ := strings.Cut(body, ".")
			for len(integer) < spec.minInteger {
				integer = "0" + integer
			}
			if spec.grouping {
				integer = groupDigits(integer, spec.primaryGroup, spec.secondaryGroup, symbols.Group)
			}
			body = integer
			if fraction != "" {
				body += symbols.Decimal + fraction
			}
		} else {
			body = strings.Replace(body, ".", symbols.Decimal, 1)
		}

		return branch.lead + mapper.mapDigits(body) + branch.trail
	}, nil
}

// formatSignificant renders to the requested significant-digit window:
// round to the maximum, strip insignificant trailing zeros, then pad back
// up to the minimum.
func formatSignificant(value float64, minimum, maximum int) string {
	rounded := roundToSignificant(value, maximum)
	s := strconv.FormatFloat(rounded, 'f', -1, 64)

	significant := countSignificant(s)
	if significant >= minimum {
		return s
	}

	missing := minimum - significant
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s + strings.Repeat("0", missing)
}

func roundToSignificant(value float64, digits int) float64 {
	if value == 0 {
		return 0
	}
	magnitude := math.Floor(math.Log10(math.Abs(value)))
	scale := math.Pow(10, float64(digits-1)-magnitude)
	return math.Round(value*scale) / scale
}

func countSignificant(s string) int {
	count := 0
	seenNonZero := false
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if r != '0' {
			seenNonZero = true
		}
		if seenNonZero {
			count++
		}
	}
	if !seenNonZero {
		// "0" or "0.00": a lone zero counts as one significant digit.
		return 1
	}
	return count
}

// formatScientific renders mantissa and exponent with the locale's exponent
// symbol; the exponent keeps its sign only when negative.
func formatScientific(value float64, minFraction, maxFraction int, exponentSymbol string) string {
	precision := maxFraction
	if precision == 0 && minFraction == 0 {
		precision = -1
	}
	s := strconv.FormatFloat(value, 'E', precision, 64)

	mantissa, exponent, _ := strings.Cut(s, "E")
	negative := strings.HasPrefix(exponent, "-")
	exponent = strings.TrimLeft(strings.TrimLeft(exponent, "+-"), "0")
	if exponent == "" {
		exponent = "0"
	}
	if negative {
		exponent = "-" + exponent
	}
	return mantissa + exponentSymbol + exponent
}

// trimFraction drops trailing fractional zeros beyond the minimum.
func trimFraction(s string, minFraction int) string {
	integer, fraction, found := strings.Cut(s, ".")
	if !found {
		return s
	}
	for len(fraction) > minFraction && strings.HasSuffix(fraction, "0") {
		fraction = fraction[:len(fraction)-1]
	}
	if fraction == "" {
		return integer
	}
	return integer + "." + fraction
}

// groupDigits inserts group separators right to left: the primary group
// size nearest the decimal point, the secondary size beyond it.
func groupDigits(integer string, primary, secondary int, separator string) string {
	if primary <= 0 || len(integer) <= primary {
		return integer
	}
	if secondary <= 0 {
		secondary = primary
	}

	var groups []string
	rest := integer[:len(integer)-primary]
	groups = append(groups, integer[len(integer)-primary:])
	for len(rest) > secondary {
		groups = append(groups, rest[len(rest)-secondary:])
		rest = rest[:len(rest)-secondary]
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	var b strings.Builder
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteString(separator)
		}
	}
	return b.String()
}
