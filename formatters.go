package cldr

import (
	"math"
	"sync"
	"time"
)

// Package-level helpers for one-off calls. They share a lazily built engine
// with the built-in locale data; applications with custom data should build
// their own Engine and reuse the compiled closures.

var (
	sharedOnce   sync.Once
	sharedEngine *Engine
)

func defaultEngine() *Engine {
	sharedOnce.Do(func() {
		sharedEngine, _ = New()
	})
	return sharedEngine
}

// FormatDate renders t for the culture. An unresolvable configuration
// renders as "".
func FormatDate(culture string, t time.Time, opts DateFormatOptions) string {
	format, err := defaultEngine().DateFormatter(culture, opts)
	if err != nil {
		return ""
	}
	return format(t)
}

// ParseDate parses localized date text for the culture.
func ParseDate(culture, input string, opts DateFormatOptions) (time.Time, bool) {
	parse, err := defaultEngine().DateParser(culture, opts)
	if err != nil {
		return time.Time{}, false
	}
	return parse(input)
}

// FormatNumber renders value for the culture. An unresolvable configuration
// renders as "".
func FormatNumber(culture string, value float64, opts NumberFormatOptions) string {
	format, err := defaultEngine().NumberFormatter(culture, opts)
	if err != nil {
		return ""
	}
	return format(value)
}

// ParseNumber parses localized numeric text for the culture; NaN reports
// failure.
func ParseNumber(culture, input string, opts NumberFormatOptions) float64 {
	parse, err := defaultEngine().NumberParser(culture, opts)
	if err != nil {
		return math.NaN()
	}
	return parse(input)
}
