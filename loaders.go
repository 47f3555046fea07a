package cldr

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader retrieves locale trees used to seed a LocaleStore.
type Loader interface {
	Load() (map[string]*Locale, error)
}

// LoaderFunc adapts a bare function to the Loader interface.
type LoaderFunc func() (map[string]*Locale, error)

// Load implements Loader for LoaderFunc.
func (fn LoaderFunc) Load() (map[string]*Locale, error) {
	return fn()
}

// FileLoader reads locale trees from JSON or YAML files, each file holding a
// map of culture id to locale tree. Later files take precedence.
type FileLoader struct {
	paths []string
}

// NewFileLoader creates a loader over the given files.
func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: paths}
}

// Load reads and merges all configured files.
func (l *FileLoader) Load() (map[string]*Locale, error) {
	result := make(map[string]*Locale)

	for _, path := range l.paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cldr: load locale data %q: %w", path, err)
		}

		trees, err := decodeLocaleData(raw, filepath.Ext(path))
		if err != nil {
			return nil, fmt.Errorf("cldr: parse locale data %q: %w", path, err)
		}

		mergeLocaleTrees(result, trees)
	}

	return result, nil
}

// BytesLoader decodes locale trees from an in-memory document, typically an
// embedded asset. Format is "json" or "yaml"/"yml".
type BytesLoader struct {
	data   []byte
	format string
}

// NewBytesLoader creates a loader over raw bytes in the given format.
func NewBytesLoader(data []byte, format string) *BytesLoader {
	return &BytesLoader{data: data, format: format}
}

// Load decodes the document.
func (l *BytesLoader) Load() (map[string]*Locale, error) {
	trees, err := decodeLocaleData(l.data, "."+strings.TrimPrefix(l.format, "."))
	if err != nil {
		return nil, fmt.Errorf("cldr: parse locale data: %w", err)
	}
	return trees, nil
}

func decodeLocaleData(raw []byte, ext string) (map[string]*Locale, error) {
	var trees map[string]*Locale

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &trees); err != nil {
			return nil, err
		}
	case ".json", "":
		if err := json.Unmarshal(raw, &trees); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported locale data format %q", ext)
	}

	return trees, nil
}

func mergeLocaleTrees(dest, source map[string]*Locale) {
	for culture, locale := range source {
		if locale == nil {
			continue
		}
		if base, ok := dest[culture]; ok && base != nil {
			dest[culture] = mergeLocales(base, locale)
			continue
		}
		dest[culture] = locale
	}
}

// mergeLocales layers overlay on top of base, returning a new tree. Overlay
// fields win wherever they are populated.
func mergeLocales(base, overlay *Locale) *Locale {
	if base == nil {
		return overlay.Clone()
	}
	out := base.Clone()
	if overlay == nil {
		return out
	}

	if overlay.Culture != "" {
		out.Culture = overlay.Culture
	}
	out.Calendars.Gregorian = mergeCalendars(out.Calendars.Gregorian, overlay.Calendars.Gregorian)
	out.Calendars.Islamic = mergeCalendars(out.Calendars.Islamic, overlay.Calendars.Islamic)
	out.Numbers = mergeNumbers(out.Numbers, overlay.Numbers)
	return out
}

func mergeCalendars(base, overlay *Calendar) *Calendar {
	if overlay == nil {
		return base
	}
	if base == nil {
		return overlay.clone()
	}

	out := base.clone()
	out.Months.Format = mergeWidths(out.Months.Format, overlay.Months.Format)
	out.Months.StandAlone = mergeWidths(out.Months.StandAlone, overlay.Months.StandAlone)
	out.Days.Format = mergeWidths(out.Days.Format, overlay.Days.Format)
	out.Days.StandAlone = mergeWidths(out.Days.StandAlone, overlay.Days.StandAlone)
	out.Eras = mergeWidths(out.Eras, overlay.Eras)
	out.DayPeriods = mergeWidths(out.DayPeriods, overlay.DayPeriods)
	out.DateFormats = mergeLengths(out.DateFormats, overlay.DateFormats)
	out.TimeFormats = mergeLengths(out.TimeFormats, overlay.TimeFormats)
	out.DateTimeFormats = mergeLengths(out.DateTimeFormats, overlay.DateTimeFormats)
	if len(overlay.AvailableFormats) > 0 {
		if out.AvailableFormats == nil {
			out.AvailableFormats = make(map[string]string, len(overlay.AvailableFormats))
		}
		for skeleton, pattern := range overlay.AvailableFormats {
			out.AvailableFormats[skeleton] = pattern
		}
	}
	if overlay.TimeZoneNames.HourFormat != "" {
		out.TimeZoneNames.HourFormat = overlay.TimeZoneNames.HourFormat
	}
	if overlay.TimeZoneNames.GMTFormat != "" {
		out.TimeZoneNames.GMTFormat = overlay.TimeZoneNames.GMTFormat
	}
	if overlay.TimeZoneNames.GMTZeroFormat != "" {
		out.TimeZoneNames.GMTZeroFormat = overlay.TimeZoneNames.GMTZeroFormat
	}
	return out
}

func mergeWidths(base, overlay FieldWidths) FieldWidths {
	out := base
	if len(overlay.Abbreviated) > 0 {
		out.Abbreviated = append([]string(nil), overlay.Abbreviated...)
	}
	if len(overlay.Narrow) > 0 {
		out.Narrow = append([]string(nil), overlay.Narrow...)
	}
	if len(overlay.Wide) > 0 {
		out.Wide = append([]string(nil), overlay.Wide...)
	}
	if len(overlay.Short) > 0 {
		out.Short = append([]string(nil), overlay.Short...)
	}
	return out
}

func mergeLengths(base, overlay FormatLengths) FormatLengths {
	out := base
	if overlay.Short != "" {
		out.Short = overlay.Short
	}
	if overlay.Medium != "" {
		out.Medium = overlay.Medium
	}
	if overlay.Long != "" {
		out.Long = overlay.Long
	}
	if overlay.Full != "" {
		out.Full = overlay.Full
	}
	return out
}

func mergeNumbers(base, overlay Numbers) Numbers {
	out := base
	if overlay.DefaultSystem != "" {
		out.DefaultSystem = overlay.DefaultSystem
	}
	if len(overlay.Symbols) > 0 {
		if out.Symbols == nil {
			out.Symbols = make(map[string]Symbols, len(overlay.Symbols))
		}
		for system, symbols := range overlay.Symbols {
			out.Symbols[system] = symbols
		}
	}
	out.DecimalFormats = mergePatternSet(out.DecimalFormats, overlay.DecimalFormats)
	out.PercentFormats = mergePatternSet(out.PercentFormats, overlay.PercentFormats)
	out.CurrencyFormats = mergePatternSet(out.CurrencyFormats, overlay.CurrencyFormats)
	out.ScientificFormats = mergePatternSet(out.ScientificFormats, overlay.ScientificFormats)
	if len(overlay.Currencies) > 0 {
		if out.Currencies == nil {
			out.Currencies = make(map[string]CurrencyDisplay, len(overlay.Currencies))
		}
		for code, display := range overlay.Currencies {
			out.Currencies[code] = display
		}
	}
	return out
}

func mergePatternSet(base, overlay PatternSet) PatternSet {
	out := base
	if overlay.Standard != "" {
		out.Standard = overlay.Standard
	}
	if overlay.Accounting != "" {
		out.Accounting = overlay.Accounting
	}
	return out
}
