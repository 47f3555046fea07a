package cldr

// LocaleStore is an immutable snapshot of locale data. Build one before
// compiling formatters; Merge returns a new snapshot instead of mutating, so
// compiled closures keep reading a consistent tree.
type LocaleStore struct {
	locales  map[string]*Locale
	cultures []string
}

// NewLocaleStore builds a snapshot from the given trees. Input is deep-copied
// so later mutation by the caller cannot leak into the store. The built-in
// default locale backs every lookup and need not be present.
func NewLocaleStore(data map[string]*Locale) *LocaleStore {
	locales := make(map[string]*Locale, len(data))
	set := make(map[string]struct{}, len(data))

	for culture, locale := range data {
		if locale == nil {
			continue
		}
		culture = normalizeCulture(culture)
		if culture == "" {
			continue
		}
		clone := locale.Clone()
		if clone.Culture == "" {
			clone.Culture = culture
		}
		locales[culture] = clone
		set[culture] = struct{}{}
	}

	return &LocaleStore{locales: locales, cultures: sortedCultures(set)}
}

// NewLocaleStoreFromLoader hydrates a store using the provided loader.
func NewLocaleStoreFromLoader(loader Loader) (*LocaleStore, error) {
	if loader == nil {
		return NewLocaleStore(nil), nil
	}

	data, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewLocaleStore(data), nil
}

// Merge returns a new snapshot with the given trees layered on top of the
// receiver. The receiver is left untouched.
func (s *LocaleStore) Merge(data map[string]*Locale) *LocaleStore {
	combined := make(map[string]*Locale, len(s.locales)+len(data))
	if s != nil {
		for culture, locale := range s.locales {
			combined[culture] = locale
		}
	}
	for culture, locale := range data {
		if locale == nil {
			continue
		}
		culture = normalizeCulture(culture)
		if culture == "" {
			continue
		}
		if base, ok := combined[culture]; ok {
			combined[culture] = mergeLocales(base, locale)
			continue
		}
		combined[culture] = locale
	}
	return NewLocaleStore(combined)
}

// Locale resolves a culture to its data tree: exact match first, then the
// culture's parent chain, finally the built-in default. Never nil.
func (s *LocaleStore) Locale(culture string) *Locale {
	culture = normalizeCulture(culture)
	if s != nil && culture != "" {
		if locale, ok := s.locales[culture]; ok {
			return locale
		}
		for _, parent := range cultureParentChain(culture) {
			if locale, ok := s.locales[parent]; ok {
				return locale
			}
		}
	}
	return builtinLocale()
}

// Has reports whether the culture is present without falling back.
func (s *LocaleStore) Has(culture string) bool {
	if s == nil {
		return false
	}
	_, ok := s.locales[normalizeCulture(culture)]
	return ok
}

// Cultures lists the culture ids loaded into this snapshot, sorted.
func (s *LocaleStore) Cultures() []string {
	if s == nil || len(s.cultures) == 0 {
		return nil
	}
	out := make([]string, len(s.cultures))
	copy(out, s.cultures)
	return out
}
