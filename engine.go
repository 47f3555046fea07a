package cldr

// Config captures engine setup
type Config struct {
	DefaultCulture string
	Store          *LocaleStore
	Loader         Loader
	Locales        map[string]*Locale
}

// Option mutates Config during construction
type Option func(*Config) error

// Engine compiles culture-aware formatting and parsing closures from a
// locale store. The zero value is usable and serves the built-in "en" data.
type Engine struct {
	store          *LocaleStore
	defaultCulture string
}

// New builds an Engine via supplied options.
func New(opts ...Option) (*Engine, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	store := cfg.Store
	if store == nil && cfg.Loader != nil {
		loaded, err := NewLocaleStoreFromLoader(cfg.Loader)
		if err != nil {
			return nil, err
		}
		store = loaded
	}
	if store == nil {
		store = NewLocaleStore(cfg.Locales)
	} else if len(cfg.Locales) > 0 {
		store = store.Merge(cfg.Locales)
	}

	culture := cfg.DefaultCulture
	if culture == "" {
		culture = defaultCulture
	}

	return &Engine{store: store, defaultCulture: normalizeCulture(culture)}, nil
}

// WithDefaultCulture sets the culture used when a request passes "".
func WithDefaultCulture(culture string) Option {
	return func(c *Config) error {
		c.DefaultCulture = culture
		return nil
	}
}

// WithStore supplies a prebuilt locale store.
func WithStore(store *LocaleStore) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

// WithLoader loads locale data through a Loader when no store is given.
func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

// WithLocaleData registers in-memory locale definitions, merged over
// whatever the store or loader provides.
func WithLocaleData(locales map[string]*Locale) Option {
	return func(c *Config) error {
		if c.Locales == nil {
			c.Locales = make(map[string]*Locale, len(locales))
		}
		for culture, locale := range locales {
			c.Locales[normalizeCulture(culture)] = locale
		}
		return nil
	}
}

// DefaultCulture reports the engine's fallback culture.
func (e *Engine) DefaultCulture() string {
	if e == nil || e.defaultCulture == "" {
		return defaultCulture
	}
	return e.defaultCulture
}

// Cultures lists the cultures with registered locale data.
func (e *Engine) Cultures() []string {
	if e == nil || e.store == nil {
		return nil
	}
	return e.store.Cultures()
}

// locale resolves the culture through the store's parent chain; it never
// returns nil.
func (e *Engine) locale(culture string) *Locale {
	if culture == "" {
		culture = e.DefaultCulture()
	}
	if e == nil || e.store == nil {
		return builtinLocale()
	}
	return e.store.Locale(culture)
}
