package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	cldr "github.com/goliatone/go-cldr"
)

type cliConfig struct {
	culture  string
	mode     string
	skeleton string
	format   string
	calendar string
	currency string
	parse    bool
	lenient  bool
	files    []string
	value    string
}

type fileFlag struct {
	items []string
}

func (f *fileFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *fileFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "cldr-format: %v\n", err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig
	var files fileFlag

	flag.StringVar(&cfg.culture, "culture", "en", "culture tag (e.g. en, de-DE, ar-SA)")
	flag.StringVar(&cfg.mode, "mode", "date", "what to handle: date or number")
	flag.StringVar(&cfg.skeleton, "skeleton", "", "format skeleton (short, medium, yMd, N2, C, ...)")
	flag.StringVar(&cfg.format, "format", "", "explicit pattern, overrides -skeleton")
	flag.StringVar(&cfg.calendar, "calendar", "", "calendar: gregorian (default) or islamic")
	flag.StringVar(&cfg.currency, "currency", "", "ISO currency code for C skeletons")
	flag.BoolVar(&cfg.parse, "parse", false, "parse the value instead of formatting it")
	flag.BoolVar(&cfg.lenient, "lenient", false, "fall back to lenient date parsing")
	flag.Var(&files, "locale-file", "locale data file (JSON or YAML). Repeat flag to add more.")

	flag.Parse()

	if cfg.mode != "date" && cfg.mode != "number" {
		return cliConfig{}, fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if flag.NArg() != 1 {
		return cliConfig{}, errors.New("exactly one value argument is required")
	}

	cfg.files = files.items
	cfg.value = flag.Arg(0)
	return cfg, nil
}

func run(cfg cliConfig) error {
	opts := []cldr.Option{cldr.WithDefaultCulture(cfg.culture)}
	if len(cfg.files) > 0 {
		opts = append(opts, cldr.WithLoader(cldr.NewFileLoader(cfg.files...)))
	}

	engine, err := cldr.New(opts...)
	if err != nil {
		return err
	}

	if cfg.mode == "number" {
		return runNumber(engine, cfg)
	}
	return runDate(engine, cfg)
}

func runDate(engine *cldr.Engine, cfg cliConfig) error {
	opts := cldr.DateFormatOptions{
		Skeleton: cfg.skeleton,
		Format:   cfg.format,
		Calendar: cfg.calendar,
		Lenient:  cfg.lenient,
	}

	if cfg.parse {
		parse, err := engine.DateParser(cfg.culture, opts)
		if err != nil {
			return err
		}
		t, ok := parse(cfg.value)
		if !ok {
			return fmt.Errorf("cannot parse %q as a date", cfg.value)
		}
		fmt.Println(t.Format(time.RFC3339))
		return nil
	}

	t, err := readTime(cfg.value)
	if err != nil {
		return err
	}
	format, err := engine.DateFormatter(cfg.culture, opts)
	if err != nil {
		return err
	}
	fmt.Println(format(t))
	return nil
}

func runNumber(engine *cldr.Engine, cfg cliConfig) error {
	opts := cldr.NumberFormatOptions{
		Skeleton: cfg.skeleton,
		Format:   cfg.format,
		Currency: cfg.currency,
	}

	if cfg.parse {
		parse, err := engine.NumberParser(cfg.culture, opts)
		if err != nil {
			return err
		}
		value := parse(cfg.value)
		if math.IsNaN(value) {
			return fmt.Errorf("cannot parse %q as a number", cfg.value)
		}
		fmt.Println(strconv.FormatFloat(value, 'f', -1, 64))
		return nil
	}

	value, err := strconv.ParseFloat(cfg.value, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q", cfg.value)
	}
	format, err := engine.NumberFormatter(cfg.culture, opts)
	if err != nil {
		return err
	}
	fmt.Println(format(value))
	return nil
}

// readTime accepts RFC 3339, a bare date, or "now".
func readTime(value string) (time.Time, error) {
	if value == "now" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time value %q (want RFC 3339, YYYY-MM-DD, or now)", value)
}
