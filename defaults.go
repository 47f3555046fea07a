package cldr

// Built-in default locale data. Served whenever a requested culture is
// absent from the store; deliberate fallback behavior, not an error.

const defaultCulture = "en"

var builtinDefault = &Locale{
	Culture: defaultCulture,
	Calendars: Calendars{
		Gregorian: &Calendar{
			Months: FieldContexts{
				Format: FieldWidths{
					Abbreviated: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
					Narrow:      []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"},
					Wide: []string{
						"January", "February", "March", "April", "May", "June",
						"July", "August", "September", "October", "November", "December",
					},
				},
			},
			Days: FieldContexts{
				Format: FieldWidths{
					Abbreviated: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
					Narrow:      []string{"S", "M", "T", "W", "T", "F", "S"},
					Wide:        []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
					Short:       []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
				},
			},
			Eras: FieldWidths{
				Abbreviated: []string{"BC", "AD"},
				Narrow:      []string{"B", "A"},
				Wide:        []string{"Before Christ", "Anno Domini"},
			},
			DayPeriods: FieldWidths{
				Abbreviated: []string{"AM", "PM"},
				Narrow:      []string{"a", "p"},
				Wide:        []string{"AM", "PM"},
			},
			DateFormats: FormatLengths{
				Short:  "M/d/yy",
				Medium: "MMM d, y",
				Long:   "MMMM d, y",
				Full:   "EEEE, MMMM d, y",
			},
			TimeFormats: FormatLengths{
				Short:  "h:mm a",
				Medium: "h:mm:ss a",
				Long:   "h:mm:ss a z",
				Full:   "h:mm:ss a zzzz",
			},
			DateTimeFormats: FormatLengths{
				Short:  "{1}, {0}",
				Medium: "{1}, {0}",
				Long:   "{1} 'at' {0}",
				Full:   "{1} 'at' {0}",
			},
			AvailableFormats: map[string]string{
				"d":       "d",
				"E":       "ccc",
				"Ed":      "d E",
				"h":       "h a",
				"H":       "HH",
				"hm":      "h:mm a",
				"Hm":      "HH:mm",
				"hms":     "h:mm:ss a",
				"Hms":     "HH:mm:ss",
				"M":       "L",
				"Md":      "M/d",
				"MEd":     "E, M/d",
				"MMM":     "LLL",
				"MMMd":    "MMM d",
				"MMMEd":   "E, MMM d",
				"MMMMd":   "MMMM d",
				"ms":      "mm:ss",
				"y":       "y",
				"yM":      "M/y",
				"yMd":     "M/d/y",
				"yMEd":    "E, M/d/y",
				"yMMM":    "MMM y",
				"yMMMd":   "MMM d, y",
				"yMMMEd":  "E, MMM d, y",
				"yMMMM":   "MMMM y",
				"yQQQ":    "QQQ y",
				"GyMMMd":  "MMM d, y G",
				"hmsz":    "h:mm:ss a z",
				"yMdHms":  "M/d/y HH:mm:ss",
				"W":       "'week' W 'of' MMMM",
			},
			TimeZoneNames: TimeZoneNames{
				HourFormat:    "+HH:mm;-HH:mm",
				GMTFormat:     "GMT{0}",
				GMTZeroFormat: "GMT",
			},
		},
		Islamic: &Calendar{
			Months: FieldContexts{
				Format: FieldWidths{
					Abbreviated: []string{
						"Muh.", "Saf.", "Rab. I", "Rab. II", "Jum. I", "Jum. II",
						"Raj.", "Sha.", "Ram.", "Shaw.", "Dhuʻl-Q.", "Dhuʻl-H.",
					},
					Wide: []string{
						"Muharram", "Safar", "Rabiʻ I", "Rabiʻ II", "Jumada I", "Jumada II",
						"Rajab", "Shaʻban", "Ramadan", "Shawwal", "Dhuʻl-Qiʻdah", "Dhuʻl-Hijjah",
					},
					Narrow: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
				},
			},
			Days: FieldContexts{
				Format: FieldWidths{
					Abbreviated: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
					Narrow:      []string{"S", "M", "T", "W", "T", "F", "S"},
					Wide:        []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
					Short:       []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
				},
			},
			Eras: FieldWidths{
				Abbreviated: []string{"AH"},
				Narrow:      []string{"AH"},
				Wide:        []string{"AH"},
			},
			DayPeriods: FieldWidths{
				Abbreviated: []string{"AM", "PM"},
				Narrow:      []string{"a", "p"},
				Wide:        []string{"AM", "PM"},
			},
			DateFormats: FormatLengths{
				Short:  "M/d/y GGGGG",
				Medium: "MMM d, y G",
				Long:   "MMMM d, y G",
				Full:   "EEEE, MMMM d, y G",
			},
			TimeFormats: FormatLengths{
				Short:  "h:mm a",
				Medium: "h:mm:ss a",
				Long:   "h:mm:ss a z",
				Full:   "h:mm:ss a zzzz",
			},
			DateTimeFormats: FormatLengths{
				Short:  "{1}, {0}",
				Medium: "{1}, {0}",
				Long:   "{1} 'at' {0}",
				Full:   "{1} 'at' {0}",
			},
			AvailableFormats: map[string]string{
				"d":     "d",
				"Md":    "M/d",
				"MMMd":  "MMM d",
				"y":     "y G",
				"yMd":   "M/d/y G",
				"yMMMd": "MMM d, y G",
			},
			TimeZoneNames: TimeZoneNames{
				HourFormat:    "+HH:mm;-HH:mm",
				GMTFormat:     "GMT{0}",
				GMTZeroFormat: "GMT",
			},
		},
	},
	Numbers: Numbers{
		DefaultSystem: "latn",
		Symbols: map[string]Symbols{
			"latn": {
				Decimal:       ".",
				Group:         ",",
				Percent:       "%",
				PlusSign:      "+",
				MinusSign:     "-",
				Exponential:   "E",
				Infinity:      "∞",
				NaN:           "NaN",
				TimeSeparator: ":",
			},
		},
		DecimalFormats:    PatternSet{Standard: "#,##0.###"},
		PercentFormats:    PatternSet{Standard: "#,##0%"},
		CurrencyFormats:   PatternSet{Standard: "¤#,##0.00", Accounting: "¤#,##0.00;(¤#,##0.00)"},
		ScientificFormats: PatternSet{Standard: "#E0"},
		Currencies: map[string]CurrencyDisplay{
			"USD": {DisplayName: "US Dollar", Symbol: "$"},
			"EUR": {DisplayName: "Euro", Symbol: "€"},
			"GBP": {DisplayName: "British Pound", Symbol: "£"},
			"JPY": {DisplayName: "Japanese Yen", Symbol: "¥"},
		},
	},
}

// builtinLocale returns the built-in default tree. Shared and read-only;
// callers must treat it as immutable.
func builtinLocale() *Locale {
	return builtinDefault
}
