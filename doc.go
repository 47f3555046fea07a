// Package cldr implements locale-aware date and number formatting and
// parsing driven by CLDR-style locale data.
//
// The engine is compiled, not interpreted: a (culture, options) pair plus a
// locale-data snapshot produces a closure that renders values to localized
// strings, and a mirror closure that parses localized strings back into
// values. Compiled closures capture only immutable field tables and are safe
// for concurrent use.
//
// Locale data is held in an immutable LocaleStore snapshot. Loading merges
// CLDR-like trees (JSON or YAML) into a new snapshot; a built-in default
// locale backs every lookup so a missing culture never fails.
//
// Dates support the Gregorian and tabular Islamic (Hijri) calendars; see
// ToHijri and HijriDate for the standalone calendar converter.
package cldr
