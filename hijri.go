package cldr

import "time"

// Tabular (civil) Islamic calendar arithmetic. Conversions run through
// Julian day numbers, so ToHijri and Gregorian are exact inverses for every
// valid Hijri date in the supported epoch range.

// hijriEpoch is the Julian day number of 1 Muharram AH 1 (16 July 622 CE).
const hijriEpoch = 1948440

// HijriDate is a date in the Islamic calendar. Month runs 1-12, Day 1-30.
type HijriDate struct {
	Year  int
	Month int
	Day   int
}

// ToHijri converts the Gregorian calendar date of t to the Islamic calendar.
// Time of day and zone are ignored.
func ToHijri(t time.Time) HijriDate {
	jdn := gregorianJDN(t.Year(), int(t.Month()), t.Day())
	return jdnHijri(jdn)
}

// Gregorian converts the Hijri date back to a Gregorian time.Time at
// midnight UTC.
func (h HijriDate) Gregorian() time.Time {
	y, m, d := jdnGregorian(hijriJDN(h.Year, h.Month, h.Day))
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the month length for the tabular calendar: odd months
// have 30 days, even months 29, and the 12th month 30 in leap years.
func (h HijriDate) DaysInMonth() int {
	if h.Month%2 == 1 {
		return 30
	}
	if h.Month == 12 && hijriLeapYear(h.Year) {
		return 30
	}
	return 29
}

// hijriLeapYear follows the 30-year tabular cycle with 11 leap years.
func hijriLeapYear(year int) bool {
	r := (14 + 11*year) % 30
	if r < 0 {
		r += 30
	}
	return r < 11
}

func hijriJDN(year, month, day int) int {
	// ceil(29.5 * (month-1)) in integer arithmetic.
	monthDays := (59*(month-1) + 1) / 2
	return day + monthDays + (year-1)*354 + floorDiv(3+11*year, 30) + hijriEpoch - 1
}

func jdnHijri(jdn int) HijriDate {
	year := floorDiv(30*(jdn-hijriEpoch)+10646, 10631)
	month := 2*(jdn-hijriJDN(year, 1, 1))/59 + 1
	if month > 12 {
		month = 12
	}
	day := jdn - hijriJDN(year, month, 1) + 1
	return HijriDate{Year: year, Month: month, Day: day}
}

func gregorianJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

func jdnGregorian(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := floorDiv(4*a+3, 146097)
	c := a - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)

	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
