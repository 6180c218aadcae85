// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dst

import (
	"time"

	"cloudeng.io/datetime"
)

var midnight = datetime.NewTimeOfDay(0, 0, 0)

// nthSunday returns the nth Sunday of the specified month and year.
func nthSunday(year int, month datetime.Month, n int) datetime.CalendarDate {
	first := datetime.NewCalendarDate(year, month, 1).Time(midnight, time.UTC)
	offset := (7 - int(first.Weekday())) % 7
	return datetime.NewCalendarDate(year, month, 1+offset+(n-1)*7)
}

// NominalStart returns the second Sunday in March for the specified year.
func NominalStart(year int) datetime.CalendarDate {
	return nthSunday(year, datetime.March, 2)
}

// NominalEnd returns the first Sunday in November for the specified year.
func NominalEnd(year int) datetime.CalendarDate {
	return nthSunday(year, datetime.November, 1)
}

// Nominal returns the nominal date for the specified kind of transition.
func Nominal(kind Kind, year int) datetime.CalendarDate {
	if kind == End {
		return NominalEnd(year)
	}
	return NominalStart(year)
}

// IsNominalStart returns true if date is the second Sunday in March.
func IsNominalStart(date datetime.CalendarDate) bool {
	return date == NominalStart(date.Year())
}

// IsNominalEnd returns true if date is the first Sunday in November.
func IsNominalEnd(date datetime.CalendarDate) bool {
	return date == NominalEnd(date.Year())
}

// EqualYearMonth returns true if a and b fall in the same month of the
// same year.
func EqualYearMonth(a, b datetime.CalendarDate) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysBetween returns the signed number of whole calendar days from from
// to to, positive if to is after from.
func DaysBetween(from, to datetime.CalendarDate) int {
	f, t := midnightUTC(from), midnightUTC(to)
	return int((t.Unix() - f.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// AddDays returns the date that is n days after date, n may be negative.
func AddDays(date datetime.CalendarDate, n int) datetime.CalendarDate {
	return datetime.CalendarDateFromTime(midnightUTC(date).AddDate(0, 0, n))
}

func midnightUTC(date datetime.CalendarDate) time.Time {
	return date.Time(midnight, time.UTC)
}

// FormatDate returns date in YYYY-MM-DD format.
func FormatDate(date datetime.CalendarDate) string {
	return midnightUTC(date).Format(time.DateOnly)
}

// ParseDate parses a date in YYYY-MM-DD format.
func ParseDate(val string) (datetime.CalendarDate, error) {
	var cd datetime.CalendarDate
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return cd, err
	}
	return datetime.CalendarDateFromTime(t), nil
}
