// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dst_test

import (
	"testing"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/dst"
)

func weekday(cd datetime.CalendarDate) time.Weekday {
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, time.UTC).Weekday()
}

func TestNominalDates(t *testing.T) {
	nd := datetime.NewCalendarDate
	for i, tc := range []struct {
		year       int
		start, end datetime.CalendarDate
	}{
		{2007, nd(2007, 3, 11), nd(2007, 11, 4)},
		{2023, nd(2023, 3, 12), nd(2023, 11, 5)},
		{2024, nd(2024, 3, 10), nd(2024, 11, 3)},
		{2025, nd(2025, 3, 9), nd(2025, 11, 2)},
		{2026, nd(2026, 3, 8), nd(2026, 11, 1)},
		{2027, nd(2027, 3, 14), nd(2027, 11, 7)},
	} {
		if got, want := dst.NominalStart(tc.year), tc.start; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := dst.NominalEnd(tc.year), tc.end; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := dst.Nominal(dst.Start, tc.year), tc.start; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := dst.Nominal(dst.End, tc.year), tc.end; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestNominalRanges(t *testing.T) {
	for year := 1900; year <= 2200; year++ {
		start, end := dst.NominalStart(year), dst.NominalEnd(year)
		if got, want := weekday(start), time.Sunday; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if got, want := weekday(end), time.Sunday; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if start.Year() != year || start.Month() != 3 || start.Day() < 8 || start.Day() > 14 {
			t.Errorf("%v: start out of range: %v", year, dst.FormatDate(start))
		}
		if end.Year() != year || end.Month() != 11 || end.Day() < 1 || end.Day() > 7 {
			t.Errorf("%v: end out of range: %v", year, dst.FormatDate(end))
		}
	}
}

func TestIsNominal(t *testing.T) {
	for _, year := range []int{2023, 2024, 2100} {
		nstart, nend := 0, 0
		jan1 := datetime.NewCalendarDate(year, 1, 1)
		for d := range 366 {
			day := dst.AddDays(jan1, d)
			if day.Year() != year {
				break
			}
			if dst.IsNominalStart(day) {
				nstart++
			}
			if dst.IsNominalEnd(day) {
				nend++
			}
		}
		if got, want := nstart, 1; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
		if got, want := nend, 1; got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestCalendarHelpers(t *testing.T) {
	nd := datetime.NewCalendarDate
	for i, tc := range []struct {
		from, to datetime.CalendarDate
		delta    int
	}{
		{nd(2024, 3, 10), nd(2024, 3, 10), 0},
		{nd(2024, 3, 9), nd(2024, 3, 10), 1},
		{nd(2024, 3, 11), nd(2024, 3, 10), -1},
		{nd(2024, 2, 20), nd(2024, 3, 10), 19},
		{nd(2024, 1, 1), nd(2024, 3, 10), 69},
		{nd(2023, 12, 31), nd(2024, 1, 1), 1},
		{nd(2024, 11, 3), nd(2024, 3, 10), -238},
		{nd(1700, 1, 1), nd(2024, 1, 1), 118338},
		{nd(2024, 1, 1), nd(1700, 1, 1), -118338},
		{nd(1900, 2, 28), nd(2200, 3, 1), 109574},
	} {
		if got, want := dst.DaysBetween(tc.from, tc.to), tc.delta; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := dst.AddDays(tc.from, tc.delta), tc.to; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	day := nd(2023, 12, 25)
	for i := 0; i < 500; i++ {
		if got, want := dst.AddDays(day, 1), day.Tomorrow(); got != want {
			t.Errorf("%v: got %v, want %v", day, got, want)
		}
		if got, want := dst.DaysBetween(day, day.Tomorrow()), 1; got != want {
			t.Errorf("%v: got %v, want %v", day, got, want)
		}
		day = day.Tomorrow()
	}

	if !dst.EqualYearMonth(nd(2024, 3, 1), nd(2024, 3, 31)) {
		t.Errorf("expected same year and month")
	}
	if dst.EqualYearMonth(nd(2024, 3, 1), nd(2023, 3, 1)) {
		t.Errorf("expected different year")
	}
	if dst.EqualYearMonth(nd(2024, 3, 31), nd(2024, 4, 1)) {
		t.Errorf("expected different month")
	}

	if got, want := dst.FormatDate(nd(2024, 3, 9)), "2024-03-09"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	cd, err := dst.ParseDate("2024-11-03")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cd, nd(2024, 11, 3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := dst.ParseDate("11/03/2024"); err == nil {
		t.Errorf("expected an error")
	}
}
