// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dst

import (
	"io"
	"log/slog"

	"cloudeng.io/datetime"
)

type Option func(o *options)

type options struct {
	oracle ZoneRuleOracle
	logger *slog.Logger
}

// WithOracle sets the ZoneRuleOracle used to verify transitions, the
// default is a TZDatabase.
func WithOracle(o ZoneRuleOracle) Option {
	return func(opts *options) {
		opts.oracle = o
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Calculator verifies nominal transition dates against a ZoneRuleOracle.
type Calculator struct {
	options
}

// New returns a new Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(&c.options)
	}
	if c.oracle == nil {
		c.oracle = NewTZDatabase()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	c.logger = c.logger.With("mod", "dst")
	return c
}

// Oracle returns the ZoneRuleOracle in use.
func (c *Calculator) Oracle() ZoneRuleOracle {
	return c.oracle
}

func (c *Calculator) dstAtNoon(date datetime.CalendarDate, zone string) (bool, error) {
	return c.oracle.IsDaylightSaving(ZonedInstant{Date: date, TimeOfDay: Noon, Zone: zone})
}

// IsZoneStart returns true if date is the nominal start date and daylight
// saving time is in effect at noon on that date in zone. Transitions occur
// at 2AM local time so noon is always past the change.
func (c *Calculator) IsZoneStart(date datetime.CalendarDate, zone string) (bool, error) {
	if !IsNominalStart(date) {
		return false, nil
	}
	return c.dstAtNoon(date, zone)
}

// IsZoneEnd returns true if date is the nominal end date and daylight
// saving time is in effect at noon on the previous day in zone. The
// previous day is sampled since by noon on date daylight saving time
// has already ended.
func (c *Calculator) IsZoneEnd(date datetime.CalendarDate, zone string) (bool, error) {
	if !IsNominalEnd(date) {
		return false, nil
	}
	return c.dstAtNoon(date.Yesterday(), zone)
}

// IsZone calls IsZoneStart or IsZoneEnd according to kind.
func (c *Calculator) IsZone(kind Kind, date datetime.CalendarDate, zone string) (bool, error) {
	if kind == End {
		return c.IsZoneEnd(date, zone)
	}
	return c.IsZoneStart(date, zone)
}

// ZonedStart returns the start of daylight saving time for year in zone.
func (c *Calculator) ZonedStart(year int, zone string) (Transition, error) {
	return c.Zoned(Start, year, zone)
}

// ZonedEnd returns the end of daylight saving time for year in zone.
func (c *Calculator) ZonedEnd(year int, zone string) (Transition, error) {
	return c.Zoned(End, year, zone)
}

// Zoned returns the transition of the specified kind for year in zone.
// The returned Transition is not observed if zone does not follow the
// US rule for that year.
func (c *Calculator) Zoned(kind Kind, year int, zone string) (Transition, error) {
	date := Nominal(kind, year)
	ok, err := c.IsZone(kind, date, zone)
	if err != nil {
		return Transition{}, err
	}
	if !ok {
		c.logger.Debug("not observed", "kind", kind.String(), "year", year, "zone", zone)
		return absentTransition(kind, zone, year), nil
	}
	return observedTransition(kind, zone, date), nil
}
