// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dst

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"cloudeng.io/datetime"
)

// ErrUnknownZone is returned, wrapped, when a time zone identifier
// cannot be resolved.
var ErrUnknownZone = errors.New("unknown time zone")

// Noon is the time of day at which zone rules are sampled.
var Noon = datetime.NewTimeOfDay(12, 0, 0)

// ZonedInstant represents a local date and time of day in a named zone.
type ZonedInstant struct {
	Date      datetime.CalendarDate
	TimeOfDay datetime.TimeOfDay
	Zone      string
}

// ZonedInstantFromTime returns the ZonedInstant for t using the name of
// its location as the zone identifier.
func ZonedInstantFromTime(t time.Time) ZonedInstant {
	return ZonedInstant{
		Date:      datetime.CalendarDateFromTime(t),
		TimeOfDay: datetime.TimeOfDayFromTime(t),
		Zone:      t.Location().String(),
	}
}

// Time returns the time.Time for the instant in the supplied location.
func (zi ZonedInstant) Time(loc *time.Location) time.Time {
	return zi.Date.Time(zi.TimeOfDay, loc)
}

func (zi ZonedInstant) String() string {
	return fmt.Sprintf("%v %v %v", FormatDate(zi.Date), zi.TimeOfDay, zi.Zone)
}

// ZoneRuleOracle reports whether daylight saving time is in effect at
// a given instant in a given zone. Implementations must be safe for
// concurrent use and must return an error for zones they cannot resolve.
type ZoneRuleOracle interface {
	IsDaylightSaving(instant ZonedInstant) (bool, error)
}

// TZDatabase is a ZoneRuleOracle backed by the IANA time zone database
// as made available by time.LoadLocation.
type TZDatabase struct {
	mu        sync.Mutex
	locations map[string]*time.Location
}

// NewTZDatabase returns a new TZDatabase.
func NewTZDatabase() *TZDatabase {
	return &TZDatabase{locations: map[string]*time.Location{}}
}

// Location returns the time.Location for zone, loading and caching
// it if necessary.
func (db *TZDatabase) Location(zone string) (*time.Location, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if loc, ok := db.locations[zone]; ok {
		return loc, nil
	}
	// time.LoadLocation treats "" as UTC which hides configuration errors.
	if len(zone) == 0 {
		return nil, fmt.Errorf("%w: empty zone name", ErrUnknownZone)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, zone, err)
	}
	if db.locations == nil {
		db.locations = map[string]*time.Location{}
	}
	db.locations[zone] = loc
	return loc, nil
}

// IsDaylightSaving implements ZoneRuleOracle.
func (db *TZDatabase) IsDaylightSaving(instant ZonedInstant) (bool, error) {
	loc, err := db.Location(instant.Zone)
	if err != nil {
		return false, err
	}
	return instant.Time(loc).IsDST(), nil
}
