// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package testutil

import (
	"fmt"
	"sync"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/dst"
)

// ScriptedOracle is a dst.ZoneRuleOracle that returns scripted answers.
// Zones must be added with AddZone before being queried, any date for which
// there is no scripted answer is reported as not being in daylight saving time.
type ScriptedOracle struct {
	mu      sync.Mutex
	zones   map[string]map[datetime.CalendarDate]bool
	queries []dst.ZonedInstant
}

func NewScriptedOracle() *ScriptedOracle {
	return &ScriptedOracle{zones: map[string]map[datetime.CalendarDate]bool{}}
}

// AddZone adds zone with daylight saving time in effect on the specified dates.
func (so *ScriptedOracle) AddZone(zone string, dstDates ...datetime.CalendarDate) {
	so.mu.Lock()
	defer so.mu.Unlock()
	dates := so.zones[zone]
	if dates == nil {
		dates = map[datetime.CalendarDate]bool{}
		so.zones[zone] = dates
	}
	for _, d := range dstDates {
		dates[d] = true
	}
}

// AddRange adds zone with daylight saving time in effect for every day
// from start up to, but not including, end.
func (so *ScriptedOracle) AddRange(zone string, start, end datetime.CalendarDate) {
	var dates []datetime.CalendarDate
	for d := start; d != end; d = d.Tomorrow() {
		dates = append(dates, d)
	}
	so.AddZone(zone, dates...)
}

func (so *ScriptedOracle) IsDaylightSaving(instant dst.ZonedInstant) (bool, error) {
	so.mu.Lock()
	defer so.mu.Unlock()
	so.queries = append(so.queries, instant)
	dates, ok := so.zones[instant.Zone]
	if !ok {
		return false, fmt.Errorf("%w: %q", dst.ErrUnknownZone, instant.Zone)
	}
	return dates[instant.Date], nil
}

// Queries returns the instants queried so far.
func (so *ScriptedOracle) Queries() []dst.ZonedInstant {
	so.mu.Lock()
	defer so.mu.Unlock()
	return append([]dst.ZonedInstant{}, so.queries...)
}
