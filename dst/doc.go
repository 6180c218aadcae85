// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dst computes United States style Daylight Saving Time transition
// dates for a given year and time zone and renders short relative-day
// descriptions of them such as "Starts in 3 days" or "Ended yesterday".
//
// The nominal transition dates follow the post-2007 US rule: DST starts on
// the second Sunday in March and ends on the first Sunday in November. A
// nominal date is only reported for a zone if a ZoneRuleOracle confirms
// that the zone actually observes the transition on that date, so zones
// such as America/Phoenix or fixed offset zones never have transitions.
//
// All of the functions and methods in this package are safe for concurrent
// use provided that the ZoneRuleOracle in use is also.
package dst
