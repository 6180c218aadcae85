// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dst

import (
	"fmt"

	"cloudeng.io/datetime"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies one of the two annual transitions.
type Kind int

const (
	Start Kind = iota
	End
)

// Kinds lists both transitions in calendar order.
var Kinds = []Kind{Start, End}

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Tag returns the title cased name of the transition as used when
// rendering text, ie. "Start" or "End".
func (k Kind) Tag() string {
	return cases.Title(language.English).String(k.String())
}

// ParseKind parses "start" or "end" into a Kind.
func ParseKind(val string) (Kind, error) {
	switch val {
	case "start":
		return Start, nil
	case "end":
		return End, nil
	}
	return Start, fmt.Errorf("unknown transition kind: %q", val)
}

// Transition is the outcome of looking up a transition for a year and zone.
// A zone that does not observe the transition in that year has a
// Transition for which Observed returns false; this is an expected
// outcome rather than an error.
type Transition struct {
	Kind     Kind
	Zone     string
	Year     int
	date     datetime.CalendarDate
	observed bool
}

func observedTransition(kind Kind, zone string, date datetime.CalendarDate) Transition {
	return Transition{Kind: kind, Zone: zone, Year: date.Year(), date: date, observed: true}
}

func absentTransition(kind Kind, zone string, year int) Transition {
	return Transition{Kind: kind, Zone: zone, Year: year}
}

// Observed returns true if the zone observes the transition.
func (t Transition) Observed() bool {
	return t.observed
}

// Date returns the date of the transition and true if it is observed,
// or false otherwise.
func (t Transition) Date() (datetime.CalendarDate, bool) {
	return t.date, t.observed
}

func (t Transition) String() string {
	if !t.observed {
		return fmt.Sprintf("%v %v %v: none", t.Zone, t.Year, t.Kind)
	}
	return fmt.Sprintf("%v %v %v: %v", t.Zone, t.Year, t.Kind, FormatDate(t.date))
}
