// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dst

import (
	"fmt"

	"cloudeng.io/datetime"
)

// Window is an inclusive range of signed day deltas for which text is
// rendered. A Window with Lower > Upper is empty.
type Window struct {
	Lower int `yaml:"lower" cmd:"the earliest day, relative to a transition, for which to display notices, typically negative"`
	Upper int `yaml:"upper" cmd:"the latest day, relative to a transition, for which to display notices"`
}

// DefaultWindow covers the week after a transition and the
// six and a half weeks before it.
var DefaultWindow = Window{Lower: -7, Upper: 45}

// Contains returns true if delta lies within the window.
func (w Window) Contains(delta int) bool {
	return delta >= w.Lower && delta <= w.Upper
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d]", w.Lower, w.Upper)
}

// Describe returns the text for a transition that is delta days in the
// future, or in the past if delta is negative.
func Describe(kind Kind, delta int) string {
	tag := kind.Tag()
	switch {
	case delta < -1:
		return fmt.Sprintf("%sed %d days ago", tag, -delta)
	case delta == -1:
		return tag + "ed yesterday"
	case delta == 0:
		return tag + "s today"
	case delta == 1:
		return tag + "s tomorrow"
	default:
		return fmt.Sprintf("%ss in %d days", tag, delta)
	}
}

// Notice is a rendered description of a transition relative to a
// reference date.
type Notice struct {
	Kind  Kind
	Zone  string
	Date  datetime.CalendarDate // Date of the transition.
	Delta int                   // Days from the reference date to Date.
	Text  string
}

func (n Notice) String() string {
	return n.Text
}

// StartText returns the text describing the start of daylight saving
// time in the year and zone of reference. It returns false if the zone
// does not observe the transition that year or if the transition lies
// outside of the window.
func (c *Calculator) StartText(reference ZonedInstant, window Window) (string, bool, error) {
	return c.Text(Start, reference, window)
}

// EndText is like StartText for the end of daylight saving time.
func (c *Calculator) EndText(reference ZonedInstant, window Window) (string, bool, error) {
	return c.Text(End, reference, window)
}

// Text returns the text for the specified kind of transition, see StartText.
func (c *Calculator) Text(kind Kind, reference ZonedInstant, window Window) (string, bool, error) {
	n, ok, err := c.Notice(kind, reference, window)
	return n.Text, ok, err
}

// Notice returns the Notice for the specified kind of transition, see
// StartText.
func (c *Calculator) Notice(kind Kind, reference ZonedInstant, window Window) (Notice, bool, error) {
	tr, err := c.Zoned(kind, reference.Date.Year(), reference.Zone)
	if err != nil {
		return Notice{}, false, err
	}
	date, ok := tr.Date()
	if !ok {
		return Notice{}, false, nil
	}
	delta := DaysBetween(reference.Date, date)
	if !window.Contains(delta) {
		return Notice{}, false, nil
	}
	return Notice{
		Kind:  kind,
		Zone:  reference.Zone,
		Date:  date,
		Delta: delta,
		Text:  Describe(kind, delta),
	}, true, nil
}

// Notices returns the notices, in calendar order, for both transitions
// relative to reference.
func (c *Calculator) Notices(reference ZonedInstant, window Window) ([]Notice, error) {
	var notices []Notice
	for _, kind := range Kinds {
		n, ok, err := c.Notice(kind, reference, window)
		if err != nil {
			return nil, err
		}
		if ok {
			notices = append(notices, n)
		}
	}
	return notices, nil
}
