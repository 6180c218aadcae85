// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package logging

import (
	"bufio"
	"encoding/json"
	"io"
	"iter"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/dst"
)

type logEntry struct {
	Msg          string    `json:"msg"`
	Mod          string    `json:"mod"`
	Zone         string    `json:"zone"`
	Kind         string    `json:"kind"`
	Date         Date      `json:"date"`
	Transition   Date      `json:"transition"`
	Delta        int       `json:"delta"`
	Text         string    `json:"text"`
	NumNotices   int       `json:"#notices"`
	Due          time.Time `json:"due"`
	Location     string    `json:"loc"`
	Year         int       `json:"year"`
	YearEndDelay int64     `json:"year-end-delay"`
}

type Entry struct {
	logEntry

	Kind         dst.Kind
	Date         datetime.CalendarDate
	Transition   datetime.CalendarDate
	Due          time.Time
	YearEndDelay time.Duration
	LogEntry     string // Original log line
}

func ParseLogLine(line string) (Entry, error) {
	var le Entry
	le.LogEntry = line
	if err := json.Unmarshal([]byte(line), &le.logEntry); err != nil {
		return le, err
	}
	le.Date = datetime.CalendarDate(le.logEntry.Date)
	le.Transition = datetime.CalendarDate(le.logEntry.Transition)
	le.YearEndDelay = time.Duration(le.logEntry.YearEndDelay)
	le.Due = le.logEntry.Due
	if len(le.Location) != 0 {
		loc, err := time.LoadLocation(le.Location)
		if err != nil {
			return le, err
		}
		le.Due = le.Due.In(loc)
	}
	if len(le.logEntry.Kind) != 0 {
		k, err := dst.ParseKind(le.logEntry.Kind)
		if err != nil {
			return le, err
		}
		le.Kind = k
	}
	return le, nil
}

// Notice returns the dst.Notice recorded by a notice log entry.
func (le Entry) Notice() dst.Notice {
	return dst.Notice{
		Kind:  le.Kind,
		Zone:  le.Zone,
		Date:  le.Transition,
		Delta: le.Delta,
		Text:  le.Text,
	}
}

type Scanner struct {
	sc  *bufio.Scanner
	err error
}

func NewScanner(rd io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(rd)}
}

// Entries returns an iterator for over the Scanner's Entry's. Note
// that the iterator will stop if an error is encountered and that the
// Scanner's Err method should be checked after the iterator has completed.
func (ls *Scanner) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for {
			if !ls.sc.Scan() {
				ls.err = ls.sc.Err()
				return
			}
			line := ls.sc.Text()
			le, err := ParseLogLine(line)
			if err != nil {
				ls.err = err
				return
			}
			if !yield(le) {
				return
			}
		}
	}
}

func (ls *Scanner) Err() error {
	return ls.err
}
