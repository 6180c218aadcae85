// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package logging

import (
	"fmt"
	"iter"
	"sync"
	"time"

	"cloudeng.io/algo/container/list"
	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/dst"
)

// StatusRecorder tracks the daily notices that are waiting to be
// displayed and those that have been completed.
type StatusRecorder struct {
	mu      sync.Mutex
	done    []*StatusRecord
	waiting *list.Double[*StatusRecord]
}

func NewStatusRecorder() *StatusRecorder {
	return &StatusRecorder{
		done:    make([]*StatusRecord, 0, 1000),
		waiting: list.NewDouble[*StatusRecord](),
	}
}

type StatusRecord struct {
	Zone string
	Date datetime.CalendarDate
	Due  time.Time

	// The following fields are filled in by the status recorder.
	Pending   time.Time // Set by NewPending
	Completed time.Time // Set by PendingDone
	Notices   int
	Ignored   bool
	Error     error

	listID list.DoubleID[*StatusRecord]
}

func (sr *StatusRecord) Status() string {
	switch {
	case sr.Completed.IsZero():
		return "pending"
	case sr.Error != nil:
		return "failed"
	case sr.Ignored:
		return "ignored"
	}
	return "completed"
}

func (sr *StatusRecord) Name() string {
	return fmt.Sprintf("%v:%v", sr.Zone, dst.FormatDate(sr.Date))
}

func (sr *StatusRecord) ErrorMessage() string {
	if sr.Error == nil {
		return ""
	}
	return sr.Error.Error()
}

// PendingDone moves sr from the waiting list to the completed list.
func (s *StatusRecorder) PendingDone(sr *StatusRecord, notices int, ignored bool, err error) {
	if sr == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sr.Completed = time.Now().In(sr.Due.Location())
	sr.Notices = notices
	sr.Ignored = ignored
	sr.Error = err
	s.done = append(s.done, sr)
	s.waiting.RemoveItem(sr.listID)
}

func (s *StatusRecorder) NewPending(sr *StatusRecord) *StatusRecord {
	if sr == nil {
		return sr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sr.listID = s.waiting.Append(sr)
	sr.Pending = time.Now().In(sr.Due.Location())
	return sr
}

func (s *StatusRecorder) Completed() iter.Seq[*StatusRecord] {
	return func(yield func(*StatusRecord) bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, sr := range s.done {
			if !yield(sr) {
				return
			}
		}
	}
}

func (s *StatusRecorder) Pending() iter.Seq[*StatusRecord] {
	return func(yield func(*StatusRecord) bool) {
		s.mu.Lock()
		defer s.mu.Unlock()
		for sr := range s.waiting.Forward() {
			if !yield(sr) {
				return
			}
		}
	}
}

func (s *StatusRecorder) ResetCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = s.done[:0]
}
