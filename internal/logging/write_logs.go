// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package logging

import (
	"log/slog"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/dst"
)

const (
	LogNotice  = "notice"
	LogNewDay  = "day"
	LogYearEnd = "year-end"
)

// WriteNoticeLog logs a notice rendered for the specified reference date.
func WriteNoticeLog(l *slog.Logger, date datetime.CalendarDate, notice dst.Notice, due time.Time) {
	l.Info(LogNotice,
		"zone", notice.Zone,
		"kind", notice.Kind.String(),
		"date", Date(date),
		"transition", Date(notice.Date),
		"delta", notice.Delta,
		"text", notice.Text,
		"loc", due.Location().String(),
		"due", due)
}

// WriteNewDayLog logs the number of notices rendered for zone on date.
func WriteNewDayLog(l *slog.Logger, zone string, date datetime.CalendarDate, nNotices int) {
	l.Info(LogNewDay, "zone", zone, "date", Date(date), "#notices", nNotices)
}

// WriteYearEndLog logs the completion of a year, that is, when all
// notices for the year have been rendered and the scheduler is waiting
// for the next year to start.
func WriteYearEndLog(l *slog.Logger, zone string, year int, delay time.Duration) {
	l.Info(LogYearEnd, "zone", zone, "year", year, "year-end-delay", delay)
}
