// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/dst"
	"github.com/jedib0t/go-pretty/v6/table"
)

type tableManager struct{}

func transitionDate(tr dst.Transition) string {
	if date, ok := tr.Date(); ok {
		return dst.FormatDate(date)
	}
	return "none"
}

func (tm tableManager) Transitions(results []dst.ZoneYear) table.Writer {
	tw := table.NewWriter()
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	tw.AppendHeader(table.Row{"Zone", "Year", "Nominal Start", "Start", "Nominal End", "End"})
	for _, r := range results {
		tw.AppendRow(table.Row{
			r.Zone,
			r.Year,
			dst.FormatDate(dst.NominalStart(r.Year)),
			transitionDate(r.Start),
			dst.FormatDate(dst.NominalEnd(r.Year)),
			transitionDate(r.End),
		})
	}
	return tw
}

type calendarDay struct {
	date    datetime.CalendarDate
	zone    string
	notices []dst.Notice
}

func noticeText(notices []dst.Notice, kind dst.Kind) string {
	var texts []string
	for _, n := range notices {
		if n.Kind == kind {
			texts = append(texts, n.Text)
		}
	}
	return strings.Join(texts, ", ")
}

func (tm tableManager) Calendar(days []calendarDay) table.Writer {
	tw := table.NewWriter()
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
	})
	tw.AppendHeader(table.Row{"Date", "Zone", "Start", "End"})
	for _, d := range days {
		tw.AppendRow(table.Row{
			dst.FormatDate(d.date),
			d.zone,
			noticeText(d.notices, dst.Start),
			noticeText(d.notices, dst.End),
		})
	}
	return tw
}

type zoneSummary struct {
	zone          string
	days, notices int
	first, last   string
}

func (tm tableManager) LogSummary(summaries []zoneSummary) table.Writer {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Zone", "Days", "Notices", "First", "Last"})
	for _, s := range summaries {
		tw.AppendRow(table.Row{s.zone, s.days, s.notices, s.first, s.last})
	}
	return tw
}
