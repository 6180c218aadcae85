// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	_ "time/tzdata"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/dst"
)

var testConfig = ConfigFileFlags{
	SystemFile: filepath.Join("testdata", "dstwindow.yaml"),
}

func TestParseHelpers(t *testing.T) {
	years, err := parseYears("2024:2026")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := years, []int{2024, 2025, 2026}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	years, err = parseYears("2030")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := years, []int{2030}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	w, err := parseWindow("-3:10")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := w, (dst.Window{Lower: -3, Upper: 10}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	dr, err := parseDateRange("2024-02-28:2024-03-02")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dr.From(), datetime.NewCalendarDate(2024, 2, 28); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := dr.To(), datetime.NewCalendarDate(2024, 3, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for i, fn := range []func() error{
		func() error { _, err := parseYears("2026:2024"); return err },
		func() error { _, err := parseYears("next"); return err },
		func() error { _, err := parseWindow("-7"); return err },
		func() error { _, err := parseWindow("a:b"); return err },
		func() error { _, err := parseDateRange("2024-03-02:2024-02-28"); return err },
		func() error { _, err := parseDateRange("2024-03-02"); return err },
	} {
		if err := fn(); err == nil {
			t.Errorf("%v: expected an error", i)
		}
	}
}

func TestTransitionsCmd(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	tr := &Transitions{out: out}
	if err := tr.Display(ctx, &TransitionsFlags{ConfigFileFlags: testConfig, Years: "2024:2025"}, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"America/New_York", "America/Phoenix",
		"2024-03-10", "2024-11-03", "2025-03-09", "2025-11-02", "none",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("%v does not contain %v", out.String(), want)
		}
	}
}

func TestNoticeCmd(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	n := &Notice{out: out}
	if err := n.Display(ctx, &NoticeFlags{ConfigFileFlags: testConfig, Date: "2024-03-09"}, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := lines, []string{
		"2024-03-09 America/New_York: Starts tomorrow",
		"2024-03-09 America/Phoenix: no transitions within [-7, 45] days",
	}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	out.Reset()
	fl := &NoticeFlags{ConfigFileFlags: testConfig, Date: "2024-10-30"}
	fl.Window = "-1:3"
	if err := n.Display(ctx, fl, []string{"America/Chicago"}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "2024-10-30 America/Chicago: no transitions within [-1, 3] days\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCalendarCmd(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	n := &Notice{out: out}
	fl := &CalendarFlags{ConfigFileFlags: testConfig, DateRange: "2024-11-01:2024-11-04"}
	if err := n.Calendar(ctx, fl, []string{"America/Denver"}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Ends in 2 days", "Ends tomorrow", "Ends today", "Ended yesterday"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("%v does not contain %v", out.String(), want)
		}
	}
}

func TestConfigCmd(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	c := &Config{out: out}
	if err := c.Display(ctx, &ConfigFlags{ConfigFileFlags: testConfig}, nil); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"time_zone: America/New_York", "  America/Phoenix", "Window: [-7, 45]", "Notify At:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("%v does not contain %v", out.String(), want)
		}
	}
}

func TestSimulateAndLogs(t *testing.T) {
	ctx := context.Background()
	logFile := filepath.Join(t.TempDir(), "simulate.log")
	out := &bytes.Buffer{}
	s := &Schedule{out: out}
	fl := &SimulateFlags{
		ConfigFileFlags: testConfig,
		LogFile:         logFile,
		DateRange:       "2024-10-31:2024-11-05",
		Delay:           1000,
	}
	if err := s.Simulate(ctx, fl, nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if got, want := lines, []string{
		"2024-10-31 America/New_York: Ends in 3 days",
		"2024-11-01 America/New_York: Ends in 2 days",
		"2024-11-02 America/New_York: Ends tomorrow",
		"2024-11-03 America/New_York: Ends today",
		"2024-11-04 America/New_York: Ended yesterday",
		"2024-11-05 America/New_York: Ended 2 days ago",
	}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	out.Reset()
	l := &Log{out: out}
	if err := l.Summary(ctx, &LogSummaryFlags{}, []string{logFile}); err != nil {
		t.Fatal(err)
	}
	summary := out.String()
	for _, want := range []string{"America/New_York", "America/Phoenix", "Ends in 3 days", "Ended 2 days ago"} {
		if !strings.Contains(summary, want) {
			t.Errorf("%v does not contain %v", summary, want)
		}
	}

	out.Reset()
	if err := l.Summary(ctx, &LogSummaryFlags{Zone: "America/Phoenix"}, []string{logFile}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "America/New_York") {
		t.Errorf("unexpected zone in %v", out.String())
	}
}
