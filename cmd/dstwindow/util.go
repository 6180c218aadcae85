// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/config"
	"github.com/cosnicolaou/dstwindow/dst"
)

type ConfigFileFlags struct {
	SystemFile       string `subcmd:"config,,path to a file containing the dstwindow configuration, the defaults are used if not specified"`
	SystemTZLocation string `subcmd:"tz,,timezone of the system, overrides the configuration"`
	Window           string `subcmd:"window,,window of days relative to a transition for which to display notices, in <lower>:<upper> format, eg. -7:45"`
}

func loadSystem(ctx context.Context, fv *ConfigFileFlags, zones []string, opts ...config.Option) (config.System, error) {
	if tz := fv.SystemTZLocation; tz != "" {
		tzloc, err := time.LoadLocation(tz)
		if err != nil {
			return config.System{}, fmt.Errorf("invalid timezone: %q: %v", tz, err)
		}
		opts = append(opts, config.WithTimeLocation(tzloc))
	}
	if len(zones) > 0 {
		opts = append(opts, config.WithZones(zones...))
	}
	if w := fv.Window; w != "" {
		window, err := parseWindow(w)
		if err != nil {
			return config.System{}, err
		}
		opts = append(opts, config.WithWindow(window))
	}
	if fv.SystemFile == "" {
		return config.SystemConfig{}.CreateSystem(opts...)
	}
	system, err := config.ParseConfigFile(ctx, fv.SystemFile, opts...)
	if err != nil {
		return config.System{}, fmt.Errorf("failed to parse config file: %q: %w", fv.SystemFile, err)
	}
	return system, nil
}

func splitPair(val, what string) (string, string, error) {
	idx := strings.LastIndex(val, ":")
	if idx < 0 {
		return "", "", fmt.Errorf("invalid %v: %q, expected <from>:<to>", what, val)
	}
	return val[:idx], val[idx+1:], nil
}

func parseWindow(val string) (dst.Window, error) {
	l, u, err := splitPair(val, "window")
	if err != nil {
		return dst.Window{}, err
	}
	lower, err := strconv.Atoi(l)
	if err != nil {
		return dst.Window{}, fmt.Errorf("invalid window lower bound: %q: %v", l, err)
	}
	upper, err := strconv.Atoi(u)
	if err != nil {
		return dst.Window{}, fmt.Errorf("invalid window upper bound: %q: %v", u, err)
	}
	return dst.Window{Lower: lower, Upper: upper}, nil
}

// parseYears parses either a single year or a range of years in
// <from>:<to> format.
func parseYears(val string) ([]int, error) {
	if !strings.Contains(val, ":") {
		y, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("invalid year: %q: %v", val, err)
		}
		return []int{y}, nil
	}
	f, t, _ := splitPair(val, "years")
	from, err := strconv.Atoi(f)
	if err != nil {
		return nil, fmt.Errorf("invalid year: %q: %v", f, err)
	}
	to, err := strconv.Atoi(t)
	if err != nil {
		return nil, fmt.Errorf("invalid year: %q: %v", t, err)
	}
	if to < from {
		return nil, fmt.Errorf("invalid year range: %v is before %v", to, from)
	}
	years := make([]int, 0, to-from+1)
	for y := from; y <= to; y++ {
		years = append(years, y)
	}
	return years, nil
}

// parseDateRange parses a range of dates in YYYY-MM-DD:YYYY-MM-DD format.
func parseDateRange(val string) (datetime.CalendarDateRange, error) {
	var dr datetime.CalendarDateRange
	f, t, err := splitPair(val, "date range")
	if err != nil {
		return dr, err
	}
	from, err := dst.ParseDate(f)
	if err != nil {
		return dr, fmt.Errorf("invalid date: %q: %v", f, err)
	}
	to, err := dst.ParseDate(t)
	if err != nil {
		return dr, fmt.Errorf("invalid date: %q: %v", t, err)
	}
	if dst.DaysBetween(from, to) < 0 {
		return dr, fmt.Errorf("invalid date range: %v is before %v", t, f)
	}
	return datetime.NewCalendarDateRange(from, to), nil
}

// parseDateOrToday parses a date in YYYY-MM-DD format, or returns today
// in loc if val is empty.
func parseDateOrToday(val string, loc *time.Location) (datetime.CalendarDate, error) {
	if len(val) == 0 {
		return datetime.CalendarDateFromTime(time.Now().In(loc)), nil
	}
	return dst.ParseDate(val)
}

func newLogfile(filename string) (*os.File, error) {
	return os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
}

func setupLogging(logfile string) (*slog.Logger, func(), error) {
	if len(logfile) == 0 {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil)), func() {}, nil
	}
	f, err := newLogfile(logfile)
	if err != nil {
		return nil, func() {}, err
	}
	l := slog.New(slog.NewJSONHandler(f, nil))
	return l, func() { f.Close() }, nil
}
