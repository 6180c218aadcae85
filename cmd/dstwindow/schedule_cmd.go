// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/internal/logging"
	"github.com/cosnicolaou/dstwindow/scheduler"
)

type ScheduleFlags struct {
	ConfigFileFlags
	LogFile   string `subcmd:"log-file,,log file"`
	StartDate string `subcmd:"start-date,,start date in YYYY-MM-DD format, defaults to today"`
	NotifyAt  string `subcmd:"notify-at,,local time of day at which to display notices, overrides the configuration"`
}

type SimulateFlags struct {
	ConfigFileFlags
	LogFile   string        `subcmd:"log-file,,log file"`
	DateRange string        `subcmd:"date-range,,date range in YYYY-MM-DD:YYYY-MM-DD format"`
	Delay     time.Duration `subcmd:"delay,10ms,delay between each simulated time step and the scheduled time"`
}

type Schedule struct {
	out io.Writer
}

func (s *Schedule) Run(ctx context.Context, flags any, args []string) error {
	fv := flags.(*ScheduleFlags)
	system, err := loadSystem(ctx, &fv.ConfigFileFlags, args)
	if err != nil {
		return err
	}
	if fv.NotifyAt != "" {
		if err := system.NotifyAt.Parse(fv.NotifyAt); err != nil {
			return err
		}
	}
	start, err := parseDateOrToday(fv.StartDate, system.TZ)
	if err != nil {
		return err
	}

	logger, cleanup, err := setupLogging(fv.LogFile)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting schedules", "start", start.String(), "tz", system.TZ.String(), "zones", system.Zones, "window", system.Window.String(), "notify-at", system.NotifyAt.String())

	return scheduler.RunSchedulers(ctx, system, start,
		scheduler.WithLogger(logger),
		scheduler.WithNoticeWriter(s.out))
}

func (s *Schedule) Simulate(ctx context.Context, flags any, args []string) error {
	fv := flags.(*SimulateFlags)
	system, err := loadSystem(ctx, &fv.ConfigFileFlags, args)
	if err != nil {
		return err
	}
	var period datetime.CalendarDateRange
	if period, err = parseDateRange(fv.DateRange); err != nil {
		return err
	}

	logger, cleanup, err := setupLogging(fv.LogFile)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting simulated schedules", "period", period.String(), "tz", system.TZ.String(), "zones", system.Zones, "window", system.Window.String())

	sr := logging.NewStatusRecorder()
	err = scheduler.RunSimulation(ctx, system, period,
		scheduler.WithLogger(logger),
		scheduler.WithNoticeWriter(s.out),
		scheduler.WithStatusRecorder(sr),
		scheduler.WithSimulationDelay(fv.Delay))
	logSimulationStatus(logger, sr)
	return err
}

func logSimulationStatus(logger *slog.Logger, sr *logging.StatusRecorder) {
	status := map[string]int{}
	for rec := range sr.Completed() {
		status[rec.Status()]++
		if rec.Error != nil {
			logger.Warn("simulation failed", "zone", rec.Zone, "name", rec.Name(), "err", rec.ErrorMessage())
		}
	}
	for range sr.Pending() {
		status["pending"]++
	}
	logger.Info("simulation done", "completed", status["completed"], "ignored", status["ignored"], "failed", status["failed"], "pending", status["pending"])
}
