// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: dstwindow
summary: dstwindow displays US daylight saving time transitions and how close they are
commands:
  - name: transitions
    summary: display the nominal and zone verified transition dates for a range of years
    arguments:
      - <zone>... - the zones to display, defaults to those in the configuration
  - name: notice
    summary: display notices for the transitions near to a given date
    arguments:
      - <zone>... - the zones to display, defaults to those in the configuration
  - name: calendar
    summary: display the notices for every day in a date range
    arguments:
      - <zone>... - the zones to display, defaults to those in the configuration
  - name: schedule
    summary: display notices every day at the configured time of day
    commands:
      - name: run
        summary: run the scheduler
        arguments:
          - <zone>...
      - name: simulate
        summary: |
          run the scheduler using simulated time so that it skips from
          day to day with minimal delay
        arguments:
          - <zone>...
  - name: config
    summary: query/inspect the configuration file
    commands:
      - name: display
        arguments:
          - <zone>...
  - name: logs
    summary: query/inspect the scheduler log files
    commands:
      - name: summary
        arguments:
          - <log-files>...
`

func cli() *subcmd.CommandSetYAML {
	cmd := subcmd.MustFromYAML(cmdSpec)

	transitions := &Transitions{out: os.Stdout}
	cmd.Set("transitions").MustRunner(transitions.Display, &TransitionsFlags{})

	notice := &Notice{out: os.Stdout}
	cmd.Set("notice").MustRunner(notice.Display, &NoticeFlags{})
	cmd.Set("calendar").MustRunner(notice.Calendar, &CalendarFlags{})

	schedule := &Schedule{out: os.Stdout}
	cmd.Set("schedule", "run").MustRunner(schedule.Run, &ScheduleFlags{})
	cmd.Set("schedule", "simulate").MustRunner(schedule.Simulate, &SimulateFlags{})

	config := &Config{out: os.Stdout}
	cmd.Set("config", "display").MustRunner(config.Display, &ConfigFlags{})

	log := &Log{out: os.Stdout}
	cmd.Set("logs", "summary").MustRunner(log.Summary, &LogSummaryFlags{})
	return cmd
}

var errInterrupt = errors.New("interrupt")

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancelCause(ctx)
	cmdutil.HandleSignals(func() { cancel(errInterrupt) }, os.Interrupt)
	err := cli().Dispatch(ctx)
	if context.Cause(ctx) == errInterrupt {
		cmdutil.Exit("%v", errInterrupt)
	}
	if err != nil {
		cmdutil.Exit("%v", err)
	}
}
