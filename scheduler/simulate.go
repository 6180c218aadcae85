// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scheduler

import (
	"context"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/sync/errgroup"
	"github.com/cosnicolaou/dstwindow/config"
)

// yearPeriods splits period into one range per calendar year.
func yearPeriods(period datetime.CalendarDateRange) []datetime.CalendarDateRange {
	var periods []datetime.CalendarDateRange
	for year := period.From().Year(); year <= period.To().Year(); year++ {
		thisYear := datetime.NewCalendarDateRange(
			datetime.NewCalendarDate(year, 1, 1),
			datetime.NewCalendarDate(year, 12, 31))
		periods = append(periods, period.Bound(thisYear))
	}
	return periods
}

// ticks returns the simulated time at which each of the days in period
// is considered, delay before the notice for that day is due, followed
// by the end of each year.
func ticks(s *Scheduler, periods []datetime.CalendarDateRange, delay time.Duration) []time.Time {
	times := []time.Time{}
	for _, p := range periods {
		for day := range p.Dates() {
			times = append(times, s.Due(day).Add(-delay))
		}
		times = append(times, s.yearEnd(p.From().Year()).Add(-delay))
	}
	return times
}

type timesource struct {
	ch    chan time.Time
	ticks []time.Time
}

func (t timesource) NowIn(loc *time.Location) time.Time {
	n := <-t.ch
	return n.In(loc)
}

func (t timesource) run(ctx context.Context) error {
	for _, tick := range t.ticks {
		select {
		case t.ch <- tick:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// RunSimulation runs a scheduler for every zone in system for the
// specified period using a simulated time. The end of every year covered
// by period is logged as it is for Run.
func RunSimulation(ctx context.Context, system config.System, period datetime.CalendarDateRange, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	delay := o.simulatedDelay
	if delay == 0 {
		delay = time.Millisecond * 10
	}
	o.setDefaults()
	opts = append(opts, WithNoticeWriter(o.noticeWriter), WithTZDatabase(o.tzdb), WithCalculator(o.calculator), WithStatusRecorder(o.statusRecorder))
	schedulers, err := newSchedulers(system, opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var g errgroup.T
	periods := yearPeriods(period)
	for _, s := range schedulers {
		ts := timesource{ch: make(chan time.Time), ticks: ticks(s, periods, delay)}
		s.timeSource = ts
		g.Go(func() error {
			for _, p := range periods {
				if err := s.runToYearEnd(ctx, p.From(), p.To()); err != nil {
					cancel()
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			return ts.run(ctx)
		})
	}
	return g.Wait()
}
