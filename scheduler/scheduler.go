// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package scheduler displays daily notices of upcoming, or recent,
// daylight saving time transitions for a set of zones at a configured
// local time of day.
package scheduler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/sync/errgroup"
	"github.com/cosnicolaou/dstwindow/config"
	"github.com/cosnicolaou/dstwindow/dst"
	"github.com/cosnicolaou/dstwindow/internal/logging"
)

// Scheduler displays the notices for a single zone.
type Scheduler struct {
	options
	zone     string
	loc      *time.Location
	window   dst.Window
	notifyAt datetime.TimeOfDay
}

type Option func(o *options)

type options struct {
	timeSource     TimeSource
	logger         *slog.Logger
	noticeWriter   io.Writer
	calculator     *dst.Calculator
	tzdb           *dst.TZDatabase
	simulatedDelay time.Duration
	statusRecorder *logging.StatusRecorder
}

// TimeSource is an interface that provides the current time in a specific
// location and is intended for testing purposes. It will be called once
// per day to schedule the next notice and once at the end of each year.
type TimeSource interface {
	NowIn(in *time.Location) time.Time
}

type SystemTimeSource struct{}

func (SystemTimeSource) NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// WithTimeSource sets the time source to be used by the scheduler and
// is primarily intended for testing purposes.
func WithTimeSource(ts TimeSource) Option {
	return func(o *options) {
		o.timeSource = ts
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithNoticeWriter sets the writer to which notices are written, one per line.
func WithNoticeWriter(w io.Writer) Option {
	return func(o *options) {
		o.noticeWriter = w
	}
}

// WithCalculator sets the dst.Calculator used to render notices.
func WithCalculator(c *dst.Calculator) Option {
	return func(o *options) {
		o.calculator = c
	}
}

// WithTZDatabase sets the database used to find the time.Location of
// each zone.
func WithTZDatabase(db *dst.TZDatabase) Option {
	return func(o *options) {
		o.tzdb = db
	}
}

// WithSimulationDelay sets the delay between each simulated time step
// and the time at which the notice is due.
func WithSimulationDelay(d time.Duration) Option {
	return func(o *options) {
		o.simulatedDelay = d
	}
}

// WithStatusRecorder sets the status recorder used to track pending
// and completed daily notices.
func WithStatusRecorder(sr *logging.StatusRecorder) Option {
	return func(o *options) {
		o.statusRecorder = sr
	}
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (sw *syncWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}

func (o *options) setDefaults() {
	if o.timeSource == nil {
		o.timeSource = SystemTimeSource{}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	if o.noticeWriter == nil {
		o.noticeWriter = os.Stdout
	}
	if _, ok := o.noticeWriter.(*syncWriter); !ok {
		o.noticeWriter = &syncWriter{w: o.noticeWriter}
	}
	if o.tzdb == nil {
		o.tzdb = dst.NewTZDatabase()
	}
	if o.statusRecorder == nil {
		o.statusRecorder = logging.NewStatusRecorder()
	}
	if o.calculator == nil {
		o.calculator = dst.New(dst.WithOracle(o.tzdb), dst.WithLogger(o.logger))
	}
}

// New creates a new scheduler for the specified zone using the window
// and notification time of the supplied system.
func New(zone string, system config.System, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		zone:     zone,
		window:   system.Window,
		notifyAt: system.NotifyAt,
	}
	for _, opt := range opts {
		opt(&s.options)
	}
	s.setDefaults()
	loc, err := s.tzdb.Location(zone)
	if err != nil {
		return nil, err
	}
	s.loc = loc
	s.logger = s.logger.With("mod", "scheduler", "tz", zone)
	return s, nil
}

// Zone returns the zone that the scheduler displays notices for.
func (s *Scheduler) Zone() string {
	return s.zone
}

// Due returns the time at which the notice for date is due.
func (s *Scheduler) Due(date datetime.CalendarDate) time.Time {
	return dst.ZonedInstant{Date: date, TimeOfDay: s.notifyAt, Zone: s.zone}.Time(s.loc)
}

// Notices returns the notices for date.
func (s *Scheduler) Notices(date datetime.CalendarDate) ([]dst.Notice, error) {
	ref := dst.ZonedInstant{Date: date, TimeOfDay: s.notifyAt, Zone: s.zone}
	return s.calculator.Notices(ref, s.window)
}

// RunDay waits until the notice for date is due and then writes any
// notices for that date. Notices that are more than a minute overdue
// are ignored.
func (s *Scheduler) RunDay(ctx context.Context, date datetime.CalendarDate) error {
	dueAt := s.Due(date)
	now := s.timeSource.NowIn(s.loc)
	delay := dueAt.Sub(now)
	rec := s.statusRecorder.NewPending(&logging.StatusRecord{Zone: s.zone, Date: date, Due: dueAt})
	if delay > 0 {
		s.logger.Debug("waiting", "now", now, "due", dueAt, "delay", delay.String())
		select {
		case <-ctx.Done():
			s.statusRecorder.PendingDone(rec, 0, false, ctx.Err())
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	if delay < 0 && -delay > time.Minute {
		s.logger.Info("ignored", "now", now, "due", dueAt, "delay", delay.String())
		s.statusRecorder.PendingDone(rec, 0, true, nil)
		return nil
	}
	notices, err := s.Notices(date)
	s.statusRecorder.PendingDone(rec, len(notices), false, err)
	if err != nil {
		return err
	}
	for _, n := range notices {
		fmt.Fprintf(s.noticeWriter, "%v %v: %v\n", dst.FormatDate(date), s.zone, n.Text)
		logging.WriteNoticeLog(s.logger, date, n, dueAt)
	}
	logging.WriteNewDayLog(s.logger, s.zone, date, len(notices))
	return nil
}

// RunDays runs the scheduler for every day from from to to inclusive.
func (s *Scheduler) RunDays(ctx context.Context, from, to datetime.CalendarDate) error {
	if from > to {
		return nil
	}
	for day := range datetime.NewCalendarDateRange(from, to).Dates() {
		if err := s.RunDay(ctx, day); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) yearEnd(year int) time.Time {
	return time.Date(year, 12, 31, 23, 59, 59, int(time.Second)-1, s.loc)
}

// RunYearEnd runs the scheduler from the specified calendar date to the
// end of that year.
func (s *Scheduler) RunYearEnd(ctx context.Context, cd datetime.CalendarDate) error {
	return s.runToYearEnd(ctx, cd, datetime.NewCalendarDate(cd.Year(), 12, 31))
}

// runToYearEnd runs the scheduler for the days from from to to, which
// must be in the same year, and then waits for the end of that year.
func (s *Scheduler) runToYearEnd(ctx context.Context, from, to datetime.CalendarDate) error {
	if err := s.RunDays(ctx, from, to); err != nil {
		return err
	}
	delay := s.yearEnd(from.Year()).Sub(s.timeSource.NowIn(s.loc))
	logging.WriteYearEndLog(s.logger, s.zone, from.Year(), delay)
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
	}
	return nil
}

// Run runs the scheduler from start until the context is canceled.
func (s *Scheduler) Run(ctx context.Context, start datetime.CalendarDate) error {
	if err := s.RunYearEnd(ctx, start); err != nil {
		return err
	}
	for year := start.Year() + 1; ; year++ {
		if err := s.RunYearEnd(ctx, datetime.NewCalendarDate(year, 1, 1)); err != nil {
			return err
		}
	}
}

func newSchedulers(system config.System, opts []Option) ([]*Scheduler, error) {
	schedulers := make([]*Scheduler, 0, len(system.Zones))
	for _, zone := range system.Zones {
		s, err := New(zone, system, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create scheduler for %v: %w", zone, err)
		}
		schedulers = append(schedulers, s)
	}
	return schedulers, nil
}

// RunSchedulers runs a scheduler for every zone in system starting at start.
func RunSchedulers(ctx context.Context, system config.System, start datetime.CalendarDate, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.setDefaults()
	opts = append(opts, WithNoticeWriter(o.noticeWriter), WithTZDatabase(o.tzdb), WithCalculator(o.calculator), WithStatusRecorder(o.statusRecorder))
	schedulers, err := newSchedulers(system, opts)
	if err != nil {
		return err
	}
	var g errgroup.T
	for _, s := range schedulers {
		g.Go(func() error {
			return s.Run(ctx, start)
		})
	}
	return g.Wait()
}
