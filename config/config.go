// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package config provides support for the YAML configuration of the
// zones, notice window and daily notification time used by dstwindow.
package config

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"
	"github.com/cosnicolaou/dstwindow/dst"
	"gopkg.in/yaml.v3"
)

// DefaultNotifyAt is the default local time of the daily notice.
var DefaultNotifyAt = datetime.NewTimeOfDay(8, 0, 0)

func locationFromValue(value string) (*time.Location, error) {
	if len(value) == 0 {
		return time.Now().Location(), nil
	}
	location, err := time.LoadLocation(value)
	if err != nil {
		return nil, err
	}
	return location, nil
}

type TimeZone struct {
	*time.Location
}

func (tz *TimeZone) UnmarshalYAML(node *yaml.Node) error {
	l, err := locationFromValue(node.Value)
	if err != nil {
		return err
	}
	tz.Location = l
	return nil
}

func (tz TimeZone) MarshalYAML() (any, error) {
	if tz.Location == nil {
		return "", nil
	}
	return tz.Location.String(), nil
}

type SystemConfig struct {
	TZ       *TimeZone   `yaml:"time_zone" cmd:"the default timezone in time.Location format"`
	Zones    []string    `yaml:"zones" cmd:"the zones for which to compute transitions, defaults to time_zone"`
	Window   *dst.Window `yaml:"window" cmd:"the window of days, relative to a transition, for which notices are displayed"`
	NotifyAt string      `yaml:"notify_at" cmd:"the local time of day at which daily notices are displayed"`
}

// System is the fully resolved configuration.
type System struct {
	Config   SystemConfig
	TZ       *time.Location
	Zones    []string
	Window   dst.Window
	NotifyAt datetime.TimeOfDay
}

func (s System) String() string {
	return fmt.Sprintf("tz: %v, zones: %v, window: %v, notify at: %v", s.TZ, s.Zones, s.Window, s.NotifyAt)
}

type Option func(o *options)

type options struct {
	tz       *time.Location
	zones    []string
	window   *dst.Window
	notifyAt string
	db       *dst.TZDatabase
}

// WithTimeLocation overrides the configured time_zone.
func WithTimeLocation(tz *time.Location) Option {
	return func(o *options) {
		o.tz = tz
	}
}

// WithZones overrides the configured zones.
func WithZones(zones ...string) Option {
	return func(o *options) {
		o.zones = zones
	}
}

// WithWindow overrides the configured window.
func WithWindow(w dst.Window) Option {
	return func(o *options) {
		o.window = &w
	}
}

// WithNotifyAt overrides the configured notify_at time.
func WithNotifyAt(tod string) Option {
	return func(o *options) {
		o.notifyAt = tod
	}
}

// WithTZDatabase sets the database used to validate zones.
func WithTZDatabase(db *dst.TZDatabase) Option {
	return func(o *options) {
		o.db = db
	}
}

// ParseConfigFile parses the supplied configuration file as per ParseConfig.
func ParseConfigFile(ctx context.Context, cfgFile string, opts ...Option) (System, error) {
	var cfg SystemConfig
	if err := cmdyaml.ParseConfigFile(ctx, cfgFile, &cfg); err != nil {
		return System{}, err
	}
	return cfg.CreateSystem(opts...)
}

// ParseConfig parses the supplied configuration data and returns
// a System using CreateSystem.
func ParseConfig(_ context.Context, cfgData []byte, opts ...Option) (System, error) {
	var cfg SystemConfig
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		return System{}, err
	}
	return cfg.CreateSystem(opts...)
}

// CreateSystem creates a System from the supplied configuration, applying
// any options as overrides. If the time_zone: tag is specified without a
// value then the time.Location for 'Local' is used. If no zones are
// specified then the zone of the system is used. Every zone must be
// known to the time zone database, all unknown zones are reported.
func (cfg SystemConfig) CreateSystem(opts ...Option) (System, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	sys := System{Config: cfg, Window: dst.DefaultWindow, NotifyAt: DefaultNotifyAt}
	if cfg.TZ != nil {
		sys.TZ = cfg.TZ.Location
	}
	if o.tz != nil {
		sys.TZ = o.tz
	}
	if sys.TZ == nil {
		sys.TZ = time.Local
	}

	sys.Zones = cfg.Zones
	if len(o.zones) > 0 {
		sys.Zones = o.zones
	}
	if len(sys.Zones) == 0 {
		sys.Zones = []string{sys.TZ.String()}
	}

	if cfg.Window != nil {
		sys.Window = *cfg.Window
	}
	if o.window != nil {
		sys.Window = *o.window
	}

	notifyAt := cfg.NotifyAt
	if o.notifyAt != "" {
		notifyAt = o.notifyAt
	}
	if notifyAt != "" {
		var tod datetime.TimeOfDay
		if err := tod.Parse(notifyAt); err != nil {
			return System{}, fmt.Errorf("invalid notify_at time: %q: %w", notifyAt, err)
		}
		sys.NotifyAt = tod
	}

	db := o.db
	if db == nil {
		db = dst.NewTZDatabase()
	}
	var errs errors.M
	seen := map[string]bool{}
	for _, zone := range sys.Zones {
		if seen[zone] {
			errs.Append(fmt.Errorf("duplicate zone: %v", zone))
			continue
		}
		seen[zone] = true
		if _, err := db.Location(zone); err != nil {
			errs.Append(err)
		}
	}
	if err := errs.Err(); err != nil {
		return System{}, err
	}
	return sys, nil
}
