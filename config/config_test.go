// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/config"
	"github.com/cosnicolaou/dstwindow/dst"
	"gopkg.in/yaml.v3"
)

const sampleConfig = `time_zone: America/New_York
zones:
  - America/New_York
  - America/Phoenix
window:
  lower: -3
  upper: 14
notify_at: "07:30"
`

func TestParseConfig(t *testing.T) {
	ctx := context.Background()
	sys, err := config.ParseConfig(ctx, []byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sys.TZ.String(), "America/New_York"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sys.Zones, []string{"America/New_York", "America/Phoenix"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sys.Window, (dst.Window{Lower: -3, Upper: 14}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sys.NotifyAt, datetime.NewTimeOfDay(7, 30, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDefaults(t *testing.T) {
	ctx := context.Background()
	sys, err := config.ParseConfig(ctx, []byte("time_zone: America/Chicago\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sys.Zones, []string{"America/Chicago"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sys.Window, dst.DefaultWindow; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sys.NotifyAt, config.DefaultNotifyAt; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	sys, err = config.ParseConfig(ctx, []byte("time_zone:\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sys.TZ, time.Now().Location(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOverrides(t *testing.T) {
	ctx := context.Background()
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatal(err)
	}
	sys, err := config.ParseConfig(ctx, []byte(sampleConfig),
		config.WithTimeLocation(la),
		config.WithZones("Pacific/Honolulu"),
		config.WithWindow(dst.Window{Lower: 5, Upper: -5}),
		config.WithNotifyAt("21:15"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := sys.TZ, la; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sys.Zones, []string{"Pacific/Honolulu"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// An empty window is allowed.
	if got, want := sys.Window, (dst.Window{Lower: 5, Upper: -5}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := sys.NotifyAt, datetime.NewTimeOfDay(21, 15, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConfigErrors(t *testing.T) {
	ctx := context.Background()
	for i, tc := range []struct {
		cfg string
		err []string
	}{
		{"time_zone: Nowhere/Special\n", []string{"Nowhere/Special"}},
		{"zones: [America/New_York, Nowhere/A, Nowhere/B]\n", []string{"Nowhere/A", "Nowhere/B"}},
		{"zones: [America/New_York, America/New_York]\n", []string{"duplicate zone"}},
		{"time_zone: UTC\nnotify_at: noonish\n", []string{"invalid notify_at"}},
	} {
		_, err := config.ParseConfig(ctx, []byte(tc.cfg))
		if err == nil {
			t.Errorf("%v: expected an error", i)
			continue
		}
		for _, want := range tc.err {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("%v: %v does not contain %v", i, err, want)
			}
		}
	}
}

func TestConfigFile(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "dstwindow.yaml")
	if err := os.WriteFile(filename, []byte(sampleConfig), 0600); err != nil {
		t.Fatal(err)
	}
	sys, err := config.ParseConfigFile(ctx, filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(sys.Zones), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	out, err := yaml.Marshal(sys.Config)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(out), "time_zone: America/New_York\n"; !strings.HasPrefix(got, want) {
		t.Errorf("got %v, want prefix %v", got, want)
	}
}
