// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/cosnicolaou/dstwindow/internal/logging"
)

type LogSummaryFlags struct {
	Zone string `subcmd:"zone,,display log info for the specific zone"`
}

type Log struct {
	out io.Writer
}

type logEntryHandler func(logging.Entry) error

func (l *Log) processLog(rd io.Reader, fv *LogSummaryFlags, lh logEntryHandler) error {
	sc := logging.NewScanner(rd)
	for le := range sc.Entries() {
		if len(fv.Zone) > 0 && le.Zone != fv.Zone {
			continue
		}
		if err := lh(le); err != nil {
			return err
		}
	}
	return sc.Err()
}

type summaryRecorder struct {
	zones map[string]*zoneSummary
}

func (sr *summaryRecorder) process(le logging.Entry) error {
	if len(le.Zone) == 0 {
		return nil
	}
	zs, ok := sr.zones[le.Zone]
	if !ok {
		zs = &zoneSummary{zone: le.Zone}
		sr.zones[le.Zone] = zs
	}
	switch le.Msg {
	case logging.LogNewDay:
		zs.days++
	case logging.LogNotice:
		zs.notices++
		if len(zs.first) == 0 {
			zs.first = le.Text
		}
		zs.last = le.Text
	}
	return nil
}

func (sr *summaryRecorder) summaries() []zoneSummary {
	summaries := make([]zoneSummary, 0, len(sr.zones))
	for _, zs := range sr.zones {
		summaries = append(summaries, *zs)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].zone < summaries[j].zone
	})
	return summaries
}

func (l *Log) Summary(_ context.Context, flags any, args []string) error {
	fv := flags.(*LogSummaryFlags)
	sr := &summaryRecorder{zones: map[string]*zoneSummary{}}
	if len(args) == 0 {
		if err := l.processLog(os.Stdin, fv, sr.process); err != nil {
			return err
		}
	}
	for _, filename := range args {
		if err := l.processFile(filename, fv, sr); err != nil {
			return err
		}
	}
	fmt.Fprintln(l.out, tableManager{}.LogSummary(sr.summaries()).Render())
	return nil
}

func (l *Log) processFile(filename string, fv *LogSummaryFlags, sr *summaryRecorder) error {
	fi, err := os.OpenFile(filename, os.O_RDONLY, 0)
	if err != nil {
		return err
	}
	defer fi.Close()
	if err := l.processLog(fi, fv, sr.process); err != nil {
		return fmt.Errorf("failed to process log file: %q: %w", filename, err)
	}
	return nil
}
