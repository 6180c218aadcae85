// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/dst"
)

type NoticeFlags struct {
	ConfigFileFlags
	Date string `subcmd:"date,,date in YYYY-MM-DD format, defaults to today"`
}

type CalendarFlags struct {
	ConfigFileFlags
	DateRange string `subcmd:"date-range,,date range in YYYY-MM-DD:YYYY-MM-DD format"`
}

type Notice struct {
	out io.Writer
}

func (n *Notice) Display(ctx context.Context, flags any, args []string) error {
	fv := flags.(*NoticeFlags)
	system, err := loadSystem(ctx, &fv.ConfigFileFlags, args)
	if err != nil {
		return err
	}
	db := dst.NewTZDatabase()
	calc := dst.New(dst.WithOracle(db))
	for _, zone := range system.Zones {
		loc, err := db.Location(zone)
		if err != nil {
			return err
		}
		date, err := parseDateOrToday(fv.Date, loc)
		if err != nil {
			return err
		}
		ref := dst.ZonedInstant{
			Date:      date,
			TimeOfDay: datetime.TimeOfDayFromTime(time.Now().In(loc)),
			Zone:      zone,
		}
		notices, err := calc.Notices(ref, system.Window)
		if err != nil {
			return err
		}
		if len(notices) == 0 {
			fmt.Fprintf(n.out, "%v %v: no transitions within %v days\n", dst.FormatDate(date), zone, system.Window)
			continue
		}
		for _, notice := range notices {
			fmt.Fprintf(n.out, "%v %v: %v\n", dst.FormatDate(date), zone, notice.Text)
		}
	}
	return nil
}

func (n *Notice) Calendar(ctx context.Context, flags any, args []string) error {
	fv := flags.(*CalendarFlags)
	system, err := loadSystem(ctx, &fv.ConfigFileFlags, args)
	if err != nil {
		return err
	}
	period, err := parseDateRange(fv.DateRange)
	if err != nil {
		return err
	}
	calc := dst.New()
	var days []calendarDay
	for day := range period.Dates() {
		for _, zone := range system.Zones {
			notices, err := calc.Notices(dst.ZonedInstant{Date: day, TimeOfDay: dst.Noon, Zone: zone}, system.Window)
			if err != nil {
				return err
			}
			days = append(days, calendarDay{date: day, zone: zone, notices: notices})
		}
	}
	fmt.Fprintln(n.out, tableManager{}.Calendar(days).Render())
	return nil
}
