// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cosnicolaou/dstwindow/dst"
)

type TransitionsFlags struct {
	ConfigFileFlags
	Years string `subcmd:"years,,year or range of years in <from>:<to> format, defaults to the current year"`
}

type Transitions struct {
	out io.Writer
}

func (t *Transitions) Display(ctx context.Context, flags any, args []string) error {
	fv := flags.(*TransitionsFlags)
	system, err := loadSystem(ctx, &fv.ConfigFileFlags, args)
	if err != nil {
		return err
	}
	years := []int{time.Now().In(system.TZ).Year()}
	if len(fv.Years) > 0 {
		years, err = parseYears(fv.Years)
		if err != nil {
			return err
		}
	}
	results, err := dst.Survey(ctx, dst.New(), years, system.Zones)
	if err != nil {
		return err
	}
	fmt.Fprintln(t.out, tableManager{}.Transitions(results).Render())
	return nil
}
