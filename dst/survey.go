// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package dst

import (
	"context"
	"sort"
	"sync"

	"cloudeng.io/errors"
	"cloudeng.io/sync/errgroup"
)

// ZoneYear holds both transitions for a single zone and year.
type ZoneYear struct {
	Zone  string
	Year  int
	Start Transition
	End   Transition
}

// Survey computes the transitions for every combination of zone and year
// concurrently. The results are sorted by zone and then year. All errors
// encountered are returned, in which case the results are incomplete.
func Survey(ctx context.Context, c *Calculator, years []int, zones []string) ([]ZoneYear, error) {
	var (
		g       errgroup.T
		mu      sync.Mutex
		errs    errors.M
		results = make([]ZoneYear, 0, len(years)*len(zones))
	)
	for _, zone := range zones {
		for _, year := range years {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				zy, err := surveyOne(c, year, zone)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs.Append(err)
					return nil
				}
				results = append(results, zy)
				return nil
			})
		}
	}
	errs.Append(g.Wait())
	sort.Slice(results, func(i, j int) bool {
		if results[i].Zone != results[j].Zone {
			return results[i].Zone < results[j].Zone
		}
		return results[i].Year < results[j].Year
	})
	return results, errs.Err()
}

func surveyOne(c *Calculator, year int, zone string) (ZoneYear, error) {
	start, err := c.ZonedStart(year, zone)
	if err != nil {
		return ZoneYear{}, err
	}
	end, err := c.ZonedEnd(year, zone)
	if err != nil {
		return ZoneYear{}, err
	}
	return ZoneYear{Zone: zone, Year: year, Start: start, End: end}, nil
}
