// Copyright 2025 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package logging

import (
	"strings"

	"cloudeng.io/datetime"
	"github.com/cosnicolaou/dstwindow/dst"
)

// Date is a datetime.CalendarDate that is logged in YYYY-MM-DD format.
type Date datetime.CalendarDate

func (ld Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + dst.FormatDate(datetime.CalendarDate(ld)) + `"`), nil
}

func (ld *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if len(s) == 0 || s == "null" {
		var zero datetime.CalendarDate
		*ld = Date(zero)
		return nil
	}
	cd, err := dst.ParseDate(s)
	if err != nil {
		return err
	}
	*ld = Date(cd)
	return nil
}
