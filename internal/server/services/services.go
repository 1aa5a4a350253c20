// Package services contains the business logic of the development backend.
// Services validate input, scope every record to the calling user and
// compute the derived views (nutrition summaries, mood statistics) the
// client renders.
package services

import (
	"fmt"
	"time"

	"github.com/mindcase/mindcase/internal/common"
)

const dateLayout = "2006-01-02"

// clock is shared by the services so tests can pin "today".
type clock struct {
	now func() time.Time
	loc *time.Location
}

func newClock() clock {
	return clock{now: time.Now, loc: time.Local}
}

func (c clock) today() time.Time {
	y, m, d := c.now().In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, fmt.Sprintf(format, args...))
}
