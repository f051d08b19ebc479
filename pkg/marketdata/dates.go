package marketdata

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// CurrentSentinel is emitted by the query interpreter for "most recent" and
// resolved to the server's local today at consumption time.
const CurrentSentinel = "current"

// ParseDateRange validates a YYYY-MM-DD range, resolving the "current"
// sentinel on the end date.
func ParseDateRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(dateLayout, start, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", start)
	}

	var to time.Time
	if end == CurrentSentinel {
		now := time.Now()
		to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	} else {
		to, err = time.ParseInLocation(dateLayout, end, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date %q: expected YYYY-MM-DD or %q", end, CurrentSentinel)
		}
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date %s precedes start_date %s", to.Format(dateLayout), start)
	}

	return from, to, nil
}
