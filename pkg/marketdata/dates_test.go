package marketdata

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestParseDateRange_Valid(t *testing.T) {
	from, to, err := ParseDateRange("2023-01-01", "2023-01-31")

	assert.Equal(t, nil, err)
	assert.Equal(t, "2023-01-01", from.Format(dateLayout))
	assert.Equal(t, "2023-01-31", to.Format(dateLayout))
}

func TestParseDateRange_CurrentResolvesToToday(t *testing.T) {
	from, to, err := ParseDateRange("2023-01-01", CurrentSentinel)

	assert.Equal(t, nil, err)
	assert.Equal(t, time.Now().Format(dateLayout), to.Format(dateLayout))
	assert.Equal(t, false, to.Before(from))
}

func TestParseDateRange_CurrentBeforeFutureStart(t *testing.T) {
	start := time.Now().AddDate(0, 0, 7).Format(dateLayout)

	_, _, err := ParseDateRange(start, CurrentSentinel)

	assert.NotEqual(t, nil, err)
}

func TestParseDateRange_Reversed(t *testing.T) {
	_, _, err := ParseDateRange("2023-02-01", "2023-01-01")

	assert.NotEqual(t, nil, err)
}

func TestParseDateRange_BadStartFormat(t *testing.T) {
	_, _, err := ParseDateRange("01/02/2023", "2023-03-01")

	assert.NotEqual(t, nil, err)
}

func TestParseDateRange_BadEndFormat(t *testing.T) {
	_, _, err := ParseDateRange("2023-01-01", "yesterday")

	assert.NotEqual(t, nil, err)
}
