package marketdata

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestDailyCloses_EmptySymbol(t *testing.T) {
	c := NewYahooClient()

	_, err := c.DailyCloses("", time.Now().AddDate(0, -1, 0), time.Now())

	assert.Equal(t, true, errors.Is(err, ErrEmptySymbol))
}
