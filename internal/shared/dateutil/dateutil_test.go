package dateutil_test

import (
	"testing"
	"time"

	"go-leave/internal/shared/dateutil"

	"github.com/stretchr/testify/assert"
)

func TestInclusiveDays(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, dateutil.InclusiveDays(start, time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, dateutil.InclusiveDays(start, start))
	// spans a month boundary
	assert.Equal(t, 32, dateutil.InclusiveDays(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	))
}

func TestToday(t *testing.T) {
	// 2026-03-01 23:30 UTC is already 2026-03-02 in Jakarta (UTC+7).
	clock := dateutil.FixedClock(time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC))
	jakarta := time.FixedZone("WIB", 7*60*60)

	assert.Equal(t, "2026-03-01", dateutil.Format(dateutil.Today(clock, time.UTC)))
	assert.Equal(t, "2026-03-02", dateutil.Format(dateutil.Today(clock, jakarta)))
	assert.Equal(t, "2026-03-01", dateutil.Format(dateutil.Today(clock, nil)))
}

func TestParse(t *testing.T) {
	d, err := dateutil.Parse("2026-12-25")
	assert.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, 25, d.Day())

	_, err = dateutil.Parse("25/12/2026")
	assert.Error(t, err)
}
