package validation

import (
	"testing"
	"time"

	"github.com/luiscarbonel1991/campsite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRequireNonEmpty(t *testing.T) {
	require.NoError(t, RequireNonEmpty("John Doe", "name"))

	err := RequireNonEmpty("", "name")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
	assert.Contains(t, err.Error(), "name")
}

func TestRequireDate(t *testing.T) {
	require.NoError(t, RequireDate(date(2026, time.September, 10), "arrival_date"))

	err := RequireDate(time.Time{}, "arrival_date")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
	assert.Contains(t, err.Error(), "arrival_date")
}

func TestRequireOrderedRange(t *testing.T) {
	from := date(2026, time.September, 10)
	to := date(2026, time.September, 12)

	require.NoError(t, RequireOrderedRange(from, to, "from", "to"))
	require.NoError(t, RequireOrderedRange(from, from, "from", "to"))

	err := RequireOrderedRange(to, from, "from", "to")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestRequireOrderedRange_MissingBound(t *testing.T) {
	err := RequireOrderedRange(time.Time{}, date(2026, time.September, 12), "from", "to")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingParameter)

	err = RequireOrderedRange(date(2026, time.September, 10), time.Time{}, "from", "to")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestRequireStayLength(t *testing.T) {
	arrival := date(2026, time.September, 10)

	require.NoError(t, RequireStayLength(arrival, arrival.AddDate(0, 0, 1), 1, 3))
	require.NoError(t, RequireStayLength(arrival, arrival.AddDate(0, 0, 3), 1, 3))

	err := RequireStayLength(arrival, arrival, 1, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStayRange)

	err = RequireStayLength(arrival, arrival.AddDate(0, 0, 4), 1, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStayRange)
}

func TestRequireBookingWindow(t *testing.T) {
	window := domain.DateRange{
		From: date(2026, time.September, 1),
		To:   date(2026, time.September, 30),
	}

	require.NoError(t, RequireBookingWindow(
		date(2026, time.September, 10), date(2026, time.September, 12), window))

	// stay boundary days are part of the window
	require.NoError(t, RequireBookingWindow(
		date(2026, time.September, 1), date(2026, time.September, 30), window))

	err := RequireBookingWindow(
		date(2026, time.August, 31), date(2026, time.September, 2), window)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArrivalDate)

	err = RequireBookingWindow(
		date(2026, time.September, 29), date(2026, time.October, 1), window)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArrivalDate)
}

func TestRequireValidEmail(t *testing.T) {
	require.NoError(t, RequireValidEmail("john@example.com", "email"))

	err := RequireValidEmail("", "email")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingParameter)

	err = RequireValidEmail("not-an-email", "email")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}
