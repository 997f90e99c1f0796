package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuoteBooking(t *testing.T) {
	q := QuoteBooking(200, 7, 75)

	assert.Equal(t, 1400.0, q.Subtotal)
	assert.Equal(t, 140.0, q.PlatformFee)
	assert.Equal(t, 1615.0, q.Total)
	assert.Equal(t, 7, q.Nights)
}

func TestQuoteBooking_RoundsToCents(t *testing.T) {
	q := QuoteBooking(133.33, 3, 0)

	assert.Equal(t, 399.99, q.Subtotal)
	assert.Equal(t, 40.0, q.PlatformFee)
	assert.Equal(t, 439.99, q.Total)
}

func TestNights(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, Nights(start, start.AddDate(0, 0, 7)))
	assert.Equal(t, 1, Nights(start, start.Add(3*time.Hour)))
	assert.Equal(t, 0, Nights(start, start))
	assert.Equal(t, 0, Nights(start, start.AddDate(0, 0, -1)))
}
