package ledger

import (
	"testing"

	"eventBookerClient/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestChart(t *testing.T) {
	t.Parallel()

	bookings := append([]models.Booking{
		{ID: "b4", Event: models.Event{Price: 100}},
		{ID: "b5", Event: models.Event{Price: 99.5}},
	}, testBookings...)

	points := Chart(bookings, PriceBuckets)

	assert.Equal(t, []Point{
		{Label: "Cheap", Count: 2, Total: 119.5},
		{Label: "Normal", Count: 2, Total: 250},
		{Label: "Expensive", Count: 1, Total: 250},
	}, points)
}

func TestChartEmpty(t *testing.T) {
	t.Parallel()

	points := Chart(nil, PriceBuckets)

	assert.Len(t, points, 3)
	for _, p := range points {
		assert.Zero(t, p.Count)
	}
}

func TestByDate(t *testing.T) {
	t.Parallel()

	bookings := append([]models.Booking{
		{ID: "b0", Event: models.Event{Date: "next friday", Price: 5}},
	}, testBookings...)

	points := ByDate(bookings)

	assert.Equal(t, []Point{
		{Label: "2024-01-05", Count: 2, Total: 170},
		{Label: "2024-02-10", Count: 1, Total: 250},
		{Label: "unknown", Count: 1, Total: 5},
	}, points)
}
