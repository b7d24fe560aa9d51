package ledger

import (
	"math"
	"sort"
	"time"

	"eventBookerClient/internal/models"
)

// Bucket is a half-open price range [Min, Max).
type Bucket struct {
	Label string
	Min   float64
	Max   float64
}

var PriceBuckets = []Bucket{
	{Label: "Cheap", Min: 0, Max: 100},
	{Label: "Normal", Min: 100, Max: 200},
	{Label: "Expensive", Min: 200, Max: math.Inf(1)},
}

type Point struct {
	Label string
	Count int
	Total float64
}

// Chart counts bookings per price bucket and sums their prices. Buckets keep
// their order; bookings outside every bucket are ignored.
func Chart(bookings []models.Booking, buckets []Bucket) []Point {
	points := make([]Point, len(buckets))
	for i, b := range buckets {
		points[i].Label = b.Label
	}

	for _, booking := range bookings {
		price := booking.Event.Price
		for i, b := range buckets {
			if price >= b.Min && price < b.Max {
				points[i].Count++
				points[i].Total += price
				break
			}
		}
	}

	return points
}

// ByDate groups bookings by the calendar day (UTC) of their event. Events with
// an unparsable date are grouped under "unknown". Days are sorted ascending.
func ByDate(bookings []models.Booking) []Point {
	const unknown = "unknown"

	index := make(map[string]int)
	var points []Point

	for _, booking := range bookings {
		day := unknown
		if t, err := time.Parse(time.RFC3339, booking.Event.Date); err == nil {
			day = t.UTC().Format(time.DateOnly)
		}

		i, ok := index[day]
		if !ok {
			i = len(points)
			index[day] = i
			points = append(points, Point{Label: day})
		}

		points[i].Count++
		points[i].Total += booking.Event.Price
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].Label == unknown {
			return false
		}
		if points[j].Label == unknown {
			return true
		}
		return points[i].Label < points[j].Label
	})

	return points
}
