package itinerary

import (
	"time"

	"github.com/dharmasatrya/flightconnections/internal/connections"
	"github.com/dharmasatrya/flightconnections/internal/dataset"
	"github.com/dharmasatrya/flightconnections/pkg/timefmt"
)

// Summary is the output record for one itinerary. Field order matches the
// published serialization format.
type Summary struct {
	Flights     []dataset.Flight `json:"flight"`
	BagsAllowed int              `json:"bags_allowed"`
	BagsCount   int              `json:"bags_count"`
	Destination string           `json:"destination"`
	Origin      string           `json:"origin"`
	TotalPrice  float64          `json:"total_price"`
	TravelTime  string           `json:"travel_time"`
}

// Build aggregates one discovered path into its summary record. Leg details
// are field-for-field copies of the flights.
func Build(path connections.Path, origin, destination string, bags int) Summary {
	legs := make([]dataset.Flight, len(path))
	for i, flight := range path {
		legs[i] = *flight
	}

	return Summary{
		Flights:     legs,
		BagsAllowed: minBagsAllowed(path),
		BagsCount:   bags,
		Destination: destination,
		Origin:      origin,
		TotalPrice:  TotalPrice(path, bags),
		TravelTime:  timefmt.HMS(TravelTime(path)),
	}
}

// TotalPrice sums the base fare plus the per-leg bag charge for the requested
// bag count.
func TotalPrice(path connections.Path, bags int) float64 {
	total := 0.0
	for _, flight := range path {
		total += flight.BasePrice + float64(bags*flight.BagPrice)
	}
	return total
}

// TravelTime is the last leg's arrival minus the first leg's departure.
func TravelTime(path connections.Path) time.Duration {
	if len(path) == 0 {
		return 0
	}
	return path[len(path)-1].Arrival.Sub(path[0].Departure.Time)
}

func minBagsAllowed(path connections.Path) int {
	min := 0
	for i, flight := range path {
		if i == 0 || flight.BagsAllowed < min {
			min = flight.BagsAllowed
		}
	}
	return min
}
