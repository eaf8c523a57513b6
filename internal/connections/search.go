package connections

import (
	"github.com/dharmasatrya/flightconnections/internal/dataset"
)

// Layover window between consecutive legs, inclusive on both ends.
const (
	minLayoverHours = 1.0
	maxLayoverHours = 6.0
)

// Path is one candidate itinerary, ordered from first to last leg. Returned
// paths are never mutated by subsequent searches.
type Path []*dataset.Flight

// Connections enumerates every itinerary from start to finish that admits the
// requested bag count, keeps each layover inside the window and never returns
// to an airport already departed from. Flights are tried in departure-list
// order, so results come back in depth-first discovery order. An empty result
// is a normal outcome.
func Connections(index *dataset.Index, start, finish *dataset.Airport, bags int) []Path {
	return search(index, start, finish, bags, nil)
}

func search(index *dataset.Index, start, finish *dataset.Airport, bags int, current Path) []Path {
	var found []Path
	for _, flight := range start.Departures {
		if !eligible(flight, bags, current) {
			continue
		}
		extended := extend(current, flight)
		if flight.Destination == finish.Code {
			found = append(found, extended)
			continue
		}
		next, ok := index.Airport(flight.Destination)
		if !ok {
			continue
		}
		found = append(found, search(index, next, finish, bags, extended)...)
	}
	return found
}

// extend copies the path into a fresh backing array before appending, so
// sibling branches sharing a prefix cannot clobber each other.
func extend(current Path, flight *dataset.Flight) Path {
	extended := make(Path, len(current), len(current)+1)
	copy(extended, current)
	return append(extended, flight)
}

// eligible applies the bag, layover-window and revisit checks. The revisit
// rule compares the candidate's destination against prior leg origins only;
// an airport seen only as a destination does not disqualify. Keep it that
// way: generalizing to "no airport twice" changes which itineraries exist.
func eligible(flight *dataset.Flight, bags int, current Path) bool {
	if flight.BagsAllowed < bags {
		return false
	}
	if len(current) > 0 {
		layover := flight.Departure.Sub(current[len(current)-1].Arrival.Time).Hours()
		if layover < minLayoverHours || layover > maxLayoverHours {
			return false
		}
	}
	for _, leg := range current {
		if leg.Origin == flight.Destination {
			return false
		}
	}
	return true
}
