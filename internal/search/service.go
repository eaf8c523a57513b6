package search

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dharmasatrya/flightconnections/internal/connections"
	"github.com/dharmasatrya/flightconnections/internal/dataset"
	"github.com/dharmasatrya/flightconnections/internal/itinerary"
)

var ErrIdenticalAirports = errors.New("the origin and the destination airports are identical")

// UnknownAirportError reports an airport code that does not appear in the
// dataset, either as an origin or as a destination.
type UnknownAirportError struct {
	Code string
}

func (e *UnknownAirportError) Error() string {
	return fmt.Sprintf("airport code %s is not in the dataset", e.Code)
}

// Service runs itinerary searches against one loaded dataset. The index is
// never mutated, so a single Service can serve any number of queries.
type Service struct {
	index *dataset.Index
}

func New(index *dataset.Index) *Service {
	return &Service{index: index}
}

// Search returns every itinerary between the two airports that fits the
// requested bag count, sorted ascending by total price. Equal-price
// itineraries keep the order the traversal discovered them in. Codes are
// upper-cased before lookup; unknown codes and identical origin and
// destination are rejected here, before the traversal runs.
func (s *Service) Search(origin, destination string, bags int) ([]itinerary.Summary, error) {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)

	if origin == destination {
		return nil, ErrIdenticalAirports
	}

	start, ok := s.index.Airport(origin)
	if !ok {
		return nil, &UnknownAirportError{Code: origin}
	}
	finish, ok := s.index.Airport(destination)
	if !ok {
		return nil, &UnknownAirportError{Code: destination}
	}

	paths := connections.Connections(s.index, start, finish, bags)

	summaries := make([]itinerary.Summary, 0, len(paths))
	for _, path := range paths {
		summaries = append(summaries, itinerary.Build(path, start.Code, finish.Code, bags))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalPrice < summaries[j].TotalPrice
	})

	return summaries, nil
}

// SearchRoundTrip runs the outbound search and the reverse search on the same
// index. The two result lists stay separate; legs are never combined across
// directions.
func (s *Service) SearchRoundTrip(origin, destination string, bags int) (outbound, returning []itinerary.Summary, err error) {
	outbound, err = s.Search(origin, destination, bags)
	if err != nil {
		return nil, nil, err
	}

	returning, err = s.Search(destination, origin, bags)
	if err != nil {
		return nil, nil, err
	}

	return outbound, returning, nil
}
