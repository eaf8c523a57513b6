package dataset

import (
	"time"
)

// Accepted timestamp layouts, most specific first. Dataset times are naive
// local times without zone information.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Timestamp is a dataset timestamp. It decodes from CSV and JSON using the
// layouts above and always encodes with the primary layout.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalText(data []byte) error {
	value := string(data)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return &time.ParseError{
		Value:   value,
		Message: "unable to parse timestamp",
	}
}

func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.Format(timestampLayouts[0])), nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(timestampLayouts[0]) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return t.UnmarshalText(data)
}

// Flight is one scheduled leg. Flights are immutable once loaded; origin and
// destination reference airports by code rather than by pointer.
type Flight struct {
	FlightNo    string    `csv:"flight_no" json:"flight_no" validate:"required"`
	Origin      string    `csv:"origin" json:"origin" validate:"required"`
	Destination string    `csv:"destination" json:"destination" validate:"required"`
	Departure   Timestamp `csv:"departure" json:"departure"`
	Arrival     Timestamp `csv:"arrival" json:"arrival"`
	BasePrice   float64   `csv:"base_price" json:"base_price" validate:"gte=0"`
	BagPrice    int       `csv:"bag_price" json:"bag_price" validate:"gte=0"`
	BagsAllowed int       `csv:"bags_allowed" json:"bags_allowed" validate:"gte=0"`
}

// Airport holds the departures leaving from one airport code, in dataset
// order.
type Airport struct {
	Code       string
	Departures []*Flight
}

// Index maps airport codes to airports. It is read-only after Load and safe
// to share across any number of searches.
type Index struct {
	airports map[string]*Airport
	flights  int
}

// Airport looks up an airport by its upper-case code.
func (idx *Index) Airport(code string) (*Airport, bool) {
	airport, ok := idx.airports[code]
	return airport, ok
}

// Airports reports how many airports the dataset references.
func (idx *Index) Airports() int {
	return len(idx.airports)
}

// Flights reports how many flights were loaded.
func (idx *Index) Flights() int {
	return idx.flights
}

// airport returns the airport for code, creating it on first reference.
func (idx *Index) airport(code string) *Airport {
	airport, ok := idx.airports[code]
	if !ok {
		airport = &Airport{Code: code}
		idx.airports[code] = airport
	}
	return airport
}
