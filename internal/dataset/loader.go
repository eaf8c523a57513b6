package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jszwec/csvutil"
)

var validate = validator.New()

// Load decodes flight rows from CSV data with a header line and builds the
// airport index. Airports are created lazily on first reference, as origin or
// destination. Any malformed row fails the whole load with the row number in
// the error; the search layers assume a fully validated index.
func Load(r io.Reader) (*Index, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("reading flight data header: %w", err)
	}

	idx := &Index{airports: make(map[string]*Airport)}
	for row := 1; ; row++ {
		var f Flight
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if err := validateFlight(&f); err != nil {
			return nil, fmt.Errorf("row %d (flight %s): %w", row, f.FlightNo, err)
		}

		f.Origin = strings.ToUpper(f.Origin)
		f.Destination = strings.ToUpper(f.Destination)

		flight := f
		origin := idx.airport(flight.Origin)
		origin.Departures = append(origin.Departures, &flight)
		// Destination airports exist in the index even when nothing departs
		// from them.
		idx.airport(flight.Destination)
		idx.flights++
	}

	return idx, nil
}

// LoadFile loads a flight dataset from a CSV file on disk.
func LoadFile(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	idx, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return idx, nil
}

func validateFlight(f *Flight) error {
	if err := validate.Struct(f); err != nil {
		return err
	}
	if !f.Departure.Before(f.Arrival.Time) {
		return fmt.Errorf("departure %s is not before arrival %s",
			f.Departure.Format(timestampLayouts[0]), f.Arrival.Format(timestampLayouts[0]))
	}
	return nil
}
