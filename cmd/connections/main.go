package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dharmasatrya/flightconnections/internal/dataset"
	"github.com/dharmasatrya/flightconnections/internal/itinerary"
	"github.com/dharmasatrya/flightconnections/internal/search"
)

func main() {
	log.SetFlags(0)

	bags := flag.Int("bags", 0, "number of bags for the trip")
	returnFlight := flag.Bool("return", false, "also search for flights back from the destination")
	outputMode := flag.String("output", "stdout", "output mode: stdout or files")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}
	if *outputMode != "stdout" && *outputMode != "files" {
		log.Fatalf("Unknown output mode %q (want stdout or files)", *outputMode)
	}

	csvPath := flag.Arg(0)
	origin := flag.Arg(1)
	destination := flag.Arg(2)

	index, err := dataset.LoadFile(csvPath)
	if err != nil {
		log.Fatalf("Failed to load flight dataset: %v", err)
	}

	service := search.New(index)

	itineraries, err := service.Search(origin, destination, *bags)
	if err != nil {
		log.Fatalf("Search failed: %v", err)
	}
	if err := writeOutput(*outputMode, itineraries, "flights.json"); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	if *returnFlight {
		returning, err := service.Search(destination, origin, *bags)
		if err != nil {
			log.Fatalf("Return search failed: %v", err)
		}
		if err := writeOutput(*outputMode, returning, "return_flights.json"); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	}
}

func writeOutput(mode string, itineraries []itinerary.Summary, filename string) error {
	data, err := json.MarshalIndent(itineraries, "", "  ")
	if err != nil {
		return err
	}

	if mode == "files" {
		return os.WriteFile(filename, append(data, '\n'), 0o644)
	}

	fmt.Println(string(data))
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <csv-file> <origin> <destination>\n", os.Args[0])
	flag.PrintDefaults()
}
