package models

import "github.com/dharmasatrya/flightconnections/internal/itinerary"

type SearchMetadata struct {
	TotalResults int   `json:"total_results"`
	SearchTimeMs int64 `json:"search_time_ms"`
	CacheHit     bool  `json:"cache_hit"`
}

type SearchCriteria struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Bags         int    `json:"bags"`
	ReturnFlight bool   `json:"return_flight"`
}

type SearchResponse struct {
	SearchCriteria    SearchCriteria      `json:"search_criteria"`
	Metadata          SearchMetadata      `json:"metadata"`
	Itineraries       []itinerary.Summary `json:"itineraries"`
	ReturnItineraries []itinerary.Summary `json:"return_itineraries,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
