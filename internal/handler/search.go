package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightconnections/internal/cache"
	"github.com/dharmasatrya/flightconnections/internal/models"
	"github.com/dharmasatrya/flightconnections/internal/search"
)

type SearchHandler struct {
	service *search.Service
	cache   cache.Cache
}

func NewSearchHandler(service *search.Service, c cache.Cache) *SearchHandler {
	return &SearchHandler{
		service: service,
		cache:   c,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	startTime := time.Now()
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if req.ReturnFlight {
		return h.handleRoundTrip(c, req, startTime)
	}

	if cached, found := h.cache.Get(ctx, req); found {
		return c.JSON(http.StatusOK, models.SearchResponse{
			SearchCriteria: buildSearchCriteria(req),
			Metadata: models.SearchMetadata{
				TotalResults: len(cached),
				SearchTimeMs: time.Since(startTime).Milliseconds(),
				CacheHit:     true,
			},
			Itineraries: cached,
		})
	}

	itineraries, err := h.service.Search(req.Origin, req.Destination, req.Bags)
	if err != nil {
		return searchError(c, err)
	}

	_ = h.cache.Set(ctx, req, itineraries)

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: buildSearchCriteria(req),
		Metadata: models.SearchMetadata{
			TotalResults: len(itineraries),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     false,
		},
		Itineraries: itineraries,
	})
}

// handleRoundTrip searches both directions on the same dataset. Round trips
// bypass the cache; the two directions stay separate in the response.
func (h *SearchHandler) handleRoundTrip(c echo.Context, req models.SearchRequest, startTime time.Time) error {
	outbound, returning, err := h.service.SearchRoundTrip(req.Origin, req.Destination, req.Bags)
	if err != nil {
		return searchError(c, err)
	}

	return c.JSON(http.StatusOK, models.SearchResponse{
		SearchCriteria: buildSearchCriteria(req),
		Metadata: models.SearchMetadata{
			TotalResults: len(outbound) + len(returning),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     false,
		},
		Itineraries:       outbound,
		ReturnItineraries: returning,
	})
}

func searchError(c echo.Context, err error) error {
	var unknown *search.UnknownAirportError
	switch {
	case errors.As(err, &unknown):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unknown_airport",
			Message: unknown.Error(),
			Code:    http.StatusBadRequest,
		})
	case errors.Is(err, search.ErrIdenticalAirports):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "identical_airports",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	default:
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search connections: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
}

func buildSearchCriteria(req models.SearchRequest) models.SearchCriteria {
	return models.SearchCriteria{
		Origin:       req.Origin,
		Destination:  req.Destination,
		Bags:         req.Bags,
		ReturnFlight: req.ReturnFlight,
	}
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
