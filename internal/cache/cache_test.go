package cache

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/dharmasatrya/flightconnections/internal/itinerary"
	"github.com/dharmasatrya/flightconnections/internal/models"
)

func sampleItineraries() []itinerary.Summary {
	return []itinerary.Summary{
		{
			BagsAllowed: 1,
			BagsCount:   1,
			Destination: "CCC",
			Origin:      "AAA",
			TotalPrice:  165,
			TravelTime:  "06:00:00",
		},
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(8, time.Minute)
	defer c.Close()

	req := models.SearchRequest{Origin: "AAA", Destination: "CCC", Bags: 1}
	want := sampleItineraries()

	if _, found := c.Get(ctx, req); found {
		t.Fatal("unexpected hit on empty cache")
	}

	if err := c.Set(ctx, req, want); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, found := c.Get(ctx, req)
	if !found {
		t.Fatal("expected cache hit")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("cached value mismatch: %+v != %+v", got, want)
	}

	other := models.SearchRequest{Origin: "AAA", Destination: "CCC", Bags: 2}
	if _, found := c.Get(ctx, other); found {
		t.Error("different bag count must not hit the same entry")
	}
}

func TestMemoryCacheCaseInsensitiveKey(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(8, time.Minute)
	defer c.Close()

	if err := c.Set(ctx, models.SearchRequest{Origin: "aaa", Destination: "ccc", Bags: 1}, sampleItineraries()); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if _, found := c.Get(ctx, models.SearchRequest{Origin: "AAA", Destination: "CCC", Bags: 1}); !found {
		t.Error("expected hit for the same query with different casing")
	}
}

func TestGenerateKey(t *testing.T) {
	base := models.SearchRequest{Origin: "AAA", Destination: "CCC", Bags: 1}

	tests := []struct {
		name string
		req  models.SearchRequest
		same bool
	}{
		{name: "identical", req: models.SearchRequest{Origin: "AAA", Destination: "CCC", Bags: 1}, same: true},
		{name: "lower case", req: models.SearchRequest{Origin: "aaa", Destination: "ccc", Bags: 1}, same: true},
		{name: "return flag excluded", req: models.SearchRequest{Origin: "AAA", Destination: "CCC", Bags: 1, ReturnFlight: true}, same: true},
		{name: "different bags", req: models.SearchRequest{Origin: "AAA", Destination: "CCC", Bags: 2}, same: false},
		{name: "reversed direction", req: models.SearchRequest{Origin: "CCC", Destination: "AAA", Bags: 1}, same: false},
	}

	baseKey := generateKey(base)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generateKey(tt.req) == baseKey; got != tt.same {
				t.Errorf("expected same=%v, got %v", tt.same, got)
			}
		})
	}
}

func TestNoOpCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoOpCache()

	req := models.SearchRequest{Origin: "AAA", Destination: "CCC"}
	if err := c.Set(ctx, req, sampleItineraries()); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, found := c.Get(ctx, req); found {
		t.Error("no-op cache must never hit")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}
