package services

import (
	"testing"

	"airbnb-cleaner/models"
)

func TestFilterCapsPrice(t *testing.T) {
	of := NewOutlierFilter(newTestLogger())
	ds := &models.Dataset{
		Listings: []*models.Listing{
			{Name: "At cap", Price: 1500},
			{Name: "Over cap", Price: 2000},
			{Name: "Under cap", Price: 100},
		},
	}

	of.Filter(ds)

	if len(ds.Listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(ds.Listings))
	}
	for _, l := range ds.Listings {
		if l.Name == "Over cap" {
			t.Error("over-cap price row should have been removed")
		}
	}
}

func TestFilterCapBoundaries(t *testing.T) {
	of := NewOutlierFilter(newTestLogger())

	tests := []struct {
		name string
		l    *models.Listing
		keep bool
	}{
		{"bathrooms at cap", &models.Listing{Price: 100, Bathrooms: f(10)}, true},
		{"bathrooms over cap", &models.Listing{Price: 100, Bathrooms: f(10.5)}, false},
		{"bedrooms over cap", &models.Listing{Price: 100, Bedrooms: f(11)}, false},
		{"beds over cap", &models.Listing{Price: 100, Beds: f(12)}, false},
		{"reviews at cap", &models.Listing{Price: 100, ReviewsPerMonth: 30}, true},
		{"reviews over cap", &models.Listing{Price: 100, ReviewsPerMonth: 31}, false},
		{"nights at cap", &models.Listing{Price: 100, MinimumNights: f(120)}, true},
		{"nights over cap", &models.Listing{Price: 100, MinimumNights: f(121)}, false},
	}

	for _, tt := range tests {
		ds := &models.Dataset{Listings: []*models.Listing{tt.l}}
		of.Filter(ds)
		kept := len(ds.Listings) == 1
		if kept != tt.keep {
			t.Errorf("%s: kept = %v, want %v", tt.name, kept, tt.keep)
		}
	}
}

func TestFilterAbsentValueBypassesCaps(t *testing.T) {
	of := NewOutlierFilter(newTestLogger())
	ds := &models.Dataset{
		Listings: []*models.Listing{
			{Name: "All absent", Price: 100},
		},
	}

	of.Filter(ds)

	if len(ds.Listings) != 1 {
		t.Fatal("row with absent bathrooms/bedrooms/beds/minimum_nights must not be excluded")
	}
}

func TestFilterRequiresAllCaps(t *testing.T) {
	of := NewOutlierFilter(newTestLogger())
	ds := &models.Dataset{
		Listings: []*models.Listing{
			// Every column within cap except one.
			{Name: "One violation", Price: 100, Bathrooms: f(2), Bedrooms: f(3), Beds: f(4), MinimumNights: f(200), ReviewsPerMonth: 1},
		},
	}

	of.Filter(ds)

	if len(ds.Listings) != 0 {
		t.Error("a single over-cap column must remove the row")
	}
}
