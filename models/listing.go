package models

// Column names the pipeline transforms. Every other input column is a
// passthrough and is preserved verbatim in the output.
const (
	ColName              = "name"
	ColHostIsSuperhost   = "host_is_superhost"
	ColHostListingsCount = "host_total_listings_count"
	ColHostType          = "host_type"
	ColPrice             = "price"
	ColBathroomsText     = "bathrooms_text"
	ColBathrooms         = "bathrooms"
	ColBedrooms          = "bedrooms"
	ColBeds              = "beds"
	ColReviewsPerMonth   = "reviews_per_month"
	ColMinimumNights     = "minimum_nights"
)

// RawTable is the structural view of the raw CSV export: an ordered header
// plus one string map per row. An empty cell means the value is absent.
// No semantic validation has happened yet.
type RawTable struct {
	Columns []string
	Rows    []map[string]string
}

// Listing is a single normalized record. Pointer fields are nullable:
// nil means the source cell was absent and no fill policy applies to it.
type Listing struct {
	Name                   string
	HostIsSuperhost        bool
	HostTotalListingsCount float64
	HostType               string
	Price                  float64
	Bathrooms              *float64
	Bedrooms               *float64
	Beds                   *float64
	MinimumNights          *float64
	ReviewsPerMonth        float64

	// Extra holds the passthrough columns this pipeline never touches
	// (neighbourhood_cleansed, room_type, latitude, ...).
	Extra map[string]string
}

// Dataset is the cleaned table flowing between pipeline stages. Columns
// fixes the export order; Listings is the current row set.
type Dataset struct {
	Columns  []string
	Listings []*Listing
}

// InsightReport holds the diagnostics computed over the cleaned dataset.
type InsightReport struct {
	TotalListings      int
	Superhosts         int
	AveragePrice       float64
	MinPrice           float64
	MaxPrice           float64
	ListingsByHostType map[string]int
	ListingsByRoomType map[string]int
	MissingBedrooms    int
	MissingBeds        int
}
