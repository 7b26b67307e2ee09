package services

import (
	"airbnb-cleaner/models"
	"airbnb-cleaner/utils"
)

// Outlier caps. A row with a present value above a cap is removed so the
// exported dataset stays usable for visualization. Absent values never
// exclude a row.
const (
	MaxPrice           = 1500.0
	MaxBathrooms       = 10.0
	MaxBedrooms        = 10.0
	MaxBeds            = 10.0
	MaxReviewsPerMonth = 30.0
	MaxMinimumNights   = 120.0
)

// OutlierFilter removes rows whose values exceed the fixed caps.
type OutlierFilter struct {
	logger *utils.Logger
}

// NewOutlierFilter creates an OutlierFilter with the given logger.
func NewOutlierFilter(logger *utils.Logger) *OutlierFilter {
	return &OutlierFilter{logger: logger}
}

// Filter keeps only the rows that satisfy all six caps simultaneously.
func (f *OutlierFilter) Filter(ds *models.Dataset) {
	kept := make([]*models.Listing, 0, len(ds.Listings))
	for _, l := range ds.Listings {
		if withinCaps(l) {
			kept = append(kept, l)
		} else {
			f.logger.Debug("[outliers] Dropping %q (price %.2f)", l.Name, l.Price)
		}
	}

	f.logger.Info("[outliers] Filtered %d → %d listings (dropped %d over-cap)",
		len(ds.Listings), len(kept), len(ds.Listings)-len(kept))
	ds.Listings = kept
}

func withinCaps(l *models.Listing) bool {
	return l.Price <= MaxPrice &&
		underCap(l.Bathrooms, MaxBathrooms) &&
		underCap(l.Bedrooms, MaxBedrooms) &&
		underCap(l.Beds, MaxBeds) &&
		l.ReviewsPerMonth <= MaxReviewsPerMonth &&
		underCap(l.MinimumNights, MaxMinimumNights)
}

// underCap is the three-valued cap check: present and over → false,
// present and within → true, absent → true.
func underCap(v *float64, limit float64) bool {
	return v == nil || *v <= limit
}
