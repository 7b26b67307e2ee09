package services

import (
	"airbnb-cleaner/models"
	"airbnb-cleaner/utils"
)

// Host type categories derived from host_total_listings_count.
const (
	HostTypeIndividual   = "Individual"
	HostTypeProfessional = "Professional"
	HostTypeBigCompany   = "Big Company"
)

// Listing-count thresholds, inclusive at the lower bound.
const (
	professionalMinListings = 5
	bigCompanyMinListings   = 100
)

// Classifier derives the host_type column from the listings count.
type Classifier struct {
	logger *utils.Logger
}

// NewClassifier creates a Classifier with the given logger.
func NewClassifier(logger *utils.Logger) *Classifier {
	return &Classifier{logger: logger}
}

// Classify assigns a host type to every listing in place.
func (c *Classifier) Classify(ds *models.Dataset) {
	counts := make(map[string]int, 3)
	for _, l := range ds.Listings {
		l.HostType = ClassifyHost(l.HostTotalListingsCount)
		counts[l.HostType]++
	}
	c.logger.Info("[classifier] Host types — individual: %d | professional: %d | big company: %d",
		counts[HostTypeIndividual], counts[HostTypeProfessional], counts[HostTypeBigCompany])
}

// ClassifyHost maps a listings count to exactly one of the three host
// categories. The branches are exhaustive over [0, ∞).
func ClassifyHost(count float64) string {
	switch {
	case count >= bigCompanyMinListings:
		return HostTypeBigCompany
	case count >= professionalMinListings:
		return HostTypeProfessional
	default:
		return HostTypeIndividual
	}
}
