package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"airbnb-cleaner/models"
	"airbnb-cleaner/utils"
)

// bathroomsRegexp captures the leading numeric token of a bathrooms
// description, e.g. "1.5 shared baths" → "1.5".
var bathroomsRegexp = regexp.MustCompile(`\d+\.?\d*`)

// Missing-value policy constants.
const (
	// A host with no recorded history is assumed to be brand new,
	// with exactly the one listing being looked at.
	defaultListingsCount = 1
	// No recorded reviews means a zero monthly review rate.
	defaultReviewsPerMonth = 0
	// Listings without a name must not render blank downstream.
	placeholderName = "No name provided"
)

// Normalizer repairs raw cells into a typed, analysis-ready dataset.
// Each column policy is independent; the only row-level decision is
// dropping rows without a parseable price.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize applies the per-column repair policies and returns the typed
// dataset. This is the only stage before outlier filtering that changes
// row count.
func (n *Normalizer) Normalize(table *models.RawTable) *models.Dataset {
	ds := &models.Dataset{
		Columns:  outputColumns(table.Columns),
		Listings: make([]*models.Listing, 0, len(table.Rows)),
	}

	for _, row := range table.Rows {
		price, ok := parsePrice(row[models.ColPrice])
		if !ok {
			n.logger.Debug("[normalizer] Dropping row with unparseable price %q", row[models.ColPrice])
			continue
		}

		ds.Listings = append(ds.Listings, &models.Listing{
			Name:                   fillName(row[models.ColName]),
			HostIsSuperhost:        parseSuperhost(row[models.ColHostIsSuperhost]),
			HostTotalListingsCount: parseWithDefault(row[models.ColHostListingsCount], defaultListingsCount),
			Price:                  price,
			Bathrooms:              bathroomsValue(row),
			Bedrooms:               parseNullable(row[models.ColBedrooms]),
			Beds:                   parseNullable(row[models.ColBeds]),
			MinimumNights:          parseNullable(row[models.ColMinimumNights]),
			ReviewsPerMonth:        parseWithDefault(row[models.ColReviewsPerMonth], defaultReviewsPerMonth),
			Extra:                  passthrough(row),
		})
	}

	n.logger.Info("[normalizer] Normalized %d → %d listings (dropped %d without a parseable price)",
		len(table.Rows), len(ds.Listings), len(table.Rows)-len(ds.Listings))
	return ds
}

// outputColumns derives the export order: the input order with the
// free-text bathrooms column removed, then the derived columns appended.
// Re-running the pipeline on its own output keeps the order stable.
func outputColumns(in []string) []string {
	out := make([]string, 0, len(in)+2)
	for _, c := range in {
		if c == models.ColBathroomsText {
			continue
		}
		out = append(out, c)
	}
	for _, derived := range []string{models.ColBathrooms, models.ColHostType} {
		if !containsColumn(out, derived) {
			out = append(out, derived)
		}
	}
	return out
}

func containsColumn(cols []string, name string) bool {
	for _, c := range cols {
		if c == name {
			return true
		}
	}
	return false
}

// parsePrice strips currency formatting ("$1,200.00" → 1200) and reports
// whether a usable value was present at all. A price is a non-negative
// currency amount; a negative token is as unusable as a missing one and
// drops the row.
func parsePrice(raw string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// parseSuperhost maps the source token "t" to true; "f", an absent cell,
// and any unrecognized token collapse to false. The exporter's own "true"
// token is accepted so the pipeline is idempotent over its output.
func parseSuperhost(raw string) bool {
	switch strings.TrimSpace(raw) {
	case "t", "true":
		return true
	default:
		return false
	}
}

// parseWithDefault coerces a numeric cell, treating absent or garbage
// values as missing and substituting the column's fill value.
func parseWithDefault(raw string, fill float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fill
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return fill
	}
	return v
}

// parseNullable keeps absence as absence: bedrooms, beds and
// minimum_nights are deliberately not imputed.
func parseNullable(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil
	}
	return &v
}

// bathroomsValue extracts the bathroom count from the free-text column
// when the input still carries it, falling back to an already-extracted
// numeric column on re-runs.
func bathroomsValue(row map[string]string) *float64 {
	if text, ok := row[models.ColBathroomsText]; ok {
		return extractBathrooms(text)
	}
	return parseNullable(row[models.ColBathrooms])
}

// extractBathrooms pulls the leading numeric token out of a description
// like "2.5 baths". No numeric token leaves the value absent; that is
// not an error.
func extractBathrooms(raw string) *float64 {
	match := bathroomsRegexp.FindString(raw)
	if match == "" {
		return nil
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &v
}

func fillName(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return placeholderName
	}
	return raw
}

// handledColumns are the columns realized as typed Listing fields; they
// must not leak into the passthrough map.
var handledColumns = map[string]struct{}{
	models.ColName:              {},
	models.ColHostIsSuperhost:   {},
	models.ColHostListingsCount: {},
	models.ColHostType:          {},
	models.ColPrice:             {},
	models.ColBathroomsText:     {},
	models.ColBathrooms:         {},
	models.ColBedrooms:          {},
	models.ColBeds:              {},
	models.ColMinimumNights:     {},
	models.ColReviewsPerMonth:   {},
}

func passthrough(row map[string]string) map[string]string {
	extra := make(map[string]string, len(row))
	for col, val := range row {
		if _, handled := handledColumns[col]; handled {
			continue
		}
		extra[col] = val
	}
	return extra
}
