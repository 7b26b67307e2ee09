package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"airbnb-cleaner/models"
)

// CSVWriter exports the cleaned dataset to a CSV file.
type CSVWriter struct {
	path string
}

// NewCSVWriter returns a writer targeting the given path. Intermediate
// directories are created on Write.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write materializes the full dataset at the configured path, truncating
// any previous file. Column order follows ds.Columns; absent nullable
// values are written as empty cells.
func (w *CSVWriter) Write(ds *models.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if err := cw.Write(ds.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, l := range ds.Listings {
		row := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			row[i] = cellValue(l, col)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv: flush %q: %w", w.path, err)
	}
	return nil
}

// cellValue renders one column of a listing. Transformed columns come
// from the typed fields; everything else is a passthrough cell.
func cellValue(l *models.Listing, col string) string {
	switch col {
	case models.ColName:
		return l.Name
	case models.ColHostIsSuperhost:
		return strconv.FormatBool(l.HostIsSuperhost)
	case models.ColHostListingsCount:
		return formatFloat(l.HostTotalListingsCount)
	case models.ColHostType:
		return l.HostType
	case models.ColPrice:
		return formatFloat(l.Price)
	case models.ColBathrooms:
		return formatNullable(l.Bathrooms)
	case models.ColBedrooms:
		return formatNullable(l.Bedrooms)
	case models.ColBeds:
		return formatNullable(l.Beds)
	case models.ColMinimumNights:
		return formatNullable(l.MinimumNights)
	case models.ColReviewsPerMonth:
		return formatFloat(l.ReviewsPerMonth)
	default:
		return l.Extra[col]
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
