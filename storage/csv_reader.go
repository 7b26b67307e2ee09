package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"airbnb-cleaner/models"
)

// CSVReader loads the raw listings export into an in-memory table.
type CSVReader struct {
	path string
}

// NewCSVReader returns a reader for the CSV file at the given path.
func NewCSVReader(path string) *CSVReader {
	return &CSVReader{path: path}
}

// Read parses the whole file into a RawTable. It fails on a missing file
// and on any row whose field count does not match the header; cell-level
// problems are the normalizer's job, not the loader's.
func (r *CSVReader) Read() (*models.RawTable, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", r.path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %q: %w", r.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %q has no header row", r.path)
	}

	header := records[0]
	table := &models.RawTable{
		Columns: header,
		Rows:    make([]map[string]string, 0, len(records)-1),
	}
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = rec[i]
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
