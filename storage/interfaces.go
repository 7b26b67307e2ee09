package storage

import "airbnb-cleaner/models"

// TableReader is the interface any raw-data source must satisfy.
type TableReader interface {
	Read() (*models.RawTable, error)
}

// DatasetWriter is the interface any cleaned-data sink must satisfy.
type DatasetWriter interface {
	Write(ds *models.Dataset) error
}
