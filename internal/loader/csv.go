package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/recon-dev/recon/internal/model"
)

// CSVLoader reads comma-separated spreadsheets.
type CSVLoader struct{}

// Format returns the loader name.
func (l *CSVLoader) Format() string { return "csv" }

// Load reads a CSV stream and returns Records.
func (l *CSVLoader) Load(r io.Reader, opts Options) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // banner rows above the header vary in width

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return buildRecords(rows, opts), nil
}
