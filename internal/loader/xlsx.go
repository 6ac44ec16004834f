package loader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/recon-dev/recon/internal/model"
)

// XLSXLoader reads Excel workbooks. Only the first sheet is read.
type XLSXLoader struct{}

// Format returns the loader name.
func (l *XLSXLoader) Format() string { return "xlsx" }

// Load reads an Excel workbook stream and returns Records.
func (l *XLSXLoader) Load(r io.Reader, opts Options) ([]model.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return buildRecords(rows, opts), nil
}
