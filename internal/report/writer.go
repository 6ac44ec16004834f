package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/recon-dev/recon/internal/model"
)

// Report base names, as accounting teams expect to find them.
const (
	BankReportName         = "Unmatched_Bank"
	DisbursementReportName = "Unmatched_Disbursement"
)

// timestampFormat stamps report file names down to the minute.
const timestampFormat = "200601021504"

// Writer serializes unmatched record sets to spreadsheet files.
type Writer struct {
	format string
}

// NewWriter creates a Writer for "csv" or "xlsx" output.
func NewWriter(format string) (*Writer, error) {
	f := strings.ToLower(format)
	switch f {
	case "csv", "xlsx":
		return &Writer{format: f}, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// Write writes records to <dir>/<name>_<timestamp>.<format> and returns the
// path. An empty record set still produces a file, so a clean run leaves
// visible evidence.
func (w *Writer) Write(dir, name string, records []model.Record, now time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", name, now.Format(timestampFormat), w.format))

	header, rows := tabulate(records)
	var err error
	switch w.format {
	case "csv":
		err = writeCSV(path, header, rows)
	case "xlsx":
		err = writeXLSX(path, header, rows)
	}
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// tabulate flattens records into a header (union of columns in first-seen
// order) and string rows. Cells are rendered verbatim; records are never
// modified.
func tabulate(records []model.Record) ([]string, [][]string) {
	var header []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, col := range r.Columns() {
			if !seen[col] {
				seen[col] = true
				header = append(header, col)
			}
		}
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(header))
		for i, col := range header {
			row[i] = r.Cell(col).Render()
		}
		rows = append(rows, row)
	}
	return header, rows
}
