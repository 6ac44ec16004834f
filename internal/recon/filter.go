package recon

import (
	"fmt"
	"strings"

	"github.com/recon-dev/recon/internal/model"
)

// Filter drops records whose column contains any of the substrings,
// case-insensitively. Records where the column is empty or absent are kept;
// absence of a description is not grounds for exclusion.
func Filter(records []model.Record, column string, substrings []string) []model.Record {
	if len(substrings) == 0 {
		return records
	}

	var kept []model.Record
	for _, r := range records {
		cell, ok := r.Get(column)
		if !ok || cell.IsEmpty() {
			kept = append(kept, r)
			continue
		}
		text := strings.ToLower(cell.Render())
		excluded := false
		for _, sub := range substrings {
			if strings.Contains(text, strings.ToLower(sub)) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, r)
		}
	}
	return kept
}

// DropMissing drops records where any of the listed columns is empty or
// absent. Disbursement reports carry subtotal rows with no loan number.
func DropMissing(records []model.Record, columns ...string) []model.Record {
	var kept []model.Record
	for _, r := range records {
		complete := true
		for _, col := range columns {
			if cell, ok := r.Get(col); !ok || cell.IsEmpty() {
				complete = false
				break
			}
		}
		if complete {
			kept = append(kept, r)
		}
	}
	return kept
}

// RequireColumns verifies the listed columns exist in the loaded sheet.
// An empty record set passes; there is no header to check against.
func RequireColumns(records []model.Record, columns ...string) error {
	if len(records) == 0 {
		return nil
	}
	for _, col := range columns {
		if _, ok := records[0].Get(col); !ok {
			return fmt.Errorf("column %q not found", col)
		}
	}
	return nil
}
