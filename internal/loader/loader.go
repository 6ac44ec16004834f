package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/recon-dev/recon/internal/model"
)

// Options controls how a spreadsheet is read.
type Options struct {
	// SkipRows discards this many rows before the header row. Disbursement
	// reports carry a multi-row banner above the real header.
	SkipRows int
}

// Loader converts a spreadsheet stream into Records.
type Loader interface {
	Load(r io.Reader, opts Options) ([]model.Record, error)
	Format() string
}

// Registry holds named loaders.
type Registry struct {
	loaders map[string]Loader
}

// NewRegistry creates an empty loader registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[string]Loader)}
}

// Register adds a loader. Panics on duplicate format.
func (r *Registry) Register(l Loader) {
	key := strings.ToLower(l.Format())
	if _, ok := r.loaders[key]; ok {
		panic("duplicate loader format: " + key)
	}
	r.loaders[key] = l
}

// Get returns the loader for format, or nil.
func (r *Registry) Get(format string) Loader {
	return r.loaders[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in loaders.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVLoader{})
	r.Register(&XLSXLoader{})
	return r
}

// LoadFile opens path and loads it with the loader matching its extension
// ("xls" files go through the xlsx loader).
func (r *Registry) LoadFile(path string, opts Options) ([]model.Record, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "xls" {
		ext = "xlsx"
	}
	l := r.Get(ext)
	if l == nil {
		return nil, fmt.Errorf("unsupported spreadsheet format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	records, err := l.Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return records, nil
}

// buildRecords converts raw rows (header first) into Records.
func buildRecords(rows [][]string, opts Options) []model.Record {
	if opts.SkipRows > 0 {
		if opts.SkipRows >= len(rows) {
			return nil
		}
		rows = rows[opts.SkipRows:]
	}
	if len(rows) <= 1 {
		return nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	var records []model.Record
	for _, row := range rows[1:] {
		cells := make([]model.Value, len(row))
		for i, raw := range row {
			cells[i] = model.ParseValue(raw)
		}
		records = append(records, model.NewRecord(header, cells))
	}
	return records
}
