package loader

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recon-dev/recon/internal/model"
)

func TestCSVLoader_BankStatement(t *testing.T) {
	data, err := os.ReadFile("../../testdata/bank_statement.csv")
	require.NoError(t, err)

	l := &CSVLoader{}
	records, err := l.Load(strings.NewReader(string(data)), Options{})
	require.NoError(t, err)
	require.Len(t, records, 4)

	first := records[0]
	assert.Equal(t, []string{"Description", "Date", "Amount"}, first.Columns())
	assert.Equal(t, "TRANSFER 104R2345 LOAN PMT", first.Cell("Description").Render())

	date, ok := first.Cell("Date").Time()
	require.True(t, ok)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, 5, date.Day())

	amount, ok := first.Cell("Amount").Decimal()
	require.True(t, ok)
	assert.Equal(t, "-1500.00", amount.StringFixed(2))
}

func TestCSVLoader_SkipRows(t *testing.T) {
	data, err := os.ReadFile("../../testdata/disbursement_report.csv")
	require.NoError(t, err)

	l := &CSVLoader{}
	records, err := l.Load(strings.NewReader(string(data)), Options{SkipRows: 6})
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t,
		[]string{"TRANSACTION NARRATION", "EFFECTIVE DATE", "LOAN NUMBER", "AMOUNT DISBURSED"},
		records[0].Columns())

	loan, ok := records[0].Cell("LOAN NUMBER").Decimal()
	require.True(t, ok)
	assert.Equal(t, "2345", loan.String())

	// Subtotal row survives loading; filtering is the matcher's business.
	assert.True(t, records[3].Cell("LOAN NUMBER").IsEmpty())
}

func TestCSVLoader_SkipRowsBeyondInput(t *testing.T) {
	l := &CSVLoader{}
	records, err := l.Load(strings.NewReader("a,b\n1,2\n"), Options{SkipRows: 10})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVLoader_HeaderOnly(t *testing.T) {
	l := &CSVLoader{}
	records, err := l.Load(strings.NewReader("a,b,c\n"), Options{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVLoader_ShortRowsPadded(t *testing.T) {
	l := &CSVLoader{}
	records, err := l.Load(strings.NewReader("a,b,c\n1,2\n"), Options{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Cell("c").IsEmpty())
}

func TestRegistry_LoadFileByExtension(t *testing.T) {
	records, err := DefaultRegistry().LoadFile("../../testdata/bank_statement.csv", Options{})
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestRegistry_UnsupportedFormat(t *testing.T) {
	_, err := DefaultRegistry().LoadFile("statement.pdf", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestRegistry_MissingFile(t *testing.T) {
	_, err := DefaultRegistry().LoadFile("no_such_file.csv", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRegistry_DuplicateFormatPanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVLoader{})
	assert.Panics(t, func() { r.Register(&CSVLoader{}) })
}

func TestBuildRecords_TrimsHeaderWhitespace(t *testing.T) {
	records := buildRecords([][]string{{" a ", "b"}, {"1", "2"}}, Options{})
	require.Len(t, records, 1)
	v, ok := records[0].Get("a")
	require.True(t, ok)
	assert.Equal(t, model.KindNumber, v.Kind())
}
