package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_PadsShortRows(t *testing.T) {
	r := NewRecord([]string{"a", "b", "c"}, []Value{String("x")})

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, "x", r.Cell("a").Render())
	assert.True(t, r.Cell("b").IsEmpty())
	assert.True(t, r.Cell("c").IsEmpty())
}

func TestNewRecord_DropsSurplusCells(t *testing.T) {
	r := NewRecord([]string{"a"}, []Value{String("x"), String("y")})

	assert.Equal(t, []string{"a"}, r.Columns())
	_, ok := r.Get("y")
	assert.False(t, ok)
}

func TestRecord_ColumnsIsACopy(t *testing.T) {
	r := NewRecord([]string{"a", "b"}, nil)

	cols := r.Columns()
	cols[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, r.Columns())
}

func TestRecord_Get(t *testing.T) {
	r := NewRecord([]string{"amount"}, []Value{ParseValue("42.50")})

	v, ok := r.Get("amount")
	require.True(t, ok)
	d, ok := v.Decimal()
	require.True(t, ok)
	assert.Equal(t, "42.50", d.StringFixed(2))

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestParseValue_Kinds(t *testing.T) {
	assert.Equal(t, KindEmpty, ParseValue("").Kind())
	assert.Equal(t, KindEmpty, ParseValue("   ").Kind())
	assert.Equal(t, KindNumber, ParseValue("-1500.00").Kind())
	assert.Equal(t, KindDate, ParseValue("2024-03-01").Kind())
	assert.Equal(t, KindDate, ParseValue("03/01/2024").Kind())
	assert.Equal(t, KindString, ParseValue("LOAN 104R2345").Kind())
}

func TestParseValue_Date(t *testing.T) {
	v := ParseValue("01/15/2024")
	d, ok := v.Time()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "01/15/2024", v.Render())
}

func TestValue_Render(t *testing.T) {
	assert.Equal(t, "", Empty().Render())
	assert.Equal(t, "hello", String("hello").Render())
	assert.Equal(t, "-4.0", ParseValue("-4.0").Render())
}

func TestValue_RenderPreservesRawCellText(t *testing.T) {
	// Coercion to number or date must not change what is written back out.
	for _, raw := range []string{"-1500.00", "-10.00", "0.50", "1e3", "2024-01-15", "01/15/2024"} {
		assert.Equal(t, raw, ParseValue(raw).Render(), raw)
	}
	// Surrounding whitespace is not part of the cell value.
	assert.Equal(t, "-4.0", ParseValue(" -4.0 ").Render())
}

func TestValue_RenderConstructed(t *testing.T) {
	// Values built in code have no source text and render canonically.
	d, err := decimal.NewFromString("12.30")
	require.NoError(t, err)
	assert.Equal(t, "12.3", Number(d.Round(1)).Render())
	assert.Equal(t, "2024-01-15", Date(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).Render())
}
