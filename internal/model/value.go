package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
	KindDate
)

// Value is one spreadsheet cell: a string, a number, a date, or empty.
// Cells parsed from a source sheet keep their raw text so they write back
// out byte-for-byte.
type Value struct {
	kind Kind
	raw  string
	str  string
	num  decimal.Decimal
	date time.Time
}

// Empty returns the empty Value.
func Empty() Value { return Value{} }

// String wraps a string cell.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps a numeric cell.
func Number(d decimal.Decimal) Value { return Value{kind: KindNumber, num: d} }

// Date wraps a date cell.
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }

// Kind returns the variant held.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the cell is empty.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Decimal returns the numeric value, if the cell is a number.
func (v Value) Decimal() (decimal.Decimal, bool) {
	return v.num, v.kind == KindNumber
}

// Time returns the date value, if the cell is a date.
func (v Value) Time() (time.Time, bool) {
	return v.date, v.kind == KindDate
}

// Render returns the cell as it should appear when written back out: the
// raw source text when the cell was parsed from a sheet, otherwise a
// canonical rendering of the constructed value.
func (v Value) Render() string {
	if v.raw != "" {
		return v.raw
	}
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindDate:
		return v.date.Format(cellDateFormat)
	default:
		return ""
	}
}

// cellDateFormat is how date cells are parsed and rendered.
const cellDateFormat = "2006-01-02"

// dateFormats are tried in order when coercing a raw cell into a date.
var dateFormats = []string{
	cellDateFormat,
	"01/02/2006",
	"2006-01-02 15:04:05",
	"02-Jan-2006",
}

// ParseValue coerces a raw cell string into the best-fitting Value kind:
// empty, number, date, then string. The raw text travels with the Value so
// coercion never changes what gets written back out.
func ParseValue(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Empty()
	}
	if d, err := decimal.NewFromString(s); err == nil {
		v := Number(d)
		v.raw = s
		return v
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			v := Date(t)
			v.raw = s
			return v
		}
	}
	return String(raw)
}
