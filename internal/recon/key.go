package recon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/recon-dev/recon/internal/model"
)

// KeyFunc derives the correspondence key for a record. An error means the
// key cannot be derived; the matcher reports such records as unmatched.
type KeyFunc func(model.Record) (string, error)

// rNumberPattern matches loan references like "104R2345" embedded in bank
// statement descriptions. Lowercase "r" occurs in some feeds.
var rNumberPattern = regexp.MustCompile(`(?i)\d+R\d+`)

// BankKey builds a key from a bank record: the digits after the "R" in the
// description's R-number, joined with the absolute amount at two decimals.
// "PMT 104R2345" with amount -1500 yields "2345-1500.00".
func BankKey(descriptionColumn, amountColumn string) KeyFunc {
	return func(r model.Record) (string, error) {
		desc, ok := r.Get(descriptionColumn)
		if !ok {
			return "", fmt.Errorf("missing column %q", descriptionColumn)
		}

		match := rNumberPattern.FindString(desc.Render())
		if match == "" {
			return "", fmt.Errorf("no R-number in description %q", desc.Render())
		}
		rNumber := strings.ToUpper(match)
		digits := rNumber[strings.LastIndex(rNumber, "R")+1:]

		amount, err := amountOf(r, amountColumn)
		if err != nil {
			return "", err
		}
		return digits + "-" + amount.Abs().StringFixed(2), nil
	}
}

// DisbursementKey builds a key from a disbursement record: the integer loan
// number joined with the disbursed amount at two decimals. Loan 2345 with
// amount 1500 yields "2345-1500.00".
func DisbursementKey(loanColumn, amountColumn string) KeyFunc {
	return func(r model.Record) (string, error) {
		loan, ok := r.Get(loanColumn)
		if !ok {
			return "", fmt.Errorf("missing column %q", loanColumn)
		}
		loanNum, ok := loan.Decimal()
		if !ok {
			return "", fmt.Errorf("loan number %q is not numeric", loan.Render())
		}

		amount, err := amountOf(r, amountColumn)
		if err != nil {
			return "", err
		}
		return loanNum.Truncate(0).String() + "-" + amount.StringFixed(2), nil
	}
}

func amountOf(r model.Record, column string) (decimal.Decimal, error) {
	v, ok := r.Get(column)
	if !ok {
		return decimal.Zero, fmt.Errorf("missing column %q", column)
	}
	d, ok := v.Decimal()
	if !ok {
		return decimal.Zero, fmt.Errorf("amount %q is not numeric", v.Render())
	}
	return d, nil
}
