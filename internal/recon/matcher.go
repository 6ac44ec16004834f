package recon

import (
	"time"

	"github.com/recon-dev/recon/internal/model"
)

// Options controls the date-proximity window applied on top of key equality.
type Options struct {
	BankDateColumn         string
	DisbursementDateColumn string
	// DateToleranceDays is the maximum number of days between the bank date
	// and the disbursement effective date for a key match to count. Negative
	// disables the window entirely.
	DateToleranceDays int
}

// Pair is one matched bank/disbursement correspondence.
type Pair struct {
	Bank         model.Record
	Disbursement model.Record
}

// Result partitions both inputs. Every record in the unmatched slices is a
// verbatim copy of an input record.
type Result struct {
	Matched               []Pair
	UnmatchedBank         []model.Record
	UnmatchedDisbursement []model.Record
}

// Reconcile matches bank records against disbursement records one-to-one.
// Each disbursement record satisfies at most one bank record with an equal
// key; duplicate keys on either side each demand their own counterpart. A
// record whose key cannot be derived is reported unmatched rather than
// aborting the run. Pure function, no I/O.
func Reconcile(bank, disb []model.Record, bankKey, disbKey KeyFunc, opts Options) Result {
	byKey := make(map[string][]int)
	keyless := make([]bool, len(disb))
	for i, r := range disb {
		key, err := disbKey(r)
		if err != nil {
			keyless[i] = true
			continue
		}
		byKey[key] = append(byKey[key], i)
	}

	consumed := make([]bool, len(disb))
	var result Result

	for _, b := range bank {
		key, err := bankKey(b)
		if err != nil {
			result.UnmatchedBank = append(result.UnmatchedBank, b)
			continue
		}

		matched := false
		for _, i := range byKey[key] {
			if consumed[i] {
				continue
			}
			if !withinWindow(b, disb[i], opts) {
				continue
			}
			consumed[i] = true
			result.Matched = append(result.Matched, Pair{Bank: b, Disbursement: disb[i]})
			matched = true
			break
		}
		if !matched {
			result.UnmatchedBank = append(result.UnmatchedBank, b)
		}
	}

	for i, r := range disb {
		if keyless[i] || !consumed[i] {
			result.UnmatchedDisbursement = append(result.UnmatchedDisbursement, r)
		}
	}
	return result
}

// withinWindow reports whether the two records' dates are close enough to
// match. With the window enabled, a record missing its date cannot match.
func withinWindow(bank, disb model.Record, opts Options) bool {
	if opts.DateToleranceDays < 0 {
		return true
	}

	bankDate, ok := bank.Cell(opts.BankDateColumn).Time()
	if !ok {
		return false
	}
	disbDate, ok := disb.Cell(opts.DisbursementDateColumn).Time()
	if !ok {
		return false
	}

	diff := bankDate.Sub(disbDate)
	if diff < 0 {
		diff = -diff
	}
	// Whole days only: a gap of 7 days and 23 hours still counts as 7, so
	// cells carrying timestamps don't tighten the window.
	days := int(diff / (24 * time.Hour))
	return days <= opts.DateToleranceDays
}
