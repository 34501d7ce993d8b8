package report

import (
	"sort"
	"strings"

	"github.com/fin-tools/report-atlas/pkg/models/domain"
	"github.com/fin-tools/report-atlas/pkg/services/money"
)

// Sort keys accepted by SortRows and Sorter.
const (
	SortByTaxpayer = "iin_bin"
	SortByBankCode = "bank_code"
	SortByAccount  = "iik"
	SortByKBK      = "kbk"
	SortByAmount   = "amount_in"
)

// SortRows orders table rows by the given column. Period marker rows stay in
// place and each block of data rows between markers sorts independently, so
// sorting never moves a row across its file boundary. Amounts compare
// numerically, IIN/BIN and KBK compare as integers, everything else compares
// case-insensitively as text. The sort is stable.
func SortRows(rows []domain.TableRow, key string, asc bool) {
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			sortBlock(rows[start:end], key, asc)
		}
		start = -1
	}

	for i, r := range rows {
		if r.Kind == domain.TableRowPeriod {
			flush(i)
			start = i + 1
		} else if start < 0 {
			start = i
		}
	}
	flush(len(rows))
}

func sortBlock(block []domain.TableRow, key string, asc bool) {
	sort.SliceStable(block, func(i, j int) bool {
		less := rowLess(block[i].Row, block[j].Row, key)
		if asc {
			return less
		}
		return rowLess(block[j].Row, block[i].Row, key)
	})
}

func rowLess(a, b domain.ReportRow, key string) bool {
	switch key {
	case SortByAmount:
		return money.Parse(a.Amount).LessThan(money.Parse(b.Amount))
	case SortByTaxpayer:
		return money.ParseInt(a.TaxpayerID) < money.ParseInt(b.TaxpayerID)
	case SortByKBK:
		return money.ParseInt(a.KBK) < money.ParseInt(b.KBK)
	case SortByBankCode:
		return strings.ToLower(a.BankCode) < strings.ToLower(b.BankCode)
	case SortByAccount:
		return strings.ToLower(a.Account) < strings.ToLower(b.Account)
	default:
		return false
	}
}

// Sorter tracks per-column sort direction the way a table header does: the
// first click on a column sorts ascending, the next one flips it.
type Sorter struct {
	asc map[string]bool
}

func NewSorter() *Sorter {
	return &Sorter{asc: make(map[string]bool)}
}

// Toggle flips the direction stored for a column and returns the new one,
// true meaning ascending.
func (s *Sorter) Toggle(key string) bool {
	next, tracked := s.asc[key]
	if !tracked {
		next = true
	} else {
		next = !next
	}
	s.asc[key] = next
	return next
}

// Sort toggles the column's direction and applies it to the rows in place.
func (s *Sorter) Sort(rows []domain.TableRow, key string) bool {
	asc := s.Toggle(key)
	SortRows(rows, key, asc)
	return asc
}
