package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodAll is the period sentinel meaning "aggregate every period available
// for the selected region".
const PeriodAll = "all"

// ReportRow is a single payment record parsed from a committed report file.
type ReportRow struct {
	TaxpayerID string // IIN/BIN
	BankCode   string
	Account    string // IIK
	KBK        string
	Amount     string // comma-grouped decimal as published upstream, e.g. "1,234.50"
}

// ReportFile is one committed report: its region, the covered period
// ("DD.MM.YYYY - DD.MM.YYYY") and the payment rows it contains.
type ReportFile struct {
	Region     string
	Period     string
	ReportDate string
	Rows       []ReportRow
}

type Dataset struct {
	Files []ReportFile
}

// FilterSelection is the user's current filter state. Region and Period drive
// file selection; a non-empty KBK narrows rows further.
type FilterSelection struct {
	Region string
	Period string
	KBK    string
}

// FilterOptions lists the distinct values a user can filter on.
type FilterOptions struct {
	Regions []string
	Periods []string
	KBKs    []string
}

type TaxpayerTotal struct {
	TaxpayerID string
	Amount     decimal.Decimal
}

type MonthBucket struct {
	Month  time.Month
	Label  string
	Amount decimal.Decimal
}

// FilteredView is the aggregate picture for one filter selection. It is a pure
// function of (Dataset, FilterSelection) and is recomputed on every change,
// never stored.
type FilteredView struct {
	Selection       FilterSelection
	Files           []ReportFile
	Rows            []ReportRow
	Total           decimal.Decimal
	UniqueTaxpayers int
	Top10           []TaxpayerTotal
	Top10Share      float64 // percentage of Total covered by Top10
	Months          []MonthBucket
}

type TableRowKind string

const (
	TableRowPeriod TableRowKind = "period"
	TableRowData   TableRowKind = "data"
)

// TableRow is one visible row of the flattened report table: either a period
// marker opening a file block or a data row inside one.
type TableRow struct {
	Kind   TableRowKind
	Period string    // set on period marker rows
	Row    ReportRow // set on data rows
}
