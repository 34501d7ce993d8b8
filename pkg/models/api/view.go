package api

// Response models served by the dashboard web API.

type FilterOptions struct {
	Regions []string `json:"regions"`
	Periods []string `json:"periods"`
	KBKs    []string `json:"kbks"`
}

type TaxpayerTotal struct {
	IINBin string  `json:"iin_bin"`
	Amount float64 `json:"amount"`
}

type MonthBucket struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type FilteredView struct {
	Region          string          `json:"region"`
	Period          string          `json:"period"`
	KBK             string          `json:"kbk,omitempty"`
	FileCount       int             `json:"file_count"`
	RowCount        int             `json:"row_count"`
	Total           float64         `json:"total"`
	UniqueTaxpayers int             `json:"unique_taxpayers"`
	Top10           []TaxpayerTotal `json:"top10"`
	Top10Share      float64         `json:"top10_share"`
	Months          []MonthBucket   `json:"months"`
}

// TableRow mirrors the report table rows: "period" markers interleaved with
// "data" rows.
type TableRow struct {
	Type     string `json:"type"`
	Period   string `json:"period,omitempty"`
	IINBin   string `json:"iin_bin,omitempty"`
	BankCode string `json:"bank_code,omitempty"`
	IIK      string `json:"iik,omitempty"`
	KBK      string `json:"kbk,omitempty"`
	AmountIn string `json:"amount_in,omitempty"`
}
