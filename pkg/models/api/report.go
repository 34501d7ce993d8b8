package api

// Wire models for the upstream report backend.

type ReportRow struct {
	IINBin        string  `json:"iin_bin"`
	BankCode      string  `json:"bank_code"`
	IIK           string  `json:"iik"`
	KBK           string  `json:"kbk"`
	AmountIn      string  `json:"amount_in"`
	AmountNumeric float64 `json:"amount_numeric,omitempty"`
}

type ReportFile struct {
	Region      string      `json:"region"`
	Period      string      `json:"period"`
	PeriodStart string      `json:"period_start,omitempty"`
	ReportDate  string      `json:"report_date,omitempty"`
	Rows        []ReportRow `json:"rows"`
}

type ReportData struct {
	Files            []ReportFile `json:"files"`
	TotalFiles       int          `json:"total_files"`
	AvailableRegions []string     `json:"available_regions"`
	AvailablePeriods []string     `json:"available_periods"`
	AvailableKBKs    []string     `json:"available_kbks"`
}

type UploadResult struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PreviewURL string `json:"preview_url"`
}

type CommitRequest struct {
	IDs []string `json:"ids"`
}

type CommitResult struct {
	Moved   int      `json:"moved"`
	Missing []string `json:"missing"`
}

// ErrorResponse is the upstream error payload on non-2xx responses.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
