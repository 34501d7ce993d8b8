package adapters

import (
	"github.com/fin-tools/report-atlas/pkg/models/api"
	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

func MapReportRowApiToDomain(row api.ReportRow) domain.ReportRow {
	return domain.ReportRow{
		TaxpayerID: row.IINBin,
		BankCode:   row.BankCode,
		Account:    row.IIK,
		KBK:        row.KBK,
		Amount:     row.AmountIn,
	}
}

func MapReportFileApiToDomain(file api.ReportFile) domain.ReportFile {
	domainFile := domain.ReportFile{
		Region:     file.Region,
		Period:     file.Period,
		ReportDate: file.ReportDate,
		Rows:       make([]domain.ReportRow, 0, len(file.Rows)),
	}

	for _, r := range file.Rows {
		domainFile.Rows = append(domainFile.Rows, MapReportRowApiToDomain(r))
	}

	return domainFile
}

func MapReportDataApiToDomain(data api.ReportData) domain.Dataset {
	ds := domain.Dataset{Files: make([]domain.ReportFile, 0, len(data.Files))}

	for _, f := range data.Files {
		ds.Files = append(ds.Files, MapReportFileApiToDomain(f))
	}

	return ds
}

func MapFilterOptionsDomainToApi(opts domain.FilterOptions) api.FilterOptions {
	return api.FilterOptions{
		Regions: opts.Regions,
		Periods: opts.Periods,
		KBKs:    opts.KBKs,
	}
}

func MapFilteredViewDomainToApi(view *domain.FilteredView) *api.FilteredView {
	if view == nil {
		return nil
	}

	apiView := &api.FilteredView{
		Region:          view.Selection.Region,
		Period:          view.Selection.Period,
		KBK:             view.Selection.KBK,
		FileCount:       len(view.Files),
		RowCount:        len(view.Rows),
		Total:           view.Total.InexactFloat64(),
		UniqueTaxpayers: view.UniqueTaxpayers,
		Top10:           []api.TaxpayerTotal{},
		Top10Share:      view.Top10Share,
		Months:          []api.MonthBucket{},
	}

	for _, t := range view.Top10 {
		apiView.Top10 = append(apiView.Top10, api.TaxpayerTotal{
			IINBin: t.TaxpayerID,
			Amount: t.Amount.InexactFloat64(),
		})
	}

	for _, m := range view.Months {
		apiView.Months = append(apiView.Months, api.MonthBucket{
			Month:  m.Label,
			Amount: m.Amount.InexactFloat64(),
		})
	}

	return apiView
}

func MapTableRowDomainToApi(row domain.TableRow) api.TableRow {
	if row.Kind == domain.TableRowPeriod {
		return api.TableRow{
			Type:   string(domain.TableRowPeriod),
			Period: row.Period,
		}
	}

	return api.TableRow{
		Type:     string(domain.TableRowData),
		IINBin:   row.Row.TaxpayerID,
		BankCode: row.Row.BankCode,
		IIK:      row.Row.Account,
		KBK:      row.Row.KBK,
		AmountIn: row.Row.Amount,
	}
}

func MapUploadResultApiToDomain(res api.UploadResult) domain.UploadEntry {
	return domain.UploadEntry{
		ID:         res.ID,
		Name:       res.Name,
		PreviewURL: res.PreviewURL,
	}
}

func MapCommitResultApiToDomain(res api.CommitResult) domain.CommitResult {
	return domain.CommitResult{
		Moved:   res.Moved,
		Missing: res.Missing,
	}
}
